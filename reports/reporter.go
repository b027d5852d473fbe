package reports

import (
	"context"
	"fmt"
	"io"

	"github.com/reusee/soup/bff"
	"github.com/reusee/soup/debugs"
	"github.com/reusee/soup/genomes"
	"github.com/reusee/soup/logs"
	"github.com/reusee/soup/metrics"
	"github.com/reusee/soup/soups"
)

const hexPrefixBytes = 32

// Reporter prints census lines, saves replicator genomes and keeps metrics.
type Reporter struct {
	Writer  io.Writer
	Dir     string
	Logger  logs.Logger
	Metrics *metrics.Metrics
	// optional
	MetricsFile string
	Tap         debugs.Tap
	StepLimit   int
}

var _ soups.Observer = new(Reporter)

func (r *Reporter) Report(ctx context.Context, report soups.Report) {
	fmt.Fprintf(r.Writer, "epoch %7d unique_orgs=%d max_count=%d\n",
		report.Epoch, report.Stats.Unique, report.Stats.MaxCount)
	fmt.Fprintf(r.Writer, "  dominant (first32 hex): %s\n",
		report.Stats.Dominant.HexPrefix(hexPrefixBytes))

	if r.Metrics == nil {
		return
	}
	r.Metrics.ObserveCensus(report.Epoch, report.Stats, report.Novel, report.Seen)
	if r.MetricsFile != "" {
		if err := r.Metrics.WriteFile(r.MetricsFile); err != nil {
			r.Logger.WarnContext(ctx, "write metrics file",
				"path", r.MetricsFile,
				"error", err,
			)
		}
	}
}

func (r *Reporter) Replicator(ctx context.Context, replicator soups.Replicator) error {
	path, err := WriteArtifact(r.Dir, replicator.Epoch, replicator.Genome)
	if err != nil {
		return logs.WrapRun(ctx, err)
	}
	r.Logger.InfoContext(ctx, "replicator saved",
		"epoch", replicator.Epoch,
		"path", path,
	)

	fmt.Fprintf(r.Writer,
		"  [assay epoch %d] infect_as_A->B success_rate=%.3f  infect_as_B->A success_rate=%.3f\n",
		replicator.Epoch,
		replicator.Rates.TemplateFirst,
		replicator.Rates.TemplateSecond,
	)

	if r.Metrics != nil {
		r.Metrics.ObserveAssay(replicator.Rates)
	}

	if r.Tap != nil {
		engine := bff.Engine{StepLimit: r.StepLimit}
		r.Tap(ctx, fmt.Sprintf("replicator at epoch %d", replicator.Epoch), map[string]any{
			"epoch":   replicator.Epoch,
			"genome":  replicator.Genome,
			"program": bff.Disassemble(replicator.Genome),
			"rates":   replicator.Rates,
			// hex in, hex of both outputs out
			"interact": func(a string, b string) (string, error) {
				ga, err := genomes.ParseHex(a)
				if err != nil {
					return "", err
				}
				gb, err := genomes.ParseHex(b)
				if err != nil {
					return "", err
				}
				outA, outB := engine.Interact(ga, gb)
				return outA.Hex() + " " + outB.Hex(), nil
			},
		})
	}

	return nil
}
