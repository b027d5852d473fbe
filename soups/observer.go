package soups

import (
	"context"

	"github.com/reusee/soup/assay"
	"github.com/reusee/soup/census"
	"github.com/reusee/soup/genomes"
)

type Report struct {
	Epoch int
	Stats census.Stats
	// genomes not seen at any earlier report
	Novel int
	// distinct genomes seen at all reports so far
	Seen int
}

type Replicator struct {
	Epoch  int
	Genome genomes.Genome
	Rates  assay.Rates
}

// Observer receives periodic reports and replicator events. An error from
// Replicator stops the run.
type Observer interface {
	Report(ctx context.Context, report Report)
	Replicator(ctx context.Context, replicator Replicator) error
}

type nopObserver struct{}

func (nopObserver) Report(context.Context, Report) {}

func (nopObserver) Replicator(context.Context, Replicator) error {
	return nil
}
