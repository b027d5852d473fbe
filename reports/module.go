package reports

import (
	"io"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/soup/debugs"
	"github.com/reusee/soup/logs"
	"github.com/reusee/soup/metrics"
	"github.com/reusee/soup/soups"
)

type Module struct {
	dscope.Module
	Logs    logs.Module
	Metrics metrics.Module
	Debugs  debugs.Module
}

type Writer io.Writer

func (Module) Writer() Writer {
	return os.Stdout
}

// OutputDir is where replicator artifacts are written.
type OutputDir string

func (Module) Reporter(
	writer Writer,
	dir OutputDir,
	logger logs.Logger,
	m *metrics.Metrics,
	config soups.Config,
) *Reporter {
	return &Reporter{
		Writer:    writer,
		Dir:       string(dir),
		Logger:    logger,
		Metrics:   m,
		StepLimit: config.StepLimit,
	}
}
