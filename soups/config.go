package soups

import (
	"errors"
	"fmt"

	"github.com/reusee/soup/assay"
	"github.com/reusee/soup/bff"
)

// Config is fixed for the lifetime of a Soup.
type Config struct {
	GenomeLength        int
	PopulationSize      int
	Epochs              int
	MutationRate        float64
	StepLimit           int
	ReplicatorThreshold int
	AssayTrials         int
	AssayMatch          assay.Match
	ReportInterval      int
	Seed                uint64
	Parallelism         int
}

func DefaultConfig() Config {
	return Config{
		GenomeLength:        64,
		PopulationSize:      1024,
		Epochs:              2_000_000,
		MutationRate:        0.0002,
		StepLimit:           bff.DefaultStepLimit,
		ReplicatorThreshold: 100,
		AssayTrials:         1000,
		ReportInterval:      1000,
		Parallelism:         1,
	}
}

func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}
	check(c.GenomeLength >= 1, "genome length must be positive, got %d", c.GenomeLength)
	check(c.PopulationSize >= 2, "population size must be at least 2, got %d", c.PopulationSize)
	check(c.Epochs >= 0, "epochs must not be negative, got %d", c.Epochs)
	check(c.MutationRate >= 0 && c.MutationRate <= 1, "mutation rate must be in [0, 1], got %v", c.MutationRate)
	check(c.StepLimit >= 0, "step limit must not be negative, got %d", c.StepLimit)
	check(c.ReplicatorThreshold >= 1, "replicator threshold must be positive, got %d", c.ReplicatorThreshold)
	check(c.AssayTrials >= 0, "assay trials must not be negative, got %d", c.AssayTrials)
	check(c.ReportInterval >= 1, "report interval must be positive, got %d", c.ReportInterval)
	check(c.Parallelism >= 1, "parallelism must be positive, got %d", c.Parallelism)
	return errors.Join(errs...)
}
