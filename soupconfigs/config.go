package soupconfigs

import (
	"errors"
	"fmt"

	"github.com/reusee/soup/assay"
	"github.com/reusee/soup/cmds"
	"github.com/reusee/soup/configs"
	"github.com/reusee/soup/reports"
	"github.com/reusee/soup/soups"
	"github.com/reusee/soup/vars"
)

var (
	genomeLengthFlag        = cmds.Var[*int]("-genome-length", "bytes per genome")
	populationSizeFlag      = cmds.Var[*int]("-population-size", "number of genomes")
	epochsFlag              = cmds.Var[*int]("-epochs", "number of epochs to run")
	mutationRateFlag        = cmds.Var[*float64]("-mutation-rate", "per byte mutation probability")
	stepLimitFlag           = cmds.Var[*int]("-step-limit", "instruction budget per interaction")
	replicatorThresholdFlag = cmds.Var[*int]("-replicator-threshold", "copies of the dominant genome that trigger an assay")
	assayTrialsFlag         = cmds.Var[*int]("-assay-trials", "trials per assay orientation")
	assayMatchFlag          = cmds.Var[*string]("-assay-match", "either (default) or victim")
	reportIntervalFlag      = cmds.Var[*int]("-report-interval", "epochs between census reports")
	seedFlag                = cmds.Var[*uint64]("-seed", "random seed, 0 for time based")
	parallelismFlag         = cmds.Var[*int]("-parallelism", "concurrent interactions")
	outputDirFlag           = cmds.Var[string]("-output-dir", "directory for replicator artifacts")
)

// assign overrides target with the config value at path, then with the flag if set.
func assign[T any](loader configs.Loader, path string, flag **T, target *T) error {
	var value T
	if err := loader.AssignFirst(path, &value); err == nil {
		*target = value
	} else if !errors.Is(err, configs.ErrValueNotFound) {
		return fmt.Errorf("config %s: %w", path, err)
	}
	if *flag != nil {
		*target = **flag
	}
	return nil
}

func resolveConfig(loader configs.Loader) (config soups.Config, err error) {
	config = soups.DefaultConfig()
	for _, fn := range []func() error{
		func() error { return assign(loader, "genome_length", genomeLengthFlag, &config.GenomeLength) },
		func() error { return assign(loader, "population_size", populationSizeFlag, &config.PopulationSize) },
		func() error { return assign(loader, "epochs", epochsFlag, &config.Epochs) },
		func() error { return assign(loader, "mutation_rate", mutationRateFlag, &config.MutationRate) },
		func() error { return assign(loader, "step_limit", stepLimitFlag, &config.StepLimit) },
		func() error {
			return assign(loader, "replicator_threshold", replicatorThresholdFlag, &config.ReplicatorThreshold)
		},
		func() error { return assign(loader, "assay_trials", assayTrialsFlag, &config.AssayTrials) },
		func() error { return assign(loader, "report_interval", reportIntervalFlag, &config.ReportInterval) },
		func() error { return assign(loader, "seed", seedFlag, &config.Seed) },
		func() error { return assign(loader, "parallelism", parallelismFlag, &config.Parallelism) },
		func() error {
			match := config.AssayMatch.String()
			if err := assign(loader, "assay_match", assayMatchFlag, &match); err != nil {
				return err
			}
			config.AssayMatch, err = assay.ParseMatch(match)
			return err
		},
	} {
		if err = fn(); err != nil {
			return
		}
	}
	return
}

// Check reports what the providers of this package would panic on: load or
// schema errors, undecodable values and bad flag values.
func Check(loader configs.Loader) error {
	if err := loader.Err(); err != nil {
		return err
	}
	if _, err := resolveConfig(loader); err != nil {
		return err
	}
	var dir string
	if err := loader.AssignFirst("output_dir", &dir); err != nil && !errors.Is(err, configs.ErrValueNotFound) {
		return fmt.Errorf("config output_dir: %w", err)
	}
	return nil
}

func (Module) Config(
	loader configs.Loader,
) soups.Config {
	config, err := resolveConfig(loader)
	if err != nil {
		panic(err)
	}
	return config
}

func (Module) OutputDir(
	loader configs.Loader,
) reports.OutputDir {
	return reports.OutputDir(vars.FirstNonZero(
		*outputDirFlag,
		configs.First[string](loader, "output_dir"),
		".",
	))
}
