package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/reusee/dscope"
	"github.com/reusee/soup/cmds"
	"github.com/reusee/soup/configs"
	"github.com/reusee/soup/debugs"
	"github.com/reusee/soup/logs"
	"github.com/reusee/soup/modes"
	"github.com/reusee/soup/reports"
	"github.com/reusee/soup/seeds"
	"github.com/reusee/soup/snapshots"
	"github.com/reusee/soup/soupconfigs"
	"github.com/reusee/soup/soups"
)

var (
	snapshotInFlag  = cmds.Var[string]("-snapshot-in", "resume from snapshot file")
	snapshotOutFlag = cmds.Var[string]("-snapshot-out", "save snapshot file on exit")
	seedsFlag       = cmds.Var[string]("-seeds", "starlark script planting initial genomes")
	tapFlag         = cmds.Switch("-tap", "open a starlark repl on each replicator")
	metricsFileFlag = cmds.Var[string]("-metrics-file", "prometheus textfile to rewrite on each census")
)

func main() {
	cmds.Execute(os.Args[1:])

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	var configErr error
	scope.Call(func(
		loader configs.Loader,
	) {
		configErr = soupconfigs.Check(loader)
	})
	if configErr != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", configErr)
		os.Exit(1)
	}

	var err error
	scope.Call(func(
		logger logs.Logger,
		config soups.Config,
		newRun logs.NewRun,
		newSoup soups.NewSoup,
		reporter *reports.Reporter,
		tap debugs.Tap,
	) {
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()
		ctx, _ = newRun(ctx)

		if *tapFlag {
			reporter.Tap = tap
		}
		reporter.MetricsFile = *metricsFileFlag

		err = run(ctx, logger, config, newSoup, reporter)
	})

	if err != nil {
		if errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, "interrupted")
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(
	ctx context.Context,
	logger logs.Logger,
	config soups.Config,
	newSoup soups.NewSoup,
	reporter *reports.Reporter,
) error {
	if err := os.MkdirAll(reporter.Dir, 0755); err != nil {
		return err
	}

	soup, err := newSoup(reporter)
	if err != nil {
		logger.ErrorContext(ctx, "new soup", "error", err)
		return err
	}

	if *snapshotInFlag != "" {
		snapshot, err := snapshots.Load(*snapshotInFlag)
		if err != nil {
			return fmt.Errorf("load snapshot: %w", err)
		}
		if err := soup.Resume(snapshot.Checkpoint); err != nil {
			return fmt.Errorf("restore snapshot %s: %w", *snapshotInFlag, err)
		}
		logger.InfoContext(ctx, "snapshot restored",
			"path", *snapshotInFlag,
			"next", snapshot.Next,
		)
		if *seedsFlag != "" {
			logger.WarnContext(ctx, "seeds ignored when resuming from a snapshot")
		}

	} else if *seedsFlag != "" {
		planted, err := seeds.Run(*seedsFlag, nil, config.GenomeLength)
		if err != nil {
			return err
		}
		if err := soup.Plant(planted); err != nil {
			return fmt.Errorf("plant seeds: %w", err)
		}
		logger.InfoContext(ctx, "seeds planted",
			"path", *seedsFlag,
			"count", len(planted),
		)
	}

	runErr := soup.Run(ctx)

	if *snapshotOutFlag != "" {
		checkpoint, err := soup.Checkpoint()
		if err != nil {
			return errors.Join(runErr, err)
		}
		if err := snapshots.Save(*snapshotOutFlag, snapshots.Snapshot{
			Checkpoint: checkpoint,
		}); err != nil {
			return errors.Join(runErr, fmt.Errorf("save snapshot: %w", err))
		}
		logger.InfoContext(ctx, "snapshot saved",
			"path", *snapshotOutFlag,
			"next", soup.Next(),
		)
	}

	return runErr
}
