package soups

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/reusee/soup/assay"
	"github.com/reusee/soup/bff"
	"github.com/reusee/soup/census"
	"github.com/reusee/soup/genomes"
	"github.com/reusee/soup/logs"
	"github.com/reusee/soup/randoms"
)

const maxNoveltyEstimate = 1 << 22

type Soup struct {
	config Config
	rand   randoms.Rand
	// nil when the stream position cannot be saved
	stream   randoms.Stream
	engine   bff.Interactor
	assay    assay.Assay
	novelty  *census.Novelty
	observer Observer
	logger   logs.Logger

	population genomes.Population
	next       int
}

// New validates config and samples the initial population from r.
func New(
	config Config,
	r randoms.Rand,
	observer Observer,
	logger logs.Logger,
) (*Soup, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if observer == nil {
		observer = nopObserver{}
	}

	engine := bff.Engine{
		StepLimit: config.StepLimit,
	}

	reports := config.Epochs/config.ReportInterval + 1
	expected := min(config.PopulationSize*reports, maxNoveltyEstimate)

	return &Soup{
		config: config,
		rand:   r,
		engine: engine,
		assay: assay.Assay{
			Trials:      config.AssayTrials,
			Engine:      engine,
			Parallelism: config.Parallelism,
			Match:       config.AssayMatch,
		},
		novelty:    census.NewNovelty(uint(expected), 0.001),
		observer:   observer,
		logger:     logger,
		population: genomes.NewPopulation(r, config.PopulationSize, config.GenomeLength),
	}, nil
}

// NewFromStream is New drawing from stream, whose position is then saved in
// checkpoints.
func NewFromStream(
	config Config,
	stream randoms.Stream,
	observer Observer,
	logger logs.Logger,
) (*Soup, error) {
	s, err := New(config, rand.New(stream), observer, logger)
	if err != nil {
		return nil, err
	}
	s.stream = stream
	return s, nil
}

func (s *Soup) Config() Config {
	return s.config
}

func (s *Soup) Population() genomes.Population {
	return s.population
}

// Next is the index of the next epoch to run.
func (s *Soup) Next() int {
	return s.next
}

// Restore replaces the population and the epoch counter, as loaded from a snapshot.
func (s *Soup) Restore(pop genomes.Population, next int) error {
	if len(pop) != s.config.PopulationSize {
		return fmt.Errorf("population size %d, expecting %d", len(pop), s.config.PopulationSize)
	}
	if err := pop.Validate(s.config.GenomeLength); err != nil {
		return err
	}
	if next < 0 {
		return fmt.Errorf("bad epoch %d", next)
	}
	s.population = pop.Clone()
	s.next = next
	return nil
}

// Plant overwrites slots starting from 0 with copies of the given genomes.
func (s *Soup) Plant(planted []genomes.Genome) error {
	if len(planted) > len(s.population) {
		return fmt.Errorf("%d genomes planted into population of %d", len(planted), len(s.population))
	}
	for i, g := range planted {
		if len(g) != s.config.GenomeLength {
			return fmt.Errorf("planted genome %d: length %d, expecting %d", i, len(g), s.config.GenomeLength)
		}
	}
	for i, g := range planted {
		s.population[i] = g.Clone()
	}
	return nil
}

// Epoch pairs and interacts the whole population, then applies mutation.
// It returns the number of mutated bytes.
func (s *Soup) Epoch() int {
	PairParallel(s.population, s.rand, s.engine, s.config.Parallelism)
	return Mutate(s.population, s.rand, s.config.MutationRate)
}

// Advance runs one epoch and, on report epochs, takes a census and assays a
// dominant genome that crossed the threshold.
func (s *Soup) Advance(ctx context.Context) error {
	epoch := s.next
	mutations := s.Epoch()
	s.next++

	if epoch%s.config.ReportInterval != 0 {
		return nil
	}

	stats := census.Take(s.population)
	novel := s.novelty.Observe(s.population)
	s.logger.DebugContext(ctx, "census",
		"epoch", epoch,
		"unique", stats.Unique,
		"max_count", stats.MaxCount,
		"novel", novel,
		"mutations", mutations,
	)
	s.observer.Report(ctx, Report{
		Epoch: epoch,
		Stats: stats,
		Novel: novel,
		Seen:  s.novelty.Total(),
	})

	if stats.MaxCount < s.config.ReplicatorThreshold {
		return nil
	}

	rates := s.assay.Measure(stats.Dominant, s.rand)
	s.logger.InfoContext(ctx, "replicator",
		"epoch", epoch,
		"count", stats.MaxCount,
		"program", bff.Disassemble(stats.Dominant),
		"template_first", rates.TemplateFirst,
		"template_second", rates.TemplateSecond,
	)
	if err := s.observer.Replicator(ctx, Replicator{
		Epoch:  epoch,
		Genome: stats.Dominant,
		Rates:  rates,
	}); err != nil {
		return fmt.Errorf("epoch %d: %w", epoch, err)
	}

	return nil
}

// Run advances until the configured epoch count is reached or ctx is done.
func (s *Soup) Run(ctx context.Context) error {
	s.logger.InfoContext(ctx, "run soup",
		"from", s.next,
		"to", s.config.Epochs,
		"population", s.config.PopulationSize,
		"genome_length", s.config.GenomeLength,
	)
	for s.next < s.config.Epochs {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if err := s.Advance(ctx); err != nil {
			return err
		}
	}
	return nil
}
