// Package assay measures how reliably a genome turns an arbitrary partner
// into an exact copy of itself.
package assay

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/reusee/soup/bff"
	"github.com/reusee/soup/genomes"
	"github.com/reusee/soup/randoms"
	"github.com/reusee/soup/syncs"
)

type Rates struct {
	// template as the first operand
	TemplateFirst float64
	// template as the second operand
	TemplateSecond float64
}

type Match uint8

const (
	// MatchEither counts a trial when either output equals the template. An
	// untouched template in its own half also counts.
	MatchEither Match = iota
	// MatchVictim counts a trial only when the victim's half holds an exact copy.
	MatchVictim
)

func ParseMatch(str string) (Match, error) {
	switch str {
	case "", "either":
		return MatchEither, nil
	case "victim":
		return MatchVictim, nil
	}
	return 0, fmt.Errorf("unknown assay match: %s", str)
}

func (m Match) String() string {
	if m == MatchVictim {
		return "victim"
	}
	return "either"
}

type Assay struct {
	Trials int
	Engine bff.Interactor
	// Parallelism bounds concurrent interactions. Values below 2 run inline.
	Parallelism int
	Match       Match
}

// Measure runs Trials interactions in each orientation against fresh random
// victims. All template-first victims are drawn before the template-second ones.
func (a Assay) Measure(template genomes.Genome, r randoms.Rand) Rates {
	if a.Trials <= 0 {
		return Rates{}
	}
	first := a.rate(template, a.victims(r, len(template)), true)
	second := a.rate(template, a.victims(r, len(template)), false)
	return Rates{
		TemplateFirst:  first,
		TemplateSecond: second,
	}
}

func (a Assay) victims(r randoms.Rand, length int) []genomes.Genome {
	ret := make([]genomes.Genome, a.Trials)
	for i := range ret {
		ret[i] = genomes.Random(r, length)
	}
	return ret
}

func (a Assay) rate(template genomes.Genome, victims []genomes.Genome, templateFirst bool) float64 {
	var successes atomic.Int64
	trial := func(victim genomes.Genome) {
		var outA, outB genomes.Genome
		if templateFirst {
			outA, outB = a.Engine.Interact(template, victim)
		} else {
			outA, outB = a.Engine.Interact(victim, template)
		}
		victimOut := outB
		if !templateFirst {
			victimOut = outA
		}
		if victimOut.Equal(template) ||
			a.Match == MatchEither && (outA.Equal(template) || outB.Equal(template)) {
			successes.Add(1)
		}
	}

	if a.Parallelism < 2 {
		for _, victim := range victims {
			trial(victim)
		}
	} else {
		sem := syncs.NewSemaphore(a.Parallelism)
		var wg sync.WaitGroup
		for _, victim := range victims {
			sem.Acquire()
			wg.Go(func() {
				defer sem.Release()
				trial(victim)
			})
		}
		wg.Wait()
	}

	return float64(successes.Load()) / float64(len(victims))
}
