package genomes

import (
	"fmt"

	"github.com/reusee/soup/randoms"
)

// Population is a fixed-size ordered collection of genomes. Slots are replaced
// whole, never inserted or removed.
type Population []Genome

func NewPopulation(r randoms.Rand, size int, length int) Population {
	pop := make(Population, size)
	for i := range pop {
		pop[i] = Random(r, length)
	}
	return pop
}

func (p Population) Clone() Population {
	ret := make(Population, len(p))
	for i, g := range p {
		ret[i] = g.Clone()
	}
	return ret
}

func (p Population) Equal(other Population) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if !p[i].Equal(other[i]) {
			return false
		}
	}
	return true
}

func (p Population) Validate(length int) error {
	for i, g := range p {
		if len(g) != length {
			return fmt.Errorf("slot %d: genome length %d, expecting %d", i, len(g), length)
		}
	}
	return nil
}
