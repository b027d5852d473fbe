package soups

import (
	"github.com/reusee/soup/genomes"
	"github.com/reusee/soup/randoms"
)

// Mutate replaces each byte with a uniform random byte with probability p,
// visiting slots and bytes in order. It returns the number of replacements.
func Mutate(pop genomes.Population, r randoms.Rand, p float64) int {
	n := 0
	for _, g := range pop {
		for i := range g {
			if r.Float64() < p {
				g[i] = byte(r.Uint32())
				n++
			}
		}
	}
	return n
}
