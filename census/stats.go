package census

import "github.com/reusee/soup/genomes"

type Stats struct {
	Unique   int
	MaxCount int
	Dominant genomes.Genome
}

// Take counts distinct genomes and finds the most frequent one. Among genomes
// sharing the highest count, the one appearing first in slot order wins.
func Take(pop genomes.Population) Stats {
	counts := make(map[string]int, len(pop))
	var stats Stats
	for _, g := range pop {
		counts[string(g)]++
	}
	stats.Unique = len(counts)
	for _, g := range pop {
		if c := counts[string(g)]; c > stats.MaxCount {
			stats.MaxCount = c
			stats.Dominant = g.Clone()
		}
	}
	return stats
}
