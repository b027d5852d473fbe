package soups

import (
	"github.com/reusee/soup/bff"
	"github.com/reusee/soup/genomes"
	"github.com/reusee/soup/randoms"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

// Pairs draws a random permutation of slot indices and cuts it into disjoint
// pairs. With an odd population the last index sits out.
func Pairs(size int, r randoms.Rand) [][]int {
	chunks := lo.Chunk(r.Perm(size), 2)
	if len(chunks) > 0 && len(chunks[len(chunks)-1]) < 2 {
		chunks = chunks[:len(chunks)-1]
	}
	return chunks
}

func interact(pop genomes.Population, pair []int, engine bff.Interactor) {
	i, j := pair[0], pair[1]
	a, b := pop[i], pop[j]
	outA, outB := engine.Interact(a, b)
	pop[i] = outA
	pop[j] = outB
}

// Pair runs one interaction per pair in permutation order, the first index of
// each pair being the first operand.
func Pair(pop genomes.Population, r randoms.Rand, engine bff.Interactor) {
	for _, pair := range Pairs(len(pop), r) {
		interact(pop, pair, engine)
	}
}

// PairParallel is Pair with interactions spread over up to parallelism
// goroutines. Pairs never share a slot, so the result equals Pair's.
func PairParallel(pop genomes.Population, r randoms.Rand, engine bff.Interactor, parallelism int) {
	if parallelism < 2 {
		Pair(pop, r, engine)
		return
	}
	// the group only bounds concurrency, interactions never fail
	var g errgroup.Group
	g.SetLimit(parallelism)
	for _, pair := range Pairs(len(pop), r) {
		g.Go(func() error {
			interact(pop, pair, engine)
			return nil
		})
	}
	g.Wait()
}
