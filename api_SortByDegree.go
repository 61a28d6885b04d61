package forMiniTriGo

import (
	"github.com/intel/forGoParallel/parallel"
	"github.com/rs/zerolog/log"
)

type Presort int

const (
	NoSort                 Presort = 0
	SortByDegreeAscending  Presort = 1
	SortByDegreeDescending Presort = -1
	AutoSelectSort         Presort = 2
)

var AllPresorts = []Presort{NoSort, SortByDegreeAscending, SortByDegreeDescending, AutoSelectSort}

// SortByDegree returns the permutation P listing the vertices by degree:
// vertex P[i] becomes vertex i of the relabelled graph.
func (G *Graph) SortByDegree(ascending bool) []int {
	G.PropertyRowDegree()
	degree := G.RowDegree.Slice()
	n := len(degree)
	P := make([]int, n)
	D := make([]int, n)
	parallel.Range(0, n, 0, func(low, high int) {
		for i := low; i < high; i++ {
			P[i] = i
		}
	})
	if ascending {
		parallel.Range(0, n, 0, func(low, high int) {
			for i := low; i < high; i++ {
				D[i] = degree[i]
			}
		})
	} else {
		parallel.Range(0, n, 0, func(low, high int) {
			for i := low; i < high; i++ {
				D[i] = -degree[i]
			}
		})
	}
	twoSliceSort(D, P)
	return P
}

// Permute returns the graph in which vertex P[i] of G is renamed i.
func (G *Graph) Permute(P []int) *Graph {
	n := G.A.m
	if len(P) != n {
		violation(ErrDimensionMismatch, "permutation of %v for %v vertices", len(P), n)
	}
	inverse := make([]int, n)
	parallel.Range(0, n, 0, func(low, high int) {
		for i := low; i < high; i++ {
			inverse[P[i]] = i
		}
	})
	rows, cols := G.A.Tuples()
	edges := make([]Edge, len(rows))
	parallel.Range(0, len(rows), 0, func(low, high int) {
		for p := low; p < high; p++ {
			edges[p] = Edge{inverse[rows[p]], inverse[cols[p]]}
		}
	})
	return New(n, edges, 0)
}

// Presorted relabels G by degree as presort asks. AutoSelectSort sorts
// ascending only for large graphs whose sampled degree distribution is
// heavily skewed, and stores the choice back into presort.
func (G *Graph) Presorted(presort *Presort) *Graph {
	if *presort == AutoSelectSort {
		*presort = NoSort
		const nSamples = 1000
		n := G.A.m
		if n > nSamples && float64(G.A.NNZ())/float64(n) >= 10 {
			mean, median := G.SampleDegree(nSamples, uint64(n))
			if mean > 4*median {
				*presort = SortByDegreeAscending
			}
		}
		log.Debug().Int("presort", int(*presort)).Msg("auto-selected presort")
	}
	if *presort == NoSort {
		return G
	}
	return G.Permute(G.SortByDegree(*presort > 0))
}
