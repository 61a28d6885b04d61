package forMiniTriGo

import (
	"sort"

	"github.com/intel/forGoParallel/parallel"
)

// EdgeIndex maps an unordered vertex pair to the id of its edge. Edge ids are
// allocated scanning the rows of an adjacency matrix in increasing order and,
// within a row, the columns above the diagonal in increasing order.
type EdgeIndex struct {
	cols       []int // columns of the adjacency matrix the index was built from
	upperStart []int // upperStart[u]: first position in cols of row u with a column > u
	firstID    []int // firstID[u]: id of the first edge (u, v) with u < v
}

func newEdgeIndex(A *Pattern) *EdgeIndex {
	n := A.m
	upperStart := make([]int, n)
	counts := make([]int, n)
	parallel.Range(0, n, 0, func(low, high int) {
		for u := low; u < high; u++ {
			row := A.Row(u)
			s := sort.SearchInts(row, u+1)
			upperStart[u] = A.rowStart[u] + s
			counts[u] = len(row) - s
		}
	})
	return &EdgeIndex{
		cols:       A.cols,
		upperStart: upperStart,
		firstID:    prefixSum(counts),
	}
}

// Len returns the number of edges.
func (idx *EdgeIndex) Len() int {
	return idx.firstID[len(idx.firstID)-1]
}

// Lookup returns the id of the edge between u and v, in either order.
func (idx *EdgeIndex) Lookup(u, v int) (e int, ok bool) {
	if u > v {
		u, v = v, u
	}
	if u < 0 || v >= len(idx.upperStart) || u == v {
		return -1, false
	}
	n := idx.firstID[u+1] - idx.firstID[u]
	upper := idx.cols[idx.upperStart[u] : idx.upperStart[u]+n]
	i := sort.SearchInts(upper, v)
	if i == n || upper[i] != v {
		return -1, false
	}
	return idx.firstID[u] + i, true
}

func (idx *EdgeIndex) mustLookup(u, v int) int {
	e, ok := idx.Lookup(u, v)
	if !ok {
		violation(ErrMissingEdge, "(%v, %v)", u, v)
	}
	return e
}

// Endpoints returns the vertices of edge e, u < v.
func (idx *EdgeIndex) Endpoints(e int) (u, v int) {
	if e < 0 || e >= idx.Len() {
		violation(ErrIndexOutOfRange, "edge %v of %v", e, idx.Len())
	}
	u = sort.Search(len(idx.upperStart), func(i int) bool {
		return idx.firstID[i+1] > e
	})
	v = idx.cols[idx.upperStart[u]+e-idx.firstID[u]]
	return
}

// NewIncidence builds the vertex by edge incidence matrix of the undirected
// graph whose symmetric adjacency matrix is A, together with the index from
// vertex pairs to edge ids. Diagonal entries of A are ignored.
func NewIncidence(A *Pattern) (*Incidence, *EdgeIndex) {
	if A.m != A.n {
		violation(ErrDimensionMismatch, "incidence matrix of a %v x %v matrix", A.m, A.n)
	}
	idx := newEdgeIndex(A)
	n := A.m
	counts := make([]int, n)
	parallel.Range(0, n, 0, func(low, high int) {
		for u := low; u < high; u++ {
			counts[u] = A.NNZInRow(u)
			if e := sort.SearchInts(A.Row(u), u); e < counts[u] && A.Row(u)[e] == u {
				counts[u]--
			}
		}
	})
	rowStart := prefixSum(counts)
	cols := make([]int, rowStart[n])
	parallel.Range(0, n, 0, func(low, high int) {
		for u := low; u < high; u++ {
			q := rowStart[u]
			for p := A.rowStart[u]; p < A.rowStart[u+1]; p++ {
				v := A.cols[p]
				switch {
				case v > u:
					cols[q] = idx.firstID[u] + p - idx.upperStart[u]
				case v < u:
					// (v, u) was numbered in row v, before any edge of row u.
					cols[q] = idx.mustLookup(v, u)
				default:
					continue
				}
				q++
			}
		}
	})
	return &Incidence{newCSR(n, idx.Len(), rowStart, cols)}, idx
}
