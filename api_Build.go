package forMiniTriGo

import (
	"fmt"
	"sort"

	"github.com/intel/forGoParallel/parallel"
)

// Edge is an unordered pair of vertex ids.
type Edge struct {
	U, V int
}

// ValidateEdges reports the first edge with an endpoint outside
// [base, base+n).
func ValidateEdges(n int, edges []Edge, base int) error {
	for i, e := range edges {
		if e.U < base || e.U >= base+n || e.V < base || e.V >= base+n {
			return fmt.Errorf("%w: edge %v (%v, %v), vertex ids must be in [%v, %v)", ErrIndexOutOfRange, i, e.U, e.V, base, base+n)
		}
	}
	return nil
}

// Build constructs a matrix of the requested kind from an edge list.
func Build(kind Kind, n int, edges []Edge, base int) Matrix {
	switch kind {
	case Undefined:
		return NewPattern(n, edges, base)
	case LowerTriangularKind:
		return NewLowerTriangularFromEdges(n, edges, base)
	case UpperTriangularKind:
		return NewUpperTriangularFromEdges(n, edges, base)
	case IncidenceKind:
		B, _ := NewIncidence(NewPattern(n, edges, base))
		return B
	}
	panic(fmt.Sprintf("cannot build a %v matrix from an edge list", kind))
}

// NewPattern builds the symmetric adjacency matrix of an undirected graph
// with n vertices. Self edges are dropped and duplicate edges collapse.
func NewPattern(n int, edges []Edge, base int) *Pattern {
	mustValidate(n, edges, base)
	rows := make([]int, 2*len(edges))
	cols := make([]int, 2*len(edges))
	parallel.Range(0, len(edges), 0, func(low, high int) {
		for i := low; i < high; i++ {
			u, v := edges[i].U-base, edges[i].V-base
			if u == v {
				u, v = -1, -1
			}
			rows[2*i], cols[2*i] = u, v
			rows[2*i+1], cols[2*i+1] = v, u
		}
	})
	return &Pattern{compress(n, n, rows, cols)}
}

// NewLowerTriangularFromEdges stores every edge once, as (max, min).
func NewLowerTriangularFromEdges(n int, edges []Edge, base int) *LowerTriangular {
	rows, cols := orient(n, edges, base, true)
	return &LowerTriangular{compress(n, n, rows, cols)}
}

// NewUpperTriangularFromEdges stores every edge once, as (min, max).
func NewUpperTriangularFromEdges(n int, edges []Edge, base int) *UpperTriangular {
	rows, cols := orient(n, edges, base, false)
	return &UpperTriangular{compress(n, n, rows, cols)}
}

// NewLowerTriangular keeps the entries of src with row > col.
func NewLowerTriangular(src *Pattern) *LowerTriangular {
	return &LowerTriangular{triangularPart(src, true)}
}

// NewUpperTriangular keeps the entries of src with row < col.
func NewUpperTriangular(src *Pattern) *UpperTriangular {
	return &UpperTriangular{triangularPart(src, false)}
}

// mustValidate checks the edges before any parallel loop touches them.
func mustValidate(n int, edges []Edge, base int) {
	if n < 0 {
		violation(ErrIndexOutOfRange, "%v vertices", n)
	}
	try(ValidateEdges(n, edges, base))
}

func orient(n int, edges []Edge, base int, lower bool) (rows, cols []int) {
	mustValidate(n, edges, base)
	rows = make([]int, len(edges))
	cols = make([]int, len(edges))
	parallel.Range(0, len(edges), 0, func(low, high int) {
		for i := low; i < high; i++ {
			u, v := edges[i].U-base, edges[i].V-base
			switch {
			case u == v:
				u, v = -1, -1
			case (u < v) == lower:
				u, v = v, u
			}
			rows[i], cols[i] = u, v
		}
	})
	return
}

// compress turns coordinate pairs into CSR storage. Pairs with a negative row
// are discarded, duplicates collapse into one nonzero.
func compress(m, n int, rows, cols []int) csr {
	twoSliceSort(rows, cols)
	first := sort.SearchInts(rows, 0)
	rows, cols = rows[first:], cols[first:]
	nnz := 0
	for p := range rows {
		if p > 0 && rows[p] == rows[p-1] && cols[p] == cols[p-1] {
			continue
		}
		rows[nnz], cols[nnz] = rows[p], cols[p]
		nnz++
	}
	rows, cols = rows[:nnz], cols[:nnz:nnz]
	rowStart := make([]int, m+1)
	parallel.Range(0, m+1, 0, func(low, high int) {
		for r := low; r < high; r++ {
			rowStart[r] = sort.SearchInts(rows, r)
		}
	})
	return newCSR(m, n, rowStart, cols)
}

func triangularPart(src *Pattern, lower bool) csr {
	if src.m != src.n {
		violation(ErrDimensionMismatch, "triangular part of a %v x %v matrix", src.m, src.n)
	}
	part := func(r int) []int {
		row := src.Row(r)
		if lower {
			return row[:sort.SearchInts(row, r)]
		}
		return row[sort.SearchInts(row, r+1):]
	}
	counts := make([]int, src.m)
	parallel.Range(0, src.m, 0, func(low, high int) {
		for r := low; r < high; r++ {
			counts[r] = len(part(r))
		}
	})
	rowStart := prefixSum(counts)
	cols := make([]int, rowStart[src.m])
	parallel.Range(0, src.m, 0, func(low, high int) {
		for r := low; r < high; r++ {
			copy(cols[rowStart[r]:rowStart[r+1]], part(r))
		}
	})
	return newCSR(src.m, src.n, rowStart, cols)
}

// prefixSum returns the exclusive scan of counts, with the total appended.
func prefixSum(counts []int) []int {
	offsets := make([]int, len(counts)+1)
	for i, c := range counts {
		offsets[i+1] = offsets[i] + c
	}
	return offsets
}
