package forMiniTriGo

import (
	"github.com/intel/forGoParallel/parallel"
	"golang.org/x/exp/slices"
)

// productBlock is the part of a product computed for rows [low, high).
type productBlock struct {
	low               int
	rowNNZ            []int
	cols, vals, vals2 []int
}

type productResult struct {
	blocks       []*productBlock
	nnz, dropped int
}

func joinProducts(x, y productResult) productResult {
	return productResult{
		blocks:  append(x.blocks, y.blocks...),
		nnz:     x.nnz + y.nnz,
		dropped: x.dropped + y.dropped,
	}
}

// candidate records that witness reaches column col of the current row.
type candidate struct {
	col, witness int
}

// witnessAccumulator collects the candidates of one output row. Its size is
// bounded by the number of partial products of the row, not by the number of
// columns of the product, and it is reused from row to row.
type witnessAccumulator struct {
	candidates []candidate
}

func (acc *witnessAccumulator) add(col, witness int) {
	acc.candidates = append(acc.candidates, candidate{col, witness})
}

// flush appends the columns with at least two witnesses to block, in
// increasing column order, and resets the accumulator. It returns the
// number of stored cells and the number of witnesses beyond the second.
func (acc *witnessAccumulator) flush(block *productBlock) (nnz, dropped int) {
	c := acc.candidates
	slices.SortFunc(c, func(x, y candidate) int {
		if x.col != y.col {
			return x.col - y.col
		}
		return x.witness - y.witness
	})
	for p := 0; p < len(c); {
		q := p + 1
		for q < len(c) && c[q].col == c[p].col {
			q++
		}
		if q-p >= 2 {
			block.cols = append(block.cols, c[p].col)
			block.vals = append(block.vals, c[p].witness)
			block.vals2 = append(block.vals2, c[p+1].witness)
			nnz++
			dropped += q - p - 2
		}
		p = q
	}
	acc.candidates = c[:0]
	return
}

// Multiply computes the triangle witness product Z = A·B. For every (i, k)
// in A and (k, j) in B, k is a witness of the cell (i, j). Cells with a single
// witness close no triangle and are not stored; the others keep their first two
// witnesses, in increasing order of k.
//
// With A the lower triangular adjacency matrix and B the incidence matrix,
// the cell (i, e) has two witnesses exactly when both endpoints of edge e are
// lower neighbours of i, so every stored cell is a triangle and no witness is
// dropped. With B = A, a cell may collect more than two witnesses; the
// surplus is counted by Z.Dropped.
func Multiply(A, B Matrix) *TriangleWitness {
	if A.N() != B.M() {
		violation(ErrDimensionMismatch, "product of %v x %v and %v x %v", A.M(), A.N(), B.M(), B.N())
	}
	m, n := A.M(), B.N()
	result := parallel.RangeReduce(0, m, 0, func(low, high int) productResult {
		block := &productBlock{low: low, rowNNZ: make([]int, high-low)}
		var acc witnessAccumulator
		r := productResult{blocks: []*productBlock{block}}
		for i := low; i < high; i++ {
			for _, k := range A.Row(i) {
				for _, j := range B.Row(k) {
					acc.add(j, k)
				}
			}
			nnz, dropped := acc.flush(block)
			block.rowNNZ[i-low] = nnz
			r.nnz += nnz
			r.dropped += dropped
		}
		return r
	}, joinProducts)

	rowStart := make([]int, m+1)
	for _, block := range result.blocks {
		for i, c := range block.rowNNZ {
			rowStart[block.low+i+1] = rowStart[block.low+i] + c
		}
	}
	if rowStart[m] != result.nnz {
		violation(ErrInvariant, "product rows hold %v nonzeros, blocks counted %v", rowStart[m], result.nnz)
	}
	cols := make([]int, result.nnz)
	vals := make([]int, result.nnz)
	vals2 := make([]int, result.nnz)
	parallel.Range(0, len(result.blocks), 0, func(low, high int) {
		for _, block := range result.blocks[low:high] {
			p := rowStart[block.low]
			copy(cols[p:], block.cols)
			copy(vals[p:], block.vals)
			copy(vals2[p:], block.vals2)
		}
	})
	return &TriangleWitness{
		csr:     csr{m: m, n: n, rowStart: rowStart, cols: cols, vals: vals},
		vals2:   vals2,
		dropped: result.dropped,
	}
}
