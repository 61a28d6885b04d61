package forMiniTriGo

import (
	"runtime"

	"github.com/intel/forGoParallel/parallel"
)

// SpMV1 multiplies A, or its transpose, by the all-ones vector.
//
// Without trans, y[r] is set to the number of nonzeros of row r. With trans,
// y[c] is incremented once for every nonzero in column c. Every worker counts
// into its own vector of size A.N() and the worker vectors are summed
// pairwise, so the result does not depend on how the rows were partitioned.
func SpMV1(A Matrix, trans bool, y *Vector[int]) {
	spmv1(A, trans, y, runtime.GOMAXPROCS(0))
}

// spmv1 splits the rows of A into at most batches blocks. With trans, the
// number of blocks bounds the number of shadow vectors alive at once.
func spmv1(A Matrix, trans bool, y *Vector[int], batches int) {
	m := A.M()
	if !trans {
		if y.Size() != m {
			violation(ErrDimensionMismatch, "y has size %v, A has %v rows", y.Size(), m)
		}
		parallel.Range(0, m, 0, func(low, high int) {
			for r := low; r < high; r++ {
				y.data[r] = A.NNZInRow(r)
			}
		})
		return
	}
	if y.Size() != A.N() {
		violation(ErrDimensionMismatch, "y has size %v, A has %v columns", y.Size(), A.N())
	}
	counts := parallel.RangeReduce(0, m, batches, func(low, high int) *Vector[int] {
		local := NewVector[int](y.Size())
		for r := low; r < high; r++ {
			for _, c := range A.Row(r) {
				local.data[c]++
			}
		}
		return local
	}, (*Vector[int]).Add)
	y.Add(counts)
}
