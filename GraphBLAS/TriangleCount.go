// Package GraphBLAS counts triangles with SuiteSparse:GraphBLAS through
// forGraphBLASGo. It is independent of the witness product of forMiniTriGo
// and serves to cross-check its results. Init must be called before
// TriangleCount.
package GraphBLAS

import (
	"fmt"

	MT "github.com/forminitri/forMiniTriGo"
	"github.com/intel/forGraphBLASGo/GrB"
)

type TriangleCountMethod int

const (
	// Burkhardt computes sum(A .* (A·A)) / 6.
	Burkhardt TriangleCountMethod = iota
	// Sandia computes sum(L .* (L·L)).
	Sandia
	// SandiaDot computes sum(L .* (L·Uᵀ)) with dot products.
	SandiaDot
)

var AllTriangleCountMethods = []TriangleCountMethod{Burkhardt, Sandia, SandiaDot}

func (method TriangleCountMethod) String() string {
	switch method {
	case Burkhardt:
		return "Burkhardt"
	case Sandia:
		return "Sandia"
	case SandiaDot:
		return "SandiaDot"
	}
	return fmt.Sprintf("TriangleCountMethod(%d)", int(method))
}

func Init(mode GrB.Mode) error {
	return GrB.Init(mode)
}

func Finalize() error {
	return GrB.Finalize()
}

// adjacency copies the pattern of A into a GraphBLAS matrix with unit values.
func adjacency(A *MT.Pattern) (B GrB.Matrix[int], err error) {
	defer GrB.CheckErrors(&err)
	n := A.M()
	rows, cols := A.Tuples()
	vals := make([]int, len(rows))
	for i := range vals {
		vals[i] = 1
	}
	B, err = GrB.MatrixNew[int](n, n)
	GrB.OK(err)
	defer func() {
		if err != nil {
			_ = B.Free()
		}
	}()
	GrB.OK(B.Build(rows, cols, vals, nil))
	GrB.OK(B.Wait(GrB.Materialize))
	return
}

func tricountPrep(A GrB.Matrix[int], l, u bool) (L, U GrB.Matrix[int], err error) {
	defer GrB.CheckErrors(&err)
	n, err := A.Nrows()
	GrB.OK(err)
	if l {
		L, err = GrB.MatrixNew[int](n, n)
		GrB.OK(err)
		defer func() {
			if err != nil {
				_ = L.Free()
			}
		}()
		GrB.OK(GrB.MatrixSelect(L, nil, nil, GrB.Tril[int](), A, -1, nil))
		GrB.OK(L.Wait(GrB.Materialize))
	}
	if u {
		U, err = GrB.MatrixNew[int](n, n)
		GrB.OK(err)
		defer func() {
			if err != nil {
				_ = U.Free()
			}
		}()
		GrB.OK(GrB.MatrixSelect(U, nil, nil, GrB.Triu[int](), A, 1, nil))
		GrB.OK(U.Wait(GrB.Materialize))
	}
	return
}

// TriangleCount counts the triangles of the symmetric adjacency matrix A.
func TriangleCount(A *MT.Pattern, method TriangleCountMethod) (ntriangles int, err error) {
	defer GrB.CheckErrors(&err)
	n := A.M()
	if n != A.N() {
		return 0, fmt.Errorf("%w: adjacency matrix is %v x %v", MT.ErrDimensionMismatch, n, A.N())
	}
	if n == 0 {
		return 0, nil
	}
	try := func(f func() error) {
		GrB.OK(f())
	}
	B, err := adjacency(A)
	GrB.OK(err)
	defer try(B.Free)
	C, err := GrB.MatrixNew[int](n, n)
	GrB.OK(err)
	defer try(C.Free)
	semiring := GrB.PlusOneb[int]()
	monoid := GrB.PlusMonoid[int]()
	switch method {
	case Burkhardt:
		GrB.OK(GrB.MxM(C, B.AsMask(), nil, semiring, B, B, GrB.DescS))
		ntriangles, err = GrB.MatrixReduceMonoidValue(monoid, C, nil)
		GrB.OK(err)
		ntriangles /= 6
	case Sandia:
		L, _, e := tricountPrep(B, true, false)
		GrB.OK(e)
		defer try(L.Free)
		GrB.OK(GrB.MxM(C, L.AsMask(), nil, semiring, L, L, GrB.DescS))
		ntriangles, err = GrB.MatrixReduceMonoidValue(monoid, C, nil)
		GrB.OK(err)
	case SandiaDot:
		L, U, e := tricountPrep(B, true, true)
		GrB.OK(e)
		defer try(L.Free)
		defer try(U.Free)
		GrB.OK(GrB.MxM(C, L.AsMask(), nil, semiring, L, U, GrB.DescST1))
		ntriangles, err = GrB.MatrixReduceMonoidValue(monoid, C, nil)
		GrB.OK(err)
	default:
		return 0, fmt.Errorf("unknown triangle count method %v", method)
	}
	return
}
