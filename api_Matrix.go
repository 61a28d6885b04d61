package forMiniTriGo

import (
	"fmt"

	"github.com/intel/forGoParallel/parallel"
)

// Matrix is the read-only view shared by every sparse matrix kind.
type Matrix interface {
	Kind() Kind
	M() int
	N() int
	NNZ() int
	NNZInRow(row int) int
	Col(row, i int) int
	Val(row, i int) int
	// Row returns the column indices of row, in increasing order. The slice
	// aliases the matrix storage and must not be modified.
	Row(row int) []int
	Check()
}

// csr is the storage shared by all kinds: row r occupies
// cols[rowStart[r]:rowStart[r+1]] and the same range of vals.
type csr struct {
	m, n     int
	rowStart []int
	cols     []int
	vals     []int
}

func (A *csr) M() int {
	return A.m
}

func (A *csr) N() int {
	return A.n
}

func (A *csr) NNZ() int {
	return A.rowStart[A.m]
}

func (A *csr) NNZInRow(row int) int {
	A.checkRow(row)
	return A.rowStart[row+1] - A.rowStart[row]
}

func (A *csr) Col(row, i int) int {
	return A.cols[A.index(row, i)]
}

func (A *csr) Val(row, i int) int {
	return A.vals[A.index(row, i)]
}

func (A *csr) Row(row int) []int {
	A.checkRow(row)
	return A.cols[A.rowStart[row]:A.rowStart[row+1]:A.rowStart[row+1]]
}

// Tuples returns the coordinates of all nonzeros in row-major order.
func (A *csr) Tuples() (rows, cols []int) {
	nnz := A.NNZ()
	rows = make([]int, nnz)
	cols = make([]int, nnz)
	copy(cols, A.cols)
	parallel.Range(0, A.m, 0, func(low, high int) {
		for r := low; r < high; r++ {
			for p := A.rowStart[r]; p < A.rowStart[r+1]; p++ {
				rows[p] = r
			}
		}
	})
	return
}

func (A *csr) checkRow(row int) {
	if row < 0 || row >= A.m {
		violation(ErrIndexOutOfRange, "row %v of %v", row, A.m)
	}
}

func (A *csr) index(row, i int) int {
	A.checkRow(row)
	p := A.rowStart[row] + i
	if i < 0 || p >= A.rowStart[row+1] {
		violation(ErrIndexOutOfRange, "nonzero %v of row %v", i, row)
	}
	return p
}

// check verifies the CSR invariants every kind shares, then calls entry for
// every stored nonzero.
func (A *csr) check(entry func(row, col, val int) error) error {
	if len(A.rowStart) != A.m+1 {
		return fmt.Errorf("%w: %v row offsets for %v rows", ErrInvariant, len(A.rowStart), A.m)
	}
	if A.rowStart[0] != 0 {
		return fmt.Errorf("%w: first row offset %v", ErrInvariant, A.rowStart[0])
	}
	nnz := A.rowStart[A.m]
	if len(A.cols) != nnz || len(A.vals) != nnz {
		return fmt.Errorf("%w: nnz %v, %v columns, %v values", ErrInvariant, nnz, len(A.cols), len(A.vals))
	}
	for r := 0; r < A.m; r++ {
		if A.rowStart[r+1] < A.rowStart[r] {
			return fmt.Errorf("%w: row %v has negative length", ErrInvariant, r)
		}
		for p := A.rowStart[r]; p < A.rowStart[r+1]; p++ {
			c := A.cols[p]
			if c < 0 || c >= A.n {
				return fmt.Errorf("%w: column %v in row %v, %v columns", ErrInvariant, c, r, A.n)
			}
			if p > A.rowStart[r] && A.cols[p-1] >= c {
				return fmt.Errorf("%w: columns of row %v not strictly increasing", ErrInvariant, r)
			}
			if entry != nil {
				if err := entry(r, c, A.vals[p]); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// Pattern is a general sparse pattern matrix with unit values. An adjacency
// matrix built by NewPattern is square and symmetric.
type Pattern struct {
	csr
}

func (*Pattern) Kind() Kind {
	return Undefined
}

func (A *Pattern) Check() {
	try(A.check(unitValue))
}

// LowerTriangular holds only entries with row > col.
type LowerTriangular struct {
	csr
}

func (*LowerTriangular) Kind() Kind {
	return LowerTriangularKind
}

func (L *LowerTriangular) Check() {
	if L.m != L.n {
		violation(ErrInvariant, "lower triangular matrix is %v x %v", L.m, L.n)
	}
	try(L.check(func(row, col, val int) error {
		if row <= col {
			return fmt.Errorf("%w: (%v, %v) above the diagonal", ErrInvariant, row, col)
		}
		return unitValue(row, col, val)
	}))
}

// UpperTriangular holds only entries with row < col.
type UpperTriangular struct {
	csr
}

func (*UpperTriangular) Kind() Kind {
	return UpperTriangularKind
}

func (U *UpperTriangular) Check() {
	if U.m != U.n {
		violation(ErrInvariant, "upper triangular matrix is %v x %v", U.m, U.n)
	}
	try(U.check(func(row, col, val int) error {
		if row >= col {
			return fmt.Errorf("%w: (%v, %v) below the diagonal", ErrInvariant, row, col)
		}
		return unitValue(row, col, val)
	}))
}

// Incidence is a vertex by edge matrix: column e holds the two endpoints of
// edge e.
type Incidence struct {
	csr
}

func (*Incidence) Kind() Kind {
	return IncidenceKind
}

func (B *Incidence) Check() {
	perEdge := make([]int, B.n)
	try(B.check(func(row, col, val int) error {
		perEdge[col]++
		return unitValue(row, col, val)
	}))
	for e, c := range perEdge {
		if c != 2 {
			violation(ErrInvariant, "edge %v has %v endpoints", e, c)
		}
	}
}

// TriangleWitness is the result of Multiply. Each stored cell (i, j) carries
// the first two witnesses found for it in Val and Val2.
type TriangleWitness struct {
	csr
	vals2   []int
	dropped int
}

func (*TriangleWitness) Kind() Kind {
	return TriangleWitnessKind
}

func (Z *TriangleWitness) Val2(row, i int) int {
	return Z.vals2[Z.index(row, i)]
}

// Dropped returns how many witnesses beyond the second were discarded.
func (Z *TriangleWitness) Dropped() int {
	return Z.dropped
}

func (Z *TriangleWitness) Check() {
	if len(Z.vals2) != len(Z.vals) {
		violation(ErrInvariant, "%v second witnesses for %v cells", len(Z.vals2), len(Z.vals))
	}
	try(Z.check(nil))
	for p, k := range Z.vals {
		if k == Z.vals2[p] {
			violation(ErrInvariant, "cell %v has the same witness twice", p)
		}
	}
}

func unitValue(row, col, val int) error {
	if val != 1 {
		return fmt.Errorf("%w: value %v at (%v, %v)", ErrInvariant, val, row, col)
	}
	return nil
}

func newCSR(m, n int, rowStart, cols []int) csr {
	vals := make([]int, len(cols))
	parallel.Range(0, len(vals), 0, func(low, high int) {
		for i := low; i < high; i++ {
			vals[i] = 1
		}
	})
	return csr{m: m, n: n, rowStart: rowStart, cols: cols, vals: vals}
}
