package forMiniTriGo

import "github.com/intel/forGoParallel/parallel"

// Triangle holds the vertices of a triangle in increasing order.
type Triangle [3]int

func newTriangle(a, b, c int) Triangle {
	if a > b {
		a, b = b, a
	}
	if b > c {
		b, c = c, b
	}
	if a > b {
		a, b = b, a
	}
	return Triangle{a, b, c}
}

func (t Triangle) less(s Triangle) bool {
	for i := range t {
		if t[i] != s[i] {
			return t[i] < s[i]
		}
	}
	return false
}

// edges returns the ids of the three edges of t, in increasing order.
func (t Triangle) edges(idx *EdgeIndex) [3]int {
	e := newTriangle(idx.mustLookup(t[0], t[1]), idx.mustLookup(t[0], t[2]), idx.mustLookup(t[1], t[2]))
	return e
}

// representative reports whether the cell of row v1 with witnesses v2 and v3
// is the one copy of its triangle that gets counted: the row must be the
// largest of the three vertices.
func representative(v1, v2, v3 int) bool {
	return v1 > v2 && v1 > v3
}

// Triangles returns one Triangle per representative cell of Z, in row order.
func (Z *TriangleWitness) Triangles() []Triangle {
	return parallel.RangeReduce(0, Z.m, 0, func(low, high int) (tris []Triangle) {
		for i := low; i < high; i++ {
			for p := Z.rowStart[i]; p < Z.rowStart[i+1]; p++ {
				if representative(i, Z.vals[p], Z.vals2[p]) {
					tris = append(tris, newTriangle(i, Z.vals[p], Z.vals2[p]))
				}
			}
		}
		return
	}, func(x, y []Triangle) []Triangle {
		return append(x, y...)
	})
}

// TriangleVertexMatrix returns the triangle by vertex incidence matrix of
// tris: row t holds the three vertices of tris[t].
func TriangleVertexMatrix(tris []Triangle, n int) *Pattern {
	rowStart, cols := tripleRows(len(tris))
	parallel.Range(0, len(tris), 0, func(low, high int) {
		for t := low; t < high; t++ {
			for i, v := range tris[t] {
				if v < 0 || v >= n {
					violation(ErrIndexOutOfRange, "vertex %v of triangle %v, %v vertices", v, t, n)
				}
				cols[3*t+i] = v
			}
		}
	})
	return &Pattern{newCSR(len(tris), n, rowStart, cols)}
}

// TriangleEdgeMatrix returns the triangle by edge incidence matrix of tris:
// row t holds the ids of the three edges of tris[t].
func TriangleEdgeMatrix(tris []Triangle, idx *EdgeIndex) *Pattern {
	rowStart, cols := tripleRows(len(tris))
	parallel.Range(0, len(tris), 0, func(low, high int) {
		for t := low; t < high; t++ {
			e := tris[t].edges(idx)
			copy(cols[3*t:3*t+3], e[:])
		}
	})
	return &Pattern{newCSR(len(tris), idx.Len(), rowStart, cols)}
}

func tripleRows(ntris int) (rowStart, cols []int) {
	rowStart = make([]int, ntris+1)
	for t := range rowStart {
		rowStart[t] = 3 * t
	}
	return rowStart, make([]int, 3*ntris)
}

// TriangleDegrees returns how many of tris every vertex and every edge
// belongs to.
func TriangleDegrees(tris []Triangle, n int, idx *EdgeIndex) (vTri, eTri *Vector[int]) {
	vTri = NewVector[int](n)
	eTri = NewVector[int](idx.Len())
	SpMV1(TriangleVertexMatrix(tris, n), true, vTri)
	SpMV1(TriangleEdgeMatrix(tris, idx), true, eTri)
	return
}
