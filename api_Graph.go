package forMiniTriGo

import (
	"github.com/rs/zerolog/log"
)

// Graph runs the miniTri triangle pipeline on an undirected graph. The
// adjacency matrix A is given; every other field is derived on demand and
// cleared by DeleteProperties.
type Graph struct {
	A *Pattern

	RowDegree *Vector[int]

	L     *LowerTriangular
	B     *Incidence
	Edges *EdgeIndex
	Z     *TriangleWitness

	Tris            []Triangle
	TrisOrdered     bool
	VertexTriDegree *Vector[int]
	EdgeTriDegree   *Vector[int]
	KCount          []int
}

// New builds the graph with n vertices and the given edges, whose vertex ids
// start at base.
func New(n int, edges []Edge, base int) *Graph {
	return &Graph{A: NewPattern(n, edges, base)}
}

// NewFromPattern wraps a symmetric adjacency matrix.
func NewFromPattern(A *Pattern) *Graph {
	if A.m != A.n {
		violation(ErrDimensionMismatch, "adjacency matrix is %v x %v", A.m, A.n)
	}
	return &Graph{A: A}
}

func (G *Graph) NumVertices() int {
	return G.A.m
}

func (G *Graph) DeleteProperties() {
	G.RowDegree = nil
	G.L = nil
	G.B = nil
	G.Edges = nil
	G.Z = nil
	G.Tris = nil
	G.TrisOrdered = false
	G.VertexTriDegree = nil
	G.EdgeTriDegree = nil
	G.KCount = nil
}

func (G *Graph) PropertyRowDegree() {
	if G.RowDegree != nil {
		return
	}
	rowDegree := NewVector[int](G.A.m)
	SpMV1(G.A, false, rowDegree)
	G.RowDegree = rowDegree
}

// TriangleEnumerate computes Z = L·B, where L is the lower triangular part of
// A and B its incidence matrix, and collects one Triangle per cell of Z.
func (G *Graph) TriangleEnumerate() {
	if G.Z != nil {
		return
	}
	log.Debug().Msg("NewLowerTriangular(A)")
	G.L = NewLowerTriangular(G.A)
	log.Debug().Msg("NewIncidence(A)")
	G.B, G.Edges = NewIncidence(G.A)
	log.Debug().Int("rows", G.L.M()).Int("edges", G.Edges.Len()).Msg("Multiply(L, B)")
	G.Z = Multiply(G.L, G.B)
	if d := G.Z.Dropped(); d != 0 {
		log.Warn().Int("dropped", d).Msg("triangle witnesses dropped")
	}
	G.Tris = G.Z.Triangles()
	G.TrisOrdered = false
}

// OrderTriangles sorts Tris lexicographically.
func (G *Graph) OrderTriangles() {
	G.TriangleEnumerate()
	if G.TrisOrdered {
		return
	}
	log.Debug().Int("triangles", len(G.Tris)).Msg("sortTriangles")
	sortTriangles(G.Tris)
	G.TrisOrdered = true
}

// CalculateTriangleDegrees counts the triangles of every vertex and edge.
func (G *Graph) CalculateTriangleDegrees() {
	if G.VertexTriDegree != nil && G.EdgeTriDegree != nil {
		return
	}
	G.TriangleEnumerate()
	log.Debug().Msg("TriangleDegrees(Tris)")
	G.VertexTriDegree, G.EdgeTriDegree = TriangleDegrees(G.Tris, G.A.m, G.Edges)
}

// CalculateKCounts builds the k-count histogram. The histogram is long enough
// that no triangle is held back by its length: a triangle at level k has
// edges in at least k-2 triangles.
func (G *Graph) CalculateKCounts() {
	if G.KCount != nil {
		return
	}
	G.CalculateTriangleDegrees()
	levels := max(G.EdgeTriDegree.Max()+3, 4)
	log.Debug().Int("levels", levels).Msg("KCounts")
	G.KCount = KCounts(G.VertexTriDegree, G.EdgeTriDegree, G.Edges, G.Z, levels)
}

// Run performs the whole pipeline.
func (G *Graph) Run() {
	G.TriangleEnumerate()
	G.OrderTriangles()
	G.CalculateTriangleDegrees()
	G.CalculateKCounts()
}

func (G *Graph) NumTriangles() int {
	G.TriangleEnumerate()
	return len(G.Tris)
}

func (G *Graph) Triangles() []Triangle {
	G.OrderTriangles()
	return G.Tris
}

// KCounts returns the k-count histogram, trimmed after its last nonzero level.
func (G *Graph) KCounts() []int {
	G.CalculateKCounts()
	last := len(G.KCount)
	for last > 4 && G.KCount[last-1] == 0 {
		last--
	}
	return G.KCount[:last]
}

// VertexTriangleDegree returns, for every vertex, the number of triangles it
// belongs to.
func (G *Graph) VertexTriangleDegree() *Vector[int] {
	G.CalculateTriangleDegrees()
	return G.VertexTriDegree
}

// EdgeTriangleDegree returns, for every edge id of G.Edges, the number of
// triangles it belongs to.
func (G *Graph) EdgeTriangleDegree() *Vector[int] {
	G.CalculateTriangleDegrees()
	return G.EdgeTriDegree
}
