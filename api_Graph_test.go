package forMiniTriGo_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	MT "github.com/forminitri/forMiniTriGo"
)

func requireTriangles(t *testing.T, G *MT.Graph) {
	t.Helper()
	tris := G.Triangles()
	for i, tri := range tris {
		require.True(t, tri[0] < tri[1] && tri[1] < tri[2], "triangle %v not ordered", tri)
		if i > 0 {
			prev := tris[i-1]
			require.True(t, prev[0] < tri[0] ||
				(prev[0] == tri[0] && (prev[1] < tri[1] || (prev[1] == tri[1] && prev[2] < tri[2]))),
				"triangles %v and %v out of order", prev, tri)
		}
		for _, pair := range [][2]int{{tri[0], tri[1]}, {tri[0], tri[2]}, {tri[1], tri[2]}} {
			_, ok := G.Edges.Lookup(pair[0], pair[1])
			require.True(t, ok, "triangle %v without edge %v", tri, pair)
		}
	}
}

func TestGraphKarate(t *testing.T) {
	G := MT.New(zacharyNumNodes, zacharyEdges, 1)
	G.Run()
	G.Check()
	require.Equal(t, zacharyNumTriangles, G.NumTriangles())
	require.Len(t, G.Triangles(), zacharyNumTriangles)
	requireTriangles(t, G)
	require.Equal(t, 3*zacharyNumTriangles, sum(G.VertexTriDegree.Slice()))
	require.Equal(t, 3*zacharyNumTriangles, sum(G.EdgeTriDegree.Slice()))
	require.Equal(t, zacharyNumTriangles, sum(G.KCounts()))
	require.Equal(t, len(zacharyEdges), G.Edges.Len())
	require.Equal(t, 0, G.Z.Dropped())
}

func TestGraphRandomAgainstBruteForce(t *testing.T) {
	for _, c := range []struct {
		n, m int
		seed uint64
	}{{10, 30, 1}, {50, 400, 2}, {100, 1000, 3}, {200, 5000, 4}, {30, 435, 5}} {
		edges := MT.RandomEdges(c.n, c.m, c.seed)
		G := MT.New(c.n, edges, 0)
		G.Run()
		G.Check()
		ntriangles := bruteForceTriangles(c.n, edges, 0)
		require.Equal(t, ntriangles, G.NumTriangles(), "n %v m %v", c.n, c.m)
		requireTriangles(t, G)
		require.Equal(t, 3*ntriangles, sum(G.VertexTriDegree.Slice()))
		require.Equal(t, 3*ntriangles, sum(G.EdgeTriDegree.Slice()))
		require.Equal(t, ntriangles, sum(G.KCounts()))
	}
}

func TestGraphTriangleDegrees(t *testing.T) {
	// two triangles sharing the edge 1-2
	G := MT.New(4, []MT.Edge{{0, 1}, {0, 2}, {1, 2}, {1, 3}, {2, 3}}, 0)
	G.CalculateTriangleDegrees()
	require.Equal(t, []int{1, 2, 2, 1}, G.VertexTriDegree.Slice())
	shared, ok := G.Edges.Lookup(2, 1)
	require.True(t, ok)
	for e := 0; e < G.Edges.Len(); e++ {
		expected := 1
		if e == shared {
			expected = 2
		}
		require.Equal(t, expected, G.EdgeTriDegree.Get(e), "edge %v", e)
	}
	require.Equal(t, []MT.Triangle{{0, 1, 2}, {1, 2, 3}}, G.Triangles())
	require.Equal(t, []int{0, 0, 0, 2}, G.KCounts())
}

func TestGraphDeleteProperties(t *testing.T) {
	G := MT.New(zacharyNumNodes, zacharyEdges, 1)
	G.Run()
	counts := append([]int(nil), G.KCounts()...)
	tris := append([]MT.Triangle(nil), G.Triangles()...)
	G.DeleteProperties()
	require.Nil(t, G.Z)
	require.Nil(t, G.Tris)
	require.Nil(t, G.KCount)
	G.Check()
	require.Equal(t, counts, G.KCounts())
	require.Equal(t, tris, G.Triangles())
	G.Check()
}

func TestGraphFromPattern(t *testing.T) {
	A := MT.NewPattern(zacharyNumNodes, zacharyEdges, 1)
	G := MT.NewFromPattern(A)
	require.Equal(t, zacharyNumNodes, G.NumVertices())
	require.Equal(t, zacharyNumTriangles, G.NumTriangles())
	require.Panics(t, func() { MT.NewFromPattern(MT.TriangleVertexMatrix(nil, 3)) })
}
