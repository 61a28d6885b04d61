package forMiniTriGo_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	MT "github.com/forminitri/forMiniTriGo"
)

func TestSortByDegree(t *testing.T) {
	G := MT.New(zacharyNumNodes, zacharyEdges, 1)
	G.PropertyRowDegree()
	for _, ascending := range []bool{true, false} {
		P := G.SortByDegree(ascending)
		require.Len(t, P, zacharyNumNodes)
		seen := make([]bool, zacharyNumNodes)
		for i := range P {
			require.False(t, seen[P[i]])
			seen[P[i]] = true
			if i > 0 {
				d0, d1 := G.RowDegree.Get(P[i-1]), G.RowDegree.Get(P[i])
				if ascending {
					require.LessOrEqual(t, d0, d1)
				} else {
					require.GreaterOrEqual(t, d0, d1)
				}
			}
		}
		H := G.Permute(P)
		H.PropertyRowDegree()
		for i := range P {
			require.Equal(t, G.RowDegree.Get(P[i]), H.RowDegree.Get(i))
		}
	}
}

func TestPresortInvariance(t *testing.T) {
	edges := MT.RandomEdges(150, 2000, 17)
	G := MT.New(150, edges, 0)
	ntriangles := G.NumTriangles()
	counts := G.KCounts()
	for _, presort := range MT.AllPresorts {
		p := presort
		H := G.Presorted(&p)
		require.NotEqual(t, MT.AutoSelectSort, p)
		H.Run()
		H.Check()
		require.Equal(t, ntriangles, H.NumTriangles(), "presort %v", presort)
		require.Equal(t, counts, H.KCounts(), "presort %v", presort)
	}
	require.Panics(t, func() { G.Permute([]int{0, 1}) })
}

func TestPresortAutoSelect(t *testing.T) {
	// 11 hubs adjacent to every vertex
	const n, hubs = 2000, 11
	var edges []MT.Edge
	for k := 0; k < hubs; k++ {
		for i := 0; i < n; i++ {
			edges = append(edges, MT.Edge{U: k, V: i})
		}
	}
	ntriangles := hubs*(hubs-1)*(hubs-2)/6 + (n-hubs)*hubs*(hubs-1)/2
	G := MT.New(n, edges, 0)
	presort := MT.AutoSelectSort
	H := G.Presorted(&presort)
	require.NotEqual(t, MT.AutoSelectSort, presort)
	require.Equal(t, ntriangles, H.NumTriangles())
	require.Equal(t, G.NumTriangles(), H.NumTriangles())

	// small graphs are never sorted
	small := MT.New(zacharyNumNodes, zacharyEdges, 1)
	presort = MT.AutoSelectSort
	require.Same(t, small, small.Presorted(&presort))
	require.Equal(t, MT.NoSort, presort)
}

func TestSampleDegree(t *testing.T) {
	G := MT.New(30, completeGraph(30), 0)
	mean, median := G.SampleDegree(100, 42)
	require.InDelta(t, 29, mean, 1e-9)
	require.InDelta(t, 29, median, 1e-9)

	mean, median = MT.New(0, nil, 0).SampleDegree(10, 1)
	require.Zero(t, mean)
	require.Zero(t, median)

	H := MT.New(zacharyNumNodes, zacharyEdges, 1)
	mean, median = H.SampleDegree(5000, 3)
	require.InDelta(t, float64(2*len(zacharyEdges))/zacharyNumNodes, mean, 1)
	require.GreaterOrEqual(t, median, 1.0)
	require.LessOrEqual(t, median, 17.0)
}
