package forMiniTriGo_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	MT "github.com/forminitri/forMiniTriGo"
)

func requireRowInvariant(t *testing.T, A MT.Matrix) {
	t.Helper()
	A.Check()
	total := 0
	for r := 0; r < A.M(); r++ {
		row := A.Row(r)
		require.Len(t, row, A.NNZInRow(r))
		for i := range row {
			require.Equal(t, row[i], A.Col(r, i))
			A.Val(r, i)
		}
		total += A.NNZInRow(r)
	}
	require.Equal(t, A.NNZ(), total)
}

func TestNewPatternSymmetric(t *testing.T) {
	A := MT.NewPattern(zacharyNumNodes, zacharyEdges, 1)
	requireRowInvariant(t, A)
	require.Equal(t, MT.Undefined, A.Kind())
	require.Equal(t, zacharyNumNodes, A.M())
	require.Equal(t, zacharyNumNodes, A.N())
	require.Equal(t, 2*len(zacharyEdges), A.NNZ())
	// vertex 1 of the karate club has 16 neighbours, vertex 34 has 17
	require.Equal(t, 16, A.NNZInRow(0))
	require.Equal(t, 17, A.NNZInRow(33))
	rows, cols := A.Tuples()
	seen := map[[2]int]bool{}
	for p := range rows {
		seen[[2]int{rows[p], cols[p]}] = true
	}
	for p := range rows {
		require.True(t, seen[[2]int{cols[p], rows[p]}], "(%v, %v) has no mirror", rows[p], cols[p])
	}
}

func TestNewPatternDropsSelfAndDuplicateEdges(t *testing.T) {
	edges := []MT.Edge{{0, 1}, {1, 0}, {0, 1}, {2, 2}, {1, 2}}
	A := MT.NewPattern(3, edges, 0)
	requireRowInvariant(t, A)
	require.Equal(t, 4, A.NNZ())
	require.Equal(t, []int{1}, A.Row(0))
	require.Equal(t, []int{0, 2}, A.Row(1))
	require.Equal(t, []int{1}, A.Row(2))
}

func TestTriangularFromEdges(t *testing.T) {
	L := MT.NewLowerTriangularFromEdges(zacharyNumNodes, zacharyEdges, 1)
	U := MT.NewUpperTriangularFromEdges(zacharyNumNodes, zacharyEdges, 1)
	requireRowInvariant(t, L)
	requireRowInvariant(t, U)
	require.Equal(t, len(zacharyEdges), L.NNZ())
	require.Equal(t, len(zacharyEdges), U.NNZ())
	for r := 0; r < L.M(); r++ {
		for _, c := range L.Row(r) {
			require.Greater(t, r, c)
		}
		for _, c := range U.Row(r) {
			require.Less(t, r, c)
		}
	}
}

func TestTriangularFromPatternMatchesEdges(t *testing.T) {
	A := MT.NewPattern(zacharyNumNodes, zacharyEdges, 1)
	L := MT.NewLowerTriangular(A)
	U := MT.NewUpperTriangular(A)
	requireRowInvariant(t, L)
	requireRowInvariant(t, U)
	Le := MT.NewLowerTriangularFromEdges(zacharyNumNodes, zacharyEdges, 1)
	Ue := MT.NewUpperTriangularFromEdges(zacharyNumNodes, zacharyEdges, 1)
	for r := 0; r < zacharyNumNodes; r++ {
		require.Equal(t, Le.Row(r), L.Row(r))
		require.Equal(t, Ue.Row(r), U.Row(r))
		// row degree splits into the two triangular parts
		require.Equal(t, A.NNZInRow(r), L.NNZInRow(r)+U.NNZInRow(r))
	}
}

func TestBuildKinds(t *testing.T) {
	edges := completeGraph(5)
	for _, kind := range []MT.Kind{MT.Undefined, MT.LowerTriangularKind, MT.UpperTriangularKind, MT.IncidenceKind} {
		A := MT.Build(kind, 5, edges, 0)
		require.Equal(t, kind, A.Kind(), kind.String())
		requireRowInvariant(t, A)
	}
	require.Panics(t, func() { MT.Build(MT.TriangleWitnessKind, 5, edges, 0) })
}

func TestBuildOutOfRange(t *testing.T) {
	edges := []MT.Edge{{1, 2}, {2, 4}}
	require.ErrorIs(t, MT.ValidateEdges(3, edges, 1), MT.ErrIndexOutOfRange)
	require.NoError(t, MT.ValidateEdges(4, edges, 1))
	require.ErrorIs(t, MT.ValidateEdges(3, []MT.Edge{{0, 1}}, 1), MT.ErrIndexOutOfRange)

	require.Panics(t, func() { MT.NewPattern(3, edges, 1) })
	require.Panics(t, func() { MT.NewLowerTriangularFromEdges(3, edges, 1) })
	require.Panics(t, func() { MT.NewPattern(3, []MT.Edge{{0, 1}}, 1) })
}

func TestAccessorsOutOfRange(t *testing.T) {
	A := MT.NewPattern(3, []MT.Edge{{0, 1}}, 0)
	require.Panics(t, func() { A.NNZInRow(3) })
	require.Panics(t, func() { A.Col(0, 1) })
	require.Panics(t, func() { A.Val(2, 0) })
	require.Panics(t, func() { A.Row(-1) })
}

func TestEmptyGraph(t *testing.T) {
	A := MT.NewPattern(0, nil, 0)
	requireRowInvariant(t, A)
	require.Equal(t, 0, A.NNZ())
	B, idx := MT.NewIncidence(A)
	requireRowInvariant(t, B)
	require.Equal(t, 0, idx.Len())
}
