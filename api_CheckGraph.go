package forMiniTriGo

// Check verifies A and every derived property that has been computed.
func (G *Graph) Check() {
	A := G.A
	n := A.m
	if A.n != n {
		panic("adjacency matrix must be square")
	}
	A.Check()
	if rowDegree := G.RowDegree; rowDegree != nil && rowDegree.Size() != n {
		panic("rowdegree invalid size")
	}
	if L := G.L; L != nil {
		if L.m != n {
			panic("G.L has the wrong dimensions")
		}
		L.Check()
	}
	if B := G.B; B != nil {
		if B.m != n || G.Edges == nil || B.n != G.Edges.Len() {
			panic("G.B does not match G.Edges")
		}
		B.Check()
	}
	if Z := G.Z; Z != nil {
		if Z.m != n {
			panic("G.Z has the wrong dimensions")
		}
		Z.Check()
	}
	if v := G.VertexTriDegree; v != nil && v.Size() != n {
		panic("vertex triangle degree invalid size")
	}
	if e := G.EdgeTriDegree; e != nil && (G.Edges == nil || e.Size() != G.Edges.Len()) {
		panic("edge triangle degree invalid size")
	}
}
