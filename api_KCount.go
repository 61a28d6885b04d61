package forMiniTriGo

import "github.com/intel/forGoParallel/parallel"

// Choose2 returns the number of unordered pairs out of k elements.
func Choose2(k int) int {
	if k <= 1 {
		return 0
	}
	return k * (k - 1) / 2
}

// kLevel returns the largest level k >= 3, below levels, such that every level
// from 3 to k satisfies tvMin >= Choose2(k-1) and teMin >= k-2. A triangle
// failing even level 3 is still credited to level 3.
func kLevel(tvMin, teMin, levels int) int {
	maxK := 3
	for k := 3; k < levels; k++ {
		if tvMin >= Choose2(k-1) && teMin >= k-2 {
			maxK = k
		} else {
			break
		}
	}
	return maxK
}

// KCounts classifies every triangle of Z by the triangle degrees of its
// vertices (vTri) and its edges (eTri, indexed through idx) and returns the
// number of triangles per k-level. The histogram has levels entries; only
// levels 3 and up are ever incremented.
func KCounts(vTri, eTri *Vector[int], idx *EdgeIndex, Z *TriangleWitness, levels int) []int {
	return kCounts(vTri, eTri, idx, Z, levels, 0)
}

func kCounts(vTri, eTri *Vector[int], idx *EdgeIndex, Z *TriangleWitness, levels, batches int) []int {
	if levels < 4 {
		violation(ErrInvalidLevels, "got %v", levels)
	}
	if eTri.Size() != idx.Len() {
		violation(ErrDimensionMismatch, "%v edge triangle degrees for %v edges", eTri.Size(), idx.Len())
	}
	counts := parallel.RangeReduce(0, Z.m, batches, func(low, high int) *Vector[int] {
		local := NewVector[int](levels)
		for v1 := low; v1 < high; v1++ {
			for p := Z.rowStart[v1]; p < Z.rowStart[v1+1]; p++ {
				v2, v3 := Z.vals[p], Z.vals2[p]
				if !representative(v1, v2, v3) {
					continue
				}
				tvMin := min(vTri.Get(v1), vTri.Get(v2), vTri.Get(v3))
				e1 := idx.mustLookup(v2, v3)
				e2 := idx.mustLookup(v2, v1)
				e3 := idx.mustLookup(v3, v1)
				teMin := min(eTri.Get(e1), eTri.Get(e2), eTri.Get(e3))
				local.data[kLevel(tvMin, teMin, levels)]++
			}
		}
		return local
	}, (*Vector[int]).Add)
	return counts.data
}
