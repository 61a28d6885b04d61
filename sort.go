package forMiniTriGo

import (
	"sort"

	"github.com/intel/forGoParallel/parallel"
	"github.com/intel/forGoParallel/psort"
)

// twoSlicesSorter sorts coordinate pairs by s1, then s2.
type twoSlicesSorter struct {
	s1, s2 []int
}

func (s twoSlicesSorter) Assign(source psort.StableSorter) func(i, j, len int) {
	src := source.(twoSlicesSorter)
	return func(i, j, len int) {
		parallel.Do(func() {
			copy(s.s1[i:i+len], src.s1[j:j+len])
		}, func() {
			copy(s.s2[i:i+len], src.s2[j:j+len])
		})
	}
}

func (s twoSlicesSorter) Len() int {
	return len(s.s1)
}

func (s twoSlicesSorter) Less(i, j int) bool {
	si := s.s1[i]
	sj := s.s1[j]
	if si < sj {
		return true
	}
	if si > sj {
		return false
	}
	return s.s2[i] < s.s2[j]
}

func (s twoSlicesSorter) NewTemp() psort.StableSorter {
	return twoSlicesSorter{
		s1: make([]int, len(s.s1)),
		s2: make([]int, len(s.s2)),
	}
}

func (s twoSlicesSorter) SequentialSort(i, j int) {
	sort.Stable(twoSlicesSorter{
		s1: s.s1[i:j],
		s2: s.s2[i:j],
	})
}

func (s twoSlicesSorter) Swap(i, j int) {
	s.s1[i], s.s1[j] = s.s1[j], s.s1[i]
	s.s2[i], s.s2[j] = s.s2[j], s.s2[i]
}

func twoSliceSort(s1, s2 []int) {
	psort.StableSort(twoSlicesSorter{s1: s1, s2: s2})
}

// triangleSorter orders triangles lexicographically.
type triangleSorter []Triangle

func (s triangleSorter) Assign(source psort.StableSorter) func(i, j, len int) {
	src := source.(triangleSorter)
	return func(i, j, len int) {
		copy(s[i:i+len], src[j:j+len])
	}
}

func (s triangleSorter) Len() int {
	return len(s)
}

func (s triangleSorter) Less(i, j int) bool {
	return s[i].less(s[j])
}

func (s triangleSorter) NewTemp() psort.StableSorter {
	return make(triangleSorter, len(s))
}

func (s triangleSorter) SequentialSort(i, j int) {
	sort.Stable(s[i:j])
}

func (s triangleSorter) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
}

func sortTriangles(tris []Triangle) {
	psort.StableSort(triangleSorter(tris))
}
