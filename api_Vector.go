package forMiniTriGo

import "golang.org/x/exp/constraints"

// Vector is a fixed-size dense vector of integers.
type Vector[T constraints.Integer] struct {
	data []T
}

func NewVector[T constraints.Integer](n int) *Vector[T] {
	return &Vector[T]{data: make([]T, n)}
}

func (v *Vector[T]) Size() int {
	return len(v.data)
}

func (v *Vector[T]) Get(i int) T {
	if i < 0 || i >= len(v.data) {
		violation(ErrIndexOutOfRange, "vector index %v, size %v", i, len(v.data))
	}
	return v.data[i]
}

func (v *Vector[T]) Set(i int, x T) {
	if i < 0 || i >= len(v.data) {
		violation(ErrIndexOutOfRange, "vector index %v, size %v", i, len(v.data))
	}
	v.data[i] = x
}

// Add adds w into v elementwise and returns v.
func (v *Vector[T]) Add(w *Vector[T]) *Vector[T] {
	if len(v.data) != len(w.data) {
		violation(ErrDimensionMismatch, "vector sizes %v and %v", len(v.data), len(w.data))
	}
	for i, x := range w.data {
		v.data[i] += x
	}
	return v
}

// Max returns the largest entry, or 0 if no entry is positive.
func (v *Vector[T]) Max() (m T) {
	for _, x := range v.data {
		if x > m {
			m = x
		}
	}
	return
}

// Slice returns the backing slice. Callers must not modify it.
func (v *Vector[T]) Slice() []T {
	return v.data
}
