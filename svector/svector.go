// Package svector implements a homogeneous, typed growable sequence over
// the container substrate, with type-appropriate sort algorithms exposed as
// per-width functions (SortInt8 through SortUint64) and a comparator-driven
// SortBy instead of the original's closed enumeration of
// element-size/signedness variants.
package svector

import "github.com/faragon/libsrt-go/container"

// Vector is a typed growable sequence of T.
type Vector[T any] struct {
	c *container.Container[T]
}

// New returns an empty vector with capacity for initialReserve elements.
func New[T any](initialReserve int) *Vector[T] {
	return &Vector[T]{c: container.New[T](initialReserve)}
}

// FromExternal wraps buf as borrowed, non-reallocatable storage.
func FromExternal[T any](buf []T) *Vector[T] {
	return &Vector[T]{c: container.NewExternal(buf)}
}

// Len returns the number of elements.
func (v *Vector[T]) Len() int { return v.c.Size() }

// Empty reports whether the vector holds zero elements.
func (v *Vector[T]) Empty() bool { return v.c.Empty() }

// AllocErrors reports the sticky allocation-failure flag.
func (v *Vector[T]) AllocErrors() bool { return v.c.AllocErrors() }

// Push appends value.
func (v *Vector[T]) Push(value T) { v.c.Append(value) }

// Pop removes and returns the last element, or the zero value if empty.
func (v *Vector[T]) Pop() T {
	s := v.c.Slice()
	var zero T
	if len(s) == 0 {
		return zero
	}
	last := s[len(s)-1]
	v.c.SetSize(len(s) - 1)
	return last
}

// At returns the element at i, or the zero value if i is out of range.
func (v *Vector[T]) At(i int) T {
	s := v.c.Slice()
	var zero T
	if i < 0 || i >= len(s) {
		return zero
	}
	return s[i]
}

// Set writes value at index i. If i is beyond the current length, the
// vector auto-extends (zero-filling the gap between the old length and i,
// per the decided Open Question in DESIGN.md) so that i becomes a valid
// index. If the vector cannot grow (a full external buffer), Set does
// nothing and AllocErrors is set.
func (v *Vector[T]) Set(i int, value T) {
	if i < 0 {
		return
	}
	if old := v.c.Size(); i >= old {
		v.c.SetSize(i + 1)
		if i >= v.c.Size() {
			return
		}
		s := v.c.Slice()
		var zero T
		for j := old; j < i; j++ {
			s[j] = zero
		}
	}
	v.c.Slice()[i] = value
}

// Slice exposes the live elements for read/write. Callers must not retain
// it across an operation that may reallocate the vector.
func (v *Vector[T]) Slice() []T { return v.c.Slice() }

// Cat appends all elements of other to v.
func (v *Vector[T]) Cat(other *Vector[T]) {
	for _, e := range other.Slice() {
		v.Push(e)
	}
}

// Erase removes the half-open range [from, to).
func (v *Vector[T]) Erase(from, to int) {
	s := v.c.Slice()
	if from < 0 {
		from = 0
	}
	if to > len(s) {
		to = len(s)
	}
	if from >= to {
		return
	}
	copy(s[from:], s[to:])
	v.c.SetSize(len(s) - (to - from))
}

// Resize sets the length to n, filling new elements with fill when growing.
// If the vector cannot grow (a full external buffer), the length is left
// unchanged.
func (v *Vector[T]) Resize(n int, fill T) {
	old := v.c.Size()
	v.c.SetSize(n)
	if n > old {
		s := v.c.Slice()
		for i := old; i < len(s); i++ {
			s[i] = fill
		}
	}
}

// Find returns the index of the first element equal to target per eq, or
// -1 if not found.
func (v *Vector[T]) Find(target T, eq func(a, b T) bool) int {
	for i, e := range v.c.Slice() {
		if eq(e, target) {
			return i
		}
	}
	return -1
}

// Free releases the vector's owned storage.
func (v *Vector[T]) Free() { v.c.Free() }
