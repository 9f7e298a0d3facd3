// Package smap implements a sorted associative map as a thin generic skin
// over stree.Tree: ordered keys, O(log n) lookup/insert/delete, in-order
// range iteration, and a numeric increment-or-insert family.
//
// The original C library closes its subtype space over a fixed table of
// key/value primitive pairs (II32, SS, FF, ...) so it can store each
// variant's nodes compactly. Go generics make that table unnecessary: Map
// is parameterized directly over K and V, and the constructors below
// (NewII32, NewSS, NewStringSet, ...) build the specific instantiations the
// table called out, for callers that want the familiar short names.
package smap

import "github.com/faragon/libsrt-go/stree"

// Map is a sorted map from K to V, ordered by cmp.
type Map[K any, V any] struct {
	t *stree.Tree[K, V]
}

// New returns an empty map ordered by cmp, with capacity for
// initialReserve entries pre-allocated.
func New[K any, V any](cmp func(a, b K) int, initialReserve int) *Map[K, V] {
	return &Map[K, V]{t: stree.New[K, V](cmp, initialReserve)}
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int { return m.t.Len() }

// Contains reports whether key is present.
func (m *Map[K, V]) Contains(key K) bool { return m.t.Contains(key) }

// Get returns the value at key and true, or the zero value and false.
func (m *Map[K, V]) Get(key K) (V, bool) { return m.t.Locate(key) }

// Set inserts key/val, overwriting any existing value at key. Reports
// whether a new entry was created.
func (m *Map[K, V]) Set(key K, val V) bool {
	return m.t.Insert(key, val, func(_, incoming V) V { return incoming })
}

// Delete removes key if present, reporting whether it was present.
func (m *Map[K, V]) Delete(key K) bool {
	return m.t.Delete(key, nil)
}

// Numeric is the set of value types Inc can accumulate into.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Inc adds delta to the value stored at key, inserting delta as the
// initial value if key is absent.
func Inc[K any, V Numeric](m *Map[K, V], key K, delta V) {
	m.t.Insert(key, delta, func(existing, incoming V) V { return existing + incoming })
}

// Keys returns every key in ascending order.
func (m *Map[K, V]) Keys() []K {
	out := make([]K, 0, m.Len())
	m.t.VisitInOrder(func(k K, _ V) bool {
		out = append(out, k)
		return true
	})
	return out
}

// Values returns every value, ordered by ascending key.
func (m *Map[K, V]) Values() []V {
	out := make([]V, 0, m.Len())
	m.t.VisitInOrder(func(_ K, v V) bool {
		out = append(out, v)
		return true
	})
	return out
}

// SortToVectors returns the parallel key/value slices in ascending key
// order in a single pass, the generic counterpart of the original's
// sort_to_vectors.
func (m *Map[K, V]) SortToVectors() ([]K, []V) {
	keys := make([]K, 0, m.Len())
	vals := make([]V, 0, m.Len())
	m.t.VisitInOrder(func(k K, v V) bool {
		keys = append(keys, k)
		vals = append(vals, v)
		return true
	})
	return keys, vals
}

// Range visits every entry in ascending key order, stopping early if fn
// returns false.
func (m *Map[K, V]) Range(fn func(key K, val V) bool) {
	m.t.VisitInOrder(fn)
}

// RangeBetween visits entries with keys in [lo, hi] in ascending order,
// pruning subtrees outside the bound instead of walking the whole map, the
// generic counterpart of the original's itr_XX(map, kmin, kmax, callback).
// Stops early if fn returns false.
func (m *Map[K, V]) RangeBetween(lo, hi K, fn func(key K, val V) bool) {
	m.t.VisitRange(lo, hi, fn)
}

// AssertInvariants checks the underlying tree's Red-Black invariants; for
// tests only.
func (m *Map[K, V]) AssertInvariants() { m.t.AssertInvariants() }

// --- closed instantiations named in the key/value subtype table ---

func cmpOrdered[T int | int32 | uint32 | int64 | uint64 | string | float32 | float64](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// NewII32 returns a map from int to int32 ("II32").
func NewII32(initialReserve int) *Map[int, int32] {
	return New[int, int32](cmpOrdered[int], initialReserve)
}

// NewUU32 returns a map from uint32 to uint32 ("UU32").
func NewUU32(initialReserve int) *Map[uint32, uint32] {
	return New[uint32, uint32](cmpOrdered[uint32], initialReserve)
}

// NewII returns a map from int to int ("II").
func NewII(initialReserve int) *Map[int, int] {
	return New[int, int](cmpOrdered[int], initialReserve)
}

// NewIS returns a map from int to string ("IS").
func NewIS(initialReserve int) *Map[int, string] {
	return New[int, string](cmpOrdered[int], initialReserve)
}

// NewIP returns a map from int to any ("IP", opaque pointer-valued).
func NewIP(initialReserve int) *Map[int, any] {
	return New[int, any](cmpOrdered[int], initialReserve)
}

// NewSI returns a map from string to int ("SI").
func NewSI(initialReserve int) *Map[string, int] {
	return New[string, int](cmpOrdered[string], initialReserve)
}

// NewSS returns a map from string to string ("SS").
func NewSS(initialReserve int) *Map[string, string] {
	return New[string, string](cmpOrdered[string], initialReserve)
}

// NewSP returns a map from string to any ("SP", opaque pointer-valued).
func NewSP(initialReserve int) *Map[string, any] {
	return New[string, any](cmpOrdered[string], initialReserve)
}

// NewSD returns a map from string to float64 ("SD").
func NewSD(initialReserve int) *Map[string, float64] {
	return New[string, float64](cmpOrdered[string], initialReserve)
}

// NewFF returns a map from float32 to float32 ("FF").
func NewFF(initialReserve int) *Map[float32, float32] {
	return New[float32, float32](cmpOrdered[float32], initialReserve)
}

// NewDD returns a map from float64 to float64 ("DD").
func NewDD(initialReserve int) *Map[float64, float64] {
	return New[float64, float64](cmpOrdered[float64], initialReserve)
}

// Set is a sorted set: a Map with an empty struct payload, matching the
// "S"/"I"/"I32"/"U32" set-only variants of the subtype table.
type Set[K any] struct {
	m *Map[K, struct{}]
}

// NewSet returns an empty set ordered by cmp.
func NewSet[K any](cmp func(a, b K) int, initialReserve int) *Set[K] {
	return &Set[K]{m: New[K, struct{}](cmp, initialReserve)}
}

// NewIntSet returns an empty set of int ("I").
func NewIntSet(initialReserve int) *Set[int] {
	return NewSet[int](cmpOrdered[int], initialReserve)
}

// NewInt32Set returns an empty set of int32 ("I32").
func NewInt32Set(initialReserve int) *Set[int32] {
	return NewSet[int32](cmpOrdered[int32], initialReserve)
}

// NewUint32Set returns an empty set of uint32 ("U32").
func NewUint32Set(initialReserve int) *Set[uint32] {
	return NewSet[uint32](cmpOrdered[uint32], initialReserve)
}

// NewStringSet returns an empty set of string ("S").
func NewStringSet(initialReserve int) *Set[string] {
	return NewSet[string](cmpOrdered[string], initialReserve)
}

// Add inserts key, reporting whether it was newly added.
func (s *Set[K]) Add(key K) bool { return s.m.Set(key, struct{}{}) }

// Contains reports whether key is a member.
func (s *Set[K]) Contains(key K) bool { return s.m.Contains(key) }

// Delete removes key, reporting whether it was present.
func (s *Set[K]) Delete(key K) bool { return s.m.Delete(key) }

// Len returns the number of members.
func (s *Set[K]) Len() int { return s.m.Len() }

// Keys returns every member in ascending order.
func (s *Set[K]) Keys() []K { return s.m.Keys() }
