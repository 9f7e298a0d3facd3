package stree

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func cmpInt(a, b int) int { return a - b }

func TestInsertLocate(t *testing.T) {
	tr := New[int, string](cmpInt, 0)
	tr.Insert(5, "five", nil)
	tr.Insert(2, "two", nil)
	tr.Insert(8, "eight", nil)
	v, ok := tr.Locate(2)
	require.True(t, ok)
	require.Equal(t, "two", v)
	_, ok = tr.Locate(99)
	require.False(t, ok)
	require.Equal(t, 3, tr.Len())
	tr.AssertInvariants()
}

func TestInsertRewrite(t *testing.T) {
	tr := New[int, int](cmpInt, 0)
	tr.Insert(1, 10, nil)
	created := tr.Insert(1, 5, func(existing, incoming int) int { return existing + incoming })
	require.False(t, created)
	v, _ := tr.Locate(1)
	require.Equal(t, 15, v)
	require.Equal(t, 1, tr.Len())
}

func TestInOrderSorted(t *testing.T) {
	tr := New[int, struct{}](cmpInt, 0)
	r := rand.New(rand.NewSource(1))
	keys := r.Perm(200)
	for _, k := range keys {
		tr.Insert(k, struct{}{}, nil)
	}
	tr.AssertInvariants()
	var got []int
	tr.VisitInOrder(func(k int, _ struct{}) bool {
		got = append(got, k)
		return true
	})
	require.True(t, sort.IntsAreSorted(got))
	require.Equal(t, 200, len(got))
}

func TestDeleteDensity(t *testing.T) {
	tr := New[int, int](cmpInt, 0)
	r := rand.New(rand.NewSource(2))
	insertOrder := r.Perm(1000)
	for _, k := range insertOrder {
		tr.Insert(k, k, nil)
	}
	tr.AssertInvariants()

	deleteOrder := r.Perm(1000)[:500]
	for _, k := range deleteOrder {
		ok := tr.Delete(k, nil)
		require.True(t, ok, "delete %d", k)
	}
	require.Equal(t, 500, tr.Len())
	tr.AssertInvariants()

	var remaining []int
	tr.VisitInOrder(func(k int, _ int) bool {
		remaining = append(remaining, k)
		return true
	})
	require.Equal(t, 500, len(remaining))
	require.True(t, sort.IntsAreSorted(remaining))
}

func TestVisitRangePrunesOutOfBound(t *testing.T) {
	tr := New[int, int](cmpInt, 0)
	for i := 0; i < 20; i++ {
		tr.Insert(i, i, nil)
	}
	var got []int
	tr.VisitRange(5, 10, func(k, v int) bool {
		got = append(got, k)
		return true
	})
	if diff := cmp.Diff([]int{5, 6, 7, 8, 9, 10}, got); diff != "" {
		t.Errorf("VisitRange mismatch (-want +got):\n%s", diff)
	}
}

func TestVisitRangeEarlyStop(t *testing.T) {
	tr := New[int, int](cmpInt, 0)
	for i := 0; i < 20; i++ {
		tr.Insert(i, i, nil)
	}
	var got []int
	tr.VisitRange(5, 15, func(k, v int) bool {
		got = append(got, k)
		return k < 8
	})
	require.Equal(t, []int{5, 6, 7, 8}, got)
}

func TestVisitRangeEmptyWhenNoOverlap(t *testing.T) {
	tr := New[int, int](cmpInt, 0)
	for i := 0; i < 20; i++ {
		tr.Insert(i*2, i, nil)
	}
	var got []int
	tr.VisitRange(1000, 2000, func(k, v int) bool {
		got = append(got, k)
		return true
	})
	require.Empty(t, got)
}

func TestDeleteMissingKeyIsNoop(t *testing.T) {
	tr := New[int, int](cmpInt, 0)
	tr.Insert(1, 1, nil)
	require.False(t, tr.Delete(2, nil))
	require.Equal(t, 1, tr.Len())
}

func TestDeleteRunsDestructor(t *testing.T) {
	tr := New[int, string](cmpInt, 0)
	tr.Insert(1, "owned", nil)
	var destroyed string
	tr.Delete(1, func(v string) { destroyed = v })
	require.Equal(t, "owned", destroyed)
	require.Equal(t, 0, tr.Len())
}

func TestVisitInOrderEarlyStop(t *testing.T) {
	tr := New[int, int](cmpInt, 0)
	for i := 0; i < 10; i++ {
		tr.Insert(i, i, nil)
	}
	var seen []int
	tr.VisitInOrder(func(k, v int) bool {
		seen = append(seen, k)
		return k < 3
	})
	if diff := cmp.Diff([]int{0, 1, 2, 3}, seen); diff != "" {
		t.Errorf("VisitInOrder early-stop snapshot mismatch (-want +got):\n%s", diff)
	}
}
