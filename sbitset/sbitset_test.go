package sbitset

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetTestReset(t *testing.T) {
	b := New(0)
	require.False(t, b.Test(10))
	b.Set(10)
	require.True(t, b.Test(10))
	require.Equal(t, 1, b.PopCount())
	b.Reset(10)
	require.False(t, b.Test(10))
	require.Equal(t, 0, b.PopCount())
}

func TestResetOutOfRangeNoop(t *testing.T) {
	b := New(0)
	b.Reset(1000)
	require.Equal(t, 0, b.PopCount())
}

func TestSetIdempotent(t *testing.T) {
	b := New(0)
	b.Set(3)
	b.Set(3)
	require.Equal(t, 1, b.PopCount())
}

func TestPopCountMatchesSetBits(t *testing.T) {
	b := New(0)
	indices := []int{1, 7, 8, 63, 64, 1000}
	for _, i := range indices {
		b.Set(i)
	}
	require.Equal(t, len(indices), b.PopCount())
	for _, i := range indices {
		require.True(t, b.Test(i))
	}
	b.Reset(8)
	require.Equal(t, len(indices)-1, b.PopCount())
}

func TestClear(t *testing.T) {
	b := New(0)
	b.Set(5)
	b.Set(100)
	b.Clear()
	require.Equal(t, 0, b.PopCount())
	require.False(t, b.Test(5))
	require.False(t, b.Test(100))
}
