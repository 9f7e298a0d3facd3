package svector

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSortUint8(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	s := make([]uint8, 500)
	for i := range s {
		s[i] = uint8(r.Intn(256))
	}
	SortUint8(s)
	require.True(t, sort.SliceIsSorted(s, func(i, j int) bool { return s[i] < s[j] }))
}

func TestSortInt8(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	s := make([]int8, 500)
	for i := range s {
		s[i] = int8(r.Intn(256) - 128)
	}
	SortInt8(s)
	require.True(t, sort.SliceIsSorted(s, func(i, j int) bool { return s[i] < s[j] }))
}

func TestSortInt16(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	s := make([]int16, 1000)
	for i := range s {
		s[i] = int16(r.Intn(1 << 16))
	}
	SortInt16(s)
	require.True(t, sort.SliceIsSorted(s, func(i, j int) bool { return s[i] < s[j] }))
}

func TestSortUint32(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	s := make([]uint32, 1000)
	for i := range s {
		s[i] = r.Uint32()
	}
	SortUint32(s)
	require.True(t, sort.SliceIsSorted(s, func(i, j int) bool { return s[i] < s[j] }))
}

func TestSortInt64(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	s := make([]int64, 1000)
	for i := range s {
		s[i] = r.Int63() - (1 << 62)
	}
	SortInt64(s)
	require.True(t, sort.SliceIsSorted(s, func(i, j int) bool { return s[i] < s[j] }))
}

func TestSortByQuicksort(t *testing.T) {
	r := rand.New(rand.NewSource(6))
	s := make([]float64, 1000)
	for i := range s {
		s[i] = r.Float64()
	}
	SortBy(s, func(a, b float64) bool { return a < b })
	require.True(t, sort.Float64sAreSorted(s))
}

func TestSortByAlreadySorted(t *testing.T) {
	s := make([]int, 100)
	for i := range s {
		s[i] = i
	}
	SortBy(s, func(a, b int) bool { return a < b })
	require.True(t, sort.IntsAreSorted(s))
}

func TestSortSmallSlices(t *testing.T) {
	for n := 0; n <= 4; n++ {
		s := make([]uint16, n)
		for i := range s {
			s[i] = uint16(n - i)
		}
		SortUint16(s)
		require.True(t, sort.SliceIsSorted(s, func(i, j int) bool { return s[i] < s[j] }))
	}
}
