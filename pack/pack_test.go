package pack

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBoundaries(t *testing.T) {
	cases := []struct {
		v        uint64
		wantSize int
	}{
		{0, 1},
		{127, 1},
		{128, 2},
		{16383, 2},
		{16384, 3},
		{1<<28 - 1, 4},
		{1 << 28, 5},
		{1<<35 - 1, 5},
		{1 << 35, 6},
		{1<<49 - 1, 7},
		{1 << 49, 9},
		{1<<63 - 1, 9},
		{1 << 63, 9},
		{math.MaxUint64, 9},
	}
	for _, c := range cases {
		require.Equal(t, c.wantSize, Size(c.v), "size(%d)", c.v)
		buf := make([]byte, 9)
		n := Put(buf, c.v)
		require.Equal(t, c.wantSize, n)
		require.Equal(t, n, SizeOfTag(buf[0]))
		got, consumed := Get(buf)
		require.Equal(t, c.v, got)
		require.Equal(t, n, consumed)
	}
}

func TestRoundTripSweep(t *testing.T) {
	var v uint64 = 1
	for i := 0; i < 64; i++ {
		for _, delta := range []int64{-1, 0, 1} {
			x := int64(v) + delta
			if x < 0 {
				continue
			}
			check(t, uint64(x))
		}
		v <<= 1
	}
}

func check(t *testing.T, v uint64) {
	t.Helper()
	buf := Append(nil, v)
	require.Len(t, buf, Size(v))
	got, n := Get(buf)
	require.Equal(t, v, got)
	require.Equal(t, len(buf), n)
}

func TestReaderWriter(t *testing.T) {
	values := []uint64{0, 1, 300, 1 << 20, 1 << 40, math.MaxUint64}
	w := NewWriter(nil)
	for _, v := range values {
		w.Put(v)
	}
	r := NewReader(w.Bytes())
	for _, want := range values {
		got, ok := r.Next()
		require.True(t, ok)
		require.Equal(t, want, got)
	}
	require.Equal(t, 0, r.Remaining())
	_, ok := r.Next()
	require.False(t, ok)
}

func TestGetShortBuffer(t *testing.T) {
	// A 3-byte encoding with only 1 or 2 bytes available must fail cleanly.
	buf := Append(nil, 16384) // 3-byte encoding
	_, n := Get(buf[:1])
	require.Equal(t, 0, n)
	_, n = Get(buf[:2])
	require.Equal(t, 0, n)
}
