package search

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindBasic(t *testing.T) {
	h := []byte("hello world")
	require.Equal(t, 6, Find(h, 0, []byte("world")))
	require.Equal(t, NPOS, Find(h, 0, []byte("xyz")))
	require.Equal(t, 0, Find(h, 0, []byte("hello")))
}

func TestFindSingleByte(t *testing.T) {
	h := []byte("abcabc")
	require.Equal(t, 2, Find(h, 0, []byte("c")))
	require.Equal(t, NPOS, Find(h, 0, []byte("z")))
}

func TestFindFromOffset(t *testing.T) {
	h := []byte("abcabc")
	require.Equal(t, 3, Find(h, 1, []byte("abc")))
}

func TestFindEmptyNeedle(t *testing.T) {
	h := []byte("abc")
	require.Equal(t, 0, Find(h, 0, nil))
}

func TestFindAdversarialLongRun(t *testing.T) {
	// A long run of 'a' ahead of the only match. The fast checksum is the
	// window's last byte and 'b' occurs only at the end, so the scan
	// reaches the match without a checksum collision; the test checks that
	// the correct, unique match position is returned.
	h := []byte(strings.Repeat("a", 10000) + "aaaab")
	n := []byte("aaab")
	want := strings.Index(string(h), string(n))
	require.GreaterOrEqual(t, want, 0)
	require.Equal(t, want, Find(h, 0, n))
}

func TestFindNoMatch(t *testing.T) {
	h := []byte(strings.Repeat("a", 5000))
	require.Equal(t, NPOS, Find(h, 0, []byte("b")))
}

func TestFindRuneASCIIAndUnicode(t *testing.T) {
	h := []byte("hello, 世界!")
	require.Equal(t, 4, FindRune(h, 0, 'o'))
	idx := FindRune(h, 0, '世')
	require.Equal(t, []byte("世"), h[idx:idx+3])
}

func TestFindFunc(t *testing.T) {
	h := []byte("abc 123")
	isDigit := func(r rune) bool { return r >= '0' && r <= '9' }
	idx := FindFunc(h, 0, len(h), isDigit)
	require.Equal(t, 4, idx)
}
