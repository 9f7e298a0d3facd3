// Package sstring implements a dynamic, UTF-8-aware byte string over the
// container substrate, with a cached Unicode code-point count and case
// conversion that always returns a new string (the receiver is left
// unchanged).
//
// A String is either owned (growable, mutates freely) or a reference (a
// fixed view created with Ref, or returned by Split over another String's
// storage): a reference's buffer is never grown or reallocated, and every
// mutating method on one returns a freshly allocated copy instead of
// touching the referenced bytes, following the aliasing-safe contract
// described for the original container.
package sstring

import (
	"unicode"
	"unicode/utf8"

	"github.com/faragon/libsrt-go/container"
	"github.com/faragon/libsrt-go/search"
)

// CaseMode selects the case-folding table used by ToUpper/ToLower,
// replacing the original's process-global Turkish-case toggle with an
// explicit per-call parameter.
type CaseMode int

const (
	// CaseDefault applies the Unicode default casing rules.
	CaseDefault CaseMode = iota
	// CaseTurkish applies the Turkish/Azeri dotted/dotless I mapping:
	// 'i' upper-cases to 'İ' (U+0130) instead of 'I', and 'I' lower-cases
	// to 'ı' (U+0131) instead of 'i'.
	CaseTurkish
)

// String is a dynamic, UTF-8-aware byte buffer.
type String struct {
	c             *container.Container[byte]
	isRef         bool
	unicodeSize   int
	unicodeCached bool
}

// New returns an empty, owned string with room for initialReserve bytes.
func New(initialReserve int) *String {
	return &String{c: container.New[byte](initialReserve), unicodeCached: true}
}

// FromBytes returns a new owned string holding a copy of b.
func FromBytes(b []byte) *String {
	s := New(len(b))
	s.c.SetSize(len(b))
	copy(s.c.Slice(), b)
	s.unicodeCached = false
	return s
}

// FromString returns a new owned string holding a copy of str's bytes.
func FromString(str string) *String { return FromBytes([]byte(str)) }

// Ref returns a reference String over a copy of str's bytes (converting a
// Go string to bytes copies it once). The reference's buffer is never grown
// or reallocated; every mutating method returns a fresh copy instead.
func Ref(str string) *String {
	return &String{c: container.NewExternal([]byte(str)), isRef: true}
}

// Bytes returns the live byte range. Callers must not retain it across a
// mutating call that may reallocate.
func (s *String) Bytes() []byte { return s.c.Slice() }

// String returns a copy of the contents as a Go string.
func (s *String) String() string { return string(s.c.Slice()) }

// Len returns the byte length.
func (s *String) Len() int { return s.c.Size() }

// IsRef reports whether this is a borrowed reference.
func (s *String) IsRef() bool { return s.isRef }

// AllocErrors reports the sticky allocation-failure flag.
func (s *String) AllocErrors() bool { return s.c.AllocErrors() }

// EncodingErrors reports the sticky encoding-failure flag.
func (s *String) EncodingErrors() bool { return s.c.EncodingErrors() }

// ClearErrors clears both sticky error flags.
func (s *String) ClearErrors() { s.c.ClearErrors() }

// LenUnicode returns the UTF-8 code-point count, computing and caching it
// on first call if not already cached. Invalid sequences count as one code
// point each and set EncodingErrors, mirroring the getchar cursor protocol.
func (s *String) LenUnicode() int {
	if s.unicodeCached {
		return s.unicodeSize
	}
	n := 0
	buf := s.c.Slice()
	for i := 0; i < len(buf); {
		r, size := utf8.DecodeRune(buf[i:])
		if r == utf8.RuneError && size <= 1 {
			s.c.SetEncodingErrors()
		}
		i += size
		n++
	}
	s.unicodeSize = n
	s.unicodeCached = true
	return n
}

func (s *String) invalidateUnicodeCache() { s.unicodeCached = false }

// ensureOwned returns a String safe to mutate in place: itself if already
// owned, or a fresh owned copy if s is a reference.
func (s *String) ensureOwned() *String {
	if !s.isRef {
		return s
	}
	return FromBytes(s.c.Slice())
}

// Cat appends other's bytes, returning a mutated copy when s is a
// reference (references never allocate over their own borrowed storage).
func (s *String) Cat(other *String) *String {
	dst := s.ensureOwned()
	srcBytes := other.c.Slice()
	if other == dst {
		srcBytes = append([]byte(nil), srcBytes...) // alias-safe: snapshot before growing dst
	}
	for _, b := range srcBytes {
		dst.c.Append(b)
	}
	if dst.unicodeCached && other.unicodeCached {
		dst.unicodeSize += other.unicodeSize
	} else {
		dst.invalidateUnicodeCache()
	}
	return dst
}

// CatBytes appends raw bytes, clearing the cached Unicode size (the
// caller's bytes are not known to be a whole number of code points).
func (s *String) CatBytes(b []byte) *String {
	dst := s.ensureOwned()
	for _, c := range b {
		dst.c.Append(c)
	}
	dst.invalidateUnicodeCache()
	return dst
}

// Erase removes the half-open byte range [from, to).
func (s *String) Erase(from, to int) *String {
	dst := s.ensureOwned()
	buf := dst.c.Slice()
	if from < 0 {
		from = 0
	}
	if to > len(buf) {
		to = len(buf)
	}
	if from >= to {
		return dst
	}
	copy(buf[from:], buf[to:])
	dst.c.SetSize(len(buf) - (to - from))
	dst.invalidateUnicodeCache()
	return dst
}

// Resize sets the byte length to n, filling new bytes with fill when
// growing.
func (s *String) Resize(n int, fill byte) *String {
	dst := s.ensureOwned()
	old := dst.c.Size()
	dst.c.SetSize(n)
	if n > old {
		buf := dst.c.Slice()
		for i := old; i < n; i++ {
			buf[i] = fill
		}
	}
	dst.invalidateUnicodeCache()
	return dst
}

// Find returns the byte offset of the first occurrence of needle at or
// after from, or search.NPOS if absent (the original's find/findb).
func (s *String) Find(from int, needle string) int {
	return search.Find(s.c.Slice(), from, []byte(needle))
}

// FindReverse returns the byte offset of the last occurrence of needle at
// or before byte offset to, or search.NPOS if absent (the original's findr).
func (s *String) FindReverse(to int, needle string) int {
	return search.FindLast(s.c.Slice(), to, []byte(needle))
}

// FindRune returns the byte offset of the first occurrence of r at or after
// byte offset from, or search.NPOS if absent (the original's findu).
func (s *String) FindRune(from int, r rune) int {
	return search.FindRune(s.c.Slice(), from, r)
}

// FindFunc returns the byte offset of the first rune at or after byte
// offset from, bounded by maxOff, for which pred returns true, or
// search.NPOS if none matches (the original's findc/findnb character-class
// finds).
func (s *String) FindFunc(from, maxOff int, pred func(rune) bool) int {
	return search.FindFunc(s.c.Slice(), from, maxOff, pred)
}

// Split returns references into s's storage, separated by sep. When max > 0
// at most max entries are returned and the last one holds the rest of s;
// max <= 0 means no limit. No bytes are copied: each returned String is a
// reference into s's own backing array.
func Split(s *String, sep byte, max int) []*String {
	buf := s.c.Slice()
	var out []*String
	start := 0
	for i := 0; i < len(buf) && (max <= 0 || len(out) < max-1); i++ {
		if buf[i] == sep {
			out = append(out, refRange(buf, start, i))
			start = i + 1
		}
	}
	out = append(out, refRange(buf, start, len(buf)))
	return out
}

func refRange(buf []byte, from, to int) *String {
	return &String{c: container.NewExternal(buf[from:to:to]), isRef: true}
}

func mapRune(r rune, mode CaseMode, upper bool) rune {
	if mode == CaseTurkish {
		switch {
		case upper && r == 'i':
			return 'İ'
		case upper && r == 'I':
			return 'I'
		case !upper && r == 'I':
			return 'ı'
		case !upper && r == 'i':
			return 'i'
		}
	}
	if upper {
		return unicode.ToUpper(r)
	}
	return unicode.ToLower(r)
}

func convertCase(s *String, mode CaseMode, upper bool) *String {
	buf := s.c.Slice()
	out := make([]byte, 0, len(buf))
	var rbuf [utf8.UTFMax]byte
	for i := 0; i < len(buf); {
		r, size := utf8.DecodeRune(buf[i:])
		mapped := mapRune(r, mode, upper)
		n := utf8.EncodeRune(rbuf[:], mapped)
		out = append(out, rbuf[:n]...)
		i += size
	}
	result := FromBytes(out)
	return result
}

// ToUpper returns an upper-cased copy under the given case mode. Output
// length may differ from the input's because some mappings (e.g. Turkish
// dotted I) change byte count.
func (s *String) ToUpper(mode CaseMode) *String { return convertCase(s, mode, true) }

// ToLower returns a lower-cased copy under the given case mode.
func (s *String) ToLower(mode CaseMode) *String { return convertCase(s, mode, false) }
