// Package libsrtgo provides fast, allocation-conscious string and data
// structure primitives: packed-integer framing, rolling checksums, a
// growable container substrate, a UTF-8 string type, a typed vector with
// per-width sort dispatch, an arena-backed Red-Black tree and sorted map, a
// bit-set, Rabin-Karp search, escape/radix codecs, and a custom LZ77
// compressor.
//
// # Overview
//
// Each concern lives in its own package (pack, rollhash, container,
// sstring, svector, stree, smap, sbitset, search, codec, lz) so callers
// take only what they need; this root package exists purely to document
// how the pieces fit together; it has no exported API of its own.
//
// # When to Use
//
// Reach for these packages when you need C-library-style control over
// allocation and layout from Go: a parser or wire-format encoder that
// wants a self-delimited varint, a cache key that wants a cheap rolling
// checksum, a sorted index that wants dense arena storage instead of a
// pointer-chasing tree, or a custom compression frame format.
//
// # When NOT to Use
//
// For general-purpose text handling, prefer the standard library's string
// and strings/unicode/utf8 packages; sstring only earns its keep when you
// need its cached Unicode length and zero-allocation reference views. For
// general compression, prefer compress/flate or a maintained zstd binding;
// lz is a small, fully-specified frame format, not a general-purpose
// codec competing on ratio.
//
// # Basic Usage
//
//	v := svector.New[int](0)
//	v.Push(3)
//	v.Push(1)
//	svector.SortBy(v.Slice(), func(a, b int) bool { return a < b })
//
//	enc := lz.Encode([]byte("hello hello hello"))
//	dec, err := lz.Decode(enc)
//
// # Performance Characteristics
//
// The container substrate amortizes growth with a 25%-over-allocation
// heuristic (capped at 1,000,000 extra elements per grow), so repeated
// small appends are O(1) amortized across every typed wrapper built on it
// (sstring, svector, sbitset). search.Find and lz.Encode/Decode are linear
// in input size regardless of adversarial input.
package libsrtgo
