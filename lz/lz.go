// Package lz implements a custom LZ77-style byte compressor: a hash-table
// match search feeding a three-opcode stream (inline literal runs, short
// and long back-references), framed by a packed-u64 length header and
// decoded with a safe forward-overlapping copy.
package lz

import (
	"errors"

	"github.com/faragon/libsrt-go/pack"
)

// minMatch is the shortest match worth encoding as a reference; anything
// below this is cheaper left as a literal.
const minMatch = 4

// longDistanceDropThreshold, together with minMatch, implements the
// encoder's drop rule: a minimum-length match across a very large distance
// costs more (in the distance-1 packed value) than the literal bytes it
// replaces, so it is
// rejected and left as a literal instead.
const longDistanceDropThreshold = 500000

// hashBitsCap bounds the match-search hash table. The original allows up
// to 2^26 entries (a 512MB table of 8-byte size_t entries on 64-bit); this
// port stores int32 offsets and caps at 2^22 (16MB) as a practical default
// — a compression-ratio tradeoff on very large inputs only, never a
// correctness concern, since the table only ever holds position hints that
// are verified by direct comparison before use.
const hashBitsCap = 22

func ilog2(n int) int {
	b := 0
	for n > 1 {
		n >>= 1
		b++
	}
	return b
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func hashBitsFor(inputSize int) int {
	return clamp(ilog2(inputSize)-2, 3, hashBitsCap)
}

func hash4(w uint32) uint32 {
	return (w >> 24) + (w >> 20) + (w >> 13) + w
}

func loadLE32(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

// Ceiling returns the worst-case encoded size for an input of n bytes,
// suitable for pre-allocating an encode destination buffer.
func Ceiling(n int) int {
	return n + (n/8)*10 + 32
}

// DecodedSizeCeiling returns the worst-case decode buffer size a caller
// should pre-allocate given a frame's declared uncompressed length.
func DecodedSizeCeiling(expectedSize int) int {
	return expectedSize + 16
}

// Encode compresses src into an LZ frame: a packed-u64 length header
// followed by the opcode stream.
func Encode(src []byte) []byte {
	out := make([]byte, 0, Ceiling(len(src)))
	out = pack.Append(out, uint64(len(src)))
	if len(src) < 5 {
		return appendLiteral(out, src)
	}

	hashBits := hashBitsFor(len(src))
	tableSize := 1 << uint(hashBits)
	mask := uint32(tableSize - 1)
	table := make([]int32, tableSize)
	for i := range table {
		table[i] = -1
	}

	litStart := 0
	i := 0
	limit := len(src) - 4
	for i <= limit {
		w := loadLE32(src[i:])
		h := hash4(w) & mask
		cand := table[h]
		table[h] = int32(i)

		if cand < 0 || loadLE32(src[cand:]) != w {
			i++
			continue
		}

		length := matchLen(src, int(cand), i)
		dist := i - int(cand)
		if dist > longDistanceDropThreshold && length == minMatch {
			i++
			continue
		}

		out = appendLiteral(out, src[litStart:i])
		out = appendRef(out, length, dist)
		i += length
		litStart = i
	}
	out = appendLiteral(out, src[litStart:])
	return out
}

// matchLen extends a match forward from positions a (earlier) and b
// (current) as far as the bytes agree, in 8-byte chunks then a byte tail.
func matchLen(src []byte, a, b int) int {
	n := len(src)
	l := 0
	for b+l+8 <= n {
		x := loadLE64(src[a+l:])
		y := loadLE64(src[b+l:])
		if x != y {
			break
		}
		l += 8
	}
	for b+l < n && src[a+l] == src[b+l] {
		l++
	}
	return l
}

func loadLE64(b []byte) uint64 {
	var v uint64
	for i := 0; i < 8; i++ {
		v |= uint64(b[i]) << (8 * uint(i))
	}
	return v
}

// opcode low-bit tags, interpreted on the *decoded* packed-u64 value (not
// its on-wire byte encoding).
const (
	tagREFVX = 0 // low bit 0: short back-reference
	tagREFVV = 1 // low 2 bits 01: long back-reference
	tagLITV  = 3 // low 2 bits 11: literal run
)

func appendLiteral(out []byte, lit []byte) []byte {
	if len(lit) == 0 {
		return out
	}
	op := (uint64(len(lit)-1) << 2) | tagLITV
	out = pack.Append(out, op)
	return append(out, lit...)
}

func appendRef(out []byte, length, dist int) []byte {
	if length >= 4 && length <= 7 {
		op := (uint64(dist-1) << 3) | (uint64(length-4) << 1) | tagREFVX
		return pack.Append(out, op)
	}
	op := (uint64(length-4) << 2) | tagREFVV
	out = pack.Append(out, op)
	out = pack.Append(out, uint64(dist-1))
	return out
}

// ErrOverflow is returned (with a truncated, best-effort result) when a
// decoded opcode stream claims more output than the frame's declared
// length allows. The original C decoder truncates silently; this is the
// decided Open Question resolution (see DESIGN.md): make the overflow
// observable instead of swallowing it.
var ErrOverflow = errors.New("lz: decoded length exceeds frame header")

// ErrTruncatedFrame is returned when the opcode stream ends before a
// complete opcode (or its literal/distance payload) could be read.
var ErrTruncatedFrame = errors.New("lz: truncated opcode stream")

// Decode reverses Encode. On overflow it returns the partial output
// decoded so far alongside ErrOverflow, matching the source's best-effort
// truncation but with the condition made observable.
func Decode(frame []byte) ([]byte, error) {
	expected, n := pack.Get(frame)
	if n == 0 {
		return nil, ErrTruncatedFrame
	}
	r := pack.NewReader(frame[n:])
	out := make([]byte, 0, DecodedSizeCeiling(int(expected)))

	for r.Remaining() > 0 {
		op, ok := r.Next()
		if !ok {
			return out, ErrTruncatedFrame
		}
		switch {
		case op&1 == tagREFVX:
			length := int((op>>1)&3) + 4
			dist := int(op>>3) + 1
			var err error
			out, err = copyRef(out, length, dist, int(expected))
			if err != nil {
				return out, err
			}
		case op&3 == tagLITV:
			length := int(op>>2) + 1
			if len(out)+length > int(expected) {
				return out, ErrOverflow
			}
			lit, ok := r.TakeBytes(length)
			if !ok {
				return out, ErrTruncatedFrame
			}
			out = append(out, lit...)
		default: // tagREFVV
			length := int(op>>2) + 4
			distMinusOne, ok := r.Next()
			if !ok {
				return out, ErrTruncatedFrame
			}
			dist := int(distMinusOne) + 1
			var err error
			out, err = copyRef(out, length, dist, int(expected))
			if err != nil {
				return out, err
			}
		}
	}
	return out, nil
}

// copyRef performs the forward-overlapping reference copy: when dist <
// length, bytes just written are read again as the copy proceeds, which is
// exactly what makes this a run-length-capable reference rather than a
// plain memcpy.
func copyRef(out []byte, length, dist, capLen int) ([]byte, error) {
	if len(out)+length > capLen {
		return out, ErrOverflow
	}
	if dist <= 0 || dist > len(out) {
		return out, ErrTruncatedFrame
	}
	start := len(out) - dist
	for i := 0; i < length; i++ {
		out = append(out, out[start+i])
	}
	return out, nil
}
