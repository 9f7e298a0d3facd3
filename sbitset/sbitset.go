// Package sbitset implements a growable bit-set over a byte vector with an
// O(1) population count maintained incrementally on every set/reset.
package sbitset

import "github.com/faragon/libsrt-go/container"

// BitSet is a growable array of bits backed by a byte container.
type BitSet struct {
	c   *container.Container[byte]
	pop int
}

// New returns an empty bit-set with room for initialReserve bits.
func New(initialReserve int) *BitSet {
	return &BitSet{c: container.New[byte]((initialReserve + 7) / 8)}
}

// Test reports whether bit i is set. Bits past the current extent are 0.
func (b *BitSet) Test(i int) bool {
	pos := i / 8
	buf := b.c.Slice()
	if pos < 0 || pos >= len(buf) {
		return false
	}
	return buf[pos]&(1<<uint(i%8)) != 0
}

// Set sets bit i, auto-extending the backing storage (zero-filling the
// gap) if i is beyond the current extent.
func (b *BitSet) Set(i int) {
	if i < 0 {
		return
	}
	pos := i / 8
	if pos+1 > b.c.Size() {
		b.c.SetSize(pos + 1)
	}
	buf := b.c.Slice()
	mask := byte(1 << uint(i%8))
	if buf[pos]&mask == 0 {
		buf[pos] |= mask
		b.pop++
	}
}

// Reset clears bit i. Out-of-range reset is a no-op.
func (b *BitSet) Reset(i int) {
	if i < 0 {
		return
	}
	pos := i / 8
	buf := b.c.Slice()
	if pos >= len(buf) {
		return
	}
	mask := byte(1 << uint(i%8))
	if buf[pos]&mask != 0 {
		buf[pos] &^= mask
		b.pop--
	}
}

// PopCount returns the number of set bits, O(1).
func (b *BitSet) PopCount() int { return b.pop }

// MaxBit returns the number of bits the backing storage currently
// addresses (8 * allocated bytes), one more than the highest addressable
// bit index; it is not the highest set bit.
func (b *BitSet) MaxBit() int { return b.c.MaxSize() * 8 }

// Clear zeros the entire allocated buffer (not only the used prefix),
// resets size to the full capacity so subsequent Set calls are O(1)
// without growth, and resets the population count to 0.
func (b *BitSet) Clear() {
	max := b.c.MaxSize()
	b.c.SetSize(max)
	buf := b.c.Slice()
	for i := range buf {
		buf[i] = 0
	}
	b.pop = 0
}
