// Package container implements the shared growable-storage substrate that
// every other libsrt-go type (string, vector, tree, map, bit-set) is built
// on: a single generic element store with sticky allocation-error tracking,
// a heuristic growth policy, and a borrowed external-buffer mode for
// caller-owned storage that is never reallocated or freed.
//
// The original C library distinguishes a compact 4-byte "small" header from
// a full multi-word header to save memory on short byte containers; Go
// slices already carry a length and a capacity at no extra cost to the
// caller, so that distinction collapses here into a single representation.
// What the small/full split actually gated — the external-buffer contract,
// the sticky error flags, and the growth heuristic — is preserved.
package container

// Mode records how a Container's backing storage was obtained, matching the
// st_mode discriminant of the original substrate (Full / ext-buffer / void).
type Mode int

const (
	// ModeOwned is heap storage owned and resizable by the Container.
	ModeOwned Mode = iota
	// ModeExternal is caller-owned storage: never grown past its
	// original capacity, never freed.
	ModeExternal
	// ModeVoid is the empty sentinel state; every grow on it fails.
	ModeVoid
)

// growPct and growMaxInc implement the heuristic over-allocation policy:
// requests are rounded up by growPct percent of the requested size, capped
// at growMaxInc extra elements, so repeated small appends amortize to O(1).
const (
	growPct    = 25
	growMaxInc = 1_000_000
)

// Container is a generic growable element store with sticky error flags.
// The zero value is a usable, empty, owned container.
type Container[T any] struct {
	buf          []T
	mode         Mode
	allocErrors  bool
	encodeErrors bool
}

// New returns an owned Container with the given initial capacity reserved.
func New[T any](initialReserve int) *Container[T] {
	c := &Container[T]{}
	if initialReserve > 0 {
		c.buf = make([]T, 0, initialReserve)
	}
	return c
}

// NewExternal wraps buf as borrowed storage: the Container may use up to
// cap(buf) elements but will never reallocate or free it. Writes beyond the
// original capacity fail and set AllocErrors.
func NewExternal[T any](buf []T) *Container[T] {
	return &Container[T]{buf: buf[:0:cap(buf)], mode: ModeExternal}
}

// Void returns the empty, permanently-failing sentinel container, the
// target of every API that is handed a nil/invalid handle.
func Void[T any]() *Container[T] {
	return &Container[T]{mode: ModeVoid}
}

// Size returns the number of live elements.
func (c *Container[T]) Size() int {
	if c == nil {
		return 0
	}
	return len(c.buf)
}

// MaxSize returns the current capacity ceiling (allocation capacity).
func (c *Container[T]) MaxSize() int {
	if c == nil {
		return 0
	}
	return cap(c.buf)
}

// Empty reports whether the container holds zero elements.
func (c *Container[T]) Empty() bool { return c.Size() == 0 }

// ExtBuffer reports whether this container borrows caller-owned storage.
func (c *Container[T]) ExtBuffer() bool { return c != nil && c.mode == ModeExternal }

// AllocErrors reports the sticky allocation-failure flag.
func (c *Container[T]) AllocErrors() bool { return c != nil && c.allocErrors }

// SetAllocErrors sets the sticky allocation-failure flag.
func (c *Container[T]) SetAllocErrors() {
	if c != nil {
		c.allocErrors = true
	}
}

// ClearAllocErrors clears the sticky allocation-failure flag.
func (c *Container[T]) ClearAllocErrors() {
	if c != nil {
		c.allocErrors = false
	}
}

// EncodingErrors reports the sticky encoding-failure flag (used by string
// and codec layers built on top of a container).
func (c *Container[T]) EncodingErrors() bool { return c != nil && c.encodeErrors }

// SetEncodingErrors sets the sticky encoding-failure flag.
func (c *Container[T]) SetEncodingErrors() {
	if c != nil {
		c.encodeErrors = true
	}
}

// ClearEncodingErrors clears the sticky encoding-failure flag.
func (c *Container[T]) ClearEncodingErrors() {
	if c != nil {
		c.encodeErrors = false
	}
}

// ClearErrors clears both sticky error flags.
func (c *Container[T]) ClearErrors() {
	c.ClearAllocErrors()
	c.ClearEncodingErrors()
}

func heuristicInc(requested int) int {
	inc := (requested * growPct) / 100
	if inc > growMaxInc {
		inc = growMaxInc
	}
	return inc
}

// Reserve grows capacity to at least maxSize elements, applying the
// heuristic over-allocation unless the container is external (in which
// case any request beyond the original capacity fails and sets
// AllocErrors, leaving the container otherwise unchanged) or void (always
// fails). Returns the resulting capacity.
func (c *Container[T]) Reserve(maxSize int) int {
	if c == nil || c.mode == ModeVoid {
		return 0
	}
	cur := cap(c.buf)
	if cur >= maxSize {
		return cur
	}
	if c.mode == ModeExternal {
		c.SetAllocErrors()
		return cur
	}
	target := maxSize + heuristicInc(maxSize)
	next := make([]T, len(c.buf), target)
	copy(next, c.buf)
	c.buf = next
	return cap(c.buf)
}

// Grow reserves room for extraSize additional elements beyond the current
// size and returns how many of those were actually made available (0 on
// failure, matching sd_grow's "actual increment achieved" contract).
func (c *Container[T]) Grow(extraSize int) int {
	if c == nil {
		return 0
	}
	size := len(c.buf)
	newMax := c.Reserve(size + extraSize)
	if newMax >= size+extraSize {
		return newMax - size
	}
	return 0
}

// Shrink releases spare capacity down to exactly Size elements. External
// and void containers are no-ops; a failed reallocation is non-fatal and
// simply leaves the container at its current capacity (best-effort, like
// the original sd_shrink).
func (c *Container[T]) Shrink() {
	if c == nil || c.mode != ModeOwned {
		return
	}
	if len(c.buf) == cap(c.buf) {
		return
	}
	next := make([]T, len(c.buf))
	copy(next, c.buf)
	c.buf = next
}

// Append adds one element, growing storage if needed. It is a no-op if the
// container cannot grow to hold it; a full external buffer also sets
// AllocErrors.
func (c *Container[T]) Append(v T) {
	if c == nil {
		return
	}
	if len(c.buf) == cap(c.buf) {
		before := cap(c.buf)
		if c.Reserve(before+1) == before {
			return // growth refused (external buffer full, or void)
		}
	}
	c.buf = append(c.buf, v)
}

// SetSize directly sets the logical size, used by callers (string, vector)
// that write into the backing slice out of band and then publish the new
// length. It never shrinks capacity. If capacity cannot grow to n (external
// or void container), the size is left unchanged.
func (c *Container[T]) SetSize(n int) {
	if c == nil {
		return
	}
	if n > cap(c.buf) {
		c.Reserve(n)
		if n > cap(c.buf) {
			return // growth refused (external buffer full, or void)
		}
	}
	c.buf = c.buf[:n]
}

// Slice exposes the live elements for read/write by the owning typed
// wrapper (string, vector, bit-set). Callers must not retain it across an
// operation that may reallocate.
func (c *Container[T]) Slice() []T {
	if c == nil {
		return nil
	}
	return c.buf
}

// Free releases an owned container's storage. It is a no-op for external
// and void containers, matching sd_free's "ext_buffer is never freed"
// contract. After Free, the container behaves as empty.
func (c *Container[T]) Free() {
	if c == nil || c.mode == ModeExternal {
		return
	}
	c.buf = nil
}

// FreeAll frees every owned container in cs, the idiomatic replacement for
// the original's variadic sentinel-terminated free list.
func FreeAll[T any](cs ...*Container[T]) {
	for _, c := range cs {
		c.Free()
	}
}
