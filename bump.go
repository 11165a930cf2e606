package nalloc

import "sync/atomic"

// BumpEngine is a lock-free monotonic allocator over a fixed byte range
// obtained from the platform VM layer. It is the shared core wrapped by
// [WitnessArena], [PolynomialArena], and the scratch handle exposed by
// [ArenaManager].
//
// A BumpEngine must be created with newBumpEngine; the zero value is not
// usable.
type BumpEngine struct {
	base     uintptr
	limit    uintptr // base + capacity
	cursor   atomic.Uintptr
	recycled atomic.Bool
}

// newBumpEngine installs a bump engine over [base, base+size). The caller
// must have obtained this range from the platform VM layer (or otherwise
// guarantee it is valid, writable, and not aliased by anything else).
func newBumpEngine(base uintptr, size int) *BumpEngine {
	e := &BumpEngine{
		base:  base,
		limit: base + uintptr(size),
	}
	e.cursor.Store(base)
	return e
}

// Alloc returns an address p such that p%align == 0, [p, p+size) lies
// within the engine's region, and no subsequent allocation from this
// engine will overlap [p, p+size) until the next reset. Returns 0 if size
// is greater than the remaining space after alignment padding.
//
// size must be > 0 and align must be a power of two; both are caller
// obligations enforced only in debug builds (see debug.go).
func (e *BumpEngine) Alloc(size, align int) uintptr {
	assertValidAlloc(size, align)

	mask := uintptr(align - 1)
	for {
		current := e.cursor.Load()
		aligned := (current + mask) &^ mask
		next := aligned + uintptr(size)

		if next > e.limit || next < aligned {
			// next < aligned catches pathological overflow on the add.
			return 0
		}

		if e.cursor.CompareAndSwap(current, next) {
			return aligned
		}
		// Lost the race to another allocator on this engine; retry.
	}
}

// Reset returns the cursor to base. Every address previously handed out by
// this engine becomes semantically invalid. Not synchronized against
// concurrent Alloc; the caller must quiesce all allocators of this engine
// first.
func (e *BumpEngine) Reset() {
	e.cursor.Store(e.base)
	e.recycled.Store(true)
}

// SecureReset overwrites the entire region, not merely the used prefix,
// with the wipe pattern, then resets. See wipe.go for why this can't be a
// plain memclr.
func (e *BumpEngine) SecureReset() {
	secureWipe(e.base, int(e.limit-e.base))
	e.Reset()
}

// Base returns the region's starting address.
func (e *BumpEngine) Base() uintptr { return e.base }

// Capacity returns the total size of the region in bytes.
func (e *BumpEngine) Capacity() int { return int(e.limit - e.base) }

// Used returns the number of bytes allocated since the last reset.
func (e *BumpEngine) Used() int { return int(e.cursor.Load() - e.base) }

// Remaining returns the number of bytes left before the engine is
// exhausted.
func (e *BumpEngine) Remaining() int { return int(e.limit - e.cursor.Load()) }

// Recycled reports whether this engine has ever been reset.
func (e *BumpEngine) Recycled() bool { return e.recycled.Load() }

// bytes reinterprets [addr, addr+n) as a byte slice. Used internally by the
// specialized arenas to hand callers a Go slice instead of a raw address.
func bumpBytes(addr uintptr, n int) []byte {
	if addr == 0 {
		return nil
	}
	return bytesAt(addr, n)
}
