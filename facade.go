package nalloc

import (
	"runtime"
	"sync/atomic"
)

// Facade is a process-wide handle onto a lazily-created ArenaManager. It
// exists so code deep in a call stack can reach the arenas without having
// one threaded through every function signature, and so it can stand in
// for the process's general-purpose allocator on the hot allocation path
// of a proving session.
//
// The zero value is ready to use. Facade must not be copied after first
// use.
type Facade struct {
	mgr         atomic.Pointer[ArenaManager]
	initClaimed atomic.Bool
	opts        []ArenaManagerOption
}

// NewFacade returns a Facade that will build its ArenaManager with opts on
// first use.
func NewFacade(opts ...ArenaManagerOption) *Facade {
	return &Facade{opts: opts}
}

// arenas returns the facade's ArenaManager, creating it on the first call.
//
// This deliberately does not use sync.Once: Once.Do takes a mutex, and if
// this facade is ever wired up as the process's own allocator (see
// Allocate), a mutex acquired on the allocation path can't assume the
// runtime won't need to allocate to service it. A hand-rolled claim flag
// plus spin-wait needs no such assumption. Losing the claim race just
// means spinning until the winner publishes mgr.
func (f *Facade) arenas() (*ArenaManager, error) {
	for {
		if m := f.mgr.Load(); m != nil {
			return m, nil
		}
		if f.initClaimed.CompareAndSwap(false, true) {
			m, err := NewArenaManager(f.opts...)
			if err != nil {
				f.initClaimed.Store(false)
				return nil, err
			}
			f.mgr.Store(m)
			return m, nil
		}
		runtime.Gosched()
	}
}

// Witness returns the facade's witness arena, initializing the underlying
// ArenaManager on first use. Panics if initialization fails; use Manager
// instead to handle that error.
func (f *Facade) Witness() *WitnessArena { return f.mustArenas().Witness() }

// Polynomial returns the facade's polynomial arena, initializing the
// underlying ArenaManager on first use.
func (f *Facade) Polynomial() *PolynomialArena { return f.mustArenas().Polynomial() }

// Scratch returns the facade's scratch bump engine, initializing the
// underlying ArenaManager on first use.
func (f *Facade) Scratch() *BumpEngine { return f.mustArenas().Scratch() }

// Manager returns the facade's ArenaManager, initializing it on first use
// and reporting any reservation failure instead of panicking.
func (f *Facade) Manager() (*ArenaManager, error) { return f.arenas() }

// Close releases the facade's underlying virtual memory reservations, if
// any were made. Safe to call on a facade that was never used.
func (f *Facade) Close() {
	if m := f.mgr.Load(); m != nil {
		m.Release()
	}
}

func (f *Facade) mustArenas() *ArenaManager {
	m, err := f.arenas()
	if err != nil {
		panic(err)
	}
	return m
}

// ResetAll resets all three arenas. See ArenaManager.ResetAll.
func (f *Facade) ResetAll() { f.mustArenas().ResetAll() }

// Stats returns a snapshot of all three arenas.
func (f *Facade) Stats() Stats { return f.mustArenas().Stats() }

// Allocate services a general-purpose allocation request by routing it to
// the polynomial arena when size exceeds the configured large-alloc
// threshold (see WithLargeAllocThreshold), and to scratch otherwise.
// Returns nil if the chosen arena can't satisfy the request; callers on
// this path get no error, matching the zero-allocation convention of the
// underlying bump engines.
func (f *Facade) Allocate(size, align int) []byte {
	m := f.mustArenas()
	if size > m.LargeAllocThreshold() {
		return m.Polynomial().Alloc(size, align)
	}
	return bumpBytes(m.Scratch().Alloc(size, align), size)
}

// Deallocate is a no-op. Arenas reclaim memory only in bulk, via ResetAll;
// individual allocations are never freed.
func (f *Facade) Deallocate([]byte) {}

// ZeroedAllocate is Allocate followed by an explicit zeroing of the
// returned bytes. Freshly reserved OS pages are typically already zero,
// but a recycled generation's tail is not, so this can't skip the
// zeroing based on the arena's Recycled state without breaking that
// caller-visible guarantee.
func (f *Facade) ZeroedAllocate(size, align int) []byte {
	b := f.Allocate(size, align)
	clear(b)
	return b
}

// Reallocate grows or shrinks a previous Facade.Allocate result. If
// newSize fits within the original allocation it returns the same slice
// re-sliced; otherwise it allocates fresh memory, copies the overlap, and
// abandons the old allocation (Deallocate being a no-op, this is exactly
// as cheap as it looks).
func (f *Facade) Reallocate(old []byte, newSize, align int) []byte {
	if newSize <= cap(old) {
		return old[:newSize]
	}
	fresh := f.Allocate(newSize, align)
	if fresh == nil {
		return nil
	}
	copy(fresh, old)
	return fresh
}
