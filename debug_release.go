//go:build !nalloc_debug

package nalloc

// assertValidAlloc is a no-op in release builds. Passing size <= 0 or a
// non-power-of-two align is undefined behavior: Alloc's arithmetic will
// misbehave, not panic.
func assertValidAlloc(size, align int) {}
