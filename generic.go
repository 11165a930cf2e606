package nalloc

import "unsafe"

// New allocates a zeroed T from w and returns a pointer into the arena.
// The pointer is valid until the next SecureWipe.
func New[T any](w *WitnessArena) *T {
	var zero T
	b := w.Alloc(int(unsafe.Sizeof(zero)), int(unsafe.Alignof(zero)))
	if b == nil {
		return nil
	}
	return (*T)(unsafe.Pointer(&b[0]))
}

// NewSlice allocates a slice of n zeroed T from w. Returns nil if n <= 0 or
// the arena can't satisfy the request.
func NewSlice[T any](w *WitnessArena, n int) []T {
	if n <= 0 {
		return nil
	}
	var zero T
	elemSize := int(unsafe.Sizeof(zero))
	b := w.Alloc(elemSize*n, int(unsafe.Alignof(zero)))
	if b == nil {
		return nil
	}
	return unsafe.Slice((*T)(unsafe.Pointer(&b[0])), n)
}

// PolyNew allocates an uninitialized T from p, cache-line aligned. Callers
// are responsible for initializing the value before reading it.
func PolyNew[T any](p *PolynomialArena) *T {
	var zero T
	b := p.Alloc(int(unsafe.Sizeof(zero)), CacheLineAlign)
	if b == nil {
		return nil
	}
	return (*T)(unsafe.Pointer(&b[0]))
}

// PolyNewSlice allocates a slice of n uninitialized T from p, cache-line
// aligned. Returns nil if n <= 0 or the arena can't satisfy the request.
func PolyNewSlice[T any](p *PolynomialArena, n int) []T {
	if n <= 0 {
		return nil
	}
	var zero T
	elemSize := int(unsafe.Sizeof(zero))
	b := p.Alloc(elemSize*n, CacheLineAlign)
	if b == nil {
		return nil
	}
	return unsafe.Slice((*T)(unsafe.Pointer(&b[0])), n)
}
