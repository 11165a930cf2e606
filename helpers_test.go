package nalloc

import "unsafe"

// uintptrOf returns the address of a slice's first byte, for alignment
// assertions in tests.
func uintptrOf(b []byte) uintptr {
	if len(b) == 0 {
		return 0
	}
	return uintptr(unsafe.Pointer(&b[0]))
}
