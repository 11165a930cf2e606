package nalloc

import "unsafe"

// bytesAt reinterprets a raw address as a byte slice of the given length.
// Used both to hand callers arena memory as a []byte and to pass mmap'd
// ranges back to munmap/madvise.
func bytesAt(addr uintptr, size int) []byte {
	if addr == 0 || size == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(addr)), size)
}
