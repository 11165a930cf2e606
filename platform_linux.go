//go:build linux

package nalloc

import (
	"golang.org/x/sys/unix"
)

// reserve obtains a contiguous, writable virtual address range from the
// kernel without demanding physical backing. MAP_NORESERVE tells the
// kernel not to pre-check swap/overcommit accounting against this mapping,
// so reserving a 1GiB polynomial arena costs nothing until it is touched.
func reserve(size int) (uintptr, error) {
	size = pageRound(size)

	buf, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON|unix.MAP_NORESERVE)
	if err != nil {
		errno, _ := err.(unix.Errno)
		return 0, newAllocFailed(size, int(errno))
	}
	return uintptr(unsafePointerOf(buf)), nil
}

// release returns a range previously obtained from reserve to the OS.
// A null address is a no-op success; failure is non-fatal.
func release(addr uintptr, size int) error {
	if addr == 0 {
		return nil
	}
	buf := bytesAt(addr, pageRound(size))
	return unix.Munmap(buf)
}

func madviseDontNeed(addr uintptr, size int) {
	if addr == 0 || size == 0 {
		return
	}
	_ = unix.Madvise(bytesAt(addr, size), unix.MADV_DONTNEED)
}
