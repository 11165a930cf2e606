//go:build darwin

package nalloc

import (
	"golang.org/x/sys/unix"
)

// reserve obtains virtual address space via mmap. Darwin has no
// MAP_NORESERVE; plain anonymous MAP_PRIVATE is demand-paged by default on
// this platform, giving the same cheap-until-touched behavior this package
// wants without shelling out to the lower-level Mach VM calls. See
// DESIGN.md for that tradeoff.
func reserve(size int) (uintptr, error) {
	size = pageRound(size)

	buf, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		errno, _ := err.(unix.Errno)
		return 0, newAllocFailed(size, int(errno))
	}
	return uintptr(unsafePointerOf(buf)), nil
}

func release(addr uintptr, size int) error {
	if addr == 0 {
		return nil
	}
	return unix.Munmap(bytesAt(addr, pageRound(size)))
}

func madviseDontNeed(addr uintptr, size int) {
	if addr == 0 || size == 0 {
		return
	}
	_ = unix.Madvise(bytesAt(addr, size), unix.MADV_FREE)
}
