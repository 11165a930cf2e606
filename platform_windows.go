//go:build windows

package nalloc

import (
	"golang.org/x/sys/windows"
)

// reserve commits and reserves a readwrite region via VirtualAlloc. Unlike
// the Unix mmap path there is no separate "reserve without committing"
// step that still guarantees zero-fill-on-demand semantics across Windows
// versions, so this package commits eagerly here and relies on the OS to
// back pages lazily on first touch (the standard behavior of committed,
// never-touched pages).
func reserve(size int) (uintptr, error) {
	size = pageRound(size)

	addr, err := windows.VirtualAlloc(0, uintptr(size), windows.MEM_COMMIT|windows.MEM_RESERVE, windows.PAGE_READWRITE)
	if err != nil {
		errno, _ := err.(windows.Errno)
		return 0, newAllocFailed(size, int(errno))
	}
	return addr, nil
}

// release frees a range previously obtained from reserve. dwSize must be 0
// for MEM_RELEASE; Windows tracks the original reservation size itself.
func release(addr uintptr, _ int) error {
	if addr == 0 {
		return nil
	}
	return windows.VirtualFree(addr, 0, windows.MEM_RELEASE)
}

func madviseDontNeed(uintptr, int) {}
