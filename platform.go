package nalloc

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
)

// AllocFailed reports that the platform VM layer could not satisfy a
// reservation request. It carries enough context for an operator to
// diagnose a sizing problem without retrying, since this package treats
// reservation failure as a non-transient condition.
type AllocFailed struct {
	// RequestedSize is the number of bytes that were requested, before
	// page rounding.
	RequestedSize int
	// ErrCode is the platform error code, when the OS provided one. Zero
	// when unavailable.
	ErrCode int
}

func (e *AllocFailed) Error() string {
	if e.ErrCode != 0 {
		return fmt.Sprintf("nalloc: virtual memory reservation of %d bytes failed (error code %d)", e.RequestedSize, e.ErrCode)
	}
	return fmt.Sprintf("nalloc: virtual memory reservation of %d bytes failed", e.RequestedSize)
}

// pageRound rounds size up to the next multiple of the system page size.
func pageRound(size int) int {
	pageSize := os.Getpagesize()
	if size <= 0 {
		return pageSize
	}
	return (size + pageSize - 1) &^ (pageSize - 1)
}

// newAllocFailed builds an AllocFailed and attaches a stack trace via
// github.com/pkg/errors, so an operator can see where the reservation was
// attempted from without this package needing its own tracing.
func newAllocFailed(requested int, code int) error {
	return errors.WithStack(&AllocFailed{RequestedSize: requested, ErrCode: code})
}
