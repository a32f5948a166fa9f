package render

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidGeometry = errors.New("invalid framebuffer geometry")
	ErrTooLarge        = errors.New("framebuffer too large")
	ErrNotAllocated    = errors.New("framebuffer not allocated")
)

// AllocationError reports a framebuffer that could not acquire memory.
// Rendering must not continue after it.
type AllocationError struct {
	Width  int
	Height int
	Bytes  int
	Err    error
}

func (e *AllocationError) Error() string {
	return fmt.Sprintf("allocate framebuffer %dx%d (%d bytes): %v", e.Width, e.Height, e.Bytes, e.Err)
}

func (e *AllocationError) Unwrap() error { return e.Err }

// PresentationError reports a failed present. The next frame may still succeed.
type PresentationError struct {
	Err error
}

func (e *PresentationError) Error() string {
	return "present framebuffer: " + e.Err.Error()
}

func (e *PresentationError) Unwrap() error { return e.Err }
