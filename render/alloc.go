package render

import "fmt"

// DefaultAllocLimit caps a single framebuffer allocation (256 MiB).
const DefaultAllocLimit = 256 << 20

// Allocator acquires and releases framebuffer memory.
type Allocator interface {
	Alloc(n int) ([]byte, error)
	Free(b []byte)
}

// HeapAllocator allocates zeroed memory from the Go heap. Limit bounds the
// size of one request; zero means DefaultAllocLimit.
type HeapAllocator struct {
	Limit int
}

func (a HeapAllocator) Alloc(n int) ([]byte, error) {
	limit := a.Limit
	if limit <= 0 {
		limit = DefaultAllocLimit
	}
	if n <= 0 {
		return nil, fmt.Errorf("alloc %d bytes: %w", n, ErrInvalidGeometry)
	}
	if n > limit {
		return nil, fmt.Errorf("alloc %d bytes (limit %d): %w", n, limit, ErrTooLarge)
	}
	return make([]byte, n), nil
}

// Free drops the reference; the garbage collector reclaims the memory.
func (HeapAllocator) Free([]byte) {}
