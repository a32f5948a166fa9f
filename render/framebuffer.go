package render

import (
	"fmt"
	"math"

	"gradient/hal"
)

// BytesPerPixel is the storage size of one XRGB8888 pixel.
const BytesPerPixel = 4

// Framebuffer is a software back buffer in hal.PixelFormatXRGB8888.
// The zero value is an empty framebuffer using the heap allocator.
type Framebuffer struct {
	alloc  Allocator
	width  int
	height int
	stride int
	buf    []byte
}

// NewFramebuffer returns an empty framebuffer backed by alloc.
// A nil alloc selects HeapAllocator.
func NewFramebuffer(alloc Allocator) *Framebuffer {
	return &Framebuffer{alloc: alloc}
}

func (f *Framebuffer) Width() int              { return f.width }
func (f *Framebuffer) Height() int             { return f.height }
func (f *Framebuffer) StrideBytes() int        { return f.stride }
func (f *Framebuffer) Format() hal.PixelFormat { return hal.PixelFormatXRGB8888 }
func (f *Framebuffer) Buffer() []byte          { return f.buf }
func (f *Framebuffer) Allocated() bool         { return f.buf != nil }

func (f *Framebuffer) allocator() Allocator {
	if f.alloc == nil {
		f.alloc = HeapAllocator{}
	}
	return f.alloc
}

// Resize releases the current memory and allocates a zeroed buffer for
// width×height pixels. On failure the framebuffer is left empty and an
// *AllocationError is returned.
func (f *Framebuffer) Resize(width, height int) error {
	f.Release()

	if width <= 0 || height <= 0 {
		return &AllocationError{Width: width, Height: height, Err: ErrInvalidGeometry}
	}
	if width > math.MaxInt/BytesPerPixel/height {
		return &AllocationError{Width: width, Height: height, Err: ErrTooLarge}
	}

	stride := width * BytesPerPixel
	size := stride * height
	buf, err := f.allocator().Alloc(size)
	if err != nil {
		return &AllocationError{Width: width, Height: height, Bytes: size, Err: err}
	}
	if len(buf) < size {
		f.allocator().Free(buf)
		return &AllocationError{
			Width:  width,
			Height: height,
			Bytes:  size,
			Err:    fmt.Errorf("allocator returned %d bytes: %w", len(buf), ErrTooLarge),
		}
	}

	f.buf = buf[:size]
	f.width = width
	f.height = height
	f.stride = stride
	return nil
}

// Release frees the pixel memory. It is a no-op on an empty framebuffer.
func (f *Framebuffer) Release() {
	if f.buf == nil {
		return
	}
	f.allocator().Free(f.buf)
	f.buf = nil
	f.width = 0
	f.height = 0
	f.stride = 0
}

// RowOffset returns the byte offset of the first pixel of row y.
func (f *Framebuffer) RowOffset(y int) int { return y * f.stride }

// Row returns the bytes of row y, or nil if y is out of range or nothing is allocated.
func (f *Framebuffer) Row(y int) []byte {
	if f.buf == nil || y < 0 || y >= f.height {
		return nil
	}
	off := f.RowOffset(y)
	return f.buf[off : off+f.stride : off+f.stride]
}
