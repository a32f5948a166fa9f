package hal

import (
	"errors"
	"image"
)

var (
	ErrNotImplemented = errors.New("not implemented")

	// ErrUnsupportedFormat is returned by a Surface that cannot read the source pixel format.
	ErrUnsupportedFormat = errors.New("unsupported pixel format")

	// ErrInvalidSource is returned when blit geometry does not match the source buffer.
	ErrInvalidSource = errors.New("invalid blit source")
)

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatXRGB8888 is 32bpp little-endian: byte 0 blue, byte 1 green,
	// byte 2 red, byte 3 unused.
	PixelFormatXRGB8888 PixelFormat = iota + 1
)

// BytesPerPixel returns the storage size of one pixel, or 0 for unknown formats.
func (f PixelFormat) BytesPerPixel() int {
	switch f {
	case PixelFormatXRGB8888:
		return 4
	default:
		return 0
	}
}

func (f PixelFormat) String() string {
	switch f {
	case PixelFormatXRGB8888:
		return "XRGB8888"
	default:
		return "unknown"
	}
}

// EventKind identifies a platform event.
type EventKind uint8

const (
	EventNone EventKind = iota
	EventQuit
	EventClose
	EventPaint
	EventResize
)

func (k EventKind) String() string {
	switch k {
	case EventQuit:
		return "quit"
	case EventClose:
		return "close"
	case EventPaint:
		return "paint"
	case EventResize:
		return "resize"
	default:
		return "none"
	}
}

// Event is a platform event. Width and Height are only set for EventResize.
type Event struct {
	Kind   EventKind
	Width  int
	Height int
}

// Terminal reports whether the event ends the frame loop.
func (e Event) Terminal() bool {
	return e.Kind == EventQuit || e.Kind == EventClose
}

// Surface is a display target owned by the platform.
type Surface interface {
	// Size returns the current drawable size in pixels.
	Size() (width, height int)

	// Blit copies srcW×srcH pixels of src (rows stride bytes apart) into dst,
	// scaling to fit the destination rectangle.
	Blit(dst image.Rectangle, src []byte, srcW, srcH, stride int, format PixelFormat) error
}

// Platform is the window/display layer the frame loop runs on.
type Platform interface {
	// PollEvents appends every queued event to dst and returns it. It never blocks.
	PollEvents(dst []Event) []Event

	Surface() Surface
}

// StepFunc advances the application by one frame. It returns false once the
// application has stopped.
type StepFunc func() (running bool, err error)
