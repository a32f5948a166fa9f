package render

import (
	"errors"
	"image"
	"testing"

	"gradient/hal"
)

type recordingSurface struct {
	w, h  int
	err   error
	blits []blitCall
}

type blitCall struct {
	dst                image.Rectangle
	srcW, srcH, stride int
	n                  int
	format             hal.PixelFormat
}

func (s *recordingSurface) Size() (int, int) { return s.w, s.h }

func (s *recordingSurface) Blit(dst image.Rectangle, src []byte, srcW, srcH, stride int, format hal.PixelFormat) error {
	if s.err != nil {
		return s.err
	}
	s.blits = append(s.blits, blitCall{dst: dst, srcW: srcW, srcH: srcH, stride: stride, n: len(src), format: format})
	return nil
}

func TestPresentBlitsWholeFramebuffer(t *testing.T) {
	fb := newTestFramebuffer(t, 64, 36)
	s := &recordingSurface{w: 1920, h: 1080}

	if err := Present(s, fb, 1920, 1080); err != nil {
		t.Fatalf("Present: %v", err)
	}
	if len(s.blits) != 1 {
		t.Fatalf("blits = %d, want 1", len(s.blits))
	}
	got := s.blits[0]
	if got.dst != image.Rect(0, 0, 1920, 1080) {
		t.Fatalf("dst = %v", got.dst)
	}
	if got.srcW != 64 || got.srcH != 36 || got.stride != 256 || got.n != 64*36*4 {
		t.Fatalf("src = %dx%d stride %d len %d", got.srcW, got.srcH, got.stride, got.n)
	}
	if got.format != hal.PixelFormatXRGB8888 {
		t.Fatalf("format = %v", got.format)
	}
}

func TestPresentErrors(t *testing.T) {
	errBlit := errors.New("device lost")

	tests := []struct {
		name    string
		surface hal.Surface
		fb      *Framebuffer
		want    error
	}{
		{name: "blit failure", surface: &recordingSurface{err: errBlit}, fb: newTestFramebuffer(t, 2, 2), want: errBlit},
		{name: "not allocated", surface: &recordingSurface{}, fb: NewFramebuffer(nil), want: ErrNotAllocated},
		{name: "nil surface", surface: nil, fb: newTestFramebuffer(t, 2, 2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Present(tt.surface, tt.fb, 10, 10)
			var perr *PresentationError
			if !errors.As(err, &perr) {
				t.Fatalf("err = %v, want *PresentationError", err)
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestPresentSkipsEmptyTarget(t *testing.T) {
	fb := newTestFramebuffer(t, 4, 4)
	s := &recordingSurface{}
	if err := Present(s, fb, 0, 300); err != nil {
		t.Fatalf("Present: %v", err)
	}
	if len(s.blits) != 0 {
		t.Fatalf("blits = %d, want 0", len(s.blits))
	}
}

func TestPresentToImageSurface(t *testing.T) {
	fb := newTestFramebuffer(t, 2, 1)
	FillGradient(fb, 200, 100, 50)

	s := hal.NewImageSurface(4, 2)
	if err := Present(s, fb, 4, 2); err != nil {
		t.Fatalf("Present: %v", err)
	}
	img := s.Image()
	left := img.RGBAAt(1, 1)
	right := img.RGBAAt(2, 0)
	if left.R != 200 || left.G != 100 || left.B != 50 || left.A != 0xFF {
		t.Fatalf("left = %+v", left)
	}
	if right.R != 200 || right.G != 100 || right.B != 51 {
		t.Fatalf("right = %+v", right)
	}
}
