package render

import (
	"errors"
	"image"

	"gradient/hal"
)

// Present stretches the whole framebuffer onto the (0,0)-(targetW,targetH)
// region of surface. Failures are wrapped in *PresentationError and are not
// retried. A zero-area target is skipped.
func Present(surface hal.Surface, fb *Framebuffer, targetW, targetH int) error {
	if surface == nil {
		return &PresentationError{Err: errors.New("no display surface")}
	}
	if !fb.Allocated() {
		return &PresentationError{Err: ErrNotAllocated}
	}
	if targetW <= 0 || targetH <= 0 {
		return nil
	}

	dst := image.Rect(0, 0, targetW, targetH)
	if err := surface.Blit(dst, fb.Buffer(), fb.Width(), fb.Height(), fb.StrideBytes(), fb.Format()); err != nil {
		return &PresentationError{Err: err}
	}
	return nil
}
