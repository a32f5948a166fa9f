package hal

import (
	"fmt"
	"image"
	"io"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
)

// ImageSurface is an in-memory display surface backed by an *image.RGBA.
// Blits are stretched with nearest-neighbor sampling.
type ImageSurface struct {
	img *image.RGBA
	src *image.RGBA

	blits uint64
}

func NewImageSurface(width, height int) *ImageSurface {
	s := &ImageSurface{}
	s.Resize(width, height)
	return s
}

// Resize replaces the backing image. Existing contents are discarded.
func (s *ImageSurface) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	s.img = image.NewRGBA(image.Rect(0, 0, width, height))
}

func (s *ImageSurface) Size() (width, height int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

// Image returns the backing image. It is overwritten by the next Blit.
func (s *ImageSurface) Image() *image.RGBA { return s.img }

// Blits returns the number of successful blits.
func (s *ImageSurface) Blits() uint64 { return s.blits }

func (s *ImageSurface) Blit(dst image.Rectangle, src []byte, srcW, srcH, stride int, format PixelFormat) error {
	if err := checkSource(src, srcW, srcH, stride, format); err != nil {
		return err
	}
	dst = dst.Intersect(s.img.Bounds())
	if dst.Empty() {
		return nil
	}

	if s.src == nil || s.src.Bounds().Dx() != srcW || s.src.Bounds().Dy() != srcH {
		s.src = image.NewRGBA(image.Rect(0, 0, srcW, srcH))
	}
	xrgbToRGBA(s.src.Pix, src, srcW, srcH, stride)

	if dst.Dx() == srcW && dst.Dy() == srcH {
		draw.Copy(s.img, dst.Min, s.src, s.src.Bounds(), draw.Src, nil)
	} else {
		draw.NearestNeighbor.Scale(s.img, dst, s.src, s.src.Bounds(), draw.Src, nil)
	}
	s.blits++
	return nil
}

// WriteBMP encodes the current surface contents as a BMP image.
func (s *ImageSurface) WriteBMP(w io.Writer) error {
	if err := bmp.Encode(w, s.img); err != nil {
		return fmt.Errorf("encode bmp: %w", err)
	}
	return nil
}
