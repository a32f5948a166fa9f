package hal

import "fmt"

// xrgbToRGBA converts w×h XRGB8888 pixels (rows stride bytes apart) into a
// tightly packed, opaque RGBA buffer.
func xrgbToRGBA(dst, src []byte, w, h, stride int) {
	for y := 0; y < h; y++ {
		row := src[y*stride:]
		out := dst[y*w*4:]
		for x := 0; x < w; x++ {
			i := x * 4
			out[i+0] = row[i+2]
			out[i+1] = row[i+1]
			out[i+2] = row[i+0]
			out[i+3] = 0xFF
		}
	}
}

// checkSource validates a blit source against its declared geometry.
func checkSource(src []byte, srcW, srcH, stride int, format PixelFormat) error {
	if format != PixelFormatXRGB8888 {
		return fmt.Errorf("blit %v: %w", format, ErrUnsupportedFormat)
	}
	if srcW <= 0 || srcH <= 0 || stride < srcW*4 {
		return fmt.Errorf("blit %dx%d stride %d: %w", srcW, srcH, stride, ErrInvalidSource)
	}
	if len(src) < (srcH-1)*stride+srcW*4 {
		return fmt.Errorf("blit %dx%d: short buffer (%d bytes): %w", srcW, srcH, len(src), ErrInvalidSource)
	}
	return nil
}
