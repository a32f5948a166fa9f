package render

import (
	"image/color"
	"testing"
)

func TestDrawTextClipsAndDraws(t *testing.T) {
	fb := newTestFramebuffer(t, 64, 32)
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}

	DrawText(fb, 0, 0, "8", white)
	// '8' has its top row fully set.
	for x := 0; x < glyphW*hudScale; x++ {
		r, g, b := mustPixel(t, fb, x, 0)
		if r != 255 || g != 255 || b != 255 {
			t.Fatalf("pixel (%d,0) = (%d,%d,%d), want white", x, r, g, b)
		}
	}
	if r, _, _ := mustPixel(t, fb, glyphW*hudScale, 0); r != 0 {
		t.Fatal("glyph spacing column was drawn")
	}

	// Drawing past the edges must not panic.
	DrawText(fb, 60, 28, "888", white)
	DrawText(fb, -10, -10, "8", white)
}

func TestDrawHUD(t *testing.T) {
	fb := newTestFramebuffer(t, 320, 80)
	FillGradient(fb, 255, 0, 0)
	DrawHUD(fb, 42, 7, 9)

	r, g, b := mustPixel(t, fb, 0, 0)
	if r != hudBG.R || g != hudBG.G || b != hudBG.B {
		t.Fatalf("HUD corner = (%d,%d,%d), want background", r, g, b)
	}

	w := TextWidth("F:42 X:7 Y:9") + 2*hudPad
	if r, _, _ := mustPixel(t, fb, w+1, 0); r != 255 {
		t.Fatal("HUD drew past its box")
	}
	if TextWidth("FX") != 2*(glyphW+1)*hudScale {
		t.Fatalf("TextWidth(FX) = %d", TextWidth("FX"))
	}
}

func TestDrawHUDEmptyFramebuffer(t *testing.T) {
	DrawHUD(NewFramebuffer(nil), 1, 2, 3)
}
