// Command gradshot renders one gradient frame and writes it as a BMP file.
package main

import (
	"flag"
	"fmt"
	"os"

	"gradient/hal"
	"gradient/render"
)

const defaultOutPath = "gradient.bmp"

type options struct {
	width, height       int
	outWidth, outHeight int
	red, green, blue    uint
	hud                 bool
	out                 string
}

func main() {
	var opts options
	flag.IntVar(&opts.width, "width", 1280, "Framebuffer width.")
	flag.IntVar(&opts.height, "height", 720, "Framebuffer height.")
	flag.IntVar(&opts.outWidth, "out-width", 0, "Output image width (0 = framebuffer width).")
	flag.IntVar(&opts.outHeight, "out-height", 0, "Output image height (0 = framebuffer height).")
	flag.UintVar(&opts.red, "red", 255, "Red channel (0-255).")
	flag.UintVar(&opts.green, "green", 0, "Green base offset (0-255).")
	flag.UintVar(&opts.blue, "blue", 0, "Blue base offset (0-255).")
	flag.BoolVar(&opts.hud, "hud", false, "Stamp the offsets into the frame.")
	flag.StringVar(&opts.out, "o", defaultOutPath, "Output BMP path.")
	flag.Parse()

	if err := run(opts); err != nil {
		fmt.Fprintln(os.Stderr, "gradshot:", err)
		os.Exit(1)
	}
}

func run(opts options) error {
	if opts.red > 255 || opts.green > 255 || opts.blue > 255 {
		return fmt.Errorf("channel offsets must be in 0-255 (got %d,%d,%d)", opts.red, opts.green, opts.blue)
	}
	if opts.outWidth <= 0 {
		opts.outWidth = opts.width
	}
	if opts.outHeight <= 0 {
		opts.outHeight = opts.height
	}

	surface, err := renderFrame(opts)
	if err != nil {
		return err
	}

	f, err := os.Create(opts.out)
	if err != nil {
		return fmt.Errorf("create %q: %w", opts.out, err)
	}
	if err := surface.WriteBMP(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %q: %w", opts.out, err)
	}
	return f.Close()
}

func renderFrame(opts options) (*hal.ImageSurface, error) {
	fb := render.NewFramebuffer(nil)
	if err := fb.Resize(opts.width, opts.height); err != nil {
		return nil, err
	}
	defer fb.Release()

	red, green, blue := uint8(opts.red), uint8(opts.green), uint8(opts.blue)
	render.FillGradient(fb, red, green, blue)
	if opts.hud {
		render.DrawHUD(fb, 0, green, blue)
	}

	surface := hal.NewImageSurface(opts.outWidth, opts.outHeight)
	if err := render.Present(surface, fb, opts.outWidth, opts.outHeight); err != nil {
		return nil, err
	}
	return surface, nil
}
