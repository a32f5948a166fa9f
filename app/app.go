package app

import (
	"errors"
	"fmt"
	"log/slog"

	"gradient/hal"
	"gradient/render"
)

const (
	// DefaultWidth and DefaultHeight are the startup framebuffer geometry,
	// independent of the window size.
	DefaultWidth  = 1280
	DefaultHeight = 720

	// gradientRed is the constant red channel of every frame.
	gradientRed = 255
)

var (
	ErrNotStarted     = errors.New("frame loop not started")
	ErrAlreadyStarted = errors.New("frame loop already started")
)

// State is the frame loop lifecycle state.
type State uint8

const (
	StateUninitialized State = iota
	StateRunning
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateRunning:
		return "running"
	case StateStopped:
		return "stopped"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

type Config struct {
	// Width and Height set the framebuffer geometry. Zero selects the defaults.
	Width  int
	Height int

	// ResizeBuffer reallocates the framebuffer on platform resize events.
	// When false the buffer keeps its startup size and is stretched.
	ResizeBuffer bool

	// HUD stamps the frame counter into each frame.
	HUD bool

	// Allocator backs the framebuffer. Nil selects render.HeapAllocator.
	Allocator render.Allocator
}

func (c Config) withDefaults() Config {
	if c.Width <= 0 {
		c.Width = DefaultWidth
	}
	if c.Height <= 0 {
		c.Height = DefaultHeight
	}
	return c
}

// FrameState holds the per-frame gradient offsets. Both wrap mod 256.
type FrameState struct {
	X uint8
	Y uint8
}

func (s *FrameState) Advance() {
	s.X++
	s.Y++
}

// Stats counts loop activity.
type Stats struct {
	Frames        uint64
	PresentErrors uint64
	Events        uint64
	Paints        uint64
	Resizes       uint64
}

// Loop drives poll events → fill gradient → present on a single goroutine.
// It owns the framebuffer for its whole lifetime.
type Loop struct {
	cfg      Config
	platform hal.Platform
	fb       *render.Framebuffer

	state   State
	offsets FrameState
	stats   Stats
	events  []hal.Event
}

func New(p hal.Platform, cfg Config) *Loop {
	cfg = cfg.withDefaults()
	return &Loop{
		cfg:      cfg,
		platform: p,
		fb:       render.NewFramebuffer(cfg.Allocator),
		events:   make([]hal.Event, 0, hal.DefaultEventQueueSize),
	}
}

func (l *Loop) State() State                     { return l.state }
func (l *Loop) Offsets() FrameState              { return l.offsets }
func (l *Loop) Stats() Stats                     { return l.stats }
func (l *Loop) Framebuffer() *render.Framebuffer { return l.fb }

// Start allocates the framebuffer and enters the running state. An
// allocation failure leaves the loop uninitialized.
func (l *Loop) Start() error {
	if l.state != StateUninitialized {
		return ErrAlreadyStarted
	}
	if err := l.fb.Resize(l.cfg.Width, l.cfg.Height); err != nil {
		Logger().Error("framebuffer allocation failed", "err", err)
		return err
	}
	l.state = StateRunning
	Logger().Info("frame loop started",
		"width", l.fb.Width(),
		"height", l.fb.Height(),
		"stride", l.fb.StrideBytes(),
		"format", l.fb.Format().String(),
	)
	return nil
}

// Step runs one iteration. It returns false once the loop has stopped.
// Presentation failures are logged and do not stop the loop; allocation
// failures do.
func (l *Loop) Step() (bool, error) {
	switch l.state {
	case StateUninitialized:
		return false, ErrNotStarted
	case StateStopped:
		return false, nil
	}

	l.events = l.platform.PollEvents(l.events[:0])
	l.stats.Events += uint64(len(l.events))
	for _, ev := range l.events {
		if ev.Terminal() {
			l.stop(ev.Kind.String())
			return false, nil
		}
	}
	for _, ev := range l.events {
		switch ev.Kind {
		case hal.EventResize:
			if err := l.resize(ev.Width, ev.Height); err != nil {
				l.stop("allocation failure")
				return false, err
			}
		case hal.EventPaint:
			// Coalesced into this iteration's present.
			l.stats.Paints++
		}
	}

	l.offsets.Advance()
	render.FillGradient(l.fb, gradientRed, l.offsets.X, l.offsets.Y)
	l.stats.Frames++
	if l.cfg.HUD {
		render.DrawHUD(l.fb, l.stats.Frames, l.offsets.X, l.offsets.Y)
	}

	surface := l.platform.Surface()
	var w, h int
	if surface != nil {
		w, h = surface.Size()
	}
	if err := render.Present(surface, l.fb, w, h); err != nil {
		l.stats.PresentErrors++
		Logger().Warn("present failed", "frame", l.stats.Frames, "err", err)
	}
	return true, nil
}

func (l *Loop) resize(width, height int) error {
	l.stats.Resizes++
	if !l.cfg.ResizeBuffer {
		Logger().Debug("window resized, framebuffer kept",
			"window", fmt.Sprintf("%dx%d", width, height),
			"framebuffer", fmt.Sprintf("%dx%d", l.fb.Width(), l.fb.Height()),
		)
		return nil
	}
	if width <= 0 || height <= 0 {
		// Minimized; keep the current buffer.
		return nil
	}
	if width == l.fb.Width() && height == l.fb.Height() {
		return nil
	}
	if err := l.fb.Resize(width, height); err != nil {
		Logger().Error("framebuffer reallocation failed", "err", err)
		return err
	}
	Logger().Info("framebuffer reallocated", "width", width, "height", height)
	return nil
}

// Stop requests an explicit quit. It has no effect unless the loop is running.
func (l *Loop) Stop() {
	if l.state == StateRunning {
		l.stop("quit")
	}
}

func (l *Loop) stop(reason string) {
	l.state = StateStopped
	Logger().Info("frame loop stopped",
		slog.String("reason", reason),
		slog.Uint64("frames", l.stats.Frames),
		slog.Uint64("present_errors", l.stats.PresentErrors),
	)
}

// Close stops the loop and releases the framebuffer.
func (l *Loop) Close() {
	l.Stop()
	l.fb.Release()
}
