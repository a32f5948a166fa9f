package hal

import (
	"context"
	"fmt"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Hz     int
	Frames uint64
}

// Headless is a Platform without a window: events are pushed by the caller
// and frames land on an ImageSurface.
type Headless struct {
	queue   *EventQueue
	surface *ImageSurface
}

func NewHeadless(width, height int) *Headless {
	return &Headless{
		queue:   NewEventQueue(DefaultEventQueueSize),
		surface: NewImageSurface(width, height),
	}
}

func (h *Headless) PollEvents(dst []Event) []Event { return h.queue.Drain(dst) }
func (h *Headless) Surface() Surface               { return h.surface }

// Image returns the headless display surface.
func (h *Headless) Image() *ImageSurface { return h.surface }

// Push queues a platform event.
func (h *Headless) Push(ev Event) bool { return h.queue.Push(ev) }

// Resize changes the surface size and queues the matching resize and paint events.
func (h *Headless) Resize(width, height int) {
	h.surface.Resize(width, height)
	h.queue.Push(Event{Kind: EventResize, Width: width, Height: height})
	h.queue.Push(Event{Kind: EventPaint})
}

// Run steps the application at cfg.Hz until it stops, ctx is cancelled or
// cfg.Frames steps have run. On cancellation or frame limit a quit/close
// event is delivered so the application can stop cleanly.
func (h *Headless) Run(ctx context.Context, step StepFunc, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	var frame uint64
	for {
		select {
		case <-ctx.Done():
			h.queue.Push(Event{Kind: EventQuit})
			if _, err := step(); err != nil {
				return err
			}
			return ctx.Err()
		case <-t.C:
			running, err := step()
			if err != nil {
				return err
			}
			if !running {
				return nil
			}
			frame++
			if cfg.Frames > 0 && frame >= cfg.Frames {
				h.queue.Push(Event{Kind: EventClose})
				_, err := step()
				return err
			}
		}
	}
}
