//go:build cgo || windows

package hal

import (
	"image"

	"gradient/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
)

// WindowConfig controls the desktop window.
type WindowConfig struct {
	Title  string
	Width  int
	Height int
	TPS    int
}

// RunWindow opens a desktop window and steps the application once per tick,
// presenting onto the window surface. It blocks until the application stops
// or the window closes.
func RunWindow(cfg WindowConfig, newApp func(Platform) (StepFunc, error)) error {
	if cfg.Title == "" {
		cfg.Title = "Gradient Renderer"
	}
	if cfg.TPS <= 0 {
		cfg.TPS = 60
	}

	g := &windowGame{
		queue:   NewEventQueue(DefaultEventQueueSize),
		surface: &windowSurface{},
	}
	step, err := newApp(g)
	if err != nil {
		return err
	}
	g.step = step

	ebiten.SetWindowTitle(cfg.Title + " (" + buildinfo.Short() + ")")
	if cfg.Width > 0 && cfg.Height > 0 {
		ebiten.SetWindowSize(cfg.Width, cfg.Height)
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(cfg.TPS)
	return ebiten.RunGame(g)
}

type windowGame struct {
	queue   *EventQueue
	surface *windowSurface
	step    StepFunc
}

func (g *windowGame) PollEvents(dst []Event) []Event { return g.queue.Drain(dst) }
func (g *windowGame) Surface() Surface               { return g.surface }

func (g *windowGame) Update() error {
	if ebiten.IsWindowBeingClosed() {
		g.queue.Push(Event{Kind: EventClose})
	}
	running, err := g.step()
	if err != nil {
		return err
	}
	if !running {
		return ebiten.Termination
	}
	return nil
}

func (g *windowGame) Draw(screen *ebiten.Image) {
	g.surface.draw(screen)
}

func (g *windowGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.surface.width || outsideHeight != g.surface.height {
		g.surface.width = outsideWidth
		g.surface.height = outsideHeight
		g.queue.Push(Event{Kind: EventResize, Width: outsideWidth, Height: outsideHeight})
		g.queue.Push(Event{Kind: EventPaint})
	}
	return outsideWidth, outsideHeight
}

// windowSurface keeps the last blitted frame as an ebiten image and stretches
// it onto the screen on every Draw.
type windowSurface struct {
	width  int
	height int

	img     *ebiten.Image
	scratch []byte
	dst     image.Rectangle
	opts    ebiten.DrawImageOptions
}

func (s *windowSurface) Size() (width, height int) { return s.width, s.height }

func (s *windowSurface) Blit(dst image.Rectangle, src []byte, srcW, srcH, stride int, format PixelFormat) error {
	if err := checkSource(src, srcW, srcH, stride, format); err != nil {
		return err
	}
	if s.img == nil || s.img.Bounds().Dx() != srcW || s.img.Bounds().Dy() != srcH {
		if s.img != nil {
			s.img.Deallocate()
		}
		s.img = ebiten.NewImage(srcW, srcH)
		s.scratch = make([]byte, srcW*srcH*4)
	}

	xrgbToRGBA(s.scratch, src, srcW, srcH, stride)
	s.img.WritePixels(s.scratch)
	s.dst = dst
	return nil
}

func (s *windowSurface) draw(screen *ebiten.Image) {
	if s.img == nil || s.dst.Empty() {
		return
	}
	b := s.img.Bounds()
	s.opts = ebiten.DrawImageOptions{}
	s.opts.GeoM.Scale(float64(s.dst.Dx())/float64(b.Dx()), float64(s.dst.Dy())/float64(b.Dy()))
	s.opts.GeoM.Translate(float64(s.dst.Min.X), float64(s.dst.Min.Y))
	s.opts.Filter = ebiten.FilterNearest
	screen.DrawImage(s.img, &s.opts)
}
