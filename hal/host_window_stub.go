//go:build !cgo && !windows

package hal

import "fmt"

// WindowConfig controls the desktop window.
type WindowConfig struct {
	Title  string
	Width  int
	Height int
	TPS    int
}

func RunWindow(_ WindowConfig, _ func(Platform) (StepFunc, error)) error {
	return fmt.Errorf("window mode requires cgo (build/run with CGO_ENABLED=1): %w", ErrNotImplemented)
}
