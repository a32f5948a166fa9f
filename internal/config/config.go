// Package config builds the host runner configuration from command-line
// flags, GRADIENT_* environment variables and an optional .env file.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "GRADIENT_"

// DefaultEnvFile is read when GRADIENT_ENV_FILE is unset.
const DefaultEnvFile = ".env"

type Config struct {
	Headless bool
	Hz       int
	Frames   uint64

	// Width and Height are the framebuffer geometry.
	Width  int
	Height int

	// WindowWidth and WindowHeight size the window or the headless surface.
	WindowWidth  int
	WindowHeight int

	ResizeBuffer bool
	HUD          bool
	Snapshot     string
	Verbose      bool
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Hz:           60,
		Width:        1280,
		Height:       720,
		WindowWidth:  960,
		WindowHeight: 540,
	}
}

// LookupFunc resolves an environment variable.
type LookupFunc func(key string) (string, bool)

// Environ returns a LookupFunc over the process environment, falling back to
// the variables of envFile. A missing envFile is not an error.
func Environ(envFile string) (LookupFunc, error) {
	file := map[string]string{}
	if envFile != "" {
		vars, err := godotenv.Read(envFile)
		switch {
		case err == nil:
			file = vars
		case errors.Is(err, fs.ErrNotExist):
		default:
			return nil, fmt.Errorf("read env file %q: %w", envFile, err)
		}
	}
	return func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := file[key]
		return v, ok
	}, nil
}

// Load applies environment overrides to Default and then parses args.
// Flags take precedence over the environment.
func Load(name string, args []string, lookup LookupFunc, output io.Writer) (Config, error) {
	cfg := Default()
	if lookup != nil {
		if err := applyEnv(&cfg, lookup); err != nil {
			return Config{}, err
		}
	}

	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	if output != nil {
		flags.SetOutput(output)
	}
	flags.BoolVar(&cfg.Headless, "headless", cfg.Headless, "Run without a window.")
	flags.IntVar(&cfg.Hz, "hz", cfg.Hz, "Frame rate of the host runner.")
	flags.Uint64Var(&cfg.Frames, "frames", cfg.Frames, "Stop after N frames in headless mode (0 = run forever).")
	flags.IntVar(&cfg.Width, "width", cfg.Width, "Framebuffer width in pixels.")
	flags.IntVar(&cfg.Height, "height", cfg.Height, "Framebuffer height in pixels.")
	flags.IntVar(&cfg.WindowWidth, "window-width", cfg.WindowWidth, "Window (or headless surface) width.")
	flags.IntVar(&cfg.WindowHeight, "window-height", cfg.WindowHeight, "Window (or headless surface) height.")
	flags.BoolVar(&cfg.ResizeBuffer, "resize-buffer", cfg.ResizeBuffer, "Reallocate the framebuffer when the window is resized.")
	flags.BoolVar(&cfg.HUD, "hud", cfg.HUD, "Draw the frame counter overlay.")
	flags.StringVar(&cfg.Snapshot, "snapshot", cfg.Snapshot, "Write the last headless frame to this BMP file.")
	flags.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "Enable debug logging.")
	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if c.Hz <= 0 {
		return fmt.Errorf("config: invalid hz %d", c.Hz)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("config: invalid framebuffer size %dx%d", c.Width, c.Height)
	}
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return fmt.Errorf("config: invalid window size %dx%d", c.WindowWidth, c.WindowHeight)
	}
	if c.Snapshot != "" && !c.Headless {
		return errors.New("config: -snapshot requires -headless")
	}
	return nil
}

func applyEnv(cfg *Config, lookup LookupFunc) error {
	bools := []struct {
		key string
		dst *bool
	}{
		{"HEADLESS", &cfg.Headless},
		{"RESIZE_BUFFER", &cfg.ResizeBuffer},
		{"HUD", &cfg.HUD},
		{"VERBOSE", &cfg.Verbose},
	}
	for _, b := range bools {
		v, ok := lookup(EnvPrefix + b.key)
		if !ok || v == "" {
			continue
		}
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: %s%s: %w", EnvPrefix, b.key, err)
		}
		*b.dst = parsed
	}

	ints := []struct {
		key string
		dst *int
	}{
		{"HZ", &cfg.Hz},
		{"WIDTH", &cfg.Width},
		{"HEIGHT", &cfg.Height},
		{"WINDOW_WIDTH", &cfg.WindowWidth},
		{"WINDOW_HEIGHT", &cfg.WindowHeight},
	}
	for _, n := range ints {
		v, ok := lookup(EnvPrefix + n.key)
		if !ok || v == "" {
			continue
		}
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: %s%s: %w", EnvPrefix, n.key, err)
		}
		*n.dst = parsed
	}

	if v, ok := lookup(EnvPrefix + "FRAMES"); ok && v != "" {
		parsed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("config: %sFRAMES: %w", EnvPrefix, err)
		}
		cfg.Frames = parsed
	}
	if v, ok := lookup(EnvPrefix + "SNAPSHOT"); ok {
		cfg.Snapshot = v
	}
	return nil
}
