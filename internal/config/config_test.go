package config

import (
	"io"
	"os"
	"path/filepath"
	"testing"
)

func mapLookup(m map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("test", nil, nil, io.Discard)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("cfg = %+v, want %+v", cfg, Default())
	}
	if cfg.Width != 1280 || cfg.Height != 720 {
		t.Fatalf("framebuffer = %dx%d", cfg.Width, cfg.Height)
	}
}

func TestLoadEnvThenFlags(t *testing.T) {
	env := mapLookup(map[string]string{
		"GRADIENT_HEADLESS": "true",
		"GRADIENT_HZ":       "30",
		"GRADIENT_WIDTH":    "640",
		"GRADIENT_FRAMES":   "12",
		"GRADIENT_HUD":      "1",
	})
	cfg, err := Load("test", []string{"-hz", "120", "-snapshot", "out.bmp"}, env, io.Discard)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.Headless || !cfg.HUD {
		t.Fatalf("bools not applied: %+v", cfg)
	}
	if cfg.Hz != 120 {
		t.Fatalf("Hz = %d, want flag value 120", cfg.Hz)
	}
	if cfg.Width != 640 || cfg.Height != 720 {
		t.Fatalf("framebuffer = %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Frames != 12 || cfg.Snapshot != "out.bmp" {
		t.Fatalf("frames=%d snapshot=%q", cfg.Frames, cfg.Snapshot)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		env  map[string]string
	}{
		{name: "bad env bool", env: map[string]string{"GRADIENT_HUD": "maybe"}},
		{name: "bad env int", env: map[string]string{"GRADIENT_WIDTH": "wide"}},
		{name: "zero hz", args: []string{"-hz", "0"}},
		{name: "negative width", args: []string{"-width", "-5"}},
		{name: "zero window", args: []string{"-window-height", "0"}},
		{name: "snapshot without headless", args: []string{"-snapshot", "x.bmp"}},
		{name: "unknown flag", args: []string{"-fullscreen"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load("test", tt.args, mapLookup(tt.env), io.Discard); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestEnvironReadsEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("GRADIENT_TEST_ONLY_KEY=from-file\n"), 0o644); err != nil {
		t.Fatalf("write env file: %v", err)
	}

	lookup, err := Environ(path)
	if err != nil {
		t.Fatalf("Environ: %v", err)
	}
	if v, ok := lookup("GRADIENT_TEST_ONLY_KEY"); !ok || v != "from-file" {
		t.Fatalf("lookup = %q, %v", v, ok)
	}

	t.Setenv("GRADIENT_TEST_ONLY_KEY", "from-env")
	if v, _ := lookup("GRADIENT_TEST_ONLY_KEY"); v != "from-env" {
		t.Fatalf("process env should win, got %q", v)
	}
}

func TestEnvironMissingFile(t *testing.T) {
	lookup, err := Environ(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("Environ: %v", err)
	}
	if _, ok := lookup("GRADIENT_TEST_ONLY_MISSING"); ok {
		t.Fatal("unexpected value")
	}
}
