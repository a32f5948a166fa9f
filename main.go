package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"gradient/app"
	"gradient/hal"
	"gradient/internal/buildinfo"
	"gradient/internal/config"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	envFile := os.Getenv(config.EnvPrefix + "ENV_FILE")
	if envFile == "" {
		envFile = config.DefaultEnvFile
	}
	lookup, err := config.Environ(envFile)
	if err != nil {
		return err
	}
	cfg, err := config.Load(os.Args[0], os.Args[1:], lookup, os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	app.SetLogger(logger)
	logger.Info("gradient renderer", "build", buildinfo.String(), "headless", cfg.Headless)

	loopCfg := app.Config{
		Width:        cfg.Width,
		Height:       cfg.Height,
		ResizeBuffer: cfg.ResizeBuffer,
		HUD:          cfg.HUD,
	}

	if cfg.Headless {
		return runHeadless(cfg, loopCfg)
	}

	var loop *app.Loop
	defer func() {
		if loop != nil {
			loop.Close()
		}
	}()
	return hal.RunWindow(hal.WindowConfig{
		Width:  cfg.WindowWidth,
		Height: cfg.WindowHeight,
		TPS:    cfg.Hz,
	}, func(p hal.Platform) (hal.StepFunc, error) {
		loop = app.New(p, loopCfg)
		if err := loop.Start(); err != nil {
			return nil, err
		}
		return loop.Step, nil
	})
}

func runHeadless(cfg config.Config, loopCfg app.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	p := hal.NewHeadless(cfg.WindowWidth, cfg.WindowHeight)
	loop := app.New(p, loopCfg)
	if err := loop.Start(); err != nil {
		return err
	}
	defer loop.Close()

	err := p.Run(ctx, loop.Step, hal.HeadlessConfig{Hz: cfg.Hz, Frames: cfg.Frames})
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	if cfg.Snapshot != "" {
		if err := writeSnapshot(cfg.Snapshot, p.Image()); err != nil {
			return err
		}
		app.Logger().Info("snapshot written", "path", cfg.Snapshot)
	}
	return nil
}

func writeSnapshot(path string, s *hal.ImageSurface) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create snapshot %q: %w", path, err)
	}
	if err := s.WriteBMP(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("write snapshot %q: %w", path, err)
	}
	return f.Close()
}
