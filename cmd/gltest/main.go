// Command gltest shows a spinning mesh rendered with glmath and the software
// renderer, in a window or headless.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"gltest/app"
	"gltest/config"
	"gltest/hal"
	"gltest/internal/buildinfo"

	"go.uber.org/zap"
)

// errUsage marks command-line mistakes, reported with exit status 2.
var errUsage = errors.New("usage")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Args[1:], os.Stderr)
	stop()

	switch {
	case err == nil, errors.Is(err, flag.ErrHelp):
	case errors.Is(err, errUsage):
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	default:
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stderr io.Writer) error {
	var headless hal.HeadlessConfig
	var headlessMode bool
	var scenePath, logLevel, mode string
	var workers int
	var wireframe bool

	fs := flag.NewFlagSet("gltest", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVar(&headlessMode, "headless", false, "Run without a window.")
	fs.IntVar(&headless.Hz, "hz", 60, "Tick rate in headless mode.")
	fs.Uint64Var(&headless.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	fs.StringVar(&scenePath, "scene", "", "Scene YAML file (default: built-in cube).")
	fs.StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error.")
	fs.IntVar(&workers, "workers", 0, "Rasterizer bands drawn in parallel (0 = from scene).")
	fs.BoolVar(&wireframe, "wireframe", false, "Start in wireframe mode.")
	fs.StringVar(&mode, "mode", "", "Render mode override: wireframe, flat, vertex-color.")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	logger, err := hal.NewLogger(logLevel)
	if err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	defer func() { _ = logger.Sync() }()

	cfg, err := loadScene(scenePath)
	if err != nil {
		return err
	}
	if workers > 0 {
		cfg.Render.Workers = workers
	}
	if mode != "" {
		cfg.Render.Mode = mode
	}
	if wireframe {
		cfg.Render.Mode = "wireframe"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger.Info("starting",
		zap.String("version", buildinfo.String()),
		zap.Bool("headless", headlessMode),
		zap.String("scene", scenePath),
	)

	hc := hal.HostConfig{
		Width:  cfg.Render.Width,
		Height: cfg.Render.Height,
		Logger: logger,
	}
	newApp := func(h hal.HAL) (func() error, error) {
		return app.New(h, cfg)
	}

	if headlessMode {
		err := hal.RunHeadless(ctx, hc, newApp, headless)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	}
	return hal.RunWindow(hc, newApp)
}

func loadScene(path string) (config.Scene, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.LoadFile(path)
}
