// Command glsnap renders a scene without a window and writes the last frame as
// a PNG, printing its digest.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/png"
	"os"

	"gltest/app"
	"gltest/config"
	"gltest/hal"
	"gltest/render"
)

const defaultOutPath = "frame.png"

func main() {
	var scenePath, outPath string
	var frames int
	flag.StringVar(&scenePath, "scene", "", "Scene YAML file (default: built-in cube).")
	flag.StringVar(&outPath, "out", defaultOutPath, "Output PNG path.")
	flag.IntVar(&frames, "frames", 1, "Frames to step before capturing.")
	flag.Parse()

	if outPath == "" {
		fmt.Fprintln(os.Stderr, "error: -out is required")
		os.Exit(2)
	}
	if frames < 1 {
		fmt.Fprintln(os.Stderr, "error: -frames must be at least 1")
		os.Exit(2)
	}

	digest, err := run(scenePath, outPath, frames)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	fmt.Printf("%s %016x\n", outPath, digest)
}

func run(scenePath, outPath string, frames int) (uint64, error) {
	cfg := config.Default()
	if scenePath != "" {
		var err error
		if cfg, err = config.LoadFile(scenePath); err != nil {
			return 0, err
		}
	}

	h := hal.New(hal.HostConfig{Width: cfg.Render.Width, Height: cfg.Render.Height})
	step, err := app.New(h, cfg)
	if err != nil {
		return 0, err
	}
	for i := 0; i < frames; i++ {
		if err := step(); err != nil {
			if errors.Is(err, hal.ErrQuit) {
				break
			}
			return 0, fmt.Errorf("frame %d: %w", i, err)
		}
	}

	img := h.Display().Framebuffer().Image()
	f, err := os.OpenFile(outPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return 0, fmt.Errorf("open %q: %w", outPath, err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return 0, fmt.Errorf("encode %q: %w", outPath, err)
	}
	if err := f.Close(); err != nil {
		return 0, fmt.Errorf("close %q: %w", outPath, err)
	}
	return render.Digest(img), nil
}
