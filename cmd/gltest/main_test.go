package main

import (
	"bytes"
	"context"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"gltest/config"

	"github.com/stretchr/testify/require"
)

func headlessArgs(extra ...string) []string {
	return append([]string{"-headless", "-hz", "1000", "-ticks", "3", "-log-level", "error"}, extra...)
}

func TestRunHeadless(t *testing.T) {
	var stderr bytes.Buffer
	require.NoError(t, run(context.Background(), headlessArgs("-wireframe", "-workers", "2"), &stderr))
}

func TestRunHeadlessCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, run(ctx, []string{"-headless", "-log-level", "error"}, &bytes.Buffer{}))
}

func TestRunUsageErrors(t *testing.T) {
	var stderr bytes.Buffer
	err := run(context.Background(), []string{"-no-such-flag"}, &stderr)
	require.ErrorIs(t, err, errUsage)
	require.Contains(t, stderr.String(), "no-such-flag")

	err = run(context.Background(), []string{"-log-level", "loud"}, &stderr)
	require.ErrorIs(t, err, errUsage)

	err = run(context.Background(), []string{"-h"}, &stderr)
	require.ErrorIs(t, err, flag.ErrHelp)
}

func TestRunSceneErrors(t *testing.T) {
	dir := t.TempDir()
	scene := filepath.Join(dir, "scene.yaml")
	require.NoError(t, os.WriteFile(scene, []byte("camera:\n  near: 0\n"), 0o644))

	err := run(context.Background(), headlessArgs("-scene", scene), &bytes.Buffer{})
	require.ErrorIs(t, err, config.ErrInvalid)

	err = run(context.Background(), headlessArgs("-mode", "phong"), &bytes.Buffer{})
	require.ErrorIs(t, err, config.ErrInvalid)

	err = run(context.Background(), headlessArgs("-scene", filepath.Join(dir, "missing.yaml")), &bytes.Buffer{})
	require.ErrorIs(t, err, os.ErrNotExist)
}
