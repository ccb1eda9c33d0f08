// Package buildinfo carries version details injected with -ldflags:
//
//	go build -ldflags "-X gltest/internal/buildinfo.Version=v0.3.0 -X gltest/internal/buildinfo.Commit=$(git rev-parse --short HEAD)"
package buildinfo

import "strings"

// Version is set at build time via -ldflags.
var Version = "dev"

// Commit is set at build time via -ldflags.
var Commit = "unknown"

// Date is set at build time via -ldflags.
var Date = "unknown"

// Short returns a compact build identifier for the window title.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	return "dev"
}

// String returns every known field, e.g. "v0.3.0 (abc1234, 2026-01-02)".
func String() string {
	var extra []string
	if Commit != "" && Commit != "unknown" {
		extra = append(extra, Commit)
	}
	if Date != "" && Date != "unknown" {
		extra = append(extra, Date)
	}
	v := Version
	if v == "" {
		v = "dev"
	}
	if len(extra) == 0 {
		return v
	}
	return v + " (" + strings.Join(extra, ", ") + ")"
}
