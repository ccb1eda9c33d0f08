// Package hal is the boundary between the viewer and the host: a framebuffer to
// draw into, key events, a logger, and the loops that drive an app step function.
package hal

import (
	"errors"
	"image"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
	// Infow logs msg with alternating key/value pairs.
	Infow(msg string, keysAndValues ...any)
}

var (
	ErrNotImplemented = errors.New("not implemented")

	// ErrQuit is returned by an app step to stop the runner without an error.
	ErrQuit = errors.New("quit")
)

// Framebuffer is an RGBA back buffer plus a "present" hook.
//
// Drawing goes to Image; Present publishes it to the window (or to nothing,
// in headless mode) and bumps Frames.
type Framebuffer interface {
	Width() int
	Height() int
	Image() *image.RGBA
	Present() error
	Frames() uint64
}

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
)

// KeyEvent is a keyboard event. Text input arrives with Code == KeyUnknown and
// Rune set.
type KeyEvent struct {
	Code  KeyCode
	Press bool
	Rune  rune
}

// Keyboard provides key events (best-effort on each platform).
type Keyboard interface {
	Events() <-chan KeyEvent
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// Input provides access to input devices (if available).
type Input interface {
	Keyboard() Keyboard
}

// HAL provides the only contact point between the app and the outside world.
type HAL interface {
	Logger() Logger
	Display() Display
	Input() Input
}
