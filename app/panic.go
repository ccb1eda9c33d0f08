package app

import (
	"fmt"
	"runtime/debug"
	"strings"
	"unicode/utf8"

	"gltest/render"
)

const panicLineHeight = 7

// guardedStep runs step and turns a panic into an error. The panic value and
// stack go to the logger and a panic screen is presented in place of the frame.
func (v *viewer) guardedStep() (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		stack := debug.Stack()
		v.logPanic(r, stack)
		v.drawPanic(r, stack)
		err = fmt.Errorf("app: panic in frame %d: %v", v.frame, r)
	}()
	return v.step()
}

func (v *viewer) logPanic(r any, stack []byte) {
	if v.log == nil {
		return
	}
	v.log.WriteLineString(fmt.Sprintf("viewer panic: frame=%d panic=%v", v.frame, r))
	for _, line := range strings.Split(string(stack), "\n") {
		if line == "" {
			continue
		}
		v.log.WriteLineString(line)
	}
}

func (v *viewer) drawPanic(r any, stack []byte) {
	if v.target == nil || v.fb == nil {
		return
	}
	v.target.Clear(render.RGB(0xFF, 0xFF, 0xFF))

	lines := []string{
		"viewer panic:",
		fmt.Sprintf("frame: %d", v.frame),
		fmt.Sprintf("panic: %v", r),
	}
	if len(stack) > 0 {
		lines = append(lines, "stack:")
		for _, line := range strings.Split(string(stack), "\n") {
			if line != "" {
				lines = append(lines, strings.TrimSpace(line))
			}
		}
	}

	w, h := v.target.Size()
	cols := w / max(render.TextWidth("0"), 1)
	if cols <= 0 {
		cols = 1
	}
	fg := render.RGB(0, 0, 0)

	y := 0
	for _, line := range lines {
		for len(line) > 0 && y+panicLineHeight <= h {
			chunk, rest := takeRunes(line, cols)
			render.DrawText(v.target, 0, y, chunk, fg)
			y += panicLineHeight
			line = strings.TrimLeft(rest, " ")
		}
		if y+panicLineHeight > h {
			break
		}
	}
	_ = v.fb.Present()
}

// takeRunes splits s after its first n runes.
func takeRunes(s string, n int) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if len(s) <= n {
		return s, ""
	}
	var i, count int
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
		count++
	}
	return s[:i], s[i:]
}
