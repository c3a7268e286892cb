// Package terminal wraps golang.org/x/term for sizing and raw-mode control.
package terminal

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// ANSI control sequences used by full-screen terminal frontends
const (
	ClearScreen  = "\x1b[2J"
	CursorHome   = "\x1b[H"
	HideCursor   = "\x1b[?25l"
	ShowCursor   = "\x1b[?25h"
	AltScreenOn  = "\x1b[?1049h"
	AltScreenOff = "\x1b[?1049l"
)

// GetSize returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	return sizeOf(int(os.Stdout.Fd()))
}

func sizeOf(fd int) (width, height int) {
	width, height, err := term.GetSize(fd)
	if err != nil || width <= 0 || height <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// IsTerminal reports whether stdin is attached to a terminal
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// RawMode is an active raw-mode session on stdin
type RawMode struct {
	fd    int
	state *term.State
}

// EnterRaw puts stdin into raw mode. Call Restore on the result when done.
func EnterRaw() (*RawMode, error) {
	fd := int(os.Stdin.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("terminal: cannot enter raw mode: %w", err)
	}
	return &RawMode{fd: fd, state: state}, nil
}

// Restore returns the terminal to the state it had before EnterRaw.
// Safe to call on a nil RawMode and more than once.
func (r *RawMode) Restore() error {
	if r == nil || r.state == nil {
		return nil
	}
	err := term.Restore(r.fd, r.state)
	r.state = nil
	return err
}
