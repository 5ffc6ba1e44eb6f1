// Package terminal probes the controlling terminal of stdout.
package terminal

import (
	"os"

	"golang.org/x/term"
)

// Fallback size when stdout is not a terminal
const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// IsInteractive returns true if stdout is attached to a terminal
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// Size returns the terminal width and height, or the defaults when unknown
func Size() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// FitsWidth returns true if columns characters fit on one terminal line
func FitsWidth(columns int) bool {
	if !IsInteractive() {
		return true
	}
	width, _ := Size()
	return columns <= width
}
