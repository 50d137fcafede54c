package main

import (
	"io"
	"os"

	"golang.org/x/term"
)

const fallbackWidth = 80

// terminalWidth reports the width of w when it is a terminal, and
// fallbackWidth otherwise.
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return fallbackWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return fallbackWidth
	}
	return width
}
