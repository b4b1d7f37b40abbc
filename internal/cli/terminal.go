package cli

import (
	"io"
	"os"

	"golang.org/x/term"
)

// fallbackWidth is used when stdout is not a terminal.
const fallbackWidth = 80

// terminalFile returns w as an *os.File when it is attached to a terminal.
func terminalFile(w io.Writer) (*os.File, bool) {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return nil, false
	}

	return f, true
}

// terminalWidth reports the column count of w, or fallbackWidth.
func terminalWidth(w io.Writer) int {
	f, ok := terminalFile(w)
	if !ok {
		return fallbackWidth
	}

	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return fallbackWidth
	}

	return width
}

// colorsAllowed reports whether styled output makes sense on w.
// NO_COLOR is honored regardless of its value.
func colorsAllowed(w io.Writer) bool {
	if _, set := os.LookupEnv("NO_COLOR"); set {
		return false
	}

	_, ok := terminalFile(w)

	return ok
}
