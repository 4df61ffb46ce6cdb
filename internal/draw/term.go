// Package draw renders the game board and UI text to an ANSI terminal.
package draw

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// ANSI control sequences shared by the renderer and the shell screens.

// ClearScreen clears the terminal and moves the cursor to the top-left.
func ClearScreen(w io.Writer) {
	fmt.Fprint(w, "\033[H\033[2J")
}

// HideCursor hides the terminal cursor.
func HideCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25l")
}

// ShowCursor shows the terminal cursor.
func ShowCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25h")
}

// MoveCursor moves the cursor to a 1-based column/row position.
func MoveCursor(w io.Writer, col, row int) {
	fmt.Fprintf(w, "\033[%d;%dH", row, col)
}

// TermSizeFunc reports the terminal dimensions. Injected so SSH sessions
// can answer from window-change events instead of the local tty.
type TermSizeFunc func() (width, height int, err error)

// StdoutSize is the TermSizeFunc for the local terminal.
var StdoutSize TermSizeFunc = func() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}
