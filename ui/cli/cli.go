package cli

import (
	"io"
	"os"

	"golang.org/x/term"

	"github.com/felipe-sbm/duck-chess/src/base"
)

// Preview prints the board layout once. Color output is used only when
// stdout is a real terminal.
func Preview(b *base.Board, out io.Writer) {
	colorize := false
	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		enableANSI(f)
		colorize = true
	}
	PrintBoard(out, b, colorize)
}
