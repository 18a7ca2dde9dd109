package cli

import (
	"fmt"
	"io"

	"github.com/felipe-sbm/duck-chess/src/base"
)

// ANSI-code
const (
	reset   = "\033[0m"
	lightBg = "\033[47m"
	darkBg  = "\033[100m"
	whiteF  = "\033[97m"
	blackF  = "\033[30m"
	greenF  = "\033[32m"
	blueF   = "\033[34m"
	dimF    = "\033[90m"
)

var whiteGlyph = map[base.PieceType]string{
	base.King:   "♔",
	base.Queen:  "♕",
	base.Rook:   "♖",
	base.Bishop: "♗",
	base.Knight: "♘",
	base.Pawn:   "♙",
}

var blackGlyph = map[base.PieceType]string{
	base.King:   "♚",
	base.Queen:  "♛",
	base.Rook:   "♜",
	base.Bishop: "♝",
	base.Knight: "♞",
	base.Pawn:   "♟",
}

// pieceGlyph picks filled glyphs for every color except white; green and
// blue rely on the foreground color to tell them apart.
func pieceGlyph(p base.Piece) string {
	if p.IsEmpty() {
		return " "
	}
	if p.Color == base.White {
		return whiteGlyph[p.Type]
	}
	return blackGlyph[p.Type]
}

func pieceFg(p base.Piece, lightSquare bool) string {
	switch p.Color {
	case base.White:
		if lightSquare {
			return blackF
		}
		return whiteF
	case base.Black:
		return blackF
	case base.Green:
		return greenF
	case base.Blue:
		return blueF
	}
	return dimF
}

// PrintBoard writes the board with ANSI colors, or a plain dotted grid
// when colorize is off (pipes, dumb terminals).
func PrintBoard(w io.Writer, b *base.Board, colorize bool) {
	n := b.Size()

	if !colorize {
		fmt.Fprintln(w)
		fmt.Fprint(w, b.Layout())
		fmt.Fprintln(w)
		return
	}

	files := "   "
	for col := 0; col < n; col++ {
		files += fmt.Sprintf("%c  ", 'a'+col)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, files)
	for row := 0; row < n; row++ {
		rank := n - row
		fmt.Fprintf(w, "%d ", rank)
		for col := 0; col < n; col++ {
			p := b.At(base.Point{Row: row, Col: col})
			lightSquare := (row+col)%2 == 0

			bg := darkBg
			if lightSquare {
				bg = lightBg
			}
			fg := dimF
			if !p.IsEmpty() {
				fg = pieceFg(p, lightSquare)
			}
			fmt.Fprintf(w, "%s%s %s %s", bg, fg, pieceGlyph(p), reset)
		}
		fmt.Fprintf(w, " %d\n", rank)
	}
	fmt.Fprintln(w, files)
	fmt.Fprintln(w)
}
