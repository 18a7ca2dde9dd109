package base

import (
	"fmt"
	"strings"
)

type Color uint8

const (
	White Color = iota
	Black
	Green
	Blue
)

func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Black:
		return "black"
	case Green:
		return "green"
	case Blue:
		return "blue"
	}
	return "unknown"
}

func ColorFromString(s string) (Color, bool) {
	switch s {
	case "white":
		return White, true
	case "black":
		return Black, true
	case "green":
		return Green, true
	case "blue":
		return Blue, true
	}
	return White, false
}

type PieceType uint8

const (
	NoType PieceType = iota
	King
	Queen
	Bishop
	Knight
	Rook
	Pawn
)

func (t PieceType) String() string {
	switch t {
	case King:
		return "king"
	case Queen:
		return "queen"
	case Bishop:
		return "bishop"
	case Knight:
		return "knight"
	case Rook:
		return "rook"
	case Pawn:
		return "pawn"
	}
	return "none"
}

// Piece is a placement identity only: a color and a kind. The zero value
// means an empty cell.
type Piece struct {
	Color Color
	Type  PieceType
}

var NoPiece = Piece{}

func (p Piece) IsEmpty() bool {
	return p.Type == NoType
}

func (p Piece) String() string {
	if p.IsEmpty() {
		return "empty"
	}
	return p.Color.String() + " " + p.Type.String()
}

// Point addresses a board cell. Row 0 is the top of the screen.
type Point struct {
	Row int
	Col int
}

// ParseAlgebraic converts coordinates like "e2" for a board of the given
// size: file letter to column, rank number counted from the bottom.
func ParseAlgebraic(s string, size int) (Point, error) {
	if len(s) < 2 {
		return Point{}, fmt.Errorf("bad square %q", s)
	}
	col := int(s[0] - 'a')
	var rank int
	if _, err := fmt.Sscanf(s[1:], "%d", &rank); err != nil {
		return Point{}, fmt.Errorf("bad square %q", s)
	}
	p := Point{Row: size - rank, Col: col}
	if p.Row < 0 || p.Row >= size || p.Col < 0 || p.Col >= size {
		return Point{}, fmt.Errorf("square %q outside %dx%d board", s, size, size)
	}
	return p, nil
}

// Board is an N x N grid of optional pieces. Placement only: nothing here
// knows or checks chess rules.
type Board struct {
	size  int
	cells []Piece
}

func NewBoard(size int) *Board {
	if size < 1 {
		size = 1
	}
	return &Board{size: size, cells: make([]Piece, size*size)}
}

func (b *Board) Size() int { return b.size }

func (b *Board) InBounds(p Point) bool {
	return p.Row >= 0 && p.Row < b.size && p.Col >= 0 && p.Col < b.size
}

func (b *Board) At(p Point) Piece {
	if !b.InBounds(p) {
		return NoPiece
	}
	return b.cells[p.Row*b.size+p.Col]
}

func (b *Board) SetAt(p Point, piece Piece) {
	if !b.InBounds(p) {
		return
	}
	b.cells[p.Row*b.size+p.Col] = piece
}

func (b *Board) ClearAt(p Point) {
	b.SetAt(p, NoPiece)
}

func (b *Board) Clear() {
	for i := range b.cells {
		b.cells[i] = NoPiece
	}
}

var backRank = []PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// SetupClassic places the standard starting layout: black ranks on top,
// white ranks at the bottom. Boards larger than 8 center is not attempted;
// the layout hugs the edges like the source material. Smaller boards get a
// truncated back rank.
func (b *Board) SetupClassic() {
	b.Clear()
	n := b.size
	for col := 0; col < n && col < len(backRank); col++ {
		b.SetAt(Point{Row: 0, Col: col}, Piece{Color: Black, Type: backRank[col]})
		b.SetAt(Point{Row: n - 1, Col: col}, Piece{Color: White, Type: backRank[col]})
	}
	if n < 2 {
		return
	}
	for col := 0; col < n; col++ {
		b.SetAt(Point{Row: 1, Col: col}, Piece{Color: Black, Type: Pawn})
		b.SetAt(Point{Row: n - 2, Col: col}, Piece{Color: White, Type: Pawn})
	}
}

var typeGlyph = map[PieceType]byte{
	King:   'k',
	Queen:  'q',
	Bishop: 'b',
	Knight: 'n',
	Rook:   'r',
	Pawn:   'p',
}

// Layout dumps the grid as one line per row, '.' for empty cells and a
// letter per piece (uppercase for white, prefixed with the color initial
// for green and blue). Used by the clipboard copy and the CLI preview.
func (b *Board) Layout() string {
	var sb strings.Builder
	for row := 0; row < b.size; row++ {
		for col := 0; col < b.size; col++ {
			p := b.At(Point{Row: row, Col: col})
			if col > 0 {
				sb.WriteByte(' ')
			}
			if p.IsEmpty() {
				sb.WriteByte('.')
				continue
			}
			g := typeGlyph[p.Type]
			switch p.Color {
			case White:
				sb.WriteByte(g - 'a' + 'A')
			case Black:
				sb.WriteByte(g)
			case Green:
				sb.WriteByte('g')
				sb.WriteByte(g)
			case Blue:
				sb.WriteByte('u')
				sb.WriteByte(g)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
