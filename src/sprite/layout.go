package sprite

import (
	"github.com/felipe-sbm/duck-chess/src/base"
)

// StripRange is an inclusive horizontal run of animation frames.
type StripRange struct {
	StartCol int
	EndCol   int
}

func (r StripRange) Len() int { return r.EndCol - r.StartCol + 1 }

// SheetLayout maps piece identities onto sheet grid cells. It is plain
// data: a lookup that finds nothing yields "no visual", never an error.
// Any value with the same shape may be swapped in at construction.
type SheetLayout struct {
	FrameW int
	FrameH int

	// Pieces: color -> piece type -> static sprite cell.
	Pieces map[base.Color]map[base.PieceType]GridPos

	// Anim: color -> animation strip. AnimRow locates the strip row per
	// color alongside the column range.
	Anim map[base.Color]AnimStrip
}

type AnimStrip struct {
	Row   int
	Range StripRange
}

// PiecePos resolves the static sprite cell of a piece.
func (l SheetLayout) PiecePos(p base.Piece) (GridPos, bool) {
	row, ok := l.Pieces[p.Color]
	if !ok {
		return GridPos{}, false
	}
	pos, ok := row[p.Type]
	return pos, ok
}

// Strip resolves the animation strip of a color.
func (l SheetLayout) Strip(c base.Color) (AnimStrip, bool) {
	s, ok := l.Anim[c]
	return s, ok
}

// PieceFrames extracts the static sprite of every piece the layout knows
// about. Pieces missing from the layout are simply absent from the result.
func (l SheetLayout) PieceFrames(s *Sheet) (map[base.Piece]*Frame, error) {
	out := make(map[base.Piece]*Frame)
	for color, types := range l.Pieces {
		for t, pos := range types {
			f, err := s.Frame(pos.Col, pos.Row, l.FrameW, l.FrameH)
			if err != nil {
				return nil, err
			}
			out[base.Piece{Color: color, Type: t}] = f
		}
	}
	return out, nil
}

// AnimFrames extracts the per-color animation frame lists.
func (l SheetLayout) AnimFrames(s *Sheet) (map[base.Color][]*Frame, error) {
	out := make(map[base.Color][]*Frame)
	for color, strip := range l.Anim {
		frames, err := s.FrameRange(strip.Row, strip.Range.StartCol, strip.Range.EndCol, l.FrameW, l.FrameH)
		if err != nil {
			return nil, err
		}
		out[color] = frames
	}
	return out, nil
}

var pieceColumns = map[base.PieceType]int{
	base.King:   0,
	base.Queen:  1,
	base.Bishop: 2,
	base.Knight: 3,
	base.Rook:   4,
	base.Pawn:   5,
}

// DefaultLayout describes the stock duck sheet: 16x16 px cells, four color
// bands of two rows each. The first row of a band holds the six static
// piece sprites, the second row a four-frame animation strip.
func DefaultLayout() SheetLayout {
	l := SheetLayout{
		FrameW: 16,
		FrameH: 16,
		Pieces: make(map[base.Color]map[base.PieceType]GridPos),
		Anim:   make(map[base.Color]AnimStrip),
	}
	bands := []base.Color{base.White, base.Black, base.Green, base.Blue}
	for i, color := range bands {
		baseRow := i * 2
		types := make(map[base.PieceType]GridPos, len(pieceColumns))
		for t, col := range pieceColumns {
			types[t] = GridPos{Col: col, Row: baseRow}
		}
		l.Pieces[color] = types
		l.Anim[color] = AnimStrip{Row: baseRow + 1, Range: StripRange{StartCol: 0, EndCol: 3}}
	}
	return l
}
