package sprite

import (
	"testing"

	"github.com/felipe-sbm/duck-chess/src/base"
)

var allColors = []base.Color{base.White, base.Black, base.Green, base.Blue}
var allTypes = []base.PieceType{base.King, base.Queen, base.Bishop, base.Knight, base.Rook, base.Pawn}

func TestDefaultLayout_Complete(t *testing.T) {
	l := DefaultLayout()
	if l.FrameW != 16 || l.FrameH != 16 {
		t.Fatalf("cell size %dx%d, want 16x16", l.FrameW, l.FrameH)
	}
	for _, c := range allColors {
		for _, pt := range allTypes {
			if _, ok := l.PiecePos(base.Piece{Color: c, Type: pt}); !ok {
				t.Fatalf("no position for %s %s", c, pt)
			}
		}
		strip, ok := l.Strip(c)
		if !ok {
			t.Fatalf("no animation strip for %s", c)
		}
		if strip.Range.Len() != 4 {
			t.Fatalf("%s strip has %d frames, want 4", c, strip.Range.Len())
		}
	}
}

func TestLayout_MissingLookupsAreAbsent(t *testing.T) {
	l := DefaultLayout()
	delete(l.Pieces, base.Green)
	delete(l.Anim, base.Blue)

	if _, ok := l.PiecePos(base.Piece{Color: base.Green, Type: base.King}); ok {
		t.Fatal("removed color should have no position")
	}
	if _, ok := l.Strip(base.Blue); ok {
		t.Fatal("removed color should have no strip")
	}
	// still there for the others
	if _, ok := l.PiecePos(base.Piece{Color: base.White, Type: base.Pawn}); !ok {
		t.Fatal("white pawn position should survive")
	}
}

func TestGeneratedSheet_ResolvesFully(t *testing.T) {
	l := DefaultLayout()
	s := GenerateDefaultSheet(l)

	pieces, err := l.PieceFrames(s)
	if err != nil {
		t.Fatalf("PieceFrames: %v", err)
	}
	if len(pieces) != len(allColors)*len(allTypes) {
		t.Fatalf("got %d piece frames, want %d", len(pieces), len(allColors)*len(allTypes))
	}

	anims, err := l.AnimFrames(s)
	if err != nil {
		t.Fatalf("AnimFrames: %v", err)
	}
	if len(anims) != len(allColors) {
		t.Fatalf("got %d strips, want %d", len(anims), len(allColors))
	}
	for c, frames := range anims {
		if len(frames) != 4 {
			t.Fatalf("%s strip has %d frames, want 4", c, len(frames))
		}
		for _, f := range frames {
			if f.Width() != l.FrameW || f.Height() != l.FrameH {
				t.Fatalf("%s frame is %dx%d, want cell size", c, f.Width(), f.Height())
			}
		}
	}
}

func TestGeneratedSheet_FitsLayout(t *testing.T) {
	l := DefaultLayout()
	s := GenerateDefaultSheet(l)
	// every referenced cell must be inside the generated grid
	for _, types := range l.Pieces {
		for _, pos := range types {
			if pos.Col >= s.Columns(l.FrameW) || pos.Row >= s.Rows(l.FrameH) {
				t.Fatalf("layout cell %+v outside generated sheet %dx%d cells",
					pos, s.Columns(l.FrameW), s.Rows(l.FrameH))
			}
		}
	}
	for _, strip := range l.Anim {
		if strip.Range.EndCol >= s.Columns(l.FrameW) || strip.Row >= s.Rows(l.FrameH) {
			t.Fatalf("strip %+v outside generated sheet", strip)
		}
	}
}
