package base

import (
	"strings"
	"testing"
)

func TestSetupClassic_StartingLayout(t *testing.T) {
	b := NewBoard(8)
	b.SetupClassic()

	if p := b.At(Point{Row: 6, Col: 4}); p != (Piece{Color: White, Type: Pawn}) {
		t.Fatalf("e2 should hold a white pawn, got %s", p)
	}
	if p := b.At(Point{Row: 1, Col: 4}); p != (Piece{Color: Black, Type: Pawn}) {
		t.Fatalf("e7 should hold a black pawn, got %s", p)
	}
	if p := b.At(Point{Row: 0, Col: 0}); p != (Piece{Color: Black, Type: Rook}) {
		t.Fatalf("a8 should hold a black rook, got %s", p)
	}
	if p := b.At(Point{Row: 7, Col: 4}); p != (Piece{Color: White, Type: King}) {
		t.Fatalf("e1 should hold the white king, got %s", p)
	}
	if p := b.At(Point{Row: 4, Col: 4}); !p.IsEmpty() {
		t.Fatalf("e4 should be empty, got %s", p)
	}
}

func TestSetupClassic_SmallBoard(t *testing.T) {
	b := NewBoard(4)
	b.SetupClassic()
	// truncated back rank, pawns on the second ranks
	if p := b.At(Point{Row: 0, Col: 3}); p != (Piece{Color: Black, Type: Queen}) {
		t.Fatalf("expected black queen in the truncated back rank, got %s", p)
	}
	if p := b.At(Point{Row: 2, Col: 0}); p != (Piece{Color: White, Type: Pawn}) {
		t.Fatalf("expected white pawn, got %s", p)
	}
}

func TestParseAlgebraic(t *testing.T) {
	p, err := ParseAlgebraic("e2", 8)
	if err != nil {
		t.Fatalf("e2: %v", err)
	}
	if p != (Point{Row: 6, Col: 4}) {
		t.Fatalf("e2 = %+v, want {6 4}", p)
	}

	p, err = ParseAlgebraic("a8", 8)
	if err != nil {
		t.Fatalf("a8: %v", err)
	}
	if p != (Point{Row: 0, Col: 0}) {
		t.Fatalf("a8 = %+v, want {0 0}", p)
	}

	for _, bad := range []string{"", "e", "z4", "e9", "e0"} {
		if _, err := ParseAlgebraic(bad, 8); err == nil {
			t.Fatalf("%q should not parse", bad)
		}
	}
}

func TestBoard_OutOfBounds(t *testing.T) {
	b := NewBoard(8)
	b.SetupClassic()
	if p := b.At(Point{Row: -1, Col: 0}); !p.IsEmpty() {
		t.Fatalf("out-of-bounds read should be empty, got %s", p)
	}
	// writes outside the grid are dropped, not panics
	b.SetAt(Point{Row: 8, Col: 8}, Piece{Color: White, Type: Queen})
}

func TestBoard_Layout(t *testing.T) {
	b := NewBoard(2)
	b.SetAt(Point{Row: 0, Col: 0}, Piece{Color: Black, Type: King})
	b.SetAt(Point{Row: 1, Col: 1}, Piece{Color: White, Type: King})

	got := b.Layout()
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("layout should have 2 rows, got %d: %q", len(lines), got)
	}
	if lines[0] != "k ." {
		t.Fatalf("row 0 = %q, want %q", lines[0], "k .")
	}
	if lines[1] != ". K" {
		t.Fatalf("row 1 = %q, want %q", lines[1], ". K")
	}
}

func TestColorFromString(t *testing.T) {
	for _, name := range []string{"white", "black", "green", "blue"} {
		c, ok := ColorFromString(name)
		if !ok {
			t.Fatalf("%q should resolve", name)
		}
		if c.String() != name {
			t.Fatalf("round trip %q -> %q", name, c.String())
		}
	}
	if _, ok := ColorFromString("mauve"); ok {
		t.Fatal("unknown color should not resolve")
	}
}
