package sprite

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"strings"
	"testing"
)

// gridSheet builds a sheet of cols x rows cells of the given size, every
// cell filled with a color unique to its grid position.
func gridSheet(t *testing.T, cols, rows, cell int) *Sheet {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, cols*cell, rows*cell))
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			r := image.Rect(col*cell, row*cell, (col+1)*cell, (row+1)*cell)
			draw.Draw(img, r, &image.Uniform{cellColor(col, row)}, image.Point{}, draw.Src)
		}
	}
	return FromImage(img, "grid")
}

func cellColor(col, row int) color.RGBA {
	return color.RGBA{R: uint8(10 + col*37), G: uint8(10 + row*41), B: 200, A: 255}
}

func TestFrame_CropsExpectedCell(t *testing.T) {
	s := gridSheet(t, 4, 2, 16)
	f, err := s.Frame(2, 1, 16, 16)
	if err != nil {
		t.Fatalf("Frame: %v", err)
	}
	if f.Width() != 16 || f.Height() != 16 {
		t.Fatalf("frame is %dx%d, want 16x16", f.Width(), f.Height())
	}
	want := cellColor(2, 1)
	for _, pt := range []image.Point{{0, 0}, {15, 15}, {7, 8}} {
		if got := f.Image.RGBAAt(pt.X, pt.Y); got != want {
			t.Fatalf("pixel %v = %v, want %v", pt, got, want)
		}
	}
}

func TestFrame_Deterministic(t *testing.T) {
	s := gridSheet(t, 4, 2, 16)
	a, err := s.Frame(1, 0, 16, 16)
	if err != nil {
		t.Fatalf("Frame: %v", err)
	}
	b, err := s.Frame(1, 0, 16, 16)
	if err != nil {
		t.Fatalf("Frame: %v", err)
	}
	pa, err := a.PNG()
	if err != nil {
		t.Fatalf("PNG: %v", err)
	}
	pb, err := b.PNG()
	if err != nil {
		t.Fatalf("PNG: %v", err)
	}
	if !bytes.Equal(pa, pb) {
		t.Fatal("identical extractions should serialize to identical bytes")
	}
}

func TestFrame_IndependentBuffer(t *testing.T) {
	s := gridSheet(t, 2, 2, 8)
	a, _ := s.Frame(0, 0, 8, 8)
	b, _ := s.Frame(0, 0, 8, 8)
	a.Image.SetRGBA(0, 0, color.RGBA{1, 2, 3, 255})
	if b.Image.RGBAAt(0, 0) == a.Image.RGBAAt(0, 0) {
		t.Fatal("frames must not share pixel storage")
	}
}

func TestFrame_Geometry(t *testing.T) {
	s := gridSheet(t, 4, 2, 16)
	cases := []struct {
		col, row, fw, fh int
	}{
		{4, 0, 16, 16},  // column past the grid
		{0, 2, 16, 16},  // row past the grid
		{-1, 0, 16, 16}, // negative column
		{0, -1, 16, 16}, // negative row
		{0, 0, 0, 16},   // zero width
		{0, 0, 16, -3},  // negative height
	}
	for _, tc := range cases {
		_, err := s.Frame(tc.col, tc.row, tc.fw, tc.fh)
		var re *RenderError
		if !errors.As(err, &re) {
			t.Fatalf("Frame(%d,%d,%d,%d) err = %v, want RenderError", tc.col, tc.row, tc.fw, tc.fh, err)
		}
	}
}

func TestFrameRange_OrderAndCount(t *testing.T) {
	s := gridSheet(t, 6, 2, 8)
	frames, err := s.FrameRange(1, 1, 4, 8, 8)
	if err != nil {
		t.Fatalf("FrameRange: %v", err)
	}
	if len(frames) != 4 {
		t.Fatalf("got %d frames, want 4", len(frames))
	}
	for i, f := range frames {
		want := cellColor(1+i, 1)
		if got := f.Image.RGBAAt(3, 3); got != want {
			t.Fatalf("frame %d color = %v, want %v (column order broken)", i, got, want)
		}
	}
}

func TestFrameRange_SingleAndInverted(t *testing.T) {
	s := gridSheet(t, 4, 1, 8)
	frames, err := s.FrameRange(0, 2, 2, 8, 8)
	if err != nil {
		t.Fatalf("FrameRange: %v", err)
	}
	if len(frames) != 1 {
		t.Fatalf("got %d frames, want 1", len(frames))
	}

	var re *RenderError
	if _, err := s.FrameRange(0, 3, 1, 8, 8); !errors.As(err, &re) {
		t.Fatalf("inverted range err = %v, want RenderError", err)
	}
}

func TestNamedSet(t *testing.T) {
	s := gridSheet(t, 4, 2, 8)
	set, err := s.NamedSet(map[string]GridPos{
		"a": {Col: 0, Row: 0},
		"b": {Col: 3, Row: 1},
	}, 8, 8)
	if err != nil {
		t.Fatalf("NamedSet: %v", err)
	}
	if len(set) != 2 {
		t.Fatalf("got %d entries, want 2", len(set))
	}
	if got := set["b"].Image.RGBAAt(0, 0); got != cellColor(3, 1) {
		t.Fatalf("entry b color = %v, want %v", got, cellColor(3, 1))
	}
}

func TestSplit_RowMajor(t *testing.T) {
	s := gridSheet(t, 3, 2, 10)
	frames, err := Split(s, 3, 2)
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	if len(frames) != 6 {
		t.Fatalf("got %d frames, want 6", len(frames))
	}
	for i, f := range frames {
		want := cellColor(i%3, i/3)
		if got := f.Image.RGBAAt(5, 5); got != want {
			t.Fatalf("frame %d color = %v, want %v (not row-major)", i, got, want)
		}
	}
}

func TestSplit_BadGrid(t *testing.T) {
	s := gridSheet(t, 3, 2, 10)
	var re *RenderError
	if _, err := Split(s, 0, 2); !errors.As(err, &re) {
		t.Fatalf("Split(0,2) err = %v, want RenderError", err)
	}
	if _, err := Split(s, 100, 1); !errors.As(err, &re) {
		t.Fatalf("oversized grid err = %v, want RenderError", err)
	}
}

func TestLoadReader(t *testing.T) {
	var buf bytes.Buffer
	img := image.NewRGBA(image.Rect(0, 0, 5, 7))
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode: %v", err)
	}

	s, err := LoadReader(&buf, "mem.png")
	if err != nil {
		t.Fatalf("LoadReader: %v", err)
	}
	if s.Width() != 5 || s.Height() != 7 {
		t.Fatalf("sheet is %dx%d, want 5x7", s.Width(), s.Height())
	}

	var le *LoadError
	if _, err := LoadReader(strings.NewReader("not an image"), "junk"); !errors.As(err, &le) {
		t.Fatalf("bad data err = %v, want LoadError", err)
	} else if le.URL != "junk" {
		t.Fatalf("LoadError.URL = %q, want %q", le.URL, "junk")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	var le *LoadError
	if _, err := Load("no/such/sheet.png"); !errors.As(err, &le) {
		t.Fatalf("missing file err = %v, want LoadError", err)
	}
}

func TestDataURL(t *testing.T) {
	s := gridSheet(t, 1, 1, 4)
	f, _ := s.Frame(0, 0, 4, 4)
	u, err := f.DataURL()
	if err != nil {
		t.Fatalf("DataURL: %v", err)
	}
	if !strings.HasPrefix(u, "data:image/png;base64,") {
		t.Fatalf("unexpected prefix: %q", u[:30])
	}
}
