package sprite

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/fogleman/gg"

	"github.com/felipe-sbm/duck-chess/src/base"
)

var bandFill = map[base.Color]color.RGBA{
	base.White: {0xf2, 0xe9, 0xd8, 0xff},
	base.Black: {0x3a, 0x34, 0x2e, 0xff},
	base.Green: {0x3f, 0x8f, 0x4a, 0xff},
	base.Blue:  {0x3a, 0x6e, 0xb5, 0xff},
}

var bandInk = map[base.Color]color.RGBA{
	base.White: {0x4a, 0x40, 0x32, 0xff},
	base.Black: {0xd8, 0xd2, 0xc8, 0xff},
	base.Green: {0xe8, 0xf5, 0xe0, 0xff},
	base.Blue:  {0xe0, 0xec, 0xf8, 0xff},
}

// GenerateDefaultSheet renders the stock spritesheet matching DefaultLayout
// so the repository needs no binary assets. Pieces are drawn as marked
// discs and each color band gets a four-frame bobbing animation strip.
func GenerateDefaultSheet(layout SheetLayout) *Sheet {
	cols := 8
	rows := 8
	w := cols * layout.FrameW
	h := rows * layout.FrameH
	dc := gg.NewContext(w, h)
	dc.SetRGBA(0, 0, 0, 0)
	dc.Clear()

	for c, types := range layout.Pieces {
		for t, pos := range types {
			drawPieceCell(dc, layout, c, t, pos)
		}
	}
	for c, strip := range layout.Anim {
		for i := 0; i < strip.Range.Len(); i++ {
			drawAnimCell(dc, layout, c, GridPos{Col: strip.Range.StartCol + i, Row: strip.Row}, i)
		}
	}
	return FromImage(dc.Image(), "generated")
}

// WriteDefaultSheet encodes the generated sheet as PNG.
func WriteDefaultSheet(w io.Writer, layout SheetLayout) error {
	s := GenerateDefaultSheet(layout)
	rgba := image.NewRGBA(s.img.Bounds())
	for y := rgba.Bounds().Min.Y; y < rgba.Bounds().Max.Y; y++ {
		for x := rgba.Bounds().Min.X; x < rgba.Bounds().Max.X; x++ {
			rgba.Set(x, y, s.img.At(x, y))
		}
	}
	return png.Encode(w, rgba)
}

func cellCenter(layout SheetLayout, pos GridPos) (float64, float64) {
	return float64(pos.Col*layout.FrameW) + float64(layout.FrameW)/2,
		float64(pos.Row*layout.FrameH) + float64(layout.FrameH)/2
}

func drawPieceCell(dc *gg.Context, layout SheetLayout, c base.Color, t base.PieceType, pos GridPos) {
	cx, cy := cellCenter(layout, pos)
	r := float64(layout.FrameW) * 0.38

	fill := bandFill[c]
	ink := bandInk[c]
	dc.SetRGBA255(int(fill.R), int(fill.G), int(fill.B), 0xff)
	dc.DrawCircle(cx, cy, r)
	dc.Fill()
	dc.SetRGBA255(int(ink.R), int(ink.G), int(ink.B), 0xff)
	dc.SetLineWidth(1)
	dc.DrawCircle(cx, cy, r)
	dc.Stroke()

	// per-type mark so the cells differ even at 16px
	switch t {
	case base.King:
		dc.DrawLine(cx-3, cy, cx+3, cy)
		dc.DrawLine(cx, cy-3, cx, cy+3)
		dc.Stroke()
	case base.Queen:
		for _, dx := range []float64{-3, 0, 3} {
			dc.DrawCircle(cx+dx, cy, 0.9)
			dc.Fill()
		}
	case base.Bishop:
		dc.MoveTo(cx, cy-3)
		dc.LineTo(cx-3, cy+3)
		dc.LineTo(cx+3, cy+3)
		dc.ClosePath()
		dc.Stroke()
	case base.Knight:
		dc.DrawLine(cx-3, cy+3, cx+2, cy-3)
		dc.DrawLine(cx+2, cy-3, cx+3, cy)
		dc.Stroke()
	case base.Rook:
		dc.DrawRectangle(cx-3, cy-3, 6, 6)
		dc.Stroke()
	case base.Pawn:
		dc.DrawCircle(cx, cy, 1.6)
		dc.Fill()
	}
}

func drawAnimCell(dc *gg.Context, layout SheetLayout, c base.Color, pos GridPos, frame int) {
	cx, cy := cellCenter(layout, pos)
	// bob up and down across the strip
	bob := []float64{0, -1.5, 0, 1.5}[frame%4]
	fill := bandFill[c]
	ink := bandInk[c]

	dc.SetRGBA255(int(fill.R), int(fill.G), int(fill.B), 0xff)
	dc.DrawEllipse(cx, cy+2+bob/2, 5, 3.4)
	dc.Fill()
	dc.DrawCircle(cx+3, cy-3+bob, 2.6)
	dc.Fill()
	dc.SetRGBA255(int(ink.R), int(ink.G), int(ink.B), 0xff)
	dc.DrawCircle(cx+3.8, cy-3.6+bob, 0.6)
	dc.Fill()
	// beak
	dc.SetRGBA255(0xe5, 0xa0, 0x2d, 0xff)
	dc.MoveTo(cx+5.4, cy-3+bob)
	dc.LineTo(cx+7.2, cy-2.4+bob)
	dc.LineTo(cx+5.4, cy-1.8+bob)
	dc.ClosePath()
	dc.Fill()
}
