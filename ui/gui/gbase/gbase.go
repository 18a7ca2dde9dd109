package gbase

import (
	"errors"
	"image/color"
)

// ErrExit is returned from a scene Update to request a clean shutdown.
var ErrExit = errors.New("exit request")

const (
	WindowW int = 1000
	WindowH int = 700
)

// ---- Styles (palettes) ----

type Palette struct {
	Bg           color.RGBA
	ButtonFill   color.RGBA
	ButtonStroke color.RGBA
	ButtonText   color.RGBA
	MenuText     color.RGBA
	Accent       color.RGBA
	ModalBg      color.RGBA
}

func (p Palette) String() string {
	switch p {
	case LightPalette:
		return "light"
	case DarkPalette:
		return "dark"
	}
	return ""
}

func PaletteFromString(p string) Palette {
	if p == "dark" {
		return DarkPalette
	}
	return LightPalette
}

var LightPalette = Palette{
	Bg:           color.RGBA{0xf7, 0xf7, 0xf7, 0xff},
	ButtonFill:   color.RGBA{0xff, 0xff, 0xff, 0xff},
	ButtonStroke: color.RGBA{0x88, 0x88, 0x88, 0xff},
	ButtonText:   color.RGBA{0x22, 0x22, 0x22, 0xff},
	MenuText:     color.RGBA{0x22, 0x22, 0x22, 0xff},
	Accent:       color.RGBA{0x22, 0x88, 0xcc, 0xff},
	ModalBg:      color.RGBA{0x00, 0x00, 0x00, 0x88},
}

var DarkPalette = Palette{
	Bg:           color.RGBA{0x12, 0x12, 0x12, 0xff},
	ButtonFill:   color.RGBA{0x20, 0x20, 0x20, 0xff},
	ButtonStroke: color.RGBA{0xdd, 0xdd, 0xdd, 0xff},
	ButtonText:   color.RGBA{0xee, 0xee, 0xee, 0xff},
	MenuText:     color.RGBA{0xee, 0xee, 0xee, 0xff},
	Accent:       color.RGBA{0x2a, 0xa1, 0xd1, 0xff},
	ModalBg:      color.RGBA{0x00, 0x00, 0x00, 0x99},
}

// ---- Board square themes ----

// BoardTheme colors the checkerboard drawn when no background image is
// configured. Immutable data, swapped by name from the config.
type BoardTheme struct {
	Light     color.RGBA
	Dark      color.RGBA
	Highlight color.RGBA
}

var boardThemes = map[string]BoardTheme{
	"wood": {
		Light:     color.RGBA{0xed, 0xd6, 0xb0, 0xff},
		Dark:      color.RGBA{0xb8, 0x87, 0x62, 0xff},
		Highlight: color.RGBA{0xf5, 0xe1, 0x42, 0x90},
	},
	"slate": {
		Light:     color.RGBA{0xa8, 0xb2, 0xbc, 0xff},
		Dark:      color.RGBA{0x5c, 0x66, 0x70, 0xff},
		Highlight: color.RGBA{0x64, 0xc8, 0xf0, 0x90},
	},
	"pond": {
		Light:     color.RGBA{0xc9, 0xe4, 0xd4, 0xff},
		Dark:      color.RGBA{0x5f, 0x9c, 0x7d, 0xff},
		Highlight: color.RGBA{0xff, 0xd7, 0x4d, 0x90},
	},
}

func BoardThemeFromString(name string) BoardTheme {
	if t, ok := boardThemes[name]; ok {
		return t
	}
	return boardThemes["wood"]
}

func BoardThemeNames() []string {
	return []string{"wood", "slate", "pond"}
}
