package gfont

import (
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

type Fonts struct {
	Normal font.Face
	Bold   font.Face
}

// LoadFonts reads the UI typeface from workdir. A missing or broken font
// file degrades to the builtin bitmap face instead of failing the GUI.
func LoadFonts(workdir string) *Fonts {
	fonts := &Fonts{
		Normal: basicfont.Face7x13,
		Bold:   basicfont.Face7x13,
	}

	data, err := os.ReadFile(workdir + "/NotoSansDisplay-Regular.ttf")
	if err != nil {
		return fonts
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return fonts
	}

	if face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    14,
		DPI:     72,
		Hinting: font.HintingNone,
	}); err == nil {
		fonts.Normal = face
	}
	if face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    18,
		DPI:     72,
		Hinting: font.HintingNone,
	}); err == nil {
		fonts.Bold = face
	}
	return fonts
}
