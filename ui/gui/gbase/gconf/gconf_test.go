package gconf

import (
	"testing"

	"github.com/felipe-sbm/duck-chess/ui/gui/gbase"
)

func TestDefaultsMatchWindowConstants(t *testing.T) {
	c := defaultConfig()
	if c.WindowW != gbase.WindowW || c.WindowH != gbase.WindowH {
		t.Fatalf("default window %dx%d, want %dx%d", c.WindowW, c.WindowH, gbase.WindowW, gbase.WindowH)
	}
}

func TestCorrectableConfigClamps(t *testing.T) {
	c := Config{
		Theme:       "sepia",
		BoardTheme:  "lava",
		PlayerColor: "purple",
		BoardSize:   99,
		WindowW:     100,
		WindowH:     100,
	}
	correctableConfig(&c)

	if c.Theme != "light" || c.BoardTheme != "wood" || c.PlayerColor != "white" {
		t.Fatalf("enums not clamped: %+v", c)
	}
	if c.BoardSize != 8 {
		t.Fatalf("board size = %d, want the default 8", c.BoardSize)
	}
	if c.WindowW != gbase.WindowW || c.WindowH != gbase.WindowH {
		t.Fatalf("window not clamped: %dx%d", c.WindowW, c.WindowH)
	}
}
