package gctx

import (
	"github.com/felipe-sbm/duck-chess/src/base"
	"github.com/felipe-sbm/duck-chess/src/logx"
	"github.com/felipe-sbm/duck-chess/ui/gui/gbase"
	"github.com/felipe-sbm/duck-chess/ui/gui/gbase/gconf"
	"github.com/felipe-sbm/duck-chess/ui/gui/ghelper"
)

// ---- GUI Context ----

type GUIGameContext struct {
	Board        *base.Board
	Player       base.Color
	AssetsWorker *ghelper.GUIAssetsWorker
	ConfigWorker *gconf.Worker
	Theme        gbase.Palette
	BoardTheme   gbase.BoardTheme
	Logx         logx.Logger
}

func NewGUIGameContext(b *base.Board, a *ghelper.GUIAssetsWorker, c *gconf.Worker, l logx.Logger) *GUIGameContext {
	player, _ := base.ColorFromString(c.Config.PlayerColor)
	return &GUIGameContext{
		Board:        b,
		Player:       player,
		AssetsWorker: a,
		ConfigWorker: c,
		Theme:        gbase.PaletteFromString(c.Config.Theme),
		BoardTheme:   gbase.BoardThemeFromString(c.Config.BoardTheme),
		Logx:         l,
	}
}
