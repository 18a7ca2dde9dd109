package gdraw

import (
	"testing"
	"time"

	"github.com/felipe-sbm/duck-chess/src/base"
	"github.com/felipe-sbm/duck-chess/src/logx"
	"github.com/felipe-sbm/duck-chess/src/sprite"
	"github.com/felipe-sbm/duck-chess/ui/gui/gbase/gconf"
	"github.com/felipe-sbm/duck-chess/ui/gui/gctx"
	"github.com/felipe-sbm/duck-chess/ui/gui/ghelper"
)

func newTestContext(t *testing.T) *gctx.GUIGameContext {
	t.Helper()
	cw := &gconf.Worker{Config: gconf.Config{
		Theme:       "light",
		BoardTheme:  "wood",
		BoardSize:   8,
		PlayerColor: "white",
		WindowW:     1000,
		WindowH:     700,
	}}
	b := base.NewBoard(cw.Config.BoardSize)
	b.SetupClassic()
	aw := ghelper.NewGUIAssetsWorker(cw.Config, sprite.DefaultLayout(), nil)
	return gctx.NewGUIGameContext(b, aw, cw, logx.Nop())
}

// The ready flag is written from the assets loader goroutine and read on
// the game loop, so it has to flip without any game-loop involvement.
func TestBoardDrawerReadyFlag(t *testing.T) {
	ctx := newTestContext(t)
	bd := NewGUIBoardDrawer(ctx)

	deadline := time.Now().Add(10 * time.Second)
	for !bd.spritesReady.Load() {
		if time.Now().After(deadline) {
			t.Fatal("ready flag never flipped")
		}
		time.Sleep(time.Millisecond)
	}
}
