package gdraw

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/felipe-sbm/duck-chess/src/logx"
	"github.com/felipe-sbm/duck-chess/ui/gui/gctx"
)

// Update runs before the first Draw, so a click must not hit the panel
// until a draw has placed it on screen.
func TestCharacterPanelIgnoresClicksBeforePlacement(t *testing.T) {
	cp := &characterPanel{
		size:    128,
		loaded:  true,
		names:   []string{"idle"},
		actions: map[string][]*ebiten.Image{"idle": nil},
	}
	ctx := &gctx.GUIGameContext{Logx: logx.Nop()}

	cp.update(ctx, 0.05, 10, 10, true)
	if cp.playing {
		t.Fatal("click before the first draw must be ignored")
	}

	// once placed, the same click starts the action
	cp.placed = true
	cp.x, cp.y = 0, 0
	cp.update(ctx, 0.05, 10, 10, true)
	if !cp.playing {
		t.Fatal("click inside the placed panel must start playing")
	}
}
