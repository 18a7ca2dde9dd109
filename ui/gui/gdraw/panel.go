package gdraw

import (
	"net/http"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"

	"github.com/felipe-sbm/duck-chess/src/anim"
	"github.com/felipe-sbm/duck-chess/src/panel"
	"github.com/felipe-sbm/duck-chess/ui/gui/gctx"
	"github.com/felipe-sbm/duck-chess/ui/gui/ghelper"
)

// characterPanel shows the companion character next to the board: the
// portrait while idle, an action animation once clicked. Clicking again
// moves on to the next action. Frames advance on a dt accumulator at the
// board animation cadence; no extra timer competes with the board's.
type characterPanel struct {
	mu       sync.Mutex
	actions  map[string][]*ebiten.Image
	names    []string
	portrait *ebiten.Image
	loaded   bool

	actionIdx int
	frame     int
	playing   bool
	timer     float64

	// position is only known after the first draw; clicks before that
	// have no rectangle to hit
	placed     bool
	x, y, size int
}

func newCharacterPanel(ctx *gctx.GUIGameContext) *characterPanel {
	cp := &characterPanel{size: 128}
	go func() {
		set := panel.LoadManifest(http.DefaultClient, ctx.ConfigWorker.Config.ManifestURL, ctx.Logx)
		actions := make(map[string][]*ebiten.Image, len(set.Actions))
		for name, frames := range set.Actions {
			imgs := make([]*ebiten.Image, 0, len(frames))
			for _, f := range frames {
				imgs = append(imgs, ebiten.NewImageFromImage(f.Image))
			}
			actions[name] = imgs
		}
		portrait := ebiten.NewImageFromImage(set.Portrait.Image)

		cp.mu.Lock()
		cp.actions = actions
		cp.names = set.ActionNames
		cp.portrait = portrait
		cp.loaded = true
		cp.mu.Unlock()
	}()
	return cp
}

func (cp *characterPanel) contains(mx, my int) bool {
	return cp.placed && ghelper.PointInRect(mx, my, cp.x, cp.y, cp.size, cp.size)
}

func (cp *characterPanel) update(ctx *gctx.GUIGameContext, dt float64, mx, my int, justReleased bool) {
	cp.mu.Lock()
	defer cp.mu.Unlock()
	if !cp.loaded {
		return
	}

	if justReleased && cp.contains(mx, my) {
		if !cp.playing {
			cp.playing = true
		} else {
			cp.actionIdx = (cp.actionIdx + 1) % len(cp.names)
		}
		cp.frame = 0
		cp.timer = 0
		ctx.Logx.Debugf("character action: %s", cp.names[cp.actionIdx])
	}

	if cp.playing {
		cp.timer += dt
		frameDur := 1.0 / float64(anim.FrameRate)
		for cp.timer >= frameDur {
			cp.timer -= frameDur
			cp.frame++
		}
	}
}

func (cp *characterPanel) draw(ctx *gctx.GUIGameContext, screen *ebiten.Image, x, y int) {
	cp.mu.Lock()
	defer cp.mu.Unlock()
	cp.x, cp.y = x, y
	cp.placed = true

	frame := ghelper.RenderRoundedRect(cp.size+8, cp.size+8, 8, ctx.Theme.ButtonFill, ctx.Theme.ButtonStroke, 2)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x-4), float64(y-4))
	screen.DrawImage(frame, op)

	if !cp.loaded {
		return
	}

	img := cp.portrait
	label := "click me"
	if cp.playing {
		name := cp.names[cp.actionIdx]
		frames := cp.actions[name]
		if len(frames) > 0 {
			img = frames[cp.frame%len(frames)]
		}
		label = name
	}
	if img != nil {
		iw, ih := img.Bounds().Dx(), img.Bounds().Dy()
		scale := float64(cp.size) / float64(iw)
		if s := float64(cp.size) / float64(ih); s < scale {
			scale = s
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(float64(x), float64(y))
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(img, op)
	}

	text.Draw(screen, label, ctx.AssetsWorker.Fonts().Normal, x, y+cp.size+20, ctx.Theme.MenuText)
}
