package gdraw

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"

	"github.com/felipe-sbm/duck-chess/ui/gui/gbase"
	"github.com/felipe-sbm/duck-chess/ui/gui/gctx"
	"github.com/felipe-sbm/duck-chess/ui/gui/ghelper"
)

type GUIMenuDrawer struct {
	buttons []*ghelper.Button

	idxPlay     int
	idxSettings int
	idxExit     int

	prevMouseDown bool
	prevTime      time.Time
}

func NewGUIMenuDrawer(ctx *gctx.GUIGameContext) *GUIMenuDrawer {
	md := &GUIMenuDrawer{prevTime: time.Now()}
	md.makeLayout(ctx)
	return md
}

func (md *GUIMenuDrawer) makeLayout(ctx *gctx.GUIGameContext) {
	md.buttons = nil
	w, h := 260, 56
	x := (ctx.ConfigWorker.Config.WindowW - w) / 2
	y := 240
	addBtn := func(label string) int {
		b := ghelper.NewButton(label, x, y, w, h, ctx.Theme)
		y += h + 18
		idx := len(md.buttons)
		md.buttons = append(md.buttons, b)
		return idx
	}
	md.idxPlay = addBtn("Play")
	md.idxSettings = addBtn("Settings")
	md.idxExit = addBtn("Exit")
}

func (md *GUIMenuDrawer) Update(ctx *gctx.GUIGameContext) (SceneType, error) {
	mx, my := ebiten.CursorPosition()
	mouseDown := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	justClicked := mouseDown && !md.prevMouseDown
	justReleased := !mouseDown && md.prevMouseDown
	md.prevMouseDown = mouseDown

	now := time.Now()
	dt := now.Sub(md.prevTime).Seconds()
	md.prevTime = now

	for i, b := range md.buttons {
		clicked := b.HandleInput(mx, my, justClicked, justReleased)
		b.UpdateAnim(dt)
		if clicked {
			ctx.Logx.Infof("menu: %s clicked", b.Label)
			switch i {
			case md.idxPlay:
				return SceneBoard, nil
			case md.idxSettings:
				return SceneSettings, nil
			case md.idxExit:
				return SceneNotChanged, gbase.ErrExit
			}
		}
	}
	return SceneNotChanged, nil
}

func (md *GUIMenuDrawer) Draw(ctx *gctx.GUIGameContext, screen *ebiten.Image) {
	screen.Fill(ctx.Theme.Bg)

	title := "duck-chess"
	face := ctx.AssetsWorker.Fonts().Bold
	bounds := text.BoundString(face, title)
	tx := (ctx.ConfigWorker.Config.WindowW - bounds.Dx()) / 2
	text.Draw(screen, title, face, tx, 160, ctx.Theme.MenuText)

	for _, b := range md.buttons {
		b.DrawAnimated(screen, ctx.AssetsWorker.Fonts().Normal, ctx.Theme)
	}
}
