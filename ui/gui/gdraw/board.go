package gdraw

import (
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"

	"github.com/felipe-sbm/duck-chess/src/anim"
	"github.com/felipe-sbm/duck-chess/src/base"
	"github.com/felipe-sbm/duck-chess/ui/gui/gctx"
	"github.com/felipe-sbm/duck-chess/ui/gui/ghelper"
	"github.com/felipe-sbm/duck-chess/ui/gui/ghelper/gclipboard"
)

// GUIBoardDrawer hosts the animated board plus the companion character
// panel. Clicks inside the board feed the animation controller; everything
// else is static layout.
type GUIBoardDrawer struct {
	// layout
	boardX, boardY int // top-left pixel
	boardPx        int // pixel size of the whole board
	sqSize         int // pixel size per square

	controller *anim.Controller
	character  *characterPanel

	// flipped by the assets worker subscription, which runs on the loader
	// goroutine while the game loop reads it
	spritesReady atomic.Bool

	buttons  []*ghelper.Button
	idxCopy  int
	idxReset int
	idxBack  int

	prevMouseDown bool
	lastTick      time.Time
}

func NewGUIBoardDrawer(ctx *gctx.GUIGameContext) *GUIBoardDrawer {
	bd := &GUIBoardDrawer{lastTick: time.Now()}
	bd.controller = anim.NewController(ctx.Board, ctx.Player, anim.TickerScheduler{}, ctx.Logx)
	bd.character = newCharacterPanel(ctx)

	ctx.AssetsWorker.Subscribe(func() {
		bd.spritesReady.Store(true)
	})

	bd.recalcLayout(ctx)
	bd.makeLayoutButtons(ctx)
	return bd
}

func (bd *GUIBoardDrawer) recalcLayout(ctx *gctx.GUIGameContext) {
	ww := ctx.ConfigWorker.Config.WindowW
	wh := ctx.ConfigWorker.Config.WindowH
	n := ctx.Board.Size()

	maxSize := ww - 420
	if maxSize > wh-120 {
		maxSize = wh - 120
	}
	if maxSize < 320 {
		maxSize = 320
	}
	bd.sqSize = maxSize / n
	bd.boardPx = bd.sqSize * n
	bd.boardX = 60
	bd.boardY = (wh - bd.boardPx) / 2
}

func (bd *GUIBoardDrawer) makeLayoutButtons(ctx *gctx.GUIGameContext) {
	bd.buttons = nil
	x := bd.boardX + bd.boardPx + 40
	y := bd.boardY + bd.boardPx - 3*(48+14) + 14
	w, h := 160, 48
	addBtn := func(label string) int {
		b := ghelper.NewButton(label, x, y, w, h, ctx.Theme)
		y += h + 14
		idx := len(bd.buttons)
		bd.buttons = append(bd.buttons, b)
		return idx
	}
	bd.idxCopy = addBtn("Copy layout")
	bd.idxReset = addBtn("Reset board")
	bd.idxBack = addBtn("Back")
}

func (bd *GUIBoardDrawer) inBoard(mx, my int) bool {
	return mx >= bd.boardX && mx < bd.boardX+bd.boardPx &&
		my >= bd.boardY && my < bd.boardY+bd.boardPx
}

func (bd *GUIBoardDrawer) pixelToCell(mx, my int) base.Point {
	return base.Point{
		Row: (my - bd.boardY) / bd.sqSize,
		Col: (mx - bd.boardX) / bd.sqSize,
	}
}

func (bd *GUIBoardDrawer) Update(ctx *gctx.GUIGameContext) (SceneType, error) {
	bd.recalcLayout(ctx)

	mx, my := ebiten.CursorPosition()
	mouseDown := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	justClicked := mouseDown && !bd.prevMouseDown
	justReleased := !mouseDown && bd.prevMouseDown
	bd.prevMouseDown = mouseDown

	now := time.Now()
	dt := now.Sub(bd.lastTick).Seconds()
	bd.lastTick = now

	for i, b := range bd.buttons {
		clicked := b.HandleInput(mx, my, justClicked, justReleased)
		b.UpdateAnim(dt)
		if clicked {
			switch i {
			case bd.idxCopy:
				if err := gclipboard.WriteAll(ctx.Board.Layout()); err != nil {
					ctx.Logx.Warnf("clipboard write failed: %v", err)
				}
			case bd.idxReset:
				bd.controller.Close()
				ctx.Board.SetupClassic()
			case bd.idxBack:
				bd.controller.Close()
				return SceneMenu, nil
			}
		}
	}

	// board clicks land on mouse release, same as the buttons
	if justReleased && bd.inBoard(mx, my) && bd.spritesReady.Load() {
		bd.controller.Click(bd.pixelToCell(mx, my))
	}

	bd.character.update(ctx, dt, mx, my, justReleased)

	return SceneNotChanged, nil
}

func (bd *GUIBoardDrawer) Draw(ctx *gctx.GUIGameContext, screen *ebiten.Image) {
	screen.Fill(ctx.Theme.Bg)

	border := ghelper.RenderRoundedRect(bd.boardPx+8, bd.boardPx+8, 6, ctx.Theme.ButtonFill, ctx.Theme.ButtonStroke, 2)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(bd.boardX-4), float64(bd.boardY-4))
	screen.DrawImage(border, op)

	bd.drawSquares(ctx, screen)
	bd.drawSelection(ctx, screen)
	bd.drawPieces(ctx, screen)

	for _, b := range bd.buttons {
		b.DrawAnimated(screen, ctx.AssetsWorker.Fonts().Normal, ctx.Theme)
	}

	bd.character.draw(ctx, screen, bd.boardX+bd.boardPx+40, bd.boardY)

	if !bd.spritesReady.Load() {
		text.Draw(screen, "loading sprites...", ctx.AssetsWorker.Fonts().Normal,
			bd.boardX, bd.boardY-12, ctx.Theme.MenuText)
	}
}

func (bd *GUIBoardDrawer) drawSquares(ctx *gctx.GUIGameContext, screen *ebiten.Image) {
	if bg := ctx.AssetsWorker.Board(); bg != nil {
		op := &ebiten.DrawImageOptions{}
		sx := float64(bd.boardPx) / float64(bg.Bounds().Dx())
		sy := float64(bd.boardPx) / float64(bg.Bounds().Dy())
		op.GeoM.Scale(sx, sy)
		op.GeoM.Translate(float64(bd.boardX), float64(bd.boardY))
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(bg, op)
		return
	}

	n := ctx.Board.Size()
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			c := ctx.BoardTheme.Light
			if (row+col)&1 == 1 {
				c = ctx.BoardTheme.Dark
			}
			ghelper.DrawRect(screen,
				float64(bd.boardX+col*bd.sqSize), float64(bd.boardY+row*bd.sqSize),
				float64(bd.sqSize), float64(bd.sqSize), c)
		}
	}
}

func (bd *GUIBoardDrawer) drawSelection(ctx *gctx.GUIGameContext, screen *ebiten.Image) {
	sel, ok := bd.controller.Selected()
	if !ok {
		return
	}
	x := float64(bd.boardX + sel.Col*bd.sqSize)
	y := float64(bd.boardY + sel.Row*bd.sqSize)
	sq := float64(bd.sqSize)
	ghelper.DrawRect(screen, x, y, sq, sq, ctx.BoardTheme.Highlight)
	ghelper.DrawRectStroke(screen, x, y, sq, sq, 3, ctx.Theme.Accent)
}

// drawPieces renders the static sprite per occupied cell. The selected cell
// shows its animation frame instead when a non-empty frame list is known;
// a missing sprite renders nothing at all.
func (bd *GUIBoardDrawer) drawPieces(ctx *gctx.GUIGameContext, screen *ebiten.Image) {
	if !bd.spritesReady.Load() {
		return
	}
	sel, hasSel := bd.controller.Selected()
	frameIdx := bd.controller.FrameIndex()

	n := ctx.Board.Size()
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			p := base.Point{Row: row, Col: col}
			piece := ctx.Board.At(p)
			if piece.IsEmpty() {
				continue
			}

			img := ctx.AssetsWorker.Piece(piece)
			if hasSel && p == sel {
				if frames := ctx.AssetsWorker.Frames(piece.Color); len(frames) > 0 {
					img = frames[frameIdx%len(frames)]
				}
			}
			if img == nil {
				continue
			}

			iw := img.Bounds().Dx()
			scale := float64(bd.sqSize) / float64(iw)
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(scale, scale)
			op.GeoM.Translate(float64(bd.boardX+col*bd.sqSize), float64(bd.boardY+row*bd.sqSize))
			op.Filter = ebiten.FilterNearest
			screen.DrawImage(img, op)
		}
	}
}
