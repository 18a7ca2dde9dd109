package gdraw

import (
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"

	"github.com/felipe-sbm/duck-chess/ui/gui/gbase"
	"github.com/felipe-sbm/duck-chess/ui/gui/gctx"
	"github.com/felipe-sbm/duck-chess/ui/gui/ghelper"
	"github.com/felipe-sbm/duck-chess/ui/gui/ghelper/gdialog"
)

type GUISettingsDrawer struct {
	buttons []*ghelper.Button

	btnThemeIdx  int
	btnBoardIdx  int
	btnBrowseIdx int
	btnSaveIdx   int
	btnBackIdx   int

	prevMouseDown bool

	// the dialog goroutine only sends on browseCh; all settings state is
	// touched on the game loop when Update drains it
	browseActive bool
	browseCh     chan browseResult

	lastTick time.Time
}

type browseResult struct {
	res gdialog.Result
	err error
}

func NewGUISettingsDrawer(ctx *gctx.GUIGameContext) *GUISettingsDrawer {
	sd := &GUISettingsDrawer{
		browseCh: make(chan browseResult, 1),
		lastTick: time.Now(),
	}
	sd.makeLayout(ctx)
	return sd
}

// drainBrowse applies a finished file dialog, if any. Runs on the game loop.
func (sd *GUISettingsDrawer) drainBrowse(ctx *gctx.GUIGameContext) {
	select {
	case r := <-sd.browseCh:
		sd.browseActive = false
		if r.err != nil {
			ctx.Logx.Debugf("sheet browse cancelled: %v", r.err)
			return
		}
		ctx.ConfigWorker.Config.SheetPath = r.res.Path
		ctx.Logx.Infof("spritesheet set to %s (takes effect on next play)", r.res.Name)
		sd.makeLayout(ctx)
	default:
	}
}

func (sd *GUISettingsDrawer) makeLayout(ctx *gctx.GUIGameContext) {
	sd.buttons = nil
	btnW, btnH := 300, 56
	spacingY := 18
	startX := (ctx.ConfigWorker.Config.WindowW - btnW) / 2
	y := 140

	addBtn := func(label string) int {
		b := ghelper.NewButton(label, startX, y, btnW, btnH, ctx.Theme)
		y += btnH + spacingY
		idx := len(sd.buttons)
		sd.buttons = append(sd.buttons, b)
		return idx
	}

	sd.btnThemeIdx = addBtn("Theme: " + ctx.ConfigWorker.Config.Theme)
	sd.btnBoardIdx = addBtn("Board: " + ctx.ConfigWorker.Config.BoardTheme)
	sheetLabel := "Sheet: built-in"
	if ctx.ConfigWorker.Config.SheetPath != "" {
		sheetLabel = "Sheet: " + filepath.Base(ctx.ConfigWorker.Config.SheetPath)
	}
	sd.btnBrowseIdx = addBtn(sheetLabel)
	y += spacingY
	sd.btnSaveIdx = addBtn("Save")
	sd.btnBackIdx = addBtn("Back")
}

func (sd *GUISettingsDrawer) Update(ctx *gctx.GUIGameContext) (SceneType, error) {
	mx, my := ebiten.CursorPosition()
	mouseDown := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	justClicked := mouseDown && !sd.prevMouseDown
	justReleased := !mouseDown && sd.prevMouseDown
	sd.prevMouseDown = mouseDown

	now := time.Now()
	dt := now.Sub(sd.lastTick).Seconds()
	sd.lastTick = now

	sd.drainBrowse(ctx)

	for i, b := range sd.buttons {
		clicked := b.HandleInput(mx, my, justClicked, justReleased)
		b.UpdateAnim(dt)
		if !clicked {
			continue
		}
		switch i {
		case sd.btnThemeIdx:
			if ctx.Theme == gbase.LightPalette {
				ctx.Theme = gbase.DarkPalette
			} else {
				ctx.Theme = gbase.LightPalette
			}
			ctx.ConfigWorker.Config.Theme = ctx.Theme.String()
			sd.makeLayout(ctx)
		case sd.btnBoardIdx:
			names := gbase.BoardThemeNames()
			next := 0
			for j, n := range names {
				if n == ctx.ConfigWorker.Config.BoardTheme {
					next = (j + 1) % len(names)
				}
			}
			ctx.ConfigWorker.Config.BoardTheme = names[next]
			ctx.BoardTheme = gbase.BoardThemeFromString(names[next])
			sd.makeLayout(ctx)
		case sd.btnBrowseIdx:
			if sd.browseActive {
				break
			}
			sd.browseActive = true
			go func() {
				res, err := gdialog.OpenImage("Choose a spritesheet")
				sd.browseCh <- browseResult{res: res, err: err}
			}()
		case sd.btnSaveIdx:
			if err := ctx.ConfigWorker.Save(); err != nil {
				ctx.Logx.Errorf("save config: %v", err)
			}
		case sd.btnBackIdx:
			return SceneMenu, nil
		}
	}
	return SceneNotChanged, nil
}

func (sd *GUISettingsDrawer) Draw(ctx *gctx.GUIGameContext, screen *ebiten.Image) {
	screen.Fill(ctx.Theme.Bg)

	title := "Settings"
	face := ctx.AssetsWorker.Fonts().Bold
	bounds := text.BoundString(face, title)
	tx := (ctx.ConfigWorker.Config.WindowW - bounds.Dx()) / 2
	text.Draw(screen, title, face, tx, 90, ctx.Theme.MenuText)

	for _, b := range sd.buttons {
		b.DrawAnimated(screen, ctx.AssetsWorker.Fonts().Normal, ctx.Theme)
	}
}
