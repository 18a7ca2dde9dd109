package gui

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/felipe-sbm/duck-chess/src/base"
	"github.com/felipe-sbm/duck-chess/src/logx"
	"github.com/felipe-sbm/duck-chess/src/sprite"
	"github.com/felipe-sbm/duck-chess/ui/gui/gbase"
	"github.com/felipe-sbm/duck-chess/ui/gui/gbase/gconf"
	"github.com/felipe-sbm/duck-chess/ui/gui/gctx"
	"github.com/felipe-sbm/duck-chess/ui/gui/gdraw"
	"github.com/felipe-sbm/duck-chess/ui/gui/ghelper"
)

type GUIProcessing struct {
	current gdraw.Scene
	ctx     *gctx.GUIGameContext
}

func NewGUI(log logx.Logger) (*GUIProcessing, error) {
	cw, err := gconf.NewWorker()
	if err != nil {
		return nil, err
	}

	board := base.NewBoard(cw.Config.BoardSize)
	board.SetupClassic()

	aw := ghelper.NewGUIAssetsWorker(cw.Config, sprite.DefaultLayout(), log)
	ctx := gctx.NewGUIGameContext(board, aw, cw, log)
	return &GUIProcessing{
		current: gdraw.NewGUIMenuDrawer(ctx),
		ctx:     ctx,
	}, nil
}

func (gp *GUIProcessing) Run() error {
	ebiten.SetWindowSize(gp.ctx.ConfigWorker.Config.WindowW, gp.ctx.ConfigWorker.Config.WindowH)
	ebiten.SetWindowTitle("duck-chess")
	err := ebiten.RunGame(gp)
	if errors.Is(err, gbase.ErrExit) {
		return nil
	}
	return err
}

func (gp *GUIProcessing) Update() error {
	next, err := gp.current.Update(gp.ctx)
	if err != nil {
		return err
	}
	if next != gdraw.SceneNotChanged {
		if next == gdraw.SceneBoard {
			gp.reloadAssetsIfChanged()
		}
		gp.current = next.ToScene(gp.current, gp.ctx)
	}
	return nil
}

// reloadAssetsIfChanged swaps the assets worker when the settings scene
// picked a different spritesheet.
func (gp *GUIProcessing) reloadAssetsIfChanged() {
	cfg := gp.ctx.ConfigWorker.Config
	if gp.ctx.AssetsWorker.SheetPath() == cfg.SheetPath {
		return
	}
	gp.ctx.AssetsWorker = ghelper.NewGUIAssetsWorker(cfg, sprite.DefaultLayout(), gp.ctx.Logx)
}

func (gp *GUIProcessing) Draw(screen *ebiten.Image) {
	gp.current.Draw(gp.ctx, screen)
}

func (gp *GUIProcessing) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return gp.ctx.ConfigWorker.Config.WindowW, gp.ctx.ConfigWorker.Config.WindowH
}
