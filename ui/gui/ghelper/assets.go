package ghelper

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/felipe-sbm/duck-chess/src/base"
	"github.com/felipe-sbm/duck-chess/src/logx"
	"github.com/felipe-sbm/duck-chess/src/sprite"
	"github.com/felipe-sbm/duck-chess/ui/gui/gbase/gconf"
	"github.com/felipe-sbm/duck-chess/ui/gui/ghelper/gfont"
)

// GUIAssetsWorker owns the visual assets of one board: the static sprite
// per piece, the animation frame list per color, the optional board
// background and the UI fonts. The spritesheet loads asynchronously; scenes
// subscribe to the ready flip instead of polling per frame. A load failure
// leaves the worker permanently not ready (the board stays in its loading
// state) and is only logged.
type GUIAssetsWorker struct {
	mu     sync.Mutex
	ready  bool
	subs   []func()
	pieces map[base.Piece]*ebiten.Image
	frames map[base.Color][]*ebiten.Image
	board  *ebiten.Image

	fonts     *gfont.Fonts
	layout    sprite.SheetLayout
	sheetPath string
	log       logx.Logger
}

func NewGUIAssetsWorker(cfg gconf.Config, layout sprite.SheetLayout, log logx.Logger) *GUIAssetsWorker {
	if log == nil {
		log = logx.Nop()
	}
	aw := &GUIAssetsWorker{
		fonts:     gfont.LoadFonts("assets/fonts"),
		layout:    layout,
		sheetPath: cfg.SheetPath,
		log:       log,
	}
	go aw.load(cfg)
	return aw
}

func (aw *GUIAssetsWorker) load(cfg gconf.Config) {
	var sheet *sprite.Sheet
	if cfg.SheetPath == "" {
		sheet = sprite.GenerateDefaultSheet(aw.layout)
	} else {
		var err error
		sheet, err = sprite.Load(cfg.SheetPath)
		if err != nil {
			aw.log.Errorf("spritesheet load failed, board stays empty: %v", err)
			return
		}
	}

	pieceFrames, err := aw.layout.PieceFrames(sheet)
	if err != nil {
		aw.log.Errorf("sprite extraction failed: %v", err)
		return
	}
	animFrames, err := aw.layout.AnimFrames(sheet)
	if err != nil {
		aw.log.Errorf("animation strip extraction failed: %v", err)
		return
	}

	pieces := make(map[base.Piece]*ebiten.Image, len(pieceFrames))
	for p, f := range pieceFrames {
		pieces[p] = ebiten.NewImageFromImage(f.Image)
	}
	frames := make(map[base.Color][]*ebiten.Image, len(animFrames))
	for c, fs := range animFrames {
		imgs := make([]*ebiten.Image, 0, len(fs))
		for _, f := range fs {
			imgs = append(imgs, ebiten.NewImageFromImage(f.Image))
		}
		frames[c] = imgs
	}

	var board *ebiten.Image
	if cfg.BoardImage != "" {
		if bs, err := sprite.Load(cfg.BoardImage); err != nil {
			// background is cosmetic, fall back to the drawn checkerboard
			aw.log.Warnf("board background unavailable: %v", err)
		} else {
			f, err := bs.Frame(0, 0, bs.Width(), bs.Height())
			if err == nil {
				board = ebiten.NewImageFromImage(f.Image)
			}
		}
	}

	var subs []func()
	aw.mu.Lock()
	aw.pieces = pieces
	aw.frames = frames
	aw.board = board
	aw.ready = true
	subs = append(subs, aw.subs...)
	aw.subs = nil
	aw.mu.Unlock()

	aw.log.Infof("sprites ready: %d pieces, %d animation strips", len(pieces), len(frames))
	for _, fn := range subs {
		fn()
	}
}

// Subscribe registers fn to run once when sprites become ready. Already
// ready workers invoke fn immediately.
func (aw *GUIAssetsWorker) Subscribe(fn func()) {
	aw.mu.Lock()
	if aw.ready {
		aw.mu.Unlock()
		fn()
		return
	}
	aw.subs = append(aw.subs, fn)
	aw.mu.Unlock()
}

func (aw *GUIAssetsWorker) Ready() bool {
	aw.mu.Lock()
	defer aw.mu.Unlock()
	return aw.ready
}

// Piece returns the static sprite of p, nil when unknown or not ready.
func (aw *GUIAssetsWorker) Piece(p base.Piece) *ebiten.Image {
	aw.mu.Lock()
	defer aw.mu.Unlock()
	return aw.pieces[p]
}

// Frames returns the animation frame list of a color. May be nil or empty;
// callers fall through to the static sprite then.
func (aw *GUIAssetsWorker) Frames(c base.Color) []*ebiten.Image {
	aw.mu.Lock()
	defer aw.mu.Unlock()
	return aw.frames[c]
}

// Board returns the configured background image, nil when none loaded.
func (aw *GUIAssetsWorker) Board() *ebiten.Image {
	aw.mu.Lock()
	defer aw.mu.Unlock()
	return aw.board
}

func (aw *GUIAssetsWorker) Fonts() *gfont.Fonts {
	return aw.fonts
}

// SheetPath reports which spritesheet this worker was built for.
func (aw *GUIAssetsWorker) SheetPath() string {
	return aw.sheetPath
}
