package ghelper

import (
	"testing"
	"time"

	"github.com/felipe-sbm/duck-chess/src/base"
	"github.com/felipe-sbm/duck-chess/src/sprite"
	"github.com/felipe-sbm/duck-chess/ui/gui/gbase/gconf"
)

func TestAssetsWorkerSubscribe(t *testing.T) {
	// empty SheetPath: the generated default sheet, no files involved
	aw := NewGUIAssetsWorker(gconf.Config{}, sprite.DefaultLayout(), nil)

	done := make(chan struct{})
	aw.Subscribe(func() { close(done) })

	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("sprites never became ready")
	}

	if !aw.Ready() {
		t.Fatal("Ready must report true after the subscriber ran")
	}
	if aw.Piece(base.Piece{Color: base.White, Type: base.King}) == nil {
		t.Fatal("white king sprite missing")
	}
	if got := len(aw.Frames(base.Green)); got != 4 {
		t.Fatalf("green animation strip has %d frames, want 4", got)
	}

	// late subscribers fire immediately on the caller's goroutine
	called := false
	aw.Subscribe(func() { called = true })
	if !called {
		t.Fatal("subscription after ready must fire immediately")
	}
}

func TestAssetsWorkerBadSheetStaysNotReady(t *testing.T) {
	aw := NewGUIAssetsWorker(gconf.Config{SheetPath: "no/such/sheet.png"}, sprite.DefaultLayout(), nil)

	fired := make(chan struct{})
	aw.Subscribe(func() { close(fired) })

	select {
	case <-fired:
		t.Fatal("a failed load must not flip ready")
	case <-time.After(200 * time.Millisecond):
	}
	if aw.Ready() {
		t.Fatal("worker should stay not ready after a load failure")
	}
}
