package gdraw

import (
	"errors"
	"testing"

	"github.com/felipe-sbm/duck-chess/ui/gui/ghelper/gdialog"
)

func TestSettingsBrowseResultAppliedOnGameLoop(t *testing.T) {
	ctx := newTestContext(t)
	sd := NewGUISettingsDrawer(ctx)

	sd.browseActive = true
	sd.browseCh <- browseResult{res: gdialog.Result{Path: "ducks/sheet.png", Name: "sheet.png"}}
	sd.drainBrowse(ctx)

	if sd.browseActive {
		t.Fatal("drain must clear the browse flag")
	}
	if got := ctx.ConfigWorker.Config.SheetPath; got != "ducks/sheet.png" {
		t.Fatalf("sheet path = %q, want the picked file", got)
	}
}

func TestSettingsBrowseCancelLeavesConfig(t *testing.T) {
	ctx := newTestContext(t)
	sd := NewGUISettingsDrawer(ctx)

	sd.browseActive = true
	sd.browseCh <- browseResult{err: errors.New("dialog dismissed")}
	sd.drainBrowse(ctx)

	if sd.browseActive {
		t.Fatal("drain must clear the browse flag on cancel too")
	}
	if got := ctx.ConfigWorker.Config.SheetPath; got != "" {
		t.Fatalf("cancelled dialog must not touch the sheet path, got %q", got)
	}
}

func TestSettingsDrainWithoutResultIsNoop(t *testing.T) {
	ctx := newTestContext(t)
	sd := NewGUISettingsDrawer(ctx)

	sd.browseActive = true
	sd.drainBrowse(ctx)

	if !sd.browseActive {
		t.Fatal("an empty channel must leave the dialog pending")
	}
}
