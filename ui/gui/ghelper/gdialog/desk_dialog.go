//go:build !js && !wasm
// +build !js,!wasm

package gdialog

import (
	"path/filepath"

	"github.com/sqweek/dialog"
)

type Result struct {
	Path string
	Name string
}

// OpenImage shows the native file picker filtered to raster images.
func OpenImage(title string) (Result, error) {
	path, err := dialog.File().Title(title).
		Filter("Images", "png", "jpg", "jpeg", "gif").Load()
	if err != nil {
		return Result{}, err
	}
	return Result{Path: path, Name: filepath.Base(path)}, nil
}
