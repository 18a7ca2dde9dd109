// Package sprite slices raster spritesheets into independent per-frame
// image buffers. A Sheet is decoded once; every extraction crops a fresh
// RGBA copy, so frames never alias the source or each other.
package sprite

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"net/http"
	"os"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
)

// LoadError reports a failed fetch or decode of a source image. Loads are
// never retried; the caller decides what a missing sheet means.
type LoadError struct {
	URL string
	Err error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load image %q: %v", e.URL, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// RenderError reports an extraction that cannot produce a frame: bad frame
// geometry or a crop outside the sheet grid.
type RenderError struct {
	Reason string
}

func (e *RenderError) Error() string {
	return "render frame: " + e.Reason
}

// GridPos addresses one cell of a sheet grid.
type GridPos struct {
	Col int
	Row int
}

// Sheet is a decoded source image plus its pixel dimensions.
type Sheet struct {
	name string
	img  image.Image
	w, h int
}

// Load fetches and decodes an image from an http(s) URL or a filesystem
// path. The HTTP fetch has no timeout of its own; pass a client via LoadWith
// to bound it.
func Load(url string) (*Sheet, error) {
	return LoadWith(http.DefaultClient, url)
}

func LoadWith(client *http.Client, url string) (*Sheet, error) {
	var r io.ReadCloser
	if strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://") {
		resp, err := client.Get(url)
		if err != nil {
			return nil, &LoadError{URL: url, Err: err}
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, &LoadError{URL: url, Err: fmt.Errorf("status %s", resp.Status)}
		}
		r = resp.Body
	} else {
		f, err := os.Open(url)
		if err != nil {
			return nil, &LoadError{URL: url, Err: err}
		}
		r = f
	}
	defer r.Close()
	return LoadReader(r, url)
}

// LoadReader decodes an image from a stream. name is only used in errors.
func LoadReader(r io.Reader, name string) (*Sheet, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, &LoadError{URL: name, Err: err}
	}
	b := img.Bounds()
	return &Sheet{name: name, img: img, w: b.Dx(), h: b.Dy()}, nil
}

// FromImage wraps an already decoded image.
func FromImage(img image.Image, name string) *Sheet {
	b := img.Bounds()
	return &Sheet{name: name, img: img, w: b.Dx(), h: b.Dy()}
}

func (s *Sheet) Name() string { return s.name }
func (s *Sheet) Width() int   { return s.w }
func (s *Sheet) Height() int  { return s.h }

func (s *Sheet) Columns(frameW int) int { return s.w / frameW }
func (s *Sheet) Rows(frameH int) int    { return s.h / frameH }

// Frame crops the cell (col,row) of a frameW x frameH grid into a new
// independent buffer. Identical inputs on the same sheet produce
// byte-identical PNG output.
func (s *Sheet) Frame(col, row, frameW, frameH int) (*Frame, error) {
	if frameW <= 0 || frameH <= 0 {
		return nil, &RenderError{Reason: fmt.Sprintf("frame size %dx%d", frameW, frameH)}
	}
	if col < 0 || col >= s.Columns(frameW) {
		return nil, &RenderError{Reason: fmt.Sprintf("column %d outside sheet %q (%d columns)", col, s.name, s.Columns(frameW))}
	}
	if row < 0 || row >= s.Rows(frameH) {
		return nil, &RenderError{Reason: fmt.Sprintf("row %d outside sheet %q (%d rows)", row, s.name, s.Rows(frameH))}
	}

	src := s.img.Bounds().Min
	dst := image.NewRGBA(image.Rect(0, 0, frameW, frameH))
	draw.Draw(dst, dst.Bounds(), s.img, src.Add(image.Pt(col*frameW, row*frameH)), draw.Src)
	return &Frame{Image: dst}, nil
}

// FrameRange extracts one frame per column in [startCol, endCol] inclusive,
// preserving column order. startCol must not exceed endCol.
func (s *Sheet) FrameRange(row, startCol, endCol, frameW, frameH int) ([]*Frame, error) {
	if startCol > endCol {
		return nil, &RenderError{Reason: fmt.Sprintf("column range %d..%d", startCol, endCol)}
	}
	frames := make([]*Frame, 0, endCol-startCol+1)
	for col := startCol; col <= endCol; col++ {
		f, err := s.Frame(col, row, frameW, frameH)
		if err != nil {
			return nil, err
		}
		frames = append(frames, f)
	}
	return frames, nil
}

// NamedSet extracts a frame for every entry of positions. Map iteration
// order does not matter, the result is keyed by name.
func (s *Sheet) NamedSet(positions map[string]GridPos, frameW, frameH int) (map[string]*Frame, error) {
	out := make(map[string]*Frame, len(positions))
	for name, pos := range positions {
		f, err := s.Frame(pos.Col, pos.Row, frameW, frameH)
		if err != nil {
			return nil, err
		}
		out[name] = f
	}
	return out, nil
}

// Split slices the whole sheet into cols*rows frames in row-major order
// (row 0 left to right, then row 1, ...). Frame size is derived from the
// sheet dimensions; trailing pixels that do not fill a cell are dropped.
func Split(s *Sheet, cols, rows int) ([]*Frame, error) {
	if cols < 1 || rows < 1 {
		return nil, &RenderError{Reason: fmt.Sprintf("grid %dx%d", cols, rows)}
	}
	frameW := s.w / cols
	frameH := s.h / rows
	if frameW < 1 || frameH < 1 {
		return nil, &RenderError{Reason: fmt.Sprintf("sheet %dx%d too small for grid %dx%d", s.w, s.h, cols, rows)}
	}
	frames := make([]*Frame, 0, cols*rows)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			f, err := s.Frame(col, row, frameW, frameH)
			if err != nil {
				return nil, err
			}
			frames = append(frames, f)
		}
	}
	return frames, nil
}

// Frame is one cropped cell: an immutable, self-owned RGBA buffer.
type Frame struct {
	Image *image.RGBA
}

func (f *Frame) Width() int  { return f.Image.Bounds().Dx() }
func (f *Frame) Height() int { return f.Image.Bounds().Dy() }

// PNG serializes the frame. Deterministic for identical pixel data.
func (f *Frame) PNG() ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, f.Image); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DataURL serializes the frame as a self-contained embeddable image string.
func (f *Frame) DataURL() (string, error) {
	b, err := f.PNG()
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(b), nil
}
