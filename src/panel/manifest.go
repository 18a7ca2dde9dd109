// Package panel loads the companion character: a JSON manifest naming
// animation actions and their frame images. Loading never fails outward;
// anything wrong degrades to a single placeholder frame.
package panel

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"sort"
	"strings"

	"github.com/fogleman/gg"

	"github.com/felipe-sbm/duck-chess/src/logx"
	"github.com/felipe-sbm/duck-chess/src/sprite"
)

// Manifest is the on-the-wire shape:
//
//	{ "actions": { "wave": ["frames/wave0.png", ...] }, "portrait": "face.png" }
type Manifest struct {
	Actions  map[string][]string `json:"actions"`
	Portrait string              `json:"portrait"`
}

// CharacterSet is the loaded result: decoded frames per action plus the
// portrait. ActionNames is sorted so cycling order is stable.
type CharacterSet struct {
	Portrait    *sprite.Frame
	Actions     map[string][]*sprite.Frame
	ActionNames []string
	Placeholder bool
}

// PlaceholderAction names the single action of a degraded set.
const PlaceholderAction = "idle"

// LoadManifest fetches and resolves a character manifest. Relative frame
// paths are resolved against the manifest location. On any failure (fetch,
// malformed JSON, missing frames) it logs a diagnostic and returns the
// placeholder set instead of an error.
func LoadManifest(client *http.Client, url string, log logx.Logger) *CharacterSet {
	if log == nil {
		log = logx.Nop()
	}
	set, err := loadManifest(client, url)
	if err != nil {
		log.Warnf("character manifest %q unavailable, using placeholder: %v", url, err)
		return PlaceholderSet()
	}
	return set
}

func loadManifest(client *http.Client, url string) (*CharacterSet, error) {
	raw, err := fetch(client, url)
	if err != nil {
		return nil, err
	}
	var m Manifest
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("decode manifest: %w", err)
	}
	if len(m.Actions) == 0 {
		return nil, fmt.Errorf("manifest has no actions")
	}
	if m.Portrait == "" {
		return nil, fmt.Errorf("manifest has no portrait")
	}

	set := &CharacterSet{Actions: make(map[string][]*sprite.Frame, len(m.Actions))}
	for name, urls := range m.Actions {
		frames := make([]*sprite.Frame, 0, len(urls))
		for _, u := range urls {
			f, err := loadFrame(client, resolveRef(url, u))
			if err != nil {
				return nil, err
			}
			frames = append(frames, f)
		}
		set.Actions[name] = frames
		set.ActionNames = append(set.ActionNames, name)
	}
	sort.Strings(set.ActionNames)

	portrait, err := loadFrame(client, resolveRef(url, m.Portrait))
	if err != nil {
		return nil, err
	}
	set.Portrait = portrait
	return set, nil
}

func fetch(client *http.Client, url string) ([]byte, error) {
	if strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://") {
		resp, err := client.Get(url)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("fetch manifest: status %s", resp.Status)
		}
		return io.ReadAll(resp.Body)
	}
	return os.ReadFile(url)
}

// resolveRef keeps absolute frame references as-is and anchors relative
// ones next to the manifest.
func resolveRef(manifestURL, ref string) string {
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") || strings.HasPrefix(ref, "/") {
		return ref
	}
	idx := strings.LastIndex(manifestURL, "/")
	if idx < 0 {
		return ref
	}
	return manifestURL[:idx+1] + ref
}

func loadFrame(client *http.Client, url string) (*sprite.Frame, error) {
	s, err := sprite.LoadWith(client, url)
	if err != nil {
		return nil, err
	}
	return s.Frame(0, 0, s.Width(), s.Height())
}

// PlaceholderSet builds the degraded character: one procedurally drawn
// frame serving as both portrait and sole action.
func PlaceholderSet() *CharacterSet {
	f := placeholderFrame(64)
	return &CharacterSet{
		Portrait:    f,
		Actions:     map[string][]*sprite.Frame{PlaceholderAction: {f}},
		ActionNames: []string{PlaceholderAction},
		Placeholder: true,
	}
}

func placeholderFrame(size int) *sprite.Frame {
	dc := gg.NewContext(size, size)
	s := float64(size)
	dc.SetRGBA255(0x60, 0x60, 0x68, 0xff)
	dc.DrawRoundedRectangle(1, 1, s-2, s-2, s/8)
	dc.Fill()
	dc.SetRGBA255(0xc8, 0xc8, 0xd0, 0xff)
	dc.SetLineWidth(s / 16)
	dc.DrawArc(s/2, s*0.42, s*0.18, -3.4, 1.2)
	dc.Stroke()
	dc.DrawCircle(s/2, s*0.74, s/24)
	dc.Fill()

	sheet := sprite.FromImage(dc.Image(), "placeholder")
	f, err := sheet.Frame(0, 0, size, size)
	if err != nil {
		// geometry is fixed, this cannot trip
		panic(err)
	}
	return f
}
