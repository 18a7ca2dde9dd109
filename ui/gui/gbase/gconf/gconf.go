package gconf

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/felipe-sbm/duck-chess/ui/gui/gbase"
)

const configFile = "duckchess.json"

type Config struct {
	Theme       string `json:"theme"`        // light/dark
	BoardTheme  string `json:"board_theme"`  // wood/slate/pond
	BoardImage  string `json:"board_image"`  // path or URL of a background image, optional
	SheetPath   string `json:"sheet_path"`   // spritesheet path or URL; empty = generated default
	ManifestURL string `json:"manifest_url"` // companion character manifest, optional
	BoardSize   int    `json:"board_size"`   // cells per side
	PlayerColor string `json:"player_color"` // white/black/green/blue
	WindowW     int    `json:"window_w"`
	WindowH     int    `json:"window_h"`
	Debug       bool   `json:"debug"`
}

func defaultConfig() Config {
	return Config{
		Theme:       "light",
		BoardTheme:  "wood",
		BoardImage:  "",
		SheetPath:   "",
		ManifestURL: "",
		BoardSize:   8,
		PlayerColor: "white",
		WindowW:     gbase.WindowW,
		WindowH:     gbase.WindowH,
		Debug:       false,
	}
}

type Worker struct {
	Config Config
}

func NewWorker() (*Worker, error) {
	_, err := os.Stat(configFile)
	if os.IsNotExist(err) {
		return &Worker{Config: defaultConfig()}, nil
	} else if err != nil {
		return nil, err
	}

	f, err := os.Open(configFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var c Config
	if err := json.NewDecoder(f).Decode(&c); err != nil {
		return nil, fmt.Errorf("error decode config: %w", err)
	}
	correctableConfig(&c)
	return &Worker{Config: c}, nil
}

func (w *Worker) Save() error {
	data, err := json.MarshalIndent(w.Config, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(configFile, data, 0644)
}

func correctableConfig(c *Config) {
	def := defaultConfig()
	if c.Theme != "light" && c.Theme != "dark" {
		c.Theme = def.Theme
	}
	switch c.BoardTheme {
	case "wood", "slate", "pond":
	default:
		c.BoardTheme = def.BoardTheme
	}
	switch c.PlayerColor {
	case "white", "black", "green", "blue":
	default:
		c.PlayerColor = def.PlayerColor
	}
	if c.BoardSize < 4 || c.BoardSize > 16 {
		c.BoardSize = def.BoardSize
	}
	if c.WindowW < 640 || c.WindowH < 480 {
		c.WindowW = def.WindowW
		c.WindowH = def.WindowH
	}
}
