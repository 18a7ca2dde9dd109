package ui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"

	"github.com/felipe-sbm/duck-chess/src/base"
	"github.com/felipe-sbm/duck-chess/src/logx"
	"github.com/felipe-sbm/duck-chess/src/sprite"
	clic "github.com/felipe-sbm/duck-chess/ui/cli"
	"github.com/felipe-sbm/duck-chess/ui/gui"
)

const logfile string = "duckchess.log"

func GetLogger(file *os.File, c *cli.Command) *logx.Logx {
	l := logx.NewLogx(
		logx.LevelFromString(c.String("level")),
		c.Bool("debug"),
		c.Bool("console"),
	)
	l.InitLogger(file)
	return l
}

func RunGUI(c *cli.Command) error {
	file, err := os.OpenFile(logfile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		fmt.Printf("error open logfile: %v", err)
		return nil
	}
	defer file.Close()

	g, err := gui.NewGUI(GetLogger(file, c))
	if err != nil {
		return err
	}
	return g.Run()
}

func RunDuckChess() error {
	lf := &cli.StringFlag{
		Name:    "level",
		Aliases: []string{"l"},
		Usage:   "logger level",
		Value:   "info",
	}
	df := &cli.BoolFlag{
		Name:    "debug",
		Aliases: []string{"d"},
		Usage:   "enable debug mode",
	}
	cf := &cli.BoolFlag{
		Name:    "console",
		Aliases: []string{"c"},
		Usage:   "console logger encoding",
	}
	logff := []cli.Flag{lf, df, cf}

	return (&cli.Command{
		Name:  "duck-chess",
		Usage: "animated chessboard toy",
		Commands: []*cli.Command{
			{
				Name:  "gui",
				Flags: logff,
				Action: func(ctx context.Context, c *cli.Command) error {
					if err := RunGUI(c); err != nil {
						fmt.Printf("error GUI: %v", err)
					}
					return nil
				},
			},
			{
				Name:  "preview",
				Usage: "print the starting layout to the terminal",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "size",
						Usage: "board cells per side",
						Value: 8,
					},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					b := base.NewBoard(int(c.Int("size")))
					b.SetupClassic()
					clic.Preview(b, os.Stdout)
					return nil
				},
			},
			{
				Name:  "gen",
				Usage: "render the built-in spritesheet to a PNG file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "out",
						Usage: "output file",
						Value: "duck-sheet.png",
					},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					f, err := os.Create(c.String("out"))
					if err != nil {
						return err
					}
					defer f.Close()
					if err := sprite.WriteDefaultSheet(f, sprite.DefaultLayout()); err != nil {
						return err
					}
					fmt.Printf("wrote %s\n", c.String("out"))
					return nil
				},
			},
			{
				Name:      "split",
				Usage:     "slice a spritesheet into per-frame PNG files",
				ArgsUsage: "<sheet>",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "cols", Usage: "grid columns", Value: 8},
					&cli.IntFlag{Name: "rows", Usage: "grid rows", Value: 8},
					&cli.StringFlag{Name: "out", Usage: "output directory", Value: "frames"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					if c.Args().Len() != 1 {
						return fmt.Errorf("expected one sheet path, got %d args", c.Args().Len())
					}
					return splitSheet(c.Args().First(), int(c.Int("cols")), int(c.Int("rows")), c.String("out"))
				},
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := RunGUI(c); err != nil {
				fmt.Printf("error GUI: %v", err)
			}
			return nil
		},
		Flags: logff,
	}).Run(context.Background(), os.Args)
}

func splitSheet(path string, cols, rows int, outDir string) error {
	s, err := sprite.Load(path)
	if err != nil {
		return err
	}
	frames, err := sprite.Split(s, cols, rows)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return err
	}
	for i, f := range frames {
		data, err := f.PNG()
		if err != nil {
			return err
		}
		name := fmt.Sprintf("frame_r%02d_c%02d.png", i/cols, i%cols)
		if err := os.WriteFile(filepath.Join(outDir, name), data, 0644); err != nil {
			return err
		}
	}
	fmt.Printf("wrote %d frames to %s\n", len(frames), outDir)
	return nil
}
