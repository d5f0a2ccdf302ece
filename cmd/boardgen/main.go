// Command boardgen renders the built-in demonstration scenes of the board
// library to EPS, FIG, SVG or TikZ files.
//
// Usage:
//
//	boardgen render --scene starburst --out starburst.svg
//	boardgen render --scene tiling --format fig --page A4 --margin 10 --out tiling.fig
//	boardgen scenes
//	boardgen formats
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/gogpu/board"
	"github.com/gogpu/board/document"
)

var (
	sceneFlag = cli.StringFlag{
		Name:    "scene",
		Aliases: []string{"s"},
		Usage:   "scene to render (see 'boardgen scenes')",
		Value:   "shapes",
	}
	outFlag = cli.StringFlag{
		Name:     "out",
		Aliases:  []string{"o"},
		Usage:    "output file; the format follows the extension unless --format is set",
		Required: true,
	}
	formatFlag = cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Usage:   "output format (see 'boardgen formats')",
	}
	styleFlag = cli.PathFlag{
		Name:  "style",
		Usage: "TOML style file with shape defaults and page settings",
	}
	pageFlag = cli.StringFlag{
		Name:  "page",
		Usage: "page size: BoundingBox, A4, Letter, ...",
	}
	marginFlag = cli.Float64Flag{
		Name:  "margin",
		Usage: "page margin in millimeters",
	}
	// No short alias: -v belongs to the version flag.
	verboseFlag = cli.BoolFlag{
		Name:  "verbose",
		Usage: "log debug information to stderr",
	}
)

func newApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "boardgen",
		Usage:     "render vector drawings with the board library",
		Version:   board.Version,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags:     []cli.Flag{&verboseFlag},
		Before: func(c *cli.Context) error {
			if c.Bool(verboseFlag.Name) {
				board.SetLogger(slog.New(slog.NewTextHandler(c.App.ErrWriter,
					&slog.HandlerOptions{Level: slog.LevelDebug})))
			}
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:   "render",
				Usage:  "render a scene to a file",
				Flags:  []cli.Flag{&sceneFlag, &outFlag, &formatFlag, &styleFlag, &pageFlag, &marginFlag},
				Action: render,
			},
			{
				Name:  "scenes",
				Usage: "list the built-in scenes",
				Action: func(c *cli.Context) error {
					for _, name := range sceneNames() {
						fmt.Fprintf(c.App.Writer, "%-10s %s\n", name, scenes[name].description)
					}
					return nil
				},
			},
			{
				Name:  "formats",
				Usage: "list the registered output formats",
				Action: func(c *cli.Context) error {
					fmt.Fprintln(c.App.Writer, strings.Join(document.Formats(), "\n"))
					return nil
				},
			},
		},
	}
}

func render(c *cli.Context) error {
	sc, err := lookupScene(c.String(sceneFlag.Name))
	if err != nil {
		return err
	}

	style := document.DefaultStyleSettings()
	if path := c.Path(styleFlag.Name); path != "" {
		if style, err = document.LoadStyle(path); err != nil {
			return err
		}
	}
	if c.IsSet(pageFlag.Name) {
		if style.Page, err = document.ParsePageSize(c.String(pageFlag.Name)); err != nil {
			return err
		}
	}
	if c.IsSet(marginFlag.Name) {
		style.Margin = max(c.Float64(marginFlag.Name), 0)
	}

	out := c.String(outFlag.Name)
	format := c.String(formatFlag.Name)
	if format == "" {
		if format, err = document.FormatForExtension(filepath.Ext(out)); err != nil {
			return err
		}
	}

	// Shapes built by the scenes take the style defaults.
	board.SetDefaults(style.Defaults)
	defer board.ResetDefaults()

	b := document.New(document.WithStyle(style), document.WithTitle(c.String(sceneFlag.Name)))
	sc.build(b, style)

	if err := b.SaveFormat(out, format); err != nil {
		return err
	}
	board.Logger().Debug("boardgen: rendered",
		"scene", c.String(sceneFlag.Name),
		"format", format,
		"colors", len(board.CollectColors(b.ShapeList)),
		"out", out)
	fmt.Fprintf(c.App.Writer, "wrote %s\n", out)
	return nil
}

func main() {
	if err := newApp(os.Stdout, os.Stderr).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "boardgen:", err)
		os.Exit(1)
	}
}
