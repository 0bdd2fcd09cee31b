package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"fyne.io/fyne/v2"
	"github.com/spf13/pflag"

	"LocalPaint/internal/config"
	"LocalPaint/internal/paint"
	"LocalPaint/internal/ui"
)

func main() {
	flags := pflag.NewFlagSet("localpaint", pflag.ExitOnError)
	configPath := flags.StringP("config", "c", "", "TOML or YAML settings file, reloaded on change")
	width := flags.Int("width", 0, "surface width")
	height := flags.Int("height", 0, "surface height")
	shape := flags.String("shape", "", "shape drawn per step: segment, circle or square")
	strokeColor := flags.String("color", "", "stroke color name or #rrggbb")
	join := flags.String("join", "", "line join: miter, round or bevel")
	lineWidth := flags.Float64("line-width", 0, "stroke width")
	pngOut := flags.String("png", "", "write the board as PNG on exit")
	pdfOut := flags.String("pdf", "", "mirror strokes into a PDF written on exit")
	verbose := flags.BoolP("verbose", "v", false, "debug logging")
	_ = flags.Parse(os.Args[1:])

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	paint.SetLogger(logger)

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}
	overrides := func(c config.Config) (config.Config, error) {
		if flags.Changed("width") {
			c.Width = *width
		}
		if flags.Changed("height") {
			c.Height = *height
		}
		if flags.Changed("shape") {
			k, err := paint.ParseShapeKind(*shape)
			if err != nil {
				return c, err
			}
			c.Shape = k
		}
		if flags.Changed("color") {
			c.Style.Color = *strokeColor
		}
		if flags.Changed("join") {
			c.Style.Join = *join
		}
		if flags.Changed("line-width") {
			c.Style.Width = *lineWidth
		}
		if flags.Changed("png") {
			c.Output.PNG = *pngOut
		}
		if flags.Changed("pdf") {
			c.Output.PDF = *pdfOut
		}
		return c, c.Validate()
	}
	cfg, err := overrides(cfg)
	if err != nil {
		log.Fatalf("Invalid settings: %v", err)
	}

	board, err := ui.NewBoardWidget(cfg)
	if err != nil {
		log.Fatalf("Failed to create board: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if *configPath != "" {
		go func() {
			err := config.Watch(ctx, *configPath, func(c config.Config) {
				c, err := overrides(c)
				if err != nil {
					board.SetStatus(fmt.Sprintf("Config ignored: %v", err))
					return
				}
				fyne.Do(func() { board.Apply(c) })
			})
			if err != nil {
				slog.Warn("config watch stopped", slog.Any("error", err))
			}
		}()
	}

	slog.Info("starting board",
		slog.Int("width", cfg.Width), slog.Int("height", cfg.Height),
		slog.String("shape", cfg.Shape.String()))
	ui.RunApp(board)
}
