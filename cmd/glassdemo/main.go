// Command glassdemo renders glass panels over a background to PNG.
package main

import (
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/glass"
	"github.com/gogpu/glass/internal/backdrop"
	"github.com/gogpu/glass/internal/config"
	"github.com/gogpu/glass/pointer"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	glass.SetLogger(logger)

	if err := run(os.Args[1:], logger); err != nil {
		logger.Error("glassdemo failed", "err", err)
		os.Exit(1)
	}
}

func run(args []string, logger *slog.Logger) error {
	fs := config.Flags("glassdemo")
	if err := fs.Parse(args); err != nil {
		return err
	}
	path, _ := fs.GetString("config")

	cfg, _, err := config.Load(path, fs)
	if err != nil {
		return err
	}
	if len(cfg.Panels) == 0 {
		cfg.Panels = []config.PanelConfig{defaultPanel(cfg.Width, cfg.Height)}
	}

	bg, err := backdrop.Load(cfg.Background, cfg.Width, cfg.Height)
	if err != nil {
		return err
	}

	dst := image.NewRGBA(bg.Bounds())
	draw.Draw(dst, dst.Bounds(), bg, image.Point{}, draw.Src)

	d := pointer.NewDispatcher()
	var first *glass.Panel
	for _, pc := range cfg.Panels {
		frame := glass.NewFrame(pc.Rect())
		p := glass.NewPanel(glass.WithID(pc.ID), glass.WithParams(pc.FilterParams()))
		p.Mount(d, frame)
		p.Draw(dst, bg)
		label(dst, frame.Rect(), pc.ID)
		if first == nil {
			first = p
		}
	}

	size, err := writePNG(cfg.Output, dst)
	if err != nil {
		return err
	}
	logger.Info("wrote image", "path", cfg.Output, "size", humanize.Bytes(size),
		"width", cfg.Width, "height", cfg.Height, "panels", len(cfg.Panels))

	if cfg.SVG != "" {
		if err := writeSVG(cfg.SVG, first, cfg.Width, cfg.Height); err != nil {
			return err
		}
		logger.Info("wrote svg", "path", cfg.SVG)
	}
	return nil
}

// defaultPanel centers a panel of half the canvas size.
func defaultPanel(w, h int) config.PanelConfig {
	return config.PanelConfig{
		ID:     "glass",
		X:      w / 4,
		Y:      h / 4,
		Width:  max(w/2, 1),
		Height: max(h/2, 1),
	}
}

// label writes text in the top-left corner of r.
func label(dst draw.Image, r image.Rectangle, text string) {
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.White,
		Face: face,
		Dot:  fixed.P(r.Min.X+6, r.Min.Y+face.Ascent+4),
	}
	d.DrawString(text)
}

func writePNG(path string, img image.Image) (uint64, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return 0, fmt.Errorf("encode png: %w", err)
	}
	if err := f.Close(); err != nil {
		return 0, fmt.Errorf("close %s: %w", path, err)
	}

	st, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return uint64(st.Size()), nil
}

func writeSVG(path string, p *glass.Panel, w, h int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := p.WriteSVG(f, w, h); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
