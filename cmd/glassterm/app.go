package main

import (
	"fmt"
	"image"
	"image/draw"
	"log/slog"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/gogpu/glass"
	"github.com/gogpu/glass/internal/backdrop"
	"github.com/gogpu/glass/internal/config"
	"github.com/gogpu/glass/pointer"
)

// Each terminal cell shows two vertically stacked pixels with a half block.
const (
	halfBlock     = '▀'
	pixelsPerCell = 2
)

// reloadEvent carries a re-read configuration into the event loop.
type reloadEvent struct {
	cfg *config.Config
	err error
}

type panelView struct {
	id    string
	frame *glass.Frame
	panel *glass.Panel
}

// app hosts glass panels on a tcell screen. Mouse button 1 drags them.
// All methods run on the event loop goroutine.
type app struct {
	screen  tcell.Screen
	logger  *slog.Logger
	bgPath  string
	bg      *image.RGBA
	canvas  *image.RGBA
	d       *pointer.Dispatcher
	panels  []*panelView
	buttons tcell.ButtonMask
	status  string
}

func newApp(s tcell.Screen, cfg *config.Config, logger *slog.Logger) *app {
	a := &app{
		screen: s,
		logger: logger,
		bgPath: cfg.Background,
		d:      pointer.NewDispatcher(),
	}
	a.resize()

	panels := cfg.Panels
	if len(panels) == 0 {
		b := a.bg.Bounds()
		panels = []config.PanelConfig{{
			ID:     "glass",
			X:      b.Dx() / 4,
			Y:      b.Dy() / 4,
			Width:  max(b.Dx()/2, 1),
			Height: max(b.Dy()/2, 1),
		}}
	}
	for _, pc := range panels {
		v := &panelView{
			id:    pc.ID,
			frame: glass.NewFrame(pc.Rect()),
			panel: glass.NewPanel(glass.WithID(pc.ID), glass.WithParams(pc.FilterParams())),
		}
		v.panel.Mount(a.d, v.frame)
		a.panels = append(a.panels, v)
	}
	return a
}

// close unmounts every panel.
func (a *app) close() {
	for _, v := range a.panels {
		v.panel.Unmount()
	}
}

// resize reloads the background at the current screen size. The bottom
// row is kept for the status line.
func (a *app) resize() {
	w, h := a.screen.Size()
	pw, ph := max(w, 1), max(h-1, 1)*pixelsPerCell

	bg, err := backdrop.Load(a.bgPath, pw, ph)
	if err != nil {
		a.logger.Warn("background unavailable, using pattern", "err", err)
		bg = backdrop.Pattern(pw, ph)
	}
	a.bg = bg
	a.canvas = image.NewRGBA(bg.Bounds())
}

// handle processes one event and reports whether the app should quit.
func (a *app) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return true
		}
		if ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q') {
			return true
		}
	case *tcell.EventResize:
		a.resize()
		a.screen.Sync()
	case *tcell.EventMouse:
		a.mouse(ev)
	case *tcell.EventInterrupt:
		if r, ok := ev.Data().(reloadEvent); ok {
			a.reload(r)
		}
	}
	return false
}

// mouse derives press, drag and release from Button1 transitions.
func (a *app) mouse(ev *tcell.EventMouse) {
	cx, cy := ev.Position()
	x, y := float64(cx), float64(cy*pixelsPerCell)
	buttons := ev.Buttons()
	prev := a.buttons
	a.buttons = buttons

	down := buttons&tcell.Button1 != 0
	wasDown := prev&tcell.Button1 != 0

	switch {
	case down && !wasDown:
		a.d.Dispatch(pointer.Event{Kind: pointer.Down, X: x, Y: y, Target: a.hit(x, y)})
	case down && wasDown:
		a.d.Dispatch(pointer.Event{Kind: pointer.Move, X: x, Y: y})
	case !down && wasDown:
		a.d.Dispatch(pointer.Event{Kind: pointer.Up, X: x, Y: y})
	}
}

// hit returns the topmost frame under (x, y), or nil.
func (a *app) hit(x, y float64) pointer.Target {
	for i := len(a.panels) - 1; i >= 0; i-- {
		if f := a.panels[i].frame; f.Contains(x, y) {
			return f
		}
	}
	return nil
}

// reload applies new filter parameters to the panels with matching IDs.
// Layout changes take effect on restart.
func (a *app) reload(r reloadEvent) {
	if r.err != nil {
		a.status = "reload failed: " + r.err.Error()
		a.logger.Warn("config reload failed", "err", r.err)
		return
	}
	byID := make(map[string]config.PanelConfig, len(r.cfg.Panels))
	for _, pc := range r.cfg.Panels {
		byID[pc.ID] = pc
	}
	var n int
	for _, v := range a.panels {
		if pc, ok := byID[v.id]; ok {
			v.panel.SetParams(pc.FilterParams())
			n++
		}
	}
	a.status = fmt.Sprintf("reloaded %d panel(s)", n)
	a.logger.Info("config reloaded", "panels", n)
}

// draw renders the background, the panels and the status line.
func (a *app) draw() {
	draw.Draw(a.canvas, a.canvas.Bounds(), a.bg, image.Point{}, draw.Src)
	for _, v := range a.panels {
		v.panel.Draw(a.canvas, a.bg)
	}

	w, h := a.screen.Size()
	b := a.canvas.Bounds()
	for cy := 0; cy < h-1; cy++ {
		for cx := 0; cx < w; cx++ {
			top := a.canvas.RGBAAt(b.Min.X+cx, b.Min.Y+cy*pixelsPerCell)
			bot := a.canvas.RGBAAt(b.Min.X+cx, b.Min.Y+cy*pixelsPerCell+1)
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
				Background(tcell.NewRGBColor(int32(bot.R), int32(bot.G), int32(bot.B)))
			a.screen.SetContent(cx, cy, halfBlock, nil, style)
		}
	}
	a.drawStatus(w, h-1)
}

func (a *app) drawStatus(w, row int) {
	if row < 0 {
		return
	}
	line := runewidth.FillRight(runewidth.Truncate(a.statusLine(), w, "…"), w)
	style := tcell.StyleDefault.Reverse(true)
	x := 0
	for _, r := range line {
		a.screen.SetContent(x, row, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
}

func (a *app) statusLine() string {
	var sb strings.Builder
	sb.WriteString(" drag panels with the mouse, q quits")
	for _, v := range a.panels {
		off := v.panel.Offset()
		fmt.Fprintf(&sb, " | %s %+.0f,%+.0f", v.id, off.X, off.Y)
		if v.panel.Dragging() {
			sb.WriteString(" *")
		}
	}
	if a.status != "" {
		sb.WriteString(" | ")
		sb.WriteString(a.status)
	}
	return sb.String()
}
