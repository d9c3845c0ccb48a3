// Command glassterm shows draggable glass panels in a truecolor terminal.
//
// Panels are dragged with the left mouse button. When started with
// --config, edits to the file's panel parameters are applied live.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/glass"
	"github.com/gogpu/glass/internal/config"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "glassterm: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := config.Flags("glassterm")
	logPath := fs.String("log", "", "write debug logs to this file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	path, _ := fs.GetString("config")

	logger, closeLog, err := openLog(*logPath)
	if err != nil {
		return err
	}
	defer closeLog()
	glass.SetLogger(logger)

	cfg, v, err := config.Load(path, fs)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	a := newApp(screen, cfg, logger)
	defer a.close()

	if path != "" {
		config.Watch(v, func(cfg *config.Config, err error) {
			// Posting hands the reload to the event loop goroutine.
			_ = screen.PostEvent(tcell.NewEventInterrupt(reloadEvent{cfg: cfg, err: err}))
		})
	}

	a.draw()
	screen.Show()
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return nil
		}
		if a.handle(ev) {
			return nil
		}
		// Coalesce bursts of mouse motion into one frame.
		if !screen.HasPendingEvent() {
			a.draw()
			screen.Show()
		}
	}
}

// openLog returns a debug logger writing to path, or a discarding logger
// when path is empty. The terminal itself is never logged to.
func openLog(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, func() { f.Close() }, nil
}
