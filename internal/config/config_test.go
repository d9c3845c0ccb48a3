package config

import (
	"errors"
	"image"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gogpu/glass/filter"
	"github.com/gogpu/glass/rgb"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestLoadTestdata(t *testing.T) {
	cfg, v, err := Load(filepath.Join("testdata", "glass.toml"), nil)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if v == nil {
		t.Fatal("Load() returned nil viper")
	}

	if cfg.Width != 640 || cfg.Height != 360 {
		t.Errorf("size = %dx%d, want 640x360", cfg.Width, cfg.Height)
	}
	if cfg.Output != "out/glass.png" || cfg.SVG != "out/glass.svg" {
		t.Errorf("Output = %q, SVG = %q", cfg.Output, cfg.SVG)
	}
	if len(cfg.Panels) != 2 {
		t.Fatalf("panels = %d, want 2", len(cfg.Panels))
	}

	hero := cfg.Panels[0]
	if hero.ID != "hero" {
		t.Errorf("panels[0].ID = %q, want hero", hero.ID)
	}
	if hero.Rect() != image.Rect(40, 60, 280, 220) {
		t.Errorf("panels[0].Rect() = %v", hero.Rect())
	}
	want := filter.DefaultParams()
	want.ID = "hero"
	if got := hero.FilterParams(); got != want {
		t.Errorf("panels[0] params = %+v, want %+v", got, want)
	}

	second := cfg.Panels[1]
	if second.ID != "panel-2" {
		t.Errorf("panels[1].ID = %q, want generated panel-2", second.ID)
	}
	p := second.FilterParams()
	if p.TintColor != rgb.FromHex("#3a7bd5") {
		t.Errorf("TintColor = %+v", p.TintColor)
	}
	if p.TintIntensity != 0.8 {
		t.Errorf("TintIntensity = %v, want 0.8", p.TintIntensity)
	}
	if p.BlurRadius != filter.MaxBlurRadius {
		t.Errorf("BlurRadius = %v, want clamped %v", p.BlurRadius, filter.MaxBlurRadius)
	}
	if p.StripeSize != 10 {
		t.Errorf("StripeSize = %v, want default 10", p.StripeSize)
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, _, err := Load("", nil)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Width != 800 || cfg.Height != 600 || cfg.Output != "glass.png" {
		t.Errorf("defaults = %+v", cfg)
	}
	if len(cfg.Panels) != 0 {
		t.Errorf("panels = %d, want 0", len(cfg.Panels))
	}
}

func TestLoadFormats(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"scene.yaml", "width: 320\nheight: 200\npanels:\n  - id: a\n    x: 1\n    y: 2\n    width: 10\n    height: 10\n"},
		{"scene.json", `{"width": 320, "height": 200, "panels": [{"id": "a", "x": 1, "y": 2, "width": 10, "height": 10}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, _, err := Load(writeFile(t, tt.name, tt.content), nil)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if cfg.Width != 320 || len(cfg.Panels) != 1 || cfg.Panels[0].Rect() != image.Rect(1, 2, 11, 12) {
				t.Errorf("cfg = %+v", cfg)
			}
		})
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("GLASS_WIDTH", "1024")
	t.Setenv("GLASS_OUTPUT", "env.png")

	cfg, _, err := Load(filepath.Join("testdata", "glass.toml"), nil)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Width != 1024 {
		t.Errorf("Width = %d, want 1024", cfg.Width)
	}
	if cfg.Output != "env.png" {
		t.Errorf("Output = %q, want env.png", cfg.Output)
	}
}

func TestLoadFlags(t *testing.T) {
	fs := Flags("test")
	if err := fs.Parse([]string{"--height=99", "--svg=flag.svg"}); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	cfg, _, err := Load(filepath.Join("testdata", "glass.toml"), fs)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Height != 99 {
		t.Errorf("Height = %d, want 99 from flag", cfg.Height)
	}
	if cfg.SVG != "flag.svg" {
		t.Errorf("SVG = %q, want flag.svg", cfg.SVG)
	}
	if cfg.Width != 640 {
		t.Errorf("Width = %d, want 640 from file", cfg.Width)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"zero width", "width = 0\n"},
		{"huge height", "height = 100000\n"},
		{"empty output", "output = \"\"\n"},
		{"negative panel", "[[panels]]\nx = -1\ny = 0\nwidth = 1\nheight = 1\n"},
		{"empty panel", "[[panels]]\nx = 0\ny = 0\nwidth = 0\nheight = 1\n"},
		{"duplicate ids", "[[panels]]\nid = \"a\"\nwidth = 1\nheight = 1\n[[panels]]\nid = \"a\"\nwidth = 1\nheight = 1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Load(writeFile(t, "scene.toml", tt.content), nil)
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Load() error = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "missing.toml"), nil)
	if err == nil {
		t.Fatal("Load() error = nil for missing file")
	}
	if errors.Is(err, ErrInvalid) {
		t.Errorf("missing file reported as invalid: %v", err)
	}
}

func TestPanelSourceNilParams(t *testing.T) {
	p := PanelConfig{ID: "x", Width: 1, Height: 1}
	want := filter.DefaultParams()
	want.ID = "x"
	if got := p.FilterParams(); got != want {
		t.Errorf("FilterParams() = %+v, want defaults", got)
	}
}

func TestWatch(t *testing.T) {
	path := writeFile(t, "scene.toml", "width = 100\n")
	_, v, err := Load(path, nil)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	changed := make(chan *Config, 4)
	Watch(v, func(cfg *Config, err error) {
		if err == nil {
			changed <- cfg
		}
	})

	if err := os.WriteFile(path, []byte("width = 200\n"), 0o600); err != nil {
		t.Fatalf("rewrite: %v", err)
	}

	timeout := time.After(5 * time.Second)
	for {
		select {
		case cfg := <-changed:
			if cfg.Width == 200 {
				return
			}
		case <-timeout:
			t.Fatal("no change notification within 5s")
		}
	}
}
