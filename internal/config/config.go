// Package config loads the scene description used by the glass commands.
package config

import (
	"errors"
	"fmt"
	"image"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/gogpu/glass/filter"
	"github.com/gogpu/glass/internal/logx"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// EnvPrefix prefixes environment overrides, e.g. GLASS_WIDTH.
const EnvPrefix = "GLASS"

// Config describes a scene: a background and the panels floating over it.
type Config struct {
	Width  int `mapstructure:"width" validate:"gte=1,lte=8192"`
	Height int `mapstructure:"height" validate:"gte=1,lte=8192"`

	// Background is an image file. Empty selects a generated gradient.
	Background string `mapstructure:"background"`

	// Output is the PNG file glassdemo writes.
	Output string `mapstructure:"output" validate:"required"`

	// SVG optionally receives the first panel as an SVG document.
	SVG string `mapstructure:"svg"`

	Panels []PanelConfig `mapstructure:"panels" validate:"unique=ID,dive"`
}

// PanelConfig places one panel. Params holds filter parameters by key, see
// the filter.Key constants.
type PanelConfig struct {
	ID     string         `mapstructure:"id"`
	X      int            `mapstructure:"x" validate:"gte=0"`
	Y      int            `mapstructure:"y" validate:"gte=0"`
	Width  int            `mapstructure:"width" validate:"gte=1"`
	Height int            `mapstructure:"height" validate:"gte=1"`
	Params map[string]any `mapstructure:"params"`
}

// Rect returns the panel layout rectangle.
func (p PanelConfig) Rect() image.Rectangle {
	return image.Rect(p.X, p.Y, p.X+p.Width, p.Y+p.Height)
}

// Source returns the panel parameters as a filter.Source.
func (p PanelConfig) Source() filter.Source {
	v := viper.New()
	if err := v.MergeConfigMap(p.Params); err != nil {
		logx.Logger().Warn("glass: ignoring panel params", "id", p.ID, "err", err)
	}
	return v
}

// FilterParams returns the panel's filter parameters on top of the defaults.
func (p PanelConfig) FilterParams() filter.Params {
	return filter.ParamsFromSource(p.Source(), p.ID)
}

// Flags returns the command-line flags Load understands. Flag values
// override the file and the environment when set.
func Flags(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.String("config", "", "scene file (TOML, YAML or JSON)")
	fs.Int("width", 800, "canvas width in pixels")
	fs.Int("height", 600, "canvas height in pixels")
	fs.String("background", "", "background image; empty draws a gradient")
	fs.String("output", "glass.png", "PNG output path")
	fs.String("svg", "", "optional SVG output path")
	return fs
}

// Load reads the scene at path, layering environment variables and the
// flags in fs on top. path may be empty and fs may be nil. The returned
// viper instance is the one Watch needs.
func Load(path string, fs *pflag.FlagSet) (*Config, *viper.Viper, error) {
	v := viper.New()
	v.SetDefault("width", 800)
	v.SetDefault("height", 600)
	v.SetDefault("background", "")
	v.SetDefault("output", "glass.png")
	v.SetDefault("svg", "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if fs != nil {
		if err := v.BindPFlags(fs); err != nil {
			return nil, nil, fmt.Errorf("config: bind flags: %w", err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	cfg, err := decode(v)
	if err != nil {
		return nil, nil, err
	}
	logx.Logger().Info("glass: loaded config", "file", v.ConfigFileUsed(), "panels", len(cfg.Panels))
	return cfg, v, nil
}

var validate = validator.New()

func decode(v *viper.Viper) (*Config, error) {
	cfg := Config{}
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	for i := range cfg.Panels {
		if cfg.Panels[i].ID == "" {
			cfg.Panels[i].ID = fmt.Sprintf("panel-%d", i+1)
		}
	}
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return &cfg, nil
}

// Watch calls fn with the re-read configuration every time the file loaded
// into v changes. fn runs on the watcher goroutine; it receives either a
// valid config or the error that prevented loading one.
func Watch(v *viper.Viper, fn func(*Config, error)) {
	v.OnConfigChange(func(e fsnotify.Event) {
		logx.Logger().Debug("glass: config changed", "file", e.Name, "op", e.Op.String())
		fn(decode(v))
	})
	v.WatchConfig()
}
