package sticker

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the tunables of a Board. Zero-valued keys in a YAML file keep
// their defaults.
type Config struct {
	Cap          int     `yaml:"cap"`
	DefaultWidth float64 `yaml:"default_width"`
	MinWidth     float64 `yaml:"min_width"`

	Handles HandleConfig `yaml:"handles"`

	// ControlsFadeSeconds is the duration of the controls fade in/out.
	// Zero shows and hides controls instantly.
	ControlsFadeSeconds float64 `yaml:"controls_fade_seconds"`

	// DropDir, when set, is watched for new PNG files.
	DropDir string `yaml:"drop_dir"`

	Window WindowConfig `yaml:"window"`
}

// HandleConfig sizes the control knobs, in pixels.
type HandleConfig struct {
	ResizeRadius      float64 `yaml:"resize_radius"`
	RotateRadius      float64 `yaml:"rotate_radius"`
	RotateOffset      float64 `yaml:"rotate_offset"` // distance of the rotate knob centre above the top edge
	CloseRadius       float64 `yaml:"close_radius"`
	CloseInset        float64 `yaml:"close_inset"` // distance of the close button edge from the top-right corner
	HitSlop           float64 `yaml:"hit_slop"`    // extra pick radius around every knob
	BorderDash        float64 `yaml:"border_dash"`
	BorderStrokeWidth float64 `yaml:"border_stroke_width"`
}

// WindowConfig configures the ebiten window opened by Run.
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Cap:          DefaultCap,
		DefaultWidth: DefaultWidth,
		MinWidth:     MinWidth,
		Handles: HandleConfig{
			ResizeRadius:      6,
			RotateRadius:      8,
			RotateOffset:      7,
			CloseRadius:       10,
			CloseInset:        5,
			HitSlop:           2,
			BorderDash:        6,
			BorderStrokeWidth: 2,
		},
		ControlsFadeSeconds: 0.12,
		Window: WindowConfig{
			Title:  "Stickers",
			Width:  1024,
			Height: 768,
		},
	}
}

// LoadConfig reads a YAML config file over the defaults.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("sticker: load config %s: %w", path, err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("sticker: load config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes YAML over the defaults and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every invalid setting.
func (c Config) Validate() error {
	var errs []error
	if c.Cap < 1 || c.Cap > DefaultCap {
		errs = append(errs, fmt.Errorf("cap must be between 1 and %d, got %d", DefaultCap, c.Cap))
	}
	if c.DefaultWidth <= 0 {
		errs = append(errs, fmt.Errorf("default_width must be positive, got %v", c.DefaultWidth))
	}
	if c.MinWidth < MinWidth {
		errs = append(errs, fmt.Errorf("min_width must be at least %d, got %v", MinWidth, c.MinWidth))
	}
	if c.MinWidth > c.DefaultWidth {
		errs = append(errs, fmt.Errorf("min_width %v exceeds default_width %v", c.MinWidth, c.DefaultWidth))
	}
	if c.ControlsFadeSeconds < 0 {
		errs = append(errs, fmt.Errorf("controls_fade_seconds must not be negative, got %v", c.ControlsFadeSeconds))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// withDefaults replaces every setting Validate would reject with its
// default, so a Board built from an unchecked Config keeps the cap and the
// width floor.
func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.Cap < 1 || c.Cap > DefaultCap {
		c.Cap = def.Cap
	}
	if c.MinWidth < MinWidth {
		c.MinWidth = def.MinWidth
	}
	if c.DefaultWidth <= 0 || c.DefaultWidth < c.MinWidth {
		c.DefaultWidth = max(def.DefaultWidth, c.MinWidth)
	}
	if c.ControlsFadeSeconds < 0 {
		c.ControlsFadeSeconds = 0
	}
	if c.Handles == (HandleConfig{}) {
		c.Handles = def.Handles
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		c.Window.Width, c.Window.Height = def.Window.Width, def.Window.Height
	}
	if c.Window.Title == "" {
		c.Window.Title = def.Window.Title
	}
	return c
}
