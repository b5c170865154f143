package marionette

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Size is a width/height pair in pixels.
type Size struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Config holds the editor and host settings. Zero values are not usable; start
// from DefaultConfig or LoadConfig.
type Config struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	// TPS is the nominal frame cadence. Frame deltas are still measured.
	TPS int `yaml:"tps"`

	Workspace  Size `yaml:"workspace"`
	HitBoxSize int  `yaml:"hit_box_size"`
	PanelWidth int  `yaml:"panel_width"`

	ShowFPS  bool   `yaml:"show_fps"`
	LogLevel string `yaml:"log_level"`

	// ScreenshotDir receives PNGs queued with Editor.Screenshot.
	ScreenshotDir string `yaml:"screenshot_dir"`

	Theme Theme `yaml:"theme"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		Title:      "Marionette",
		Width:      1440,
		Height:     900,
		TPS:        60,
		Workspace:  Size{Width: 800, Height: 800},
		HitBoxSize: DefaultHitBoxSize,
		PanelWidth: 340,
		LogLevel:   "info",

		ScreenshotDir: "screenshots",
		Theme:      DefaultTheme(),
	}
}

// LoadConfig reads a YAML file and overlays it on DefaultConfig. Keys absent
// from the file keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("marionette: read config: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("marionette: parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Save writes cfg to path as YAML.
func (c Config) Save(path string) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marionette: encode config: %w", err)
	}
	return os.WriteFile(path, b, 0o644)
}

// Validate reports every invalid setting.
func (c Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Width, c.Height))
	}
	if c.TPS <= 0 {
		errs = append(errs, fmt.Errorf("tps %d must be positive", c.TPS))
	}
	if c.Workspace.Width <= 0 || c.Workspace.Height <= 0 {
		errs = append(errs, fmt.Errorf("workspace size %dx%d must be positive", c.Workspace.Width, c.Workspace.Height))
	}
	if c.HitBoxSize <= 0 {
		errs = append(errs, fmt.Errorf("hit_box_size %d must be positive", c.HitBoxSize))
	}
	if c.PanelWidth <= 20 || c.PanelWidth >= c.Width {
		errs = append(errs, fmt.Errorf("panel_width %d must be within (20, %d)", c.PanelWidth, c.Width))
	}
	if _, err := c.Theme.Palette(); err != nil {
		errs = append(errs, err)
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("marionette: invalid config: %w", err)
	}
	return nil
}
