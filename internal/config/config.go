package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/rule30life/internal/control"
	"github.com/san-kum/rule30life/internal/harness"
	"github.com/san-kum/rule30life/internal/viz"
)

const (
	DefaultWidth  = 160
	DefaultHeight = 96
	DefaultScale  = 4
	DefaultTPS    = 60
	DefaultFPS    = 30
	DefaultSpeed  = 1.0
	DefaultTheme  = "minimal"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Width    int            `yaml:"width"`
	Height   int            `yaml:"height"`
	Scale    int            `yaml:"scale"`
	TPS      int            `yaml:"tps"`
	FPS      int            `yaml:"fps"`
	Speed    float64        `yaml:"speed"`
	Theme    string         `yaml:"theme"`
	LogLevel string         `yaml:"log_level"`
	Controls ControlsConfig `yaml:"controls"`
}

// ActionConfig binds one control action.
type ActionConfig struct {
	Keys   []string `yaml:"keys"`
	Factor float64  `yaml:"factor,omitempty"`
}

type ControlsConfig struct {
	SpeedUp  ActionConfig `yaml:"speed_up"`
	SlowDown ActionConfig `yaml:"slow_down"`
	Double   ActionConfig `yaml:"double"`
	Halve    ActionConfig `yaml:"halve"`
	Reset    ActionConfig `yaml:"reset"`
	Quit     ActionConfig `yaml:"quit"`
}

func DefaultControls() ControlsConfig {
	b := control.DefaultBindings()
	conv := func(a control.Action) ActionConfig {
		return ActionConfig{Keys: b[a].Keys, Factor: b[a].Factor}
	}
	return ControlsConfig{
		SpeedUp:  conv(control.SpeedUp),
		SlowDown: conv(control.SlowDown),
		Double:   conv(control.Double),
		Halve:    conv(control.Halve),
		Reset:    conv(control.Reset),
		Quit:     conv(control.Quit),
	}
}

func DefaultConfig() *Config {
	return &Config{
		Width:    DefaultWidth,
		Height:   DefaultHeight,
		Scale:    DefaultScale,
		TPS:      DefaultTPS,
		FPS:      DefaultFPS,
		Speed:    DefaultSpeed,
		Theme:    DefaultTheme,
		LogLevel: "info",
		Controls: DefaultControls(),
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects dimensions and rates the simulator cannot run with. An odd
// height is accepted; the simulation drops its last row.
func (c *Config) Validate() error {
	switch {
	case c.Width < 1:
		return fmt.Errorf("%w: width must be at least 1, got %d", ErrInvalidConfig, c.Width)
	case c.Height < 2:
		return fmt.Errorf("%w: height must be at least 2, got %d", ErrInvalidConfig, c.Height)
	case c.Scale < 1:
		return fmt.Errorf("%w: scale must be at least 1, got %d", ErrInvalidConfig, c.Scale)
	case c.TPS < 1:
		return fmt.Errorf("%w: tps must be positive, got %d", ErrInvalidConfig, c.TPS)
	case c.FPS < 1:
		return fmt.Errorf("%w: fps must be positive, got %d", ErrInvalidConfig, c.FPS)
	case !harness.ValidSpeed(c.Speed):
		return fmt.Errorf("%w: speed must be positive and finite, got %v", ErrInvalidConfig, c.Speed)
	}
	if c.Theme != "" && !slices.Contains(viz.ThemeNames(), c.Theme) {
		return fmt.Errorf("%w: unknown theme %q (available: %v)", ErrInvalidConfig, c.Theme, viz.ThemeNames())
	}
	if c.LogLevel != "" {
		if _, err := log.ParseLevel(c.LogLevel); err != nil {
			return fmt.Errorf("%w: log_level: %v", ErrInvalidConfig, err)
		}
	}
	if _, err := c.KeyMap(); err != nil {
		return fmt.Errorf("%w: controls: %v", ErrInvalidConfig, err)
	}
	return nil
}

// TickInterval is the compute interval at speed 1.
func (c *Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.TPS)
}

// FrameInterval is the render interval.
func (c *Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.FPS)
}

func (c *Config) Bindings() map[control.Action]control.Binding {
	conv := func(a ActionConfig) control.Binding {
		return control.Binding{Keys: a.Keys, Factor: a.Factor}
	}
	return map[control.Action]control.Binding{
		control.SpeedUp:  conv(c.Controls.SpeedUp),
		control.SlowDown: conv(c.Controls.SlowDown),
		control.Double:   conv(c.Controls.Double),
		control.Halve:    conv(c.Controls.Halve),
		control.Reset:    conv(c.Controls.Reset),
		control.Quit:     conv(c.Controls.Quit),
	}
}

func (c *Config) KeyMap() (*control.KeyMap, error) {
	return control.NewKeyMap(c.Bindings())
}

// Clone returns a deep copy.
func (c *Config) Clone() *Config {
	out := *c
	cp := func(a ActionConfig) ActionConfig {
		a.Keys = append([]string(nil), a.Keys...)
		return a
	}
	out.Controls = ControlsConfig{
		SpeedUp:  cp(c.Controls.SpeedUp),
		SlowDown: cp(c.Controls.SlowDown),
		Double:   cp(c.Controls.Double),
		Halve:    cp(c.Controls.Halve),
		Reset:    cp(c.Controls.Reset),
		Quit:     cp(c.Controls.Quit),
	}
	return &out
}
