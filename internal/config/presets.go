package config

import "sort"

var presets = map[string]func(*Config){
	// 800x600 window at one pixel per cell.
	"classic": func(c *Config) {
		c.Width, c.Height, c.Scale, c.FPS = 800, 600, 1, 60
	},
	"terminal": func(c *Config) {
		c.Width, c.Height = 160, 96
	},
	"tiny": func(c *Config) {
		c.Width, c.Height, c.Scale = 32, 16, 16
	},
	// Odd height: both halves get 150 rows.
	"tall": func(c *Config) {
		c.Width, c.Height, c.Scale = 120, 301, 2
	},
	"fast": func(c *Config) {
		c.Speed = 4
	},
}

// GetPreset returns the default config with the named preset applied, or nil.
func GetPreset(name string) *Config {
	apply, ok := presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	apply(cfg)
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
