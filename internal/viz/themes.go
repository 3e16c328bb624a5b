package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the colour scheme of the TUI.
type Theme struct {
	Name   string
	Life   lipgloss.Color
	Lines  lipgloss.Color
	Accent lipgloss.Color
	Text   lipgloss.Color
	Muted  lipgloss.Color
	Error  lipgloss.Color
}

var (
	ThemeMinimal = Theme{
		Name:   "minimal",
		Life:   lipgloss.Color("#ffffff"),
		Lines:  lipgloss.Color("#aaaaaa"),
		Accent: lipgloss.Color("#0088ff"),
		Text:   lipgloss.Color("#ffffff"),
		Muted:  lipgloss.Color("#888888"),
		Error:  lipgloss.Color("#ff0000"),
	}

	ThemeCyberpunk = Theme{
		Name:   "cyberpunk",
		Life:   lipgloss.Color("#ff00ff"),
		Lines:  lipgloss.Color("#00ffff"),
		Accent: lipgloss.Color("#ffff00"),
		Text:   lipgloss.Color("#ffffff"),
		Muted:  lipgloss.Color("#666666"),
		Error:  lipgloss.Color("#ff0000"),
	}

	ThemeRetroGreen = Theme{
		Name:   "retro",
		Life:   lipgloss.Color("#00ff00"), // green phosphor
		Lines:  lipgloss.Color("#00aa00"),
		Accent: lipgloss.Color("#88ff88"),
		Text:   lipgloss.Color("#00ff00"),
		Muted:  lipgloss.Color("#005500"),
		Error:  lipgloss.Color("#ff0000"),
	}

	ThemeOcean = Theme{
		Name:   "ocean",
		Life:   lipgloss.Color("#00a8cc"),
		Lines:  lipgloss.Color("#0077be"),
		Accent: lipgloss.Color("#ffd700"),
		Text:   lipgloss.Color("#e0f0ff"),
		Muted:  lipgloss.Color("#4488aa"),
		Error:  lipgloss.Color("#ff4444"),
	}

	ThemeSunset = Theme{
		Name:   "sunset",
		Life:   lipgloss.Color("#ff6b6b"),
		Lines:  lipgloss.Color("#feca57"),
		Accent: lipgloss.Color("#ff9ff3"),
		Text:   lipgloss.Color("#fff5f5"),
		Muted:  lipgloss.Color("#8b6b8c"),
		Error:  lipgloss.Color("#ff4757"),
	}

	Themes = []Theme{
		ThemeMinimal,
		ThemeCyberpunk,
		ThemeRetroGreen,
		ThemeOcean,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name, falling back to minimal.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeMinimal
}

// NextTheme returns the theme after t, wrapping around.
func NextTheme(t Theme) Theme {
	for i, th := range Themes {
		if th.Name == t.Name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
