package ui

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// ThemeEnv selects the theme when colors are enabled: "dark" (default) or
// "light".
const ThemeEnv = "PARACC_THEME"

// Palette holds the lipgloss colors used by RenderTable.
type Palette struct {
	Text    lipgloss.TerminalColor
	Border  lipgloss.TerminalColor
	Accent  lipgloss.TerminalColor
	Success lipgloss.TerminalColor
	Warning lipgloss.TerminalColor
	Error   lipgloss.TerminalColor
	Dim     lipgloss.TerminalColor
}

// Theme is a color scheme for terminal output. The string fields are ANSI
// escape sequences written inline by the CLI; Palette styles the tables.
type Theme struct {
	Name      string
	Primary   string
	Secondary string
	Success   string
	Warning   string
	Error     string
	Info      string
	Bold      string
	Underline string
	Reset     string
	Palette   Palette
}

// ansi256 returns the escape sequence selecting foreground color n of the
// 256-color table.
func ansi256(n int) string { return fmt.Sprintf("\033[38;5;%dm", n) }

var (
	DarkPalette = Palette{
		Text:    lipgloss.Color("#E0E0E0"),
		Border:  lipgloss.Color("#5F87AF"),
		Accent:  lipgloss.Color("#00AFFF"),
		Success: lipgloss.Color("#5FFF00"),
		Warning: lipgloss.Color("#FFD700"),
		Error:   lipgloss.Color("#FF0000"),
		Dim:     lipgloss.Color("#8A8A8A"),
	}

	LightPalette = Palette{
		Text:    lipgloss.Color("#1C1C1C"),
		Border:  lipgloss.Color("#585858"),
		Accent:  lipgloss.Color("#005FFF"),
		Success: lipgloss.Color("#008700"),
		Warning: lipgloss.Color("#AF5F00"),
		Error:   lipgloss.Color("#AF0000"),
		Dim:     lipgloss.Color("#585858"),
	}

	// NoColorPalette leaves every cell in the terminal's default colors.
	NoColorPalette = Palette{
		Text:    lipgloss.NoColor{},
		Border:  lipgloss.NoColor{},
		Accent:  lipgloss.NoColor{},
		Success: lipgloss.NoColor{},
		Warning: lipgloss.NoColor{},
		Error:   lipgloss.NoColor{},
		Dim:     lipgloss.NoColor{},
	}
)

var (
	DarkTheme = Theme{
		Name:      "dark",
		Primary:   ansi256(39),
		Secondary: ansi256(245),
		Success:   ansi256(82),
		Warning:   ansi256(220),
		Error:     ansi256(196),
		Info:      ansi256(141),
		Bold:      "\033[1m",
		Underline: "\033[4m",
		Reset:     "\033[0m",
		Palette:   DarkPalette,
	}

	LightTheme = Theme{
		Name:      "light",
		Primary:   ansi256(27),
		Secondary: ansi256(240),
		Success:   ansi256(28),
		Warning:   ansi256(130),
		Error:     ansi256(124),
		Info:      ansi256(54),
		Bold:      "\033[1m",
		Underline: "\033[4m",
		Reset:     "\033[0m",
		Palette:   LightPalette,
	}

	// NoColorTheme is selected by -no-color or NO_COLOR.
	NoColorTheme = Theme{Name: "none", Palette: NoColorPalette}

	themes = map[string]Theme{
		DarkTheme.Name:    DarkTheme,
		LightTheme.Name:   LightTheme,
		NoColorTheme.Name: NoColorTheme,
	}

	themeMu      sync.RWMutex
	currentTheme = DarkTheme
)

// GetCurrentTheme returns the active theme.
func GetCurrentTheme() Theme {
	themeMu.RLock()
	defer themeMu.RUnlock()
	return currentTheme
}

// GetCurrentPalette returns the table palette of the active theme.
func GetCurrentPalette() Palette {
	return GetCurrentTheme().Palette
}

// SetCurrentTheme replaces the active theme. Tests use it to restore state.
func SetCurrentTheme(t Theme) {
	themeMu.Lock()
	defer themeMu.Unlock()
	currentTheme = t
}

// SetTheme activates a theme by name; unknown names select the dark theme.
func SetTheme(name string) {
	t, ok := themes[strings.ToLower(name)]
	if !ok {
		t = DarkTheme
	}
	SetCurrentTheme(t)
}

// InitTheme picks the theme for this process. Colors are disabled by
// noColor or by the presence of NO_COLOR (https://no-color.org/); otherwise
// PARACC_THEME chooses between dark and light.
func InitTheme(noColor bool) {
	if _, set := os.LookupEnv("NO_COLOR"); noColor || set {
		SetCurrentTheme(NoColorTheme)
		return
	}
	SetTheme(os.Getenv(ThemeEnv))
}
