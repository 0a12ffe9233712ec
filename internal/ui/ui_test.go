package ui

import (
	"os"
	"strings"
	"testing"
)

func TestInitTheme(t *testing.T) {
	defer SetCurrentTheme(GetCurrentTheme())

	InitTheme(true)
	if got := GetCurrentTheme().Name; got != "none" {
		t.Errorf("InitTheme(true) theme = %q, want none", got)
	}
	if ColorRed() != "" || ColorReset() != "" {
		t.Error("color accessors should be empty when colors are disabled")
	}

	t.Setenv("NO_COLOR", "1")
	InitTheme(false)
	if got := GetCurrentTheme().Name; got != "none" {
		t.Errorf("NO_COLOR theme = %q, want none", got)
	}
}

func TestInitTheme_ThemeEnv(t *testing.T) {
	defer SetCurrentTheme(GetCurrentTheme())
	if _, set := os.LookupEnv("NO_COLOR"); set {
		t.Skip("NO_COLOR is set in the environment")
	}

	t.Setenv(ThemeEnv, "Light")
	InitTheme(false)
	if got := GetCurrentTheme().Name; got != "light" {
		t.Errorf("%s=Light theme = %q, want light", ThemeEnv, got)
	}
	if ColorGreen() != "\033[38;5;28m" {
		t.Errorf("light success color = %q", ColorGreen())
	}

	t.Setenv(ThemeEnv, "")
	InitTheme(false)
	if got := GetCurrentTheme().Name; got != "dark" {
		t.Errorf("default theme = %q, want dark", got)
	}
}

func TestSetTheme(t *testing.T) {
	defer SetCurrentTheme(GetCurrentTheme())

	tests := []struct {
		name    string
		want    string
		palette Palette
	}{
		{"dark", "dark", DarkPalette},
		{"light", "light", LightPalette},
		{"none", "none", NoColorPalette},
		{"unknown", "dark", DarkPalette},
	}
	for _, tt := range tests {
		SetTheme(tt.name)
		if got := GetCurrentTheme().Name; got != tt.want {
			t.Errorf("SetTheme(%q) = %q, want %q", tt.name, got, tt.want)
		}
		if GetCurrentPalette() != tt.palette {
			t.Errorf("SetTheme(%q) palette mismatch", tt.name)
		}
	}

	SetTheme("dark")
	if ColorGreen() != DarkTheme.Success || ColorUnderline() != DarkTheme.Underline {
		t.Error("color accessors should follow the dark theme")
	}
}

func TestRenderTable(t *testing.T) {
	defer SetCurrentTheme(GetCurrentTheme())
	SetTheme("none")

	out := RenderTable(
		[]string{"Runner", "Duration", "Status"},
		[][]string{{"parallel", "12ms", "OK"}, {"sequential", "48ms", "failed"}},
		[]RowStatus{RowSuccess, RowFailure},
	)
	for _, want := range []string{"Runner", "Duration", "Status", "parallel", "sequential", "48ms", "failed"} {
		if !strings.Contains(out, want) {
			t.Errorf("table should contain %q:\n%s", want, out)
		}
	}
	if lines := strings.Count(out, "\n") + 1; lines < 5 {
		t.Errorf("expected a bordered table with at least 5 lines, got %d:\n%s", lines, out)
	}
}
