// Package ui holds the terminal color themes and the styled comparison table.
//
// The active theme is process-wide; InitTheme selects it once at startup from
// the -no-color flag, NO_COLOR and PARACC_THEME.
package ui
