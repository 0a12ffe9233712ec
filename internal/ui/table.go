package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// RowStatus classifies a table row for coloring.
type RowStatus int

const (
	RowNeutral RowStatus = iota
	RowSuccess
	RowFailure
)

// RenderTable renders a bordered table using the current palette. statuses
// colors the last column of each row; it may be shorter than rows.
func RenderTable(headers []string, rows [][]string, statuses []RowStatus) string {
	p := GetCurrentPalette()
	header := lipgloss.NewStyle().Bold(true).Foreground(p.Accent).Padding(0, 1)
	cell := lipgloss.NewStyle().Foreground(p.Text).Padding(0, 1)
	last := len(headers) - 1

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(p.Border)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			if col != last || row < 0 || row >= len(statuses) {
				return cell
			}
			switch statuses[row] {
			case RowSuccess:
				return cell.Foreground(p.Success)
			case RowFailure:
				return cell.Foreground(p.Error)
			}
			return cell
		})
	return t.Render()
}
