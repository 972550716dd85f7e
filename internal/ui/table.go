package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// AbsentCell marks a cell whose value could not be decoded.
const AbsentCell = "-"

// RenderTable lays out rows under headers in aligned columns. Cells equal to
// AbsentCell are rendered muted.
func RenderTable(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i := 0; i < len(row) && i < len(widths); i++ {
			if w := lipgloss.Width(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}

	renderRow := func(cells []string, style func(string) lipgloss.Style) string {
		parts := make([]string, len(widths))
		for i := range widths {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			parts[i] = style(cell).Width(widths[i]).Render(cell)
		}
		return strings.TrimRight(strings.Join(parts, "  "), " ")
	}

	lines := []string{renderRow(headers, func(string) lipgloss.Style { return TableHeaderStyle })}
	for _, row := range rows {
		lines = append(lines, renderRow(row, func(cell string) lipgloss.Style {
			if cell == AbsentCell {
				return AbsentValueStyle
			}
			return TableCellStyle
		}))
	}

	return strings.Join(lines, "\n")
}
