package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Param is one "Key: Value" line in a header.
type Param struct {
	Key   string
	Value string
}

// Header represents a command banner with a title and ordered parameters.
type Header struct {
	Title  string  // e.g., "SENSORS"
	Params []Param // e.g., {"Config", "/etc/enoceanmqtt.conf"}
	Width  int     // Terminal width for responsive rendering
}

// NewHeader creates a new header with the given values
func NewHeader(title string, params ...Param) *Header {
	return &Header{
		Title:  title,
		Params: params,
		Width:  GetTerminalWidth(),
	}
}

// Render returns the styled header as a string
func (h *Header) Render() string {
	width := h.Width
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}

	titleLine := HeaderTitleStyle.Render(strings.ToUpper(h.Title))
	if len(h.Params) == 0 {
		return BoxStyle(width, PrimaryColor).Render(titleLine)
	}

	dividerWidth := width - 6
	if dividerWidth < 10 {
		dividerWidth = 10
	}
	divider := lipgloss.NewStyle().
		Foreground(PrimaryColor).
		Render(strings.Repeat("─", dividerWidth))

	paramLines := make([]string, 0, len(h.Params))
	for _, p := range h.Params {
		paramLines = append(paramLines,
			HeaderParamKeyStyle.Render(p.Key+":")+" "+HeaderParamValueStyle.Render(p.Value))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, titleLine, divider, strings.Join(paramLines, "\n"))
	return BoxStyle(width, PrimaryColor).Render(content)
}

// String implements fmt.Stringer
func (h *Header) String() string {
	return h.Render()
}
