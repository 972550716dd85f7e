package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Confirm displays a warning box with the given lines and asks a yes/no
// question on out, reading the answer from in. Only "y" or "yes" confirms.
func Confirm(in io.Reader, out io.Writer, title string, warnings []string, question string) bool {
	width := GetTerminalWidth()

	lines := []string{WarningTitleStyle.Render(WarningMarker + "  " + title)}
	if len(warnings) > 0 {
		lines = append(lines, "")
		bulletStyle := lipgloss.NewStyle().Foreground(TextColor)
		for _, warning := range warnings {
			lines = append(lines, bulletStyle.Render("• "+warning))
		}
	}

	fmt.Fprintln(out, BoxStyle(width, WarningColor).Render(strings.Join(lines, "\n")))
	fmt.Fprint(out, WarningTitleStyle.Render(question+" [y/N]: "))

	input, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && input == "" {
		fmt.Fprintln(out)
		return false
	}

	switch strings.ToLower(strings.TrimSpace(input)) {
	case "y", "yes":
		return true
	}

	fmt.Fprintln(out, lipgloss.NewStyle().Foreground(MutedColor).Render("Operation cancelled."))
	return false
}
