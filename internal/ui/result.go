package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ResultType indicates success or failure
type ResultType int

const (
	ResultSuccess ResultType = iota
	ResultFailure
	ResultWarning
)

// Result represents a result box (success, failure, or warning)
type Result struct {
	Type    ResultType
	Title   string  // e.g., "Sensor added"
	Details []Param // Key-value details to display
	Error   error   // Error (for failure results)
	Width   int     // Terminal width
}

// NewSuccessResult creates a success result box
func NewSuccessResult(title string, details ...Param) *Result {
	return &Result{Type: ResultSuccess, Title: title, Details: details, Width: GetTerminalWidth()}
}

// NewFailureResult creates a failure result box
func NewFailureResult(title string, err error) *Result {
	return &Result{Type: ResultFailure, Title: title, Error: err, Width: GetTerminalWidth()}
}

// NewWarningResult creates a warning result box
func NewWarningResult(title string, details ...Param) *Result {
	return &Result{Type: ResultWarning, Title: title, Details: details, Width: GetTerminalWidth()}
}

// Render returns the styled result box as a string
func (r *Result) Render() string {
	width := r.Width
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}

	var (
		title string
		color lipgloss.Color
	)
	switch r.Type {
	case ResultFailure:
		title = ErrorTitleStyle.Render(FailureMarker + "  " + r.Title)
		color = ErrorColor
	case ResultWarning:
		title = WarningTitleStyle.Render(WarningMarker + "  " + r.Title)
		color = WarningColor
	default:
		title = SuccessTitleStyle.Render(SuccessMarker + "  " + r.Title)
		color = SuccessColor
	}

	lines := []string{title}
	if len(r.Details) > 0 {
		lines = append(lines, "")
		for _, d := range r.Details {
			lines = append(lines, ResultKeyStyle.Render(d.Key+":")+ResultValueStyle.Render(d.Value))
		}
	}
	if r.Error != nil {
		lines = append(lines, "", ResultValueStyle.Render(fmt.Sprintf("%v", r.Error)))
	}

	return BoxStyle(width, color).Render(strings.Join(lines, "\n"))
}

// String implements fmt.Stringer
func (r *Result) String() string {
	return r.Render()
}
