// Package ui provides terminal output components for the enoceanmqtt CLI.
//
// Components render with Lipgloss and size themselves to the terminal
// reported by golang.org/x/term:
//
//   - Header: command banner with ordered "Key: Value" parameters
//   - Result: success/failure/warning box
//   - RenderTable: aligned columns for sensor listings
//   - Confirm: warning box plus a y/N prompt for destructive commands
//
// Example:
//
//	fmt.Println(ui.NewHeader("Sensors", ui.Param{Key: "Config", Value: path}))
//	fmt.Println(ui.RenderTable([]string{"NAME", "EEP"}, rows))
//
// Logging stays on stderr through the logging package so it never mixes
// with this output.
package ui
