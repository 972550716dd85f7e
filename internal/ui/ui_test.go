package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestRenderTable(t *testing.T) {
	out := RenderTable(
		[]string{"NAME", "EEP"},
		[][]string{
			{"enocean/0x01A64F7F", "D5-00-01"},
			{"enocean/x", AbsentCell},
		},
	)

	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("RenderTable() produced %d lines, want 3:\n%s", len(lines), out)
	}

	for _, want := range []string{"NAME", "EEP", "enocean/0x01A64F7F", "D5-00-01", AbsentCell} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderTable() missing %q", want)
		}
	}

	// Second column starts at the same offset on every line
	col := strings.Index(lines[1], "D5-00-01")
	if got := strings.Index(lines[0], "EEP"); got != col {
		t.Errorf("header column at %d, row column at %d", got, col)
	}
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{"yes", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
		{"maybe\n", false},
	}

	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.input), func(t *testing.T) {
			var out bytes.Buffer
			got := Confirm(strings.NewReader(tt.input), &out, "Remove sensor", []string{"The section is deleted"}, "Continue?")
			if got != tt.want {
				t.Errorf("Confirm(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if !strings.Contains(out.String(), "Remove sensor") {
				t.Error("Confirm() should print the title")
			}
		})
	}
}

func TestHeaderRender(t *testing.T) {
	h := NewHeader("sensors", Param{Key: "Config", Value: "/etc/enoceanmqtt.conf"})
	out := h.Render()

	for _, want := range []string{"SENSORS", "Config:", "/etc/enoceanmqtt.conf"} {
		if !strings.Contains(out, want) {
			t.Errorf("Header.Render() missing %q:\n%s", want, out)
		}
	}
}

func TestResultRender(t *testing.T) {
	ok := NewSuccessResult("Sensor added", Param{Key: "EEP", Value: "D5-00-01"}).Render()
	if !strings.Contains(ok, SuccessMarker) || !strings.Contains(ok, "D5-00-01") {
		t.Errorf("success result missing content:\n%s", ok)
	}

	fail := NewFailureResult("Add failed", errors.New("disk full")).Render()
	if !strings.Contains(fail, FailureMarker) || !strings.Contains(fail, "disk full") {
		t.Errorf("failure result missing content:\n%s", fail)
	}
}

func TestGetTerminalWidth(t *testing.T) {
	w := GetTerminalWidth()
	if w < MinTerminalWidth || w > MaxContentWidth {
		t.Errorf("GetTerminalWidth() = %d, want between %d and %d", w, MinTerminalWidth, MaxContentWidth)
	}
}
