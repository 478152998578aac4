package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestPluralize(t *testing.T) {
	tests := []struct {
		count int
		want  string
	}{
		{0, "s"},
		{1, ""},
		{2, "s"},
	}
	for _, tt := range tests {
		if got := pluralize(tt.count); got != tt.want {
			t.Errorf("pluralize(%d) = %q, want %q", tt.count, got, tt.want)
		}
	}
}

func TestTruncateName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		want     string
	}{
		{"fits", "Alice", 10, "Alice"},
		{"exact", "Alice", 5, "Alice"},
		{"cut with tail", "Alexandria", 8, "Alexa..."},
		{"tiny width", "Alexandria", 3, "Ale"},
		{"zero width", "Alice", 0, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncateName(tt.input, tt.maxWidth); got != tt.want {
				t.Errorf("truncateName(%q, %d) = %q, want %q", tt.input, tt.maxWidth, got, tt.want)
			}
		})
	}
}

func TestFitCell(t *testing.T) {
	for _, s := range []string{"", "Bob", "a much longer value than fits"} {
		if got := lipgloss.Width(fitCell(s, 10)); got != 10 {
			t.Errorf("fitCell(%q, 10) width = %d", s, got)
		}
	}
}

func TestSingleLine(t *testing.T) {
	if got := singleLine("a\r\nb\nc\rd"); got != "a b c d" {
		t.Errorf("singleLine = %q", got)
	}
}

func TestFormatColumnWidths(t *testing.T) {
	widths := formatColumnWidths(60, 2)
	if len(widths) != 2 {
		t.Fatalf("got %d widths", len(widths))
	}
	// 60 - 2 prefix - 3 action - 1 gap
	if widths[0]+widths[1] != 54 {
		t.Errorf("widths %v do not fill the row", widths)
	}

	for _, w := range formatColumnWidths(10, 3) {
		if w < 6 {
			t.Errorf("width %d below minimum", w)
		}
	}

	if formatColumnWidths(60, 0) != nil {
		t.Error("no columns should give no widths")
	}
}

func TestClampCursor(t *testing.T) {
	tests := []struct {
		cursor, n, want int
	}{
		{0, 0, 0},
		{3, 0, 0},
		{-1, 5, 0},
		{2, 5, 2},
		{5, 5, 4},
	}
	for _, tt := range tests {
		if got := clampCursor(tt.cursor, tt.n); got != tt.want {
			t.Errorf("clampCursor(%d, %d) = %d, want %d", tt.cursor, tt.n, got, tt.want)
		}
	}
}

func TestFormatHelpTextRows(t *testing.T) {
	got := formatHelpTextRows([][]string{{"a one", "b two"}, {"q quit"}}, 80)
	if got != "a one • b two\nq quit" {
		t.Errorf("formatHelpTextRows = %q", got)
	}

	wrapped := formatHelpTextRows([][]string{{"first item", "second item", "third item"}}, 15)
	if !strings.Contains(wrapped, "\n") {
		t.Errorf("expected wrapping, got %q", wrapped)
	}
}
