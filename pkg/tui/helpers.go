package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
)

// pluralize returns "s" for counts other than 1, empty string for 1
func pluralize(count int) string {
	if count == 1 {
		return ""
	}
	return "s"
}

// formatCount renders a count with thousands separators
func formatCount(n int) string {
	return humanize.Comma(int64(n))
}

// truncateName truncates a name to fit within maxWidth display cells,
// adding "..." when it is cut
func truncateName(name string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if lipgloss.Width(name) <= maxWidth {
		return name
	}
	if maxWidth <= 3 {
		return truncate.String(name, uint(maxWidth))
	}
	return truncate.StringWithTail(name, uint(maxWidth), "...")
}

// fitCell truncates s and pads it to exactly width display cells
func fitCell(s string, width int) string {
	s = truncateName(s, width)
	if pad := width - lipgloss.Width(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}

// fitCellRight is fitCell with the padding on the left
func fitCellRight(s string, width int) string {
	s = truncateName(s, width)
	if pad := width - lipgloss.Width(s); pad > 0 {
		s = strings.Repeat(" ", pad) + s
	}
	return s
}

// singleLine flattens line breaks so a cell stays on one row
func singleLine(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(s)
}

// formatColumnWidths splits totalWidth across n data columns after the
// row prefix and the action column. Every column gets at least minWidth.
func formatColumnWidths(totalWidth, n int) []int {
	const minWidth = 6
	if n <= 0 {
		return nil
	}

	// 2 for the row prefix, actionWidth plus one space, one space between columns
	available := totalWidth - 2 - (actionWidth + 1) - (n - 1)
	widths := make([]int, n)
	for i := range widths {
		widths[i] = available / n
		if i < available%n {
			widths[i]++
		}
		if widths[i] < minWidth {
			widths[i] = minWidth
		}
	}
	return widths
}

// formatHelpTextRows joins each row's items and wraps rows wider than width
func formatHelpTextRows(rows [][]string, width int) string {
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		line := strings.Join(row, " • ")
		if width > 0 {
			line = wordwrap.String(line, width)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
