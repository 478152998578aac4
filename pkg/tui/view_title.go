package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// ViewTitle is the title bar shown above the transfer view
type ViewTitle struct {
	text string
}

// NewViewTitle creates a new view title with the given text
func NewViewTitle(text string) *ViewTitle {
	return &ViewTitle{
		text: text,
	}
}

// View renders the title
func (v *ViewTitle) View() string {
	if v.text == "" {
		return ""
	}

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorWhite)).
		Background(lipgloss.Color("0")).
		Bold(true).
		Padding(0, 1)

	return titleStyle.Render("\n" + v.text + "\n")
}

// ViewWithAlignment renders the title left aligned with padding
func (v *ViewTitle) ViewWithAlignment(width int) string {
	if v.text == "" {
		return ""
	}

	alignStyle := lipgloss.NewStyle().
		Width(width).
		PaddingLeft(2).
		PaddingRight(2)

	return alignStyle.Render(v.View())
}

// ViewTitleHeight returns the height of a rendered title
func ViewTitleHeight() int {
	return 3 // 1 line for text + 2 lines for vertical padding
}
