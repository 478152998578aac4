package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color constants
const (
	ColorActive   = "170" // Purple/magenta for active elements
	ColorInactive = "240" // Gray for inactive elements
	ColorSelected = "236" // Dark gray for background selection
	ColorNormal   = "245" // Light gray for normal text
	ColorDim      = "241" // Dimmer gray
	ColorVeryDim  = "242" // Even dimmer gray
	ColorWarning  = "214" // Orange/yellow for warnings
	ColorDanger   = "196" // Red for dangerous actions
	ColorSuccess  = "28"  // Green for success
	ColorWhite    = "255" // White
	ColorStatusBg = "62"
	ColorStatusFg = "230"
)

// Common styles
var (
	ActiveBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color(ColorActive))

	InactiveBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color(ColorInactive))

	// Row under the cursor in the active pane
	SelectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorActive)).
			Background(lipgloss.Color(ColorSelected)).
			Bold(true)

	NormalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorNormal))

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorDim))

	ActionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorWarning))

	HeaderPaddingStyle = lipgloss.NewStyle().
				PaddingLeft(1).
				PaddingRight(1)

	EmptyActiveStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorWarning)).
				Bold(true)

	EmptyInactiveStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorVeryDim))

	HelpBorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorInactive))

	StatusStyle = lipgloss.NewStyle().
			Background(lipgloss.Color(ColorStatusBg)).
			Foreground(lipgloss.Color(ColorStatusFg)).
			Padding(0, 1)

	CountBadgeStyle = lipgloss.NewStyle().
			Background(lipgloss.Color(ColorSuccess)).
			Foreground(lipgloss.Color(ColorWhite)).
			Padding(0, 1).
			Bold(true)
)

// Column class names accepted in a column's class_name
const (
	ClassDim    = "dim"
	ClassBold   = "bold"
	ClassRight  = "right"
	ClassAccent = "accent"
)

// GetColumnClassStyle returns the cell style for a space separated list of
// column classes and whether cells are right aligned. Unknown classes are
// ignored.
func GetColumnClassStyle(className string) (lipgloss.Style, bool) {
	style := lipgloss.NewStyle()
	right := false
	for _, class := range strings.Fields(strings.ToLower(className)) {
		switch class {
		case ClassDim:
			style = style.Foreground(lipgloss.Color(ColorDim))
		case ClassBold:
			style = style.Bold(true)
		case ClassAccent:
			style = style.Foreground(lipgloss.Color(ColorActive))
		case ClassRight:
			right = true
		}
	}
	return style, right
}

// GetActiveHeaderStyle returns the pane heading style
func GetActiveHeaderStyle(isActive bool) lipgloss.Style {
	color := ColorWarning
	if isActive {
		color = ColorActive
	}
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(color))
}

func GetActiveColonStyle(isActive bool) lipgloss.Style {
	color := ColorInactive
	if isActive {
		color = ColorActive
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(color))
}

// GetPaneBorderStyle returns the border for a pane
func GetPaneBorderStyle(isActive bool) lipgloss.Style {
	if isActive {
		return ActiveBorderStyle
	}
	return InactiveBorderStyle
}
