package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Lines reserved outside the table viewports: search bar (3), pane
// borders (2), pane heading and table header (3), help pane (4), status (1)
const reservedHeight = 13

// SharedLayout provides the layout calculations and chrome shared by both
// panes
type SharedLayout struct {
	Width  int
	Height int

	contentHeight int
	columnWidth   int
}

// NewSharedLayout creates a new shared layout with given dimensions
func NewSharedLayout(width, height int) *SharedLayout {
	sl := &SharedLayout{
		Width:  width,
		Height: height,
	}
	sl.recalculateDimensions()
	return sl
}

// SetSize updates the layout dimensions and recalculates cached values
func (sl *SharedLayout) SetSize(width, height int) {
	sl.Width = width
	sl.Height = height
	sl.recalculateDimensions()
}

func (sl *SharedLayout) recalculateDimensions() {
	sl.columnWidth = (sl.Width - 6) / 2 // Account for gap, padding, and borders
	if sl.columnWidth < 20 {
		sl.columnWidth = 20
	}

	sl.contentHeight = sl.Height - reservedHeight
	if sl.contentHeight < 3 {
		sl.contentHeight = 3
	}
}

// GetContentHeight returns the viewport height of each pane
func (sl *SharedLayout) GetContentHeight() int {
	return sl.contentHeight
}

// GetColumnWidth returns the calculated width for each pane
func (sl *SharedLayout) GetColumnWidth() int {
	return sl.columnWidth
}

// RenderHelpPane renders the help text in a bordered pane
func (sl *SharedLayout) RenderHelpPane(helpRows [][]string) string {
	helpBorderStyle := HelpBorderStyle.
		Width(max(sl.Width-4, 1)). // Account for left/right padding (2) and borders (2)
		Padding(0, 1)

	helpContent := formatHelpTextRows(helpRows, sl.Width-8)

	return HeaderPaddingStyle.Render(helpBorderStyle.Render(helpContent))
}

// RenderHeader renders a heading followed by colons and an optional badge
func (sl *SharedLayout) RenderHeader(heading string, active bool, badge string, availableWidth int) string {
	badgeWidth := 0
	if badge != "" {
		badgeWidth = lipgloss.Width(badge)
	}

	colonSpace := availableWidth - lipgloss.Width(heading) - badgeWidth - 2
	if badge != "" {
		colonSpace -= 2
	}
	if colonSpace < 3 {
		colonSpace = 3
	}

	var result strings.Builder
	result.WriteString(GetActiveHeaderStyle(active).Render(heading))
	result.WriteString(" ")
	result.WriteString(GetActiveColonStyle(active).Render(strings.Repeat(":", colonSpace)))
	if badge != "" {
		result.WriteString(" ")
		result.WriteString(badge)
	}

	return result.String()
}

// RenderSearchBar renders the search bar at the full layout width
func (sl *SharedLayout) RenderSearchBar(searchBar *SearchBar) string {
	searchBar.SetWidth(sl.Width)
	return searchBar.View()
}

// PaneConfig holds what is needed to render one pane
type PaneConfig struct {
	Heading string
	Count   int
	Active  bool
	Table   *TransferTableRenderer
}

// RenderPane renders a bordered pane: heading with count badge, column
// headers and the scrolling rows
func (sl *SharedLayout) RenderPane(config PaneConfig, showCounts bool) string {
	badge := ""
	if showCounts {
		badge = CountBadgeStyle.Render(formatCount(config.Count))
	}

	var content strings.Builder
	content.WriteString(HeaderPaddingStyle.Render(
		sl.RenderHeader(strings.ToUpper(config.Heading), config.Active, badge, sl.columnWidth-5)))
	content.WriteString("\n")
	content.WriteString(config.Table.RenderHeader())
	content.WriteString("\n")
	content.WriteString(config.Table.RenderTable())

	return GetPaneBorderStyle(config.Active).
		Width(sl.columnWidth).
		Render(content.String())
}
