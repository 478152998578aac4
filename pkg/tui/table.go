package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"

	"github.com/pluqqy/shuttle/pkg/models"
)

const actionWidth = 2

// CellFunc returns the display text of column for a record
type CellFunc func(models.Record, models.Column) string

// ActionFunc returns the action cell for a record
type ActionFunc func(models.Record) string

// TransferTableRenderer renders one side of the transfer list as a table
// inside a scrolling viewport
type TransferTableRenderer struct {
	Width    int
	Height   int
	Columns  []models.Column
	Records  []models.Record
	Cursor   int
	IsActive bool
	Empty    string
	Cell     CellFunc
	Action   ActionFunc
	Viewport viewport.Model
}

// NewTransferTableRenderer creates a new table renderer
func NewTransferTableRenderer(width, height int, columns []models.Column, cell CellFunc, action ActionFunc) *TransferTableRenderer {
	vp := viewport.New(max(width-4, 1), max(height, 1))
	return &TransferTableRenderer{
		Width:    width,
		Height:   height,
		Columns:  columns,
		Cell:     cell,
		Action:   action,
		Empty:    "No items.",
		Viewport: vp,
	}
}

// SetSize updates the dimensions of the table
func (r *TransferTableRenderer) SetSize(width, height int) {
	r.Width = width
	r.Height = height
	r.Viewport.Width = max(width-4, 1)
	r.Viewport.Height = max(height, 1)
	r.updateContent()
	r.updateViewportScroll()
}

// SetRecords replaces the rows
func (r *TransferTableRenderer) SetRecords(records []models.Record) {
	r.Records = records
	r.updateContent()
}

// SetCursor updates the cursor position
func (r *TransferTableRenderer) SetCursor(cursor int) {
	r.Cursor = cursor
	r.updateContent()
	r.updateViewportScroll()
}

// SetActive updates the active state
func (r *TransferTableRenderer) SetActive(active bool) {
	r.IsActive = active
	r.updateContent()
}

// RenderHeader renders the column headers
func (r *TransferTableRenderer) RenderHeader() string {
	widths := formatColumnWidths(r.Width-4, len(r.Columns))

	parts := make([]string, 0, len(r.Columns))
	for i, c := range r.Columns {
		if _, right := GetColumnClassStyle(c.ClassName); right {
			parts = append(parts, fitCellRight(c.Header, widths[i]))
		} else {
			parts = append(parts, fitCell(c.Header, widths[i]))
		}
	}
	header := "  " + strings.Repeat(" ", actionWidth+1) + strings.Join(parts, " ")
	return HeaderStyle.Render(header)
}

// RenderTable renders the scrollable rows
func (r *TransferTableRenderer) RenderTable() string {
	return r.Viewport.View()
}

func (r *TransferTableRenderer) updateContent() {
	r.Viewport.SetContent(r.buildTableContent(formatColumnWidths(r.Width-4, len(r.Columns))))
}

func (r *TransferTableRenderer) buildTableContent(widths []int) string {
	if len(r.Records) == 0 {
		if r.IsActive {
			return EmptyActiveStyle.Render(r.Empty)
		}
		return EmptyInactiveStyle.Render(r.Empty)
	}

	var content strings.Builder
	for i, rec := range r.Records {
		cells := make([]string, 0, len(r.Columns))
		for j, c := range r.Columns {
			cells = append(cells, renderCell(singleLine(r.Cell(rec, c)), widths[j], c.ClassName))
		}
		line := strings.Join(cells, " ")

		action := ""
		if r.Action != nil {
			action = r.Action(rec)
		}
		actionPart := ActionStyle.Render(fitCell(action, actionWidth))

		if r.IsActive && i == r.Cursor {
			content.WriteString("▸ " + actionPart + " " + SelectedStyle.Render(line))
		} else {
			content.WriteString("  " + actionPart + " " + NormalStyle.Render(line))
		}

		if i < len(r.Records)-1 {
			content.WriteString("\n")
		}
	}
	return content.String()
}

// renderCell fits text to width and applies the column's class styles
func renderCell(text string, width int, className string) string {
	style, right := GetColumnClassStyle(className)
	if right {
		return style.Render(fitCellRight(text, width))
	}
	return style.Render(fitCell(text, width))
}

// updateViewportScroll keeps the cursor row inside the viewport
func (r *TransferTableRenderer) updateViewportScroll() {
	if len(r.Records) == 0 {
		r.Viewport.SetYOffset(0)
		return
	}

	if r.Cursor < r.Viewport.YOffset {
		r.Viewport.SetYOffset(r.Cursor)
	} else if r.Cursor >= r.Viewport.YOffset+r.Viewport.Height {
		r.Viewport.SetYOffset(r.Cursor - r.Viewport.Height + 1)
	}
}
