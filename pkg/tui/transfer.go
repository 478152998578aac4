package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/pluqqy/shuttle/pkg/models"
	"github.com/pluqqy/shuttle/pkg/transfer"
)

// RecordReconciler is the reconciler the view drives
type RecordReconciler = transfer.Reconciler[models.Record, string]

type pane int

const (
	availablePane pane = iota
	selectedPane
)

// Options configures a TransferModel
type Options struct {
	// Reconciler must already be wired so that its OnChange adopts the
	// emitted selection and re-renders it
	Reconciler *RecordReconciler
	Columns    []models.Column
	UI         models.UISettings
	// Save persists the current selection
	Save func() error
	// Copy writes text to the clipboard. Defaults to the system clipboard.
	Copy   func(string) error
	Logger *zap.Logger
}

// TransferModel is the two-pane transfer list view
type TransferModel struct {
	opts   Options
	r      *RecordReconciler
	logger *zap.Logger

	layout    *SharedLayout
	searchBar *SearchBar
	left      *TransferTableRenderer
	right     *TransferTableRenderer

	activePane pane
	cursors    [2]int
	dirty      bool
}

// NewTransferModel creates the transfer view
func NewTransferModel(opts Options) *TransferModel {
	if opts.Copy == nil {
		opts.Copy = clipboard.WriteAll
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	m := &TransferModel{
		opts:      opts,
		r:         opts.Reconciler,
		logger:    opts.Logger,
		layout:    NewSharedLayout(80, 24),
		searchBar: NewSearchBar(),
	}

	cell := func(rec models.Record, c models.Column) string { return m.r.Cell(rec, c) }
	m.left = NewTransferTableRenderer(m.layout.GetColumnWidth(), m.layout.GetContentHeight(), opts.Columns, cell,
		func(rec models.Record) string { return m.r.Action(rec, models.SideLeft) })
	m.right = NewTransferTableRenderer(m.layout.GetColumnWidth(), m.layout.GetContentHeight(), opts.Columns, cell,
		func(rec models.Record) string { return m.r.Action(rec, models.SideRight) })
	m.left.Empty = "No items match."
	m.right.Empty = "Nothing selected.\n\nPress enter on an item to add it"

	m.searchBar.SetValue(m.r.Search())
	m.refresh()
	return m
}

func (m *TransferModel) Init() tea.Cmd {
	return nil
}

// SetSize resizes the layout and both tables
func (m *TransferModel) SetSize(width, height int) {
	m.layout.SetSize(width, height)
	m.left.SetSize(m.layout.GetColumnWidth(), m.layout.GetContentHeight())
	m.right.SetSize(m.layout.GetColumnWidth(), m.layout.GetContentHeight())
}

func (m *TransferModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.searchBar.Active() {
			var cmd tea.Cmd
			m.searchBar, cmd = m.searchBar.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if m.searchBar.Active() {
		return m.handleSearchKey(keyMsg)
	}
	return m.handleKey(keyMsg)
}

func (m *TransferModel) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc", "enter", "tab":
		m.searchBar.SetActive(false)
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.searchBar, cmd = m.searchBar.Update(msg)
	if query := m.searchBar.Value(); query != m.r.Search() {
		m.r.SetSearch(query)
		m.cursors[availablePane] = 0
		m.refresh()
	}
	return m, cmd
}

func (m *TransferModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "/":
		m.activePane = availablePane
		cmd := m.searchBar.SetActive(true)
		m.refresh()
		return m, cmd

	case "tab", "shift+tab":
		if m.activePane == availablePane {
			m.activePane = selectedPane
		} else {
			m.activePane = availablePane
		}
		m.refresh()

	case "up", "k":
		m.cursors[m.activePane]--
		m.refresh()

	case "down", "j":
		m.cursors[m.activePane]++
		m.refresh()

	case "home", "g":
		m.cursors[m.activePane] = 0
		m.refresh()

	case "end", "G":
		m.cursors[m.activePane] = len(m.rows(m.activePane)) - 1
		m.refresh()

	case "enter", "right", "l":
		if item, ok := m.current(); ok {
			if m.activePane == availablePane {
				m.r.TransferToRight(item)
			} else {
				m.r.TransferToLeft(item)
			}
			m.changed()
		}

	case "left", "h", "backspace", "delete":
		if m.activePane == selectedPane {
			if item, ok := m.current(); ok {
				m.r.TransferToLeft(item)
				m.changed()
			}
		}

	case "a":
		m.r.TransferAllVisibleToRight()
		m.changed()

	case "x":
		m.r.TransferAllToLeft()
		m.changed()

	case "y":
		return m, m.copyKeys()

	case "ctrl+s":
		return m, m.save()
	}

	return m, nil
}

// current returns the record under the cursor in the active pane
func (m *TransferModel) current() (models.Record, bool) {
	rows := m.rows(m.activePane)
	c := m.cursors[m.activePane]
	if c < 0 || c >= len(rows) {
		return nil, false
	}
	return rows[c], true
}

func (m *TransferModel) rows(p pane) []models.Record {
	if p == availablePane {
		return m.r.Visible()
	}
	return m.r.Selected()
}

func (m *TransferModel) changed() {
	m.dirty = true
	m.refresh()
}

// refresh clamps both cursors and pushes the reconciler state into the tables
func (m *TransferModel) refresh() {
	visible := m.r.Visible()
	selected := m.r.Selected()

	m.cursors[availablePane] = clampCursor(m.cursors[availablePane], len(visible))
	m.cursors[selectedPane] = clampCursor(m.cursors[selectedPane], len(selected))

	m.left.SetActive(m.activePane == availablePane && !m.searchBar.Active())
	m.right.SetActive(m.activePane == selectedPane)
	m.left.SetRecords(visible)
	m.right.SetRecords(selected)
	m.left.SetCursor(m.cursors[availablePane])
	m.right.SetCursor(m.cursors[selectedPane])
}

func clampCursor(cursor, n int) int {
	if n == 0 || cursor < 0 {
		return 0
	}
	if cursor >= n {
		return n - 1
	}
	return cursor
}

func (m *TransferModel) copyKeys() tea.Cmd {
	selected := m.r.Selected()
	if len(selected) == 0 {
		return statusCmd("Nothing selected to copy")
	}

	keys := make([]string, len(selected))
	for i, rec := range selected {
		keys[i] = m.r.Key(rec)
	}
	if err := m.opts.Copy(strings.Join(keys, "\n")); err != nil {
		m.logger.Warn("clipboard copy failed", zap.Error(err))
		return statusCmd(fmt.Sprintf("× Failed to copy: %v", err))
	}
	return statusCmd(fmt.Sprintf("%s key%s → clipboard", formatCount(len(keys)), pluralize(len(keys))))
}

func (m *TransferModel) save() tea.Cmd {
	if m.opts.Save == nil {
		return statusCmd("Saving is not configured")
	}
	if err := m.opts.Save(); err != nil {
		m.logger.Error("save failed", zap.Error(err))
		return statusCmd(fmt.Sprintf("× Failed to save: %v", err))
	}
	m.dirty = false
	n := len(m.r.Selected())
	return statusCmd(fmt.Sprintf("✓ Saved %s item%s", formatCount(n), pluralize(n)))
}

// Dirty reports whether the selection changed since the last save
func (m *TransferModel) Dirty() bool {
	return m.dirty
}

func (m *TransferModel) View() string {
	var s strings.Builder

	s.WriteString(m.layout.RenderSearchBar(m.searchBar))
	s.WriteString("\n")

	leftTitle := m.r.LeftTitle()
	if q := m.r.Search(); q != "" {
		leftTitle = fmt.Sprintf("%s (%s)", leftTitle, q)
	}
	rightTitle := m.r.RightTitle()
	if m.dirty {
		rightTitle += " *"
	}

	left := m.layout.RenderPane(PaneConfig{
		Heading: leftTitle,
		Count:   len(m.left.Records),
		Active:  m.left.IsActive || m.searchBar.Active(),
		Table:   m.left,
	}, m.opts.UI.ShowCounts)
	right := m.layout.RenderPane(PaneConfig{
		Heading: rightTitle,
		Count:   len(m.right.Records),
		Active:  m.right.IsActive,
		Table:   m.right,
	}, m.opts.UI.ShowCounts)

	s.WriteString(HeaderPaddingStyle.Render(lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)))

	if m.opts.UI.ActionHints {
		s.WriteString("\n")
		s.WriteString(m.layout.RenderHelpPane(m.helpRows()))
	}
	return s.String()
}

func (m *TransferModel) helpRows() [][]string {
	if m.searchBar.Active() {
		return [][]string{
			{"type to filter", "esc/enter done", "^c quit"},
		}
	}
	return [][]string{
		{"/ search", "tab switch pane", "↑/↓ nav", "enter/→ move", "← remove"},
		{"a add all visible", "x remove all", "y copy keys", "^s save", "q quit"},
	}
}

func statusCmd(msg string) tea.Cmd {
	return func() tea.Msg {
		return StatusMsg(msg)
	}
}
