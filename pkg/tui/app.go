package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// App is the root model: it owns the window size and the status bar and
// routes everything else to the transfer view
type App struct {
	transfer  *TransferModel
	title     *ViewTitle
	width     int
	height    int
	statusMsg string
}

// NewApp creates the root model around a transfer view
func NewApp(opts Options, title string) *App {
	return &App{
		transfer: NewTransferModel(opts),
		title:    NewViewTitle(title),
	}
}

func (a *App) Init() tea.Cmd {
	return a.transfer.Init()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.transfer.SetSize(msg.Width, msg.Height-ViewTitleHeight())
		return a, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}
		// Any key dismisses the previous status
		a.statusMsg = ""

	case StatusMsg:
		a.statusMsg = string(msg)
		return a, nil
	}

	m, cmd := a.transfer.Update(msg)
	if tm, ok := m.(*TransferModel); ok {
		a.transfer = tm
	}
	return a, cmd
}

func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		a.title.ViewWithAlignment(a.width),
		a.transfer.View())

	if a.statusMsg != "" {
		content = lipgloss.JoinVertical(lipgloss.Left, content, StatusStyle.Render(a.statusMsg))
	}

	return content
}

// Transfer returns the transfer view
func (a *App) Transfer() *TransferModel {
	return a.transfer
}

// StatusMsg sets the status bar text
type StatusMsg string
