package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"ghnotifs/internal/logging"
	"ghnotifs/internal/theme"
)

// RefreshFunc performs one fetch-and-render pass and returns the rendered
// console output plus the notification count.
type RefreshFunc func() (output string, count int, err error)

type refreshedMsg struct {
	output string
	count  int
	at     time.Time
}

type refreshFailedMsg struct {
	err error
}

type tickMsg struct{}

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99"))

	headerInfoStyle = theme.MutedStyle

	errorStyle = lipgloss.NewStyle().
			Foreground(theme.ColorClosed)

	helpStyle = theme.MutedStyle
)

// WatchModel is the live dashboard: it refetches and rerenders the
// notification list on a fixed interval. A failed refresh keeps the previous
// screen and shows the error.
type WatchModel struct {
	refresh  RefreshFunc
	interval time.Duration
	spinner  spinner.Model

	output      string
	count       int
	refreshedAt time.Time
	err         error
	loading     bool
}

// NewWatchModel creates the watch screen.
func NewWatchModel(refresh RefreshFunc, interval time.Duration) WatchModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return WatchModel{
		refresh:  refresh,
		interval: interval,
		spinner:  s,
		loading:  true,
	}
}

func (m WatchModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.refreshCmd())
}

func (m WatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "r":
			if !m.loading {
				m.loading = true
				return m, tea.Batch(m.spinner.Tick, m.refreshCmd())
			}
		}

	case refreshedMsg:
		logging.Logger.Debug("Watch refreshed", "count", msg.count)
		m.loading = false
		m.err = nil
		m.output = msg.output
		m.count = msg.count
		m.refreshedAt = msg.at
		return m, m.scheduleTick()

	case refreshFailedMsg:
		logging.Logger.Warn("Watch refresh failed", "error", msg.err)
		m.loading = false
		m.err = msg.err
		return m, m.scheduleTick()

	case tickMsg:
		if !m.loading {
			m.loading = true
			return m, tea.Batch(m.spinner.Tick, m.refreshCmd())
		}

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

func (m WatchModel) View() string {
	header := headerStyle.Render("ghnotifs")
	if !m.refreshedAt.IsZero() {
		header += headerInfoStyle.Render(fmt.Sprintf("  %d pending reviews, refreshed %s",
			m.count, m.refreshedAt.Format("15:04:05")))
	}
	if m.loading {
		header += " " + m.spinner.View()
	}

	body := m.output
	if m.err != nil {
		body = errorStyle.Render(fmt.Sprintf("refresh failed: %v", m.err)) + "\n\n" + body
	}
	if body == "" && !m.loading {
		body = headerInfoStyle.Render("No pending review notifications.")
	}

	return header + "\n\n" + body + "\n" + helpStyle.Render("r refresh · q quit") + "\n"
}

func (m WatchModel) refreshCmd() tea.Cmd {
	return func() tea.Msg {
		output, count, err := m.refresh()
		if err != nil {
			return refreshFailedMsg{err: err}
		}
		return refreshedMsg{output: output, count: count, at: time.Now()}
	}
}

func (m WatchModel) scheduleTick() tea.Cmd {
	return tea.Tick(m.interval, func(time.Time) tea.Msg {
		return tickMsg{}
	})
}
