package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/drgmb/revisa/internal/activity"
	"github.com/drgmb/revisa/internal/cli/formatter"
)

// dashboardModel is the bubbletea model behind "today --watch": it shows the
// day's classification and re-fetches the logs on demand.
type dashboardModel struct {
	app     *App
	day     time.Time
	spinner spinner.Model
	loading bool
	result  *activity.DayClassification
	err     error
}

type classifiedMsg struct {
	result *activity.DayClassification
	err    error
}

func newDashboardModel(app *App, day time.Time) dashboardModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = formatter.StylePurple
	return dashboardModel{app: app, day: day, spinner: sp, loading: true}
}

func (m dashboardModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.classify(true))
}

func (m dashboardModel) classify(refresh bool) tea.Cmd {
	return func() tea.Msg {
		c, err := m.app.Activity.ClassifyDay(context.Background(), m.day, refresh)
		return classifiedMsg{result: c, err: err}
	}
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "r":
			if !m.loading {
				m.loading = true
				m.err = nil
				return m, tea.Batch(m.spinner.Tick, m.classify(true))
			}
		}
	case classifiedMsg:
		m.loading = false
		m.result = msg.result
		m.err = msg.err
		return m, nil
	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m dashboardModel) View() string {
	if m.loading {
		return "\n  " + m.spinner.View() + formatter.Dim("fetching logs…") + "\n"
	}
	if m.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+m.err.Error()) +
			"\n\n" + formatter.Dim("r retry · q quit") + "\n"
	}
	return "\n" + formatter.RenderDay(m.day, m.result) +
		"\n" + formatter.Dim("r refresh · q quit") + "\n"
}
