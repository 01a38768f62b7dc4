package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

const footerText = "↑/↓: scroll | Esc or q: quit"

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorPurple))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(colorGray6))
)

// TUIHandler displays the rendered changelog in an interactive scrollable
// viewport. If the UI fails to start (e.g. no usable terminal), it falls back
// to the plain handler.
func TUIHandler(cmd *cobra.Command, body string) error {
	p := tea.NewProgram(
		pagerModel{title: cmd.CommandPath(), body: body},
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error running changelog UI: %v\nUsing plain output handler...\n", err)

		return PlainHandler(cmd, body)
	}

	return nil
}

// pagerModel is the bubbletea model for the changelog pager.
type pagerModel struct {
	title    string
	body     string
	viewport viewport.Model
	ready    bool
}

func (m pagerModel) Init() tea.Cmd {
	return nil
}

func (m pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		headerHeight := lipgloss.Height(m.headerView())
		footerHeight := lipgloss.Height(m.footerView())

		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-headerHeight-footerHeight)
			m.viewport.SetContent(m.body)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - headerHeight - footerHeight
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)

	return m, cmd
}

func (m pagerModel) View() string {
	if !m.ready {
		return "\n  Loading..."
	}

	return strings.Join([]string{m.headerView(), m.viewport.View(), m.footerView()}, "\n")
}

func (m pagerModel) headerView() string {
	return titleStyle.Render(m.title)
}

func (m pagerModel) footerView() string {
	return footerStyle.Render(fmt.Sprintf("%3.f%% | %s", m.viewport.ScrollPercent()*100, footerText))
}
