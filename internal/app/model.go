package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Rorical/RoriGen/internal/models"
	"github.com/Rorical/RoriGen/internal/update"
	"github.com/Rorical/RoriGen/ui/components"
)

func (m *AppModel) Init() tea.Cmd {
	return tea.Batch(
		update.TickCmd(),
		textarea.Blink,
		m.dispatcher.ListenForCoreEvents(),
	)
}

func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle core events and continue listening
	if coreEvent, ok := msg.(update.CoreEventMsg); ok {
		cmd := update.HandleCoreEvent(&m.appModel, coreEvent)
		return m, tea.Batch(cmd, m.dispatcher.ListenForCoreEvents())
	}

	// Handle other events through the event bus
	eventBus := m.dispatcher.GetEventBus()
	cmd := update.HandleUpdateWithEventBus(&m.appModel, msg, eventBus)

	return m, cmd
}

func (m *AppModel) View() string {
	am := &m.appModel
	width := am.Width
	if width == 0 {
		width = 80
	}
	paneWidth := components.PaneWidth(width)

	var b strings.Builder

	b.WriteString(components.RenderHeader(am.Profile, m.baseURL, width))
	b.WriteString("\n")
	b.WriteString(components.RenderTemplates(am.Form, am.Focus == models.FocusTemplates, width))
	b.WriteString("\n")

	input := components.RenderInput(am.Editor.View(), am.Focus == models.FocusInput, am.Form.Generating, paneWidth)
	preview := components.RenderPreview(am.Preview.View(), am.Focus == models.FocusOutput, am.Form.HasResult(), paneWidth)
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, input, preview))
	b.WriteString("\n")

	if !am.ServiceReady {
		b.WriteString(components.RenderError("No generator service configured, run 'rorigen profile edit'", models.NoError, width))
		b.WriteString("\n")
	}
	if panel := components.RenderError(am.Form.Error, am.Form.ErrorKind, width); panel != "" {
		b.WriteString(panel)
		b.WriteString("\n")
	}

	b.WriteString(components.RenderHelp(update.Keys.ShortHelp(), width))
	b.WriteString("\n")
	b.WriteString(components.RenderStatus(am.Status, am.Notice, am.Form.Generating, am.Spinner.View(), width))

	return b.String()
}
