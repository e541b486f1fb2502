package update

import (
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rorical/RoriGen/internal/eventbus"
	"github.com/Rorical/RoriGen/internal/models"
)

func newTestModel() *models.AppModel {
	return &models.AppModel{
		Form: models.FormSnapshot{
			Generators: []models.Generator{
				{Name: "go-struct", Description: "Generate Go structures"},
				{Name: "ts-interface", Description: "Generate TypeScript interfaces"},
			},
			SelectedTemplate: "go-struct",
		},
		Editor:  textarea.New(),
		Preview: viewport.New(40, 10),
		Spinner: spinner.New(),
		Focus:   models.FocusTemplates,
	}
}

func ctrlKey(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// drain returns every event queued for core
func drain(eb *eventbus.EventBus) []eventbus.UIEvent {
	var events []eventbus.UIEvent
	for {
		select {
		case e := <-eb.UIToCore():
			events = append(events, e)
		default:
			return events
		}
	}
}

func TestHandleKey_GlobalActions(t *testing.T) {
	tests := []struct {
		name  string
		key   tea.KeyMsg
		form  func(*models.FormSnapshot)
		wants []eventbus.UIEvent
	}{
		{name: "generate", key: ctrlKey(tea.KeyCtrlG), wants: []eventbus.UIEvent{eventbus.GenerateEvent{}}},
		{
			name:  "generate while generating",
			key:   ctrlKey(tea.KeyCtrlG),
			form:  func(f *models.FormSnapshot) { f.Generating = true },
			wants: nil,
		},
		{name: "load example", key: ctrlKey(tea.KeyCtrlE), wants: []eventbus.UIEvent{eventbus.LoadExampleEvent{}}},
		{name: "copy without result", key: ctrlKey(tea.KeyCtrlY), wants: nil},
		{
			name:  "copy with result",
			key:   ctrlKey(tea.KeyCtrlY),
			form:  func(f *models.FormSnapshot) { f.GeneratedCode = "x" },
			wants: []eventbus.UIEvent{eventbus.CopyResultEvent{}},
		},
		{
			name:  "save with result",
			key:   ctrlKey(tea.KeyCtrlS),
			form:  func(f *models.FormSnapshot) { f.GeneratedCode = "x" },
			wants: []eventbus.UIEvent{eventbus.DownloadResultEvent{}},
		},
		{name: "reload", key: ctrlKey(tea.KeyCtrlR), wants: []eventbus.UIEvent{eventbus.ReloadCatalogEvent{}}},
		{
			name:  "reload while loading",
			key:   ctrlKey(tea.KeyCtrlR),
			form:  func(f *models.FormSnapshot) { f.LoadingCatalog = true },
			wants: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eb := eventbus.NewEventBus()
			defer eb.Close()
			m := newTestModel()
			if tt.form != nil {
				tt.form(&m.Form)
			}

			HandleKeyMsgWithEventBus(m, tt.key, eb)

			assert.Equal(t, tt.wants, drain(eb))
		})
	}
}

func TestHandleKey_TemplateNavigation(t *testing.T) {
	eb := eventbus.NewEventBus()
	defer eb.Close()
	m := newTestModel()

	HandleKeyMsgWithEventBus(m, ctrlKey(tea.KeyUp), eb)
	assert.Empty(t, drain(eb))

	HandleKeyMsgWithEventBus(m, runeKey('j'), eb)
	assert.Equal(t, "ts-interface", m.Form.SelectedTemplate)
	assert.Equal(t, []eventbus.UIEvent{eventbus.SetTemplateEvent{Name: "ts-interface"}}, drain(eb))

	HandleKeyMsgWithEventBus(m, ctrlKey(tea.KeyDown), eb)
	assert.Empty(t, drain(eb))
}

func TestHandleKey_QuitOutsideEditor(t *testing.T) {
	eb := eventbus.NewEventBus()
	defer eb.Close()
	m := newTestModel()

	cmd := HandleKeyMsgWithEventBus(m, runeKey('q'), eb)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())

	// Inside the editor q is text
	setFocus(m, models.FocusInput)
	HandleKeyMsgWithEventBus(m, runeKey('q'), eb)
	assert.Equal(t, "q", m.Editor.Value())
	assert.Equal(t, []eventbus.UIEvent{eventbus.SetInputEvent{Input: "q"}}, drain(eb))
}

func TestHandleKey_EditorSendsInput(t *testing.T) {
	eb := eventbus.NewEventBus()
	defer eb.Close()
	m := newTestModel()
	HandleKeyMsgWithEventBus(m, ctrlKey(tea.KeyTab), eb)
	require.Equal(t, models.FocusInput, m.Focus)

	HandleKeyMsgWithEventBus(m, runeKey('{'), eb)

	assert.Equal(t, []eventbus.UIEvent{eventbus.SetInputEvent{Input: "{"}}, drain(eb))
}

func TestHandleKey_EditorReadOnlyWhileGenerating(t *testing.T) {
	eb := eventbus.NewEventBus()
	defer eb.Close()
	m := newTestModel()
	setFocus(m, models.FocusInput)
	m.Form.Generating = true

	HandleKeyMsgWithEventBus(m, runeKey('x'), eb)

	assert.Empty(t, m.Editor.Value())
	assert.Empty(t, drain(eb))
}

func TestHandleCoreEvent_StateUpdate(t *testing.T) {
	m := newTestModel()
	m.Width, m.Height = 120, 40

	cmd := HandleCoreEvent(m, CoreEventMsg{Event: eventbus.StateUpdateEvent{State: models.FormSnapshot{
		Generators: m.Form.Generators,
		Generating: true,
	}}})

	assert.NotNil(t, cmd)
	assert.Equal(t, "Generating", m.Status)

	cmd = HandleCoreEvent(m, CoreEventMsg{Event: eventbus.StateUpdateEvent{State: models.FormSnapshot{
		Generators:    m.Form.Generators,
		GeneratedCode: "type User struct{}",
	}}})

	assert.Nil(t, cmd)
	assert.Equal(t, "Ready", m.Status)
	assert.Contains(t, m.Preview.View(), "type User struct{}")
}

func TestHandleCoreEvent_InputReplacedAndNotice(t *testing.T) {
	m := newTestModel()

	HandleCoreEvent(m, CoreEventMsg{Event: eventbus.InputReplacedEvent{Input: `{"name":"John Doe"}`}})
	assert.Equal(t, `{"name":"John Doe"}`, m.Editor.Value())

	HandleCoreEvent(m, CoreEventMsg{Event: eventbus.NoticeEvent{Notice: models.Notice{Content: "Copied to clipboard", Type: models.Success}}})
	require.NotNil(t, m.Notice)
	assert.Equal(t, "Copied to clipboard", m.Notice.Content)

	HandleTickMsg(m, m.NoticeUntil.Add(-time.Millisecond))
	assert.NotNil(t, m.Notice)
	HandleTickMsg(m, m.NoticeUntil.Add(time.Millisecond))
	assert.Nil(t, m.Notice)
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, "Loading templates", statusFor(models.FormSnapshot{LoadingCatalog: true}))
	assert.Equal(t, "Generating", statusFor(models.FormSnapshot{LoadingCatalog: true, Generating: true}))
	assert.Equal(t, "Ready", statusFor(models.FormSnapshot{}))
}
