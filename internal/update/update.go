package update

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/RoriGen/internal/eventbus"
	"github.com/Rorical/RoriGen/internal/models"
	"github.com/Rorical/RoriGen/ui/components"
)

const noticeDuration = 3 * time.Second

// HandleKeyMsgWithEventBus handles keyboard input using event bus
func HandleKeyMsgWithEventBus(appModel *models.AppModel, keyMsg tea.KeyMsg, eb *eventbus.EventBus) tea.Cmd {
	form := appModel.Form

	switch {
	case key.Matches(keyMsg, Keys.Quit):
		return tea.Quit
	case keyMsg.String() == "q" && appModel.Focus != models.FocusInput:
		return tea.Quit
	case key.Matches(keyMsg, Keys.NextFocus):
		setFocus(appModel, appModel.Focus.Next())
		return nil
	case key.Matches(keyMsg, Keys.Generate):
		// The trigger is disabled while a request is outstanding
		if form.Generating {
			return nil
		}
		sendToCore(appModel, eb, eventbus.GenerateEvent{})
		return nil
	case key.Matches(keyMsg, Keys.LoadExample):
		if form.Generating {
			return nil
		}
		sendToCore(appModel, eb, eventbus.LoadExampleEvent{})
		return nil
	case key.Matches(keyMsg, Keys.Copy):
		if form.HasResult() {
			sendToCore(appModel, eb, eventbus.CopyResultEvent{})
		}
		return nil
	case key.Matches(keyMsg, Keys.Download):
		if form.HasResult() {
			sendToCore(appModel, eb, eventbus.DownloadResultEvent{})
		}
		return nil
	case key.Matches(keyMsg, Keys.Reload):
		if !form.LoadingCatalog {
			sendToCore(appModel, eb, eventbus.ReloadCatalogEvent{})
		}
		return nil
	}

	switch appModel.Focus {
	case models.FocusTemplates:
		return handleTemplateKey(appModel, keyMsg, eb)
	case models.FocusInput:
		return handleEditorKey(appModel, keyMsg, eb)
	case models.FocusOutput:
		var cmd tea.Cmd
		appModel.Preview, cmd = appModel.Preview.Update(keyMsg)
		return cmd
	}
	return nil
}

func handleTemplateKey(appModel *models.AppModel, keyMsg tea.KeyMsg, eb *eventbus.EventBus) tea.Cmd {
	form := &appModel.Form
	if form.LoadingCatalog || len(form.Generators) == 0 {
		return nil
	}

	idx := form.SelectedIndex()
	switch {
	case key.Matches(keyMsg, Keys.Up):
		if idx <= 0 {
			return nil
		}
		idx--
	case key.Matches(keyMsg, Keys.Down):
		if idx >= len(form.Generators)-1 {
			return nil
		}
		idx++
	default:
		return nil
	}

	name := form.Generators[idx].Name
	// Reflect the choice immediately; the next snapshot from core confirms it
	form.SelectedTemplate = name
	sendToCore(appModel, eb, eventbus.SetTemplateEvent{Name: name})
	return nil
}

func handleEditorKey(appModel *models.AppModel, keyMsg tea.KeyMsg, eb *eventbus.EventBus) tea.Cmd {
	if appModel.Form.Generating {
		return nil
	}

	before := appModel.Editor.Value()
	var cmd tea.Cmd
	appModel.Editor, cmd = appModel.Editor.Update(keyMsg)
	if after := appModel.Editor.Value(); after != before {
		sendToCore(appModel, eb, eventbus.SetInputEvent{Input: after})
	}
	return cmd
}

func setFocus(appModel *models.AppModel, focus models.Focus) {
	appModel.Focus = focus
	if focus == models.FocusInput && !appModel.Form.Generating {
		appModel.Editor.Focus()
	} else {
		appModel.Editor.Blur()
	}
}

func sendToCore(appModel *models.AppModel, eb *eventbus.EventBus, event eventbus.UIEvent) {
	if err := eb.SendToCore(event); err != nil {
		appModel.Status = "Error sending event: " + err.Error()
	}
}

// CoreEventMsg wraps core events for Bubble Tea
type CoreEventMsg struct {
	Event eventbus.CoreEvent
}

// HandleCoreEvent processes events from the core
func HandleCoreEvent(appModel *models.AppModel, coreEventMsg CoreEventMsg) tea.Cmd {
	switch event := coreEventMsg.Event.(type) {
	case eventbus.StateUpdateEvent:
		wasGenerating := appModel.Form.Generating
		appModel.Form = event.State
		appModel.Status = statusFor(event.State)
		appModel.Preview.SetContent(components.RenderCode(event.State.GeneratedCode))
		if appModel.Width > 0 {
			// Template pane height depends on the catalog size
			HandleWindowSizeMsg(appModel, tea.WindowSizeMsg{Width: appModel.Width, Height: appModel.Height})
		}

		// Editor is read-only while a request is in flight
		setFocus(appModel, appModel.Focus)

		if event.State.Generating && !wasGenerating {
			return appModel.Spinner.Tick
		}
	case eventbus.InputReplacedEvent:
		appModel.Editor.SetValue(event.Input)
	case eventbus.NoticeEvent:
		notice := event.Notice
		appModel.Notice = &notice
		appModel.NoticeUntil = time.Now().Add(noticeDuration)
	}

	return nil
}

func statusFor(form models.FormSnapshot) string {
	switch {
	case form.Generating:
		return "Generating"
	case form.LoadingCatalog:
		return "Loading templates"
	default:
		return "Ready"
	}
}

type TickMsg time.Time

func TickCmd() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func HandleWindowSizeMsg(appModel *models.AppModel, sizeMsg tea.WindowSizeMsg) {
	appModel.Width = sizeMsg.Width
	appModel.Height = sizeMsg.Height

	paneWidth := components.PaneWidth(sizeMsg.Width)
	bodyHeight := components.BodyHeight(sizeMsg.Height, len(appModel.Form.Generators))

	appModel.Editor.SetWidth(paneWidth)
	appModel.Editor.SetHeight(bodyHeight)
	appModel.Preview.Width = paneWidth
	appModel.Preview.Height = bodyHeight
}

// HandleTickMsg expires notices
func HandleTickMsg(appModel *models.AppModel, now time.Time) tea.Cmd {
	if appModel.Notice != nil && now.After(appModel.NoticeUntil) {
		appModel.Notice = nil
	}
	return TickCmd()
}
