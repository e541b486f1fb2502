package app

import (
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/Rorical/RoriGen/internal/api"
	"github.com/Rorical/RoriGen/internal/config"
	"github.com/Rorical/RoriGen/internal/core"
	"github.com/Rorical/RoriGen/internal/dispatcher"
	"github.com/Rorical/RoriGen/internal/eventbus"
	"github.com/Rorical/RoriGen/internal/logging"
	"github.com/Rorical/RoriGen/internal/models"
	"github.com/Rorical/RoriGen/ui/components"
)

// Application manages the complete application lifecycle
type Application struct {
	config     *config.Config
	eventBus   *eventbus.EventBus
	dispatcher *dispatcher.EventDispatcher
	service    *core.GenerationService
	model      *AppModel
	logger     zerolog.Logger
	logCloser  io.Closer
}

type AppModel struct {
	appModel   models.AppModel
	dispatcher *dispatcher.EventDispatcher
	baseURL    string
}

// NewApplication builds the TUI for the active profile of cfg
func NewApplication(cfg *config.Config) (*Application, error) {
	logger, closer, err := logging.NewFileLogger(cfg.GetLogFile(), cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	client := api.NewClient(cfg.GetBaseURL(), cfg.GetTimeout(), api.WithLogger(logger))

	// Create event bus
	eb := eventbus.NewEventBus()
	eb.SetErrorCallback(func(e eventbus.EventBusError) {
		logger.Warn().Err(e.Err).Str("operation", e.Operation).Msg("event bus error")
	})

	// Create dispatcher
	disp := dispatcher.NewEventDispatcher(eb)

	generationService := core.NewGenerationService(cfg, eb, client, logger)

	model := &AppModel{
		appModel:   createInitialAppModel(cfg, generationService),
		dispatcher: disp,
		baseURL:    client.BaseURL(),
	}

	logger.Info().Str("profile", cfg.CurrentProfileName()).Str("base_url", client.BaseURL()).Msg("application created")

	return &Application{
		config:     cfg,
		eventBus:   eb,
		dispatcher: disp,
		service:    generationService,
		model:      model,
		logger:     logger,
		logCloser:  closer,
	}, nil
}

func (app *Application) Start() error {
	app.service.Start()

	// Run UI
	p := tea.NewProgram(app.model, tea.WithAltScreen())
	_, err := p.Run()

	return err
}

func (app *Application) Stop() {
	app.service.Stop()
	app.dispatcher.Stop()
	app.eventBus.Close()

	app.logger.Info().Msg("application stopped")
	if app.logCloser != nil {
		app.logCloser.Close()
	}
}

func createInitialAppModel(cfg *config.Config, svc *core.GenerationService) models.AppModel {
	editor := textarea.New()
	editor.Placeholder = "Enter your JSON data here..."
	editor.ShowLineNumbers = true
	editor.CharLimit = 0 // No limit
	editor.SetWidth(40)
	editor.SetHeight(10)

	preview := viewport.New(40, 10)
	preview.SetContent(components.RenderCode(""))

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("170"))

	// No initial form state in UI - it comes from core as single source of truth
	return models.AppModel{
		Editor:       editor,
		Preview:      preview,
		Spinner:      s,
		Focus:        models.FocusTemplates,
		Status:       "Ready",
		Profile:      cfg.CurrentProfileName(),
		ServiceReady: svc.IsReady(),
	}
}
