package core

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/Rorical/RoriGen/internal/config"
	"github.com/Rorical/RoriGen/internal/eventbus"
	"github.com/Rorical/RoriGen/internal/models"
)

// GenerationService owns the form for one TUI session. UI events are handled
// on a single event loop; the catalog load and generation requests run on
// their own goroutines.
type GenerationService struct {
	config     *config.Config
	state      *FormState
	controller *Controller
	eventBus   *eventbus.EventBus
	logger     zerolog.Logger
	ctx        context.Context
	cancel     context.CancelFunc
	wg         sync.WaitGroup
	pushMu     sync.Mutex // Keeps snapshots in transition order
}

// NewGenerationService wires a controller to the event bus. Extra options
// are applied after the config-derived ones.
func NewGenerationService(cfg *config.Config, eb *eventbus.EventBus, svc GeneratorService, logger zerolog.Logger, opts ...Option) *GenerationService {
	ctx, cancel := context.WithCancel(context.Background())

	s := &GenerationService{
		config:   cfg,
		state:    NewFormState(),
		eventBus: eb,
		logger:   logger,
		ctx:      ctx,
		cancel:   cancel,
	}

	base := []Option{
		WithLogger(logger),
		WithSaver(DirSaver{Dir: cfg.DownloadDir}),
		WithExtensions(cfg.Extensions),
		WithChangeHook(s.pushStateToUI),
	}
	s.controller = NewController(s.state, svc, append(base, opts...)...)

	return s
}

// Start pushes the initial state, begins the one-time catalog load and runs
// the event loop in a goroutine.
func (s *GenerationService) Start() {
	s.pushStateToUI()
	s.spawn(s.loadCatalog)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.eventLoop()
	}()
}

// Stop cancels in-flight requests and waits for all goroutines to exit.
func (s *GenerationService) Stop() {
	s.cancel()
	s.wg.Wait()
}

func (s *GenerationService) State() *FormState {
	return s.state
}

func (s *GenerationService) IsReady() bool {
	return s.config.IsValid()
}

func (s *GenerationService) spawn(fn func()) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		fn()
	}()
}

func (s *GenerationService) eventLoop() {
	for {
		select {
		case <-s.ctx.Done():
			return
		case event, ok := <-s.eventBus.UIToCore():
			if !ok {
				return
			}
			s.handleUIEvent(event)
		}
	}
}

func (s *GenerationService) handleUIEvent(event eventbus.UIEvent) {
	switch e := event.(type) {
	case eventbus.SetTemplateEvent:
		s.state.SetTemplate(e.Name)
		s.pushStateToUI()
	case eventbus.SetInputEvent:
		s.state.SetInput(e.Input)
		s.pushStateToUI()
	case eventbus.LoadExampleEvent:
		s.state.LoadExample()
		s.send(eventbus.InputReplacedEvent{Input: ExampleInput})
		s.pushStateToUI()
	case eventbus.GenerateEvent:
		if s.state.IsGenerating() {
			s.logger.Debug().Msg("generate ignored, request already in flight")
			return
		}
		s.spawn(s.generate)
	case eventbus.ReloadCatalogEvent:
		if s.state.IsLoadingCatalog() {
			return
		}
		s.spawn(s.loadCatalog)
	case eventbus.CopyResultEvent:
		s.copyResult()
	case eventbus.DownloadResultEvent:
		s.downloadResult()
	}
}

func (s *GenerationService) loadCatalog() {
	if err := s.controller.LoadCatalog(s.ctx); err != nil && !errors.Is(err, ErrCatalogLoading) {
		s.logger.Debug().Err(err).Msg("catalog load finished with error")
	}
}

func (s *GenerationService) generate() {
	err := s.controller.Generate(s.ctx)
	if errors.Is(err, ErrGenerationInFlight) {
		s.logger.Debug().Msg("generate rejected, request already in flight")
	}
}

func (s *GenerationService) copyResult() {
	err := s.controller.CopyResult()
	switch {
	case err == nil:
		s.notify(models.Success, "Copied to clipboard")
	case errors.Is(err, ErrNoResult):
		s.notify(models.Info, "Nothing to copy yet")
	}
	// Clipboard failures are logged by the controller only
}

func (s *GenerationService) downloadResult() {
	path, err := s.controller.DownloadResult()
	switch {
	case err == nil:
		s.notify(models.Success, "Saved "+path)
	case errors.Is(err, ErrNoResult):
		s.notify(models.Info, "Nothing to download yet")
	default:
		s.notify(models.Warning, fmt.Sprintf("Download failed: %v", err))
	}
}

func (s *GenerationService) notify(kind models.NoticeType, content string) {
	s.send(eventbus.NoticeEvent{Notice: models.Notice{Content: content, Type: kind}})
}

func (s *GenerationService) pushStateToUI() {
	s.pushMu.Lock()
	defer s.pushMu.Unlock()
	s.send(eventbus.StateUpdateEvent{State: s.state.Snapshot()})
}

func (s *GenerationService) send(event eventbus.CoreEvent) {
	if err := s.eventBus.SendToUI(event); err != nil {
		// The UI is gone or not draining; nothing else to do with the event
		s.logger.Warn().Err(err).Msg("failed to send event to UI")
	}
}
