package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/Rorical/RoriGen/internal/api"
	"github.com/Rorical/RoriGen/internal/models"
)

// GeneratorService is the part of the transport the controller depends on
type GeneratorService interface {
	ListGenerators(ctx context.Context) (api.ListGeneratorsResponse, error)
	GenerateCode(ctx context.Context, req api.GenerateRequest) (api.GenerateResponse, error)
}

// Controller drives the catalog load, generation requests and post-result
// actions against a single FormState.
type Controller struct {
	state      *FormState
	service    GeneratorService
	clipboard  Clipboard
	saver      Saver
	extensions map[string]string
	logger     zerolog.Logger
	onChange   func()
}

type Option func(*Controller)

func WithClipboard(cb Clipboard) Option {
	return func(c *Controller) {
		c.clipboard = cb
	}
}

func WithSaver(s Saver) Option {
	return func(c *Controller) {
		c.saver = s
	}
}

// WithExtensions overrides the download extension per template name
func WithExtensions(ext map[string]string) Option {
	return func(c *Controller) {
		c.extensions = ext
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(c *Controller) {
		c.logger = logger
	}
}

// WithChangeHook registers fn to run after every state transition the
// controller performs.
func WithChangeHook(fn func()) Option {
	return func(c *Controller) {
		c.onChange = fn
	}
}

func NewController(state *FormState, service GeneratorService, opts ...Option) *Controller {
	c := &Controller{
		state:     state,
		service:   service,
		clipboard: SystemClipboard{},
		saver:     DirSaver{},
		logger:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) State() *FormState {
	return c.state
}

func (c *Controller) changed() {
	if c.onChange != nil {
		c.onChange()
	}
}

// LoadCatalog fetches the generator list. The loading flag is released on
// every exit path, including a panicking transport.
func (c *Controller) LoadCatalog(ctx context.Context) (err error) {
	if !c.state.StartCatalogLoad() {
		return ErrCatalogLoading
	}
	c.changed()

	defer func() {
		if r := recover(); r != nil {
			c.logger.Error().Interface("panic", r).Msg("catalog load panicked")
			c.state.FinishCatalogLoadWithError(CatalogErrorMessage)
			c.changed()
			err = fmt.Errorf("%w: %v", ErrCatalogUnavailable, r)
		}
	}()

	resp, err := c.service.ListGenerators(ctx)
	if err != nil {
		c.logger.Error().Err(err).Msg("failed to load generators")
		c.state.FinishCatalogLoadWithError(CatalogErrorMessage)
		c.changed()
		return fmt.Errorf("%w: %w", ErrCatalogUnavailable, err)
	}

	generators := make([]models.Generator, 0, len(resp.Generators))
	for _, info := range resp.Generators {
		generators = append(generators, models.Generator{
			Name:        info.Name,
			Description: info.Description,
		})
	}

	c.state.FinishCatalogLoad(generators)
	c.logger.Info().Int("count", len(generators)).Msg("generator catalog loaded")
	c.changed()
	return nil
}

// Generate validates the form and submits it. The form is the source of
// truth for the outcome; the returned error only describes it.
func (c *Controller) Generate(ctx context.Context) (err error) {
	req, err := c.state.StartGeneration()
	if err != nil {
		if errors.Is(err, ErrInvalidForm) {
			c.changed()
		}
		return err
	}
	c.changed()

	log := c.logger.With().Str("template", req.Template).Logger()
	log.Debug().Int("input_bytes", len(req.Input)).Msg("generation started")

	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("generation panicked")
			c.state.FinishGenerationWithError(GenerationErrorMessage)
			c.changed()
			err = &GenerationError{Message: GenerationErrorMessage, Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	resp, err := c.service.GenerateCode(ctx, req)
	if err != nil {
		message := failureMessage(err)
		log.Warn().Err(err).Msg("generation failed")
		c.state.FinishGenerationWithError(message)
		c.changed()
		return &GenerationError{Message: message, Err: err}
	}

	c.state.FinishGeneration(resp.Code)
	log.Info().Int("code_bytes", len(resp.Code)).Msg("generation succeeded")
	c.changed()
	return nil
}

// failureMessage prefers the message embedded by the service
func failureMessage(err error) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return GenerationErrorMessage
}
