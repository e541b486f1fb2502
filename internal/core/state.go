package core

import (
	"strings"
	"sync"

	"github.com/Rorical/RoriGen/internal/api"
	"github.com/Rorical/RoriGen/internal/models"
)

// Messages shown in the error panel
const (
	CatalogErrorMessage    = "Failed to load generators"
	ValidationErrorMessage = "Please select a template and provide JSON input"
	GenerationErrorMessage = "Failed to generate code"
)

// ExampleInput is the payload inserted by LoadExample
const ExampleInput = `{
  "name": "John Doe",
  "age": 30,
  "email": "john@example.com",
  "active": true,
  "tags": ["developer", "golang"]
}`

// FormState holds the generation form for one session
type FormState struct {
	mu                sync.RWMutex
	generators        []models.Generator // Catalog order as returned by the service
	selectedTemplate  string
	rawInput          string
	isLoadingCatalog  bool
	isGenerating      bool
	lastGeneratedCode string
	lastError         string
	errorKind         models.ErrorKind
}

func NewFormState() *FormState {
	return &FormState{
		generators: make([]models.Generator, 0),
	}
}

func (fs *FormState) SetTemplate(name string) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.selectedTemplate = name
}

func (fs *FormState) SetInput(text string) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.rawInput = text
}

// LoadExample replaces the input with ExampleInput. The template is untouched.
func (fs *FormState) LoadExample() {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.rawInput = ExampleInput
}

func (fs *FormState) Snapshot() models.FormSnapshot {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	generators := make([]models.Generator, len(fs.generators))
	copy(generators, fs.generators)

	return models.FormSnapshot{
		Generators:       generators,
		SelectedTemplate: fs.selectedTemplate,
		Input:            fs.rawInput,
		LoadingCatalog:   fs.isLoadingCatalog,
		Generating:       fs.isGenerating,
		GeneratedCode:    fs.lastGeneratedCode,
		Error:            fs.lastError,
		ErrorKind:        fs.errorKind,
	}
}

func (fs *FormState) IsGenerating() bool {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	return fs.isGenerating
}

func (fs *FormState) IsLoadingCatalog() bool {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	return fs.isLoadingCatalog
}

func (fs *FormState) GeneratedCode() string {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	return fs.lastGeneratedCode
}

func (fs *FormState) LastError() string {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	return fs.lastError
}

// Atomic transitions for the catalog load

// StartCatalogLoad marks the catalog as loading. It returns false if a load
// is already running.
func (fs *FormState) StartCatalogLoad() bool {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	if fs.isLoadingCatalog {
		return false
	}
	fs.isLoadingCatalog = true
	return true
}

func (fs *FormState) FinishCatalogLoad(generators []models.Generator) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	fs.isLoadingCatalog = false
	fs.generators = make([]models.Generator, len(generators))
	copy(fs.generators, generators)

	// A stale catalog error goes away with the next good load; errors from
	// other operations stay visible.
	if fs.errorKind == models.CatalogError {
		fs.lastError = ""
		fs.errorKind = models.NoError
	}

	// Only an unset selection is defaulted; a name the catalog no longer
	// offers is kept and left to the service to reject.
	if len(fs.generators) > 0 && fs.selectedTemplate == "" {
		fs.selectedTemplate = fs.generators[0].Name
	}
}

func (fs *FormState) FinishCatalogLoadWithError(message string) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	fs.isLoadingCatalog = false
	fs.lastError = message
	fs.errorKind = models.CatalogError
}

// Atomic transitions for a generation request

// StartGeneration validates the form and, on success, moves it into the
// generating state. The returned request carries the trimmed input.
//
// It returns ErrGenerationInFlight without touching the form when another
// generation is outstanding, and ErrInvalidForm after recording the
// validation message when a template or input is missing.
func (fs *FormState) StartGeneration() (api.GenerateRequest, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	if fs.isGenerating {
		return api.GenerateRequest{}, ErrGenerationInFlight
	}

	input := strings.TrimSpace(fs.rawInput)
	if fs.selectedTemplate == "" || input == "" {
		fs.lastError = ValidationErrorMessage
		fs.errorKind = models.ValidationError
		return api.GenerateRequest{}, ErrInvalidForm
	}

	fs.isGenerating = true
	fs.lastError = ""
	fs.errorKind = models.NoError

	return api.GenerateRequest{
		Template: fs.selectedTemplate,
		Input:    input,
	}, nil
}

func (fs *FormState) FinishGeneration(code string) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	fs.lastGeneratedCode = code
	fs.lastError = ""
	fs.errorKind = models.NoError
	fs.isGenerating = false
}

// FinishGenerationWithError keeps the previous code visible next to the error
func (fs *FormState) FinishGenerationWithError(message string) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	fs.lastError = message
	fs.errorKind = models.GenerationError
	fs.isGenerating = false
}
