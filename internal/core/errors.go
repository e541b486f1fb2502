package core

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidForm        = errors.New("template and input are required")
	ErrGenerationInFlight = errors.New("a generation request is already in flight")
	ErrCatalogUnavailable = errors.New("generator catalog unavailable")
	ErrCatalogLoading     = errors.New("generator catalog is already loading")
	ErrNoResult           = errors.New("no generated code yet")
	ErrClipboard          = errors.New("failed to copy to clipboard")
)

// GenerationError is returned when the service could not produce code.
// Message is the text written to the form's error field.
type GenerationError struct {
	Message string
	Err     error
}

func (e *GenerationError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}
