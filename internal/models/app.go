package models

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
)

// Focus identifies the pane receiving key input
type Focus int

const (
	FocusTemplates Focus = iota
	FocusInput
	FocusOutput
)

// Next cycles through the panes in display order.
func (f Focus) Next() Focus {
	return (f + 1) % 3
}

// AppModel represents the UI state - only local UI concerns
type AppModel struct {
	Form         FormSnapshot   // Latest form state pushed by core
	Editor       textarea.Model // JSON input editor
	Preview      viewport.Model // Generated code viewer
	Spinner      spinner.Model  // Shown while generating
	Focus        Focus
	Status       string    // Status bar text derived from form state
	Notice       *Notice   // Transient notice, overrides Status until expiry
	NoticeUntil  time.Time // When Notice stops being shown
	Profile      string    // Active server profile name
	Width        int       // Terminal width
	Height       int       // Terminal height
	ServiceReady bool      // Whether a generator endpoint is configured
}
