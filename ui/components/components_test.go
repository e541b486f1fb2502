package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/assert"

	"github.com/Rorical/RoriGen/internal/models"
)

func TestRenderTemplates(t *testing.T) {
	gens := []models.Generator{
		{Name: "go-struct", Description: "Generate Go structures"},
		{Name: "ts-interface", Description: "Generate TypeScript interfaces"},
	}

	tests := []struct {
		name     string
		form     models.FormSnapshot
		contains []string
		excludes []string
	}{
		{
			name:     "loading",
			form:     models.FormSnapshot{LoadingCatalog: true},
			contains: []string{"Loading templates..."},
		},
		{
			name:     "empty catalog",
			form:     models.FormSnapshot{},
			contains: []string{"No templates available"},
		},
		{
			name:     "selection marker",
			form:     models.FormSnapshot{Generators: gens, SelectedTemplate: "ts-interface"},
			contains: []string{"> ts-interface", "  go-struct", "Generate TypeScript interfaces"},
			excludes: []string{"> go-struct"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := RenderTemplates(tt.form, false, 100)
			for _, want := range tt.contains {
				assert.Contains(t, out, want)
			}
			for _, unwanted := range tt.excludes {
				assert.NotContains(t, out, unwanted)
			}
		})
	}
}

func TestRenderTemplatesScrollsToSelection(t *testing.T) {
	var gens []models.Generator
	for _, name := range []string{"a", "b", "c", "d", "e", "f", "g", "h"} {
		gens = append(gens, models.Generator{Name: "tpl-" + name})
	}

	out := RenderTemplates(models.FormSnapshot{Generators: gens, SelectedTemplate: "tpl-h"}, true, 60)

	assert.Contains(t, out, "> tpl-h")
	assert.NotContains(t, out, "tpl-a")
}

func TestRenderCodePlaceholder(t *testing.T) {
	assert.Contains(t, RenderCode(""), EmptyCodeTitle)
	assert.Contains(t, RenderCode("package main"), "package main")
	assert.NotContains(t, RenderCode("package main"), EmptyCodeTitle)
}

func TestRenderError(t *testing.T) {
	assert.Empty(t, RenderError("", models.NoError, 80))

	out := RenderError("Invalid JSON", models.GenerationError, 80)
	assert.Contains(t, out, "Generation failed")
	assert.Contains(t, out, "Invalid JSON")

	out = RenderError("Failed to load generators", models.CatalogError, 80)
	assert.Contains(t, out, "Error loading templates")
}

func TestRenderStatus(t *testing.T) {
	assert.Contains(t, RenderStatus("Ready", nil, false, "*", 60), "Ready")
	assert.Contains(t, RenderStatus("Generating", nil, true, "*", 60), "* Generating...")

	notice := &models.Notice{Content: "Copied to clipboard", Type: models.Success}
	out := RenderStatus("Ready", notice, false, "*", 60)
	assert.Contains(t, out, "Copied to clipboard")
	assert.NotContains(t, out, "Ready")
}

func TestRenderHelpSkipsDisabled(t *testing.T) {
	bindings := []key.Binding{
		key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "generate")),
		key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy"), key.WithDisabled()),
	}

	out := RenderHelp(bindings, 80)

	assert.Contains(t, out, "ctrl+g generate")
	assert.NotContains(t, out, "copy")
}

func TestLayout(t *testing.T) {
	assert.Equal(t, minPaneWidth, PaneWidth(10))
	assert.Equal(t, 56, PaneWidth(120))

	assert.Equal(t, minBodyHeight, BodyHeight(10, 3))
	// Catalog rows are capped
	assert.Equal(t, BodyHeight(60, maxTemplateRow), BodyHeight(60, 40))

	assert.True(t, strings.Contains(RenderHeader("staging", "http://gen:8080", 80), "staging"))
}
