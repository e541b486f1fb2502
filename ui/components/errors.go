package components

import (
	"github.com/muesli/reflow/wordwrap"

	"github.com/Rorical/RoriGen/internal/models"
	"github.com/Rorical/RoriGen/ui/styles"
)

// RenderError draws the single error panel, empty when there is no error
func RenderError(message string, kind models.ErrorKind, width int) string {
	if message == "" {
		return ""
	}

	title := "Error"
	switch kind {
	case models.CatalogError:
		title = "Error loading templates"
	case models.GenerationError:
		title = "Generation failed"
	}

	inner := width - 4
	if inner < minPaneWidth {
		inner = minPaneWidth
	}
	body := styles.ErrorTitleStyle().Render(title) + "\n" + wordwrap.String(message, inner)
	return styles.ErrorStyle(width - 2).Render(body)
}
