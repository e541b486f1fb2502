package components

import (
	"github.com/Rorical/RoriGen/ui/styles"
)

// RenderInput frames the JSON editor view
func RenderInput(editorView string, focused, generating bool, width int) string {
	title := "JSON Input"
	if generating {
		title += " (locked while generating)"
	}
	body := styles.PaneTitleStyle().Render(title) + "\n" + editorView
	return styles.PaneStyle(width, focused).Render(body)
}
