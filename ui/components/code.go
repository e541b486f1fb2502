package components

import (
	"github.com/Rorical/RoriGen/ui/styles"
)

const (
	EmptyCodeTitle = "No code generated yet"
	EmptyCodeHint  = `Enter JSON input and press ctrl+g to see the result`
)

// RenderCode returns the preview content: the code itself, or a placeholder
func RenderCode(code string) string {
	if code == "" {
		return styles.PlaceholderStyle().Render(EmptyCodeTitle + "\n" + EmptyCodeHint)
	}
	return styles.CodeStyle().Render(code)
}

func RenderPreview(viewportView string, focused, hasResult bool, width int) string {
	title := "Generated Code"
	if hasResult {
		title += "  [ctrl+y copy · ctrl+s save]"
	}
	body := styles.PaneTitleStyle().Render(title) + "\n" + viewportView
	return styles.PaneStyle(width, focused).Render(body)
}
