package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/Rorical/RoriGen/ui/styles"
)

func RenderHelp(bindings []key.Binding, width int) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return styles.HelpStyle().MaxWidth(width).Render(strings.Join(parts, " · "))
}
