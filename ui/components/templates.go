package components

import (
	"strings"

	"github.com/muesli/reflow/truncate"

	"github.com/Rorical/RoriGen/internal/models"
	"github.com/Rorical/RoriGen/ui/styles"
)

// RenderTemplates draws the template selector, scrolled so the selection is visible.
func RenderTemplates(form models.FormSnapshot, focused bool, width int) string {
	var b strings.Builder
	b.WriteString(styles.PaneTitleStyle().Render("Template"))
	b.WriteString("\n")

	inner := width - 4
	if inner < minPaneWidth {
		inner = minPaneWidth
	}

	switch {
	case form.LoadingCatalog && len(form.Generators) == 0:
		b.WriteString(styles.PlaceholderStyle().Render("Loading templates..."))
	case len(form.Generators) == 0:
		b.WriteString(styles.PlaceholderStyle().Render("No templates available (ctrl+r to reload)"))
	default:
		selected := form.SelectedIndex()
		start := 0
		if selected >= maxTemplateRow {
			start = selected - maxTemplateRow + 1
		}
		end := start + maxTemplateRow
		if end > len(form.Generators) {
			end = len(form.Generators)
		}

		lines := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			gen := form.Generators[i]
			line := "  " + gen.Name
			style := styles.ItemStyle()
			if i == selected {
				line = "> " + gen.Name
				style = styles.SelectedItemStyle()
			}
			text := style.Render(line)
			if gen.Description != "" {
				text += styles.DescriptionStyle().Render(" - " + gen.Description)
			}
			lines = append(lines, truncate.StringWithTail(text, uint(inner), "…"))
		}
		b.WriteString(strings.Join(lines, "\n"))
	}

	return styles.PaneStyle(width-2, focused).Render(b.String())
}
