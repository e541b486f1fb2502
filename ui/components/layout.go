package components

import "github.com/Rorical/RoriGen/ui/styles"

const (
	minPaneWidth   = 20
	minBodyHeight  = 5
	maxTemplateRow = 6
)

// PaneWidth is the inner width of each of the two side-by-side panes
func PaneWidth(termWidth int) int {
	// two panes, each with border (2) and padding (2)
	w := (termWidth - 8) / 2
	if w < minPaneWidth {
		return minPaneWidth
	}
	return w
}

// BodyHeight is the height left for the editor and preview
func BodyHeight(termHeight, templates int) int {
	rows := templates
	if rows < 1 {
		rows = 1
	}
	if rows > maxTemplateRow {
		rows = maxTemplateRow
	}

	// header, template pane, pane borders and titles, error panel, help, status
	used := 1 + (rows + 3) + 3 + 3 + 1 + 1
	h := termHeight - used
	if h < minBodyHeight {
		return minBodyHeight
	}
	return h
}

func RenderHeader(profile, baseURL string, width int) string {
	title := "RoriGen"
	if profile != "" {
		title += " · " + profile
	}
	if baseURL != "" {
		title += " (" + baseURL + ")"
	}
	return styles.HeaderStyle().MaxWidth(width).Render(title)
}
