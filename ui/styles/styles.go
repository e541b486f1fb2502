package styles

import "github.com/charmbracelet/lipgloss"

var (
	accent    = lipgloss.Color("62")
	muted     = lipgloss.Color("241")
	errorRed  = lipgloss.Color("196")
	successFg = lipgloss.Color("72")
	warningFg = lipgloss.Color("214")
)

func HeaderStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("141")).
		Bold(true).
		Padding(0, 1)
}

// PaneStyle frames a pane; the focused pane gets the accent border.
func PaneStyle(width int, focused bool) lipgloss.Style {
	border := muted
	if focused {
		border = accent
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Width(width)
}

func PaneTitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")).
		Bold(true)
}

func SelectedItemStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("39")).
		Bold(true)
}

func ItemStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))
}

func DescriptionStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(muted)
}

func PlaceholderStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(muted).
		Italic(true)
}

func CodeStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))
}

func ErrorStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(errorRed).
		Foreground(lipgloss.Color("203")).
		Padding(0, 1).
		Width(width)
}

func ErrorTitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(errorRed).
		Bold(true)
}

func HelpStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(muted).
		Padding(0, 1)
}

func StatusStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(muted).
		Background(lipgloss.Color("235")).
		Padding(0, 1).
		Width(width)
}

func SuccessStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(successFg)
}

func WarningStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(warningFg)
}
