package components

import (
	"github.com/Rorical/RoriGen/internal/models"
	"github.com/Rorical/RoriGen/ui/styles"
)

func RenderStatus(status string, notice *models.Notice, generating bool, spinnerView string, width int) string {
	statusStyle := styles.StatusStyle(width)

	if notice != nil {
		content := notice.Content
		switch notice.Type {
		case models.Success:
			content = styles.SuccessStyle().Render(content)
		case models.Warning:
			content = styles.WarningStyle().Render(content)
		}
		return statusStyle.Render(content)
	}

	statusContent := status
	if generating {
		statusContent = spinnerView + " " + status + "..."
	}

	return statusStyle.Render(statusContent)
}
