// Package render turns feed state and publications into terminal text.
// Everything here is a pure function of its inputs.
package render

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/dmitrijs2005/calamaunido/internal/client/models"
)

var (
	Accent   = lipgloss.Color("#FF5722")
	Muted    = lipgloss.Color("#666666")
	Border   = lipgloss.Color("#EEEEEE")
	TagText  = lipgloss.Color("#FFFFFF")
	Category = lipgloss.Color("#4CAF50")
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(Accent)
	mutedStyle   = lipgloss.NewStyle().Foreground(Muted)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#E53935"))
	cardStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(Border).Padding(0, 1)
	tagBaseStyle = lipgloss.NewStyle().Foreground(TagText).Padding(0, 1)
)

const (
	dateLayout     = "02/01/2006"
	dateTimeLayout = "02/01/2006 15:04"
)

// Tag renders text as a colored pill.
func Tag(text string, color lipgloss.Color) string {
	return tagBaseStyle.Background(color).Render(text)
}

// SituationTag uses the shared situation palette.
func SituationTag(situation string) string {
	return Tag(situation, lipgloss.Color(models.SituationColor(situation)))
}

// Card draws a bordered box with a bold heading.
func Card(title, body string) string {
	return cardStyle.Render(headerStyle.Render(title) + "\n" + body)
}

// FieldError renders an inline validation message, or "" for nil.
func FieldError(err error) string {
	if err == nil {
		return ""
	}
	return errorStyle.Render(err.Error())
}
