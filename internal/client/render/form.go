package render

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/calamaunido/internal/client/models"
)

// Draft renders the create-publication form with its category chips.
func Draft(d *models.Draft) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Crear publicación") + "\n")
	fmt.Fprintf(&b, "Título: %s\n", d.Title)
	fmt.Fprintf(&b, "Contenido: %s\n", d.Content)

	chips := make([]string, 0, len(models.DraftCategories))
	for _, c := range models.DraftCategories {
		if d.Selected(c) {
			chips = append(chips, Tag(c, Accent))
		} else {
			chips = append(chips, mutedStyle.Render("("+c+")"))
		}
	}
	b.WriteString("Categorías: " + strings.Join(chips, " ") + "\n")
	return b.String()
}
