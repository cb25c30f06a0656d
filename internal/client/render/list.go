package render

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/calamaunido/internal/client/feed"
	"github.com/dmitrijs2005/calamaunido/internal/client/models"
)

// PublicationCard is one row of the feed.
func PublicationCard(n int, p models.Publication) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s  %s\n", mutedStyle.Render(fmt.Sprintf("[%d]", n)), titleStyle.Render(p.Titulo), mutedStyle.Render(p.Codigo))
	fmt.Fprintf(&b, "Por: %s\n", p.Usuario.Nombre)
	if p.Descripcion != "" {
		b.WriteString(p.Descripcion + "\n")
	}
	fmt.Fprintf(&b, "%s  %s", mutedStyle.Render(formatDate(p.FechaPublicacion, dateLayout)), SituationTag(p.Situacion.Nombre))
	return cardStyle.Render(b.String())
}

// Feed renders the list with its loading and end-of-list indicators.
func Feed(st feed.State) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Publicaciones"))
	if names := selectedNames(st); len(names) > 0 {
		b.WriteString(mutedStyle.Render("  filtro: " + strings.Join(names, ", ")))
	}
	b.WriteString("\n")

	switch {
	case st.IsFilterLoading:
		b.WriteString(mutedStyle.Render("Aplicando filtros...") + "\n")
		return b.String()
	case st.IsLoading && len(st.Items) == 0:
		b.WriteString(mutedStyle.Render("Cargando...") + "\n")
		return b.String()
	case st.Refreshing:
		b.WriteString(mutedStyle.Render("Actualizando...") + "\n")
	}

	if len(st.Items) == 0 {
		b.WriteString(mutedStyle.Render("No hay publicaciones") + "\n")
		return b.String()
	}
	for i, it := range st.Items {
		b.WriteString(PublicationCard(i+1, it.Publication) + "\n")
	}

	switch {
	case st.IsLoadingMore:
		b.WriteString(mutedStyle.Render("Cargando más...") + "\n")
	case !st.HasMore:
		b.WriteString(mutedStyle.Render("No hay más publicaciones") + "\n")
	}
	return b.String()
}

// Filters renders the category panel with a check per selected category.
func Filters(st feed.State) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Filtros") + "\n")
	if len(st.Categories) == 0 {
		b.WriteString(mutedStyle.Render("No hay categorías disponibles") + "\n")
		return b.String()
	}

	selected := make(map[int64]bool, len(st.Selected))
	for _, id := range st.Selected {
		selected[id] = true
	}
	for _, c := range st.Categories {
		mark := "[ ]"
		if selected[c.ID] {
			mark = "[x]"
		}
		fmt.Fprintf(&b, "%s %d %s\n", mark, c.ID, c.Nombre)
	}
	return b.String()
}

func selectedNames(st feed.State) []string {
	var names []string
	for _, id := range st.Selected {
		for _, c := range st.Categories {
			if c.ID == id {
				names = append(names, c.Nombre)
			}
		}
	}
	return names
}
