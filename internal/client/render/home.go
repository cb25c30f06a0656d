package render

import (
	"strings"
)

// SideMenuItems are the entries of the hamburger menu.
var SideMenuItems = []string{"Inicio", "Notificaciones", "Eventos", "Comunidad", "Ayuda"}

// HomeTiles are the category tiles; only "Publicaciones" leads anywhere.
var HomeTiles = []string{"Global", "Local", "Publicaciones", "Anuncios"}

type topic struct{ title, changed string }

var popularTopics = []topic{
	{"Noticias Municipales", "2021-08-18"},
	{"Reglas del Foro", "2021-08-15"},
	{"Eventos", "2021-08-10"},
}

// Home renders the landing screen with whichever menus are open.
func Home(sideMenu, userMenu bool) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("CalamaUnido") + "\n")
	b.WriteString(titleStyle.Render("Bienvenido a CalamaUnido!") + "\n\n")

	tiles := make([]string, 0, len(HomeTiles))
	for _, t := range HomeTiles {
		tiles = append(tiles, Tag(t, Accent))
	}
	b.WriteString(strings.Join(tiles, " ") + "\n\n")

	var topics strings.Builder
	for i, t := range popularTopics {
		if i > 0 {
			topics.WriteString("\n")
		}
		topics.WriteString(t.title + "  " + mutedStyle.Render("Último cambio: "+t.changed))
	}
	b.WriteString(Card("Temas Populares", topics.String()) + "\n")

	if sideMenu {
		b.WriteString(Card("Menú", strings.Join(SideMenuItems, "\n")) + "\n")
	}
	if userMenu {
		b.WriteString(Card("Usuario", "Cerrar Sesión (logout)") + "\n")
	}
	return b.String()
}

// BottomBar is shown under every screen except Login.
func BottomBar() string {
	return mutedStyle.Render("[inicio] [crear] [ajustes] [perfil]")
}
