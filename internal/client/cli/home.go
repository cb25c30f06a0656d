package cli

import (
	"context"
	"strings"
)

// ToggleSideMenu opens or closes the hamburger menu.
func (a *App) ToggleSideMenu(ctx context.Context) error {
	a.sideMenu = !a.sideMenu
	a.render(ctx)
	return nil
}

// ToggleUserMenu opens or closes the user menu that holds logout.
func (a *App) ToggleUserMenu(ctx context.Context) error {
	a.userMenu = !a.userMenu
	a.render(ctx)
	return nil
}

// OpenPublications is the "Publicaciones" home tile.
func (a *App) OpenPublications(ctx context.Context) error {
	a.navigate(ctx, ScreenPublications)
	return nil
}

// Tab handles the bottom bar. Only inicio and crear lead anywhere.
func (a *App) Tab(ctx context.Context, name string) error {
	switch strings.ToLower(name) {
	case "inicio":
		a.navigate(ctx, ScreenHome)
	case "crear":
		a.navigate(ctx, ScreenCreatePublication)
	case "ajustes", "perfil":
		a.println("Próximamente")
	default:
		a.println("Pestaña desconocida:", name)
	}
	return nil
}
