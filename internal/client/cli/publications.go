package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/calamaunido/internal/client/feed"
)

var errNoFeed = errors.New("publications screen is not open")

func (a *App) currentFeed() (*feed.Feed, error) {
	if a.feed == nil {
		return nil, errNoFeed
	}
	return a.feed, nil
}

// ListPublications re-renders the feed.
func (a *App) ListPublications(ctx context.Context) error {
	a.render(ctx)
	return nil
}

// LoadMore is the end-of-list trigger.
func (a *App) LoadMore(ctx context.Context) error {
	f, err := a.currentFeed()
	if err != nil {
		return err
	}
	started, err := f.LoadMore(ctx)
	if !started {
		a.println("No hay más publicaciones")
		return nil
	}
	a.render(ctx)
	return err
}

// Refresh is pull-to-refresh.
func (a *App) Refresh(ctx context.Context) error {
	f, err := a.currentFeed()
	if err != nil {
		return err
	}
	err = f.Refresh(ctx)
	a.render(ctx)
	return err
}

func (a *App) ShowFilters(ctx context.Context) error {
	f, err := a.currentFeed()
	if err != nil {
		return err
	}
	f.ShowFilters()
	a.render(ctx)
	return nil
}

func (a *App) HideFilters(ctx context.Context) error {
	f, err := a.currentFeed()
	if err != nil {
		return err
	}
	f.HideFilters()
	a.render(ctx)
	return nil
}

// ToggleCategory takes a category id as printed by the filter panel.
func (a *App) ToggleCategory(ctx context.Context, arg string) error {
	f, err := a.currentFeed()
	if err != nil {
		return err
	}
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		a.println("Uso: toggle <id>")
		return err
	}
	f.ToggleCategory(id)
	a.render(ctx)
	return nil
}

func (a *App) ApplyFilters(ctx context.Context) error {
	f, err := a.currentFeed()
	if err != nil {
		return err
	}
	err = f.ApplyFilters(ctx)
	a.render(ctx)
	return err
}

// ShowPublication opens the detail view for row n (1-based) with a copy of
// the publication as it was listed.
func (a *App) ShowPublication(ctx context.Context, arg string) error {
	f, err := a.currentFeed()
	if err != nil {
		return err
	}
	n, err := strconv.Atoi(arg)
	if err != nil {
		a.println("Uso: show <n>")
		return err
	}
	p, ok := f.Item(n - 1)
	if !ok {
		a.println(fmt.Sprintf("No existe la publicación %d", n))
		return nil
	}

	a.selected = p
	a.navigate(ctx, ScreenPublicationDetail)
	return nil
}
