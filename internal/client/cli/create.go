package cli

import (
	"context"
	"slices"
	"strings"

	"github.com/dmitrijs2005/calamaunido/internal/client/models"
	"github.com/dmitrijs2005/calamaunido/internal/client/render"
)

func (a *App) SetTitle(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Título", a.out)
	if err != nil {
		return err
	}
	a.draft.Title = title
	a.render(ctx)
	return nil
}

func (a *App) SetContent(ctx context.Context) error {
	content, err := getMultiline(a.reader, "Contenido", a.out)
	if err != nil {
		return err
	}
	a.draft.Content = content
	a.render(ctx)
	return nil
}

// ToggleChip switches a category chip by name, case-insensitively.
func (a *App) ToggleChip(ctx context.Context, name string) error {
	i := slices.IndexFunc(models.DraftCategories, func(c string) bool { return strings.EqualFold(c, name) })
	if i < 0 {
		a.println("Categorías: " + strings.Join(models.DraftCategories, ", "))
		return nil
	}
	a.draft.Toggle(models.DraftCategories[i])
	a.render(ctx)
	return nil
}

// Submit validates the draft and returns to the previous screen. The draft
// is only logged; nothing is sent to the server.
func (a *App) Submit(ctx context.Context) error {
	if err := a.draft.Validate(); err != nil {
		a.println(render.FieldError(err))
		return err
	}
	a.log.Info(ctx, "publication draft",
		"title", a.draft.Title,
		"content_len", len(a.draft.Content),
		"categories", a.draft.Categories,
	)
	return a.Back(ctx)
}

// Cancel discards the draft and returns to the previous screen.
func (a *App) Cancel(ctx context.Context) error {
	return a.Back(ctx)
}
