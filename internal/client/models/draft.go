package models

import (
	"errors"
	"slices"
	"strings"
)

// DraftCategories are the chips offered by the create-publication form.
var DraftCategories = []string{"General", "Eventos", "Discusiones"}

var ErrTitleRequired = errors.New("el título es requerido")

// Draft is the local-only create-publication form.
type Draft struct {
	Title      string
	Content    string
	Categories []string
}

// NewDraft returns an empty form with "General" preselected.
func NewDraft() *Draft {
	return &Draft{Categories: []string{DraftCategories[0]}}
}

// Toggle adds or removes a category chip, keeping selection order.
func (d *Draft) Toggle(category string) {
	if i := slices.Index(d.Categories, category); i >= 0 {
		d.Categories = slices.Delete(d.Categories, i, i+1)
		return
	}
	d.Categories = append(d.Categories, category)
}

// Selected reports whether category is toggled on.
func (d *Draft) Selected(category string) bool {
	return slices.Contains(d.Categories, category)
}

// Validate checks the fields a submission would need.
func (d *Draft) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return ErrTitleRequired
	}
	return nil
}
