package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang/geo/s2"

	"github.com/dmitrijs2005/calamaunido/internal/client/models"
)

const (
	NoLocation  = "Ubicación no disponible"
	NoEvidences = "No hay evidencias disponibles"
)

// DetailRenderer renders the publication detail cards.
type DetailRenderer struct {
	evidenceURL func(archivo string) string
	city        s2.LatLng
}

// NewDetailRenderer takes the function that resolves evidence paths to
// URLs and the point distances are measured from.
func NewDetailRenderer(evidenceURL func(string) string, city s2.LatLng) *DetailRenderer {
	return &DetailRenderer{evidenceURL: evidenceURL, city: city}
}

func (d *DetailRenderer) Render(p models.Publication) string {
	cards := []string{
		titleStyle.Render(p.Titulo) + "\n" + mutedStyle.Render(p.Codigo),
		Card("Información General", d.general(p)),
		Card("Descripción", p.Descripcion),
		Card("Ubicación", d.location(p)),
		Card("Departamento", p.Departamento.Nombre),
		Card("Evidencias", d.Evidences(p)),
	}
	return strings.Join(cards, "\n") + "\n"
}

func (d *DetailRenderer) general(p models.Publication) string {
	return strings.Join([]string{
		"Autor: " + p.Usuario.Nombre,
		"Fecha: " + formatDate(p.FechaPublicacion, dateTimeLayout),
		SituationTag(p.Situacion.Nombre) + " " + Tag(p.Categoria.Nombre, Category),
	}, "\n")
}

func (d *DetailRenderer) location(p models.Publication) string {
	lines := []string{
		"Junta Vecinal: " + p.JuntaVecinal.DisplayName(),
		"Dirección: " + p.JuntaVecinal.Address(),
	}

	lat, lng, ok := p.Coordinates()
	if !ok {
		return strings.Join(append(lines, mutedStyle.Render(NoLocation)), "\n")
	}
	km := DistanceKm(d.city, s2.LatLngFromDegrees(lat, lng))
	lines = append(lines,
		fmt.Sprintf("Coordenadas: %.6f, %.6f", lat, lng),
		"Distancia al centro: "+FormatDistance(km),
		"Mapa: "+MapLink(lat, lng),
	)
	return strings.Join(lines, "\n")
}

// Evidences lists the numbered evidence URLs, the targets of "open N".
func (d *DetailRenderer) Evidences(p models.Publication) string {
	if len(p.Evidencias) == 0 {
		return mutedStyle.Render(NoEvidences)
	}
	lines := make([]string, 0, len(p.Evidencias))
	for i, e := range p.Evidencias {
		lines = append(lines, fmt.Sprintf("[%d] %s", i+1, d.evidenceURL(e.Archivo)))
	}
	return strings.Join(lines, "\n")
}

func formatDate(t time.Time, layout string) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format(layout)
}
