package render

import (
	"testing"
	"time"

	"github.com/golang/geo/s2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/calamaunido/internal/client/feed"
	"github.com/dmitrijs2005/calamaunido/internal/client/models"
)

func samplePublication() models.Publication {
	return models.Publication{
		ID:               7,
		Codigo:           "PUB-0007",
		Titulo:           "Luminaria apagada",
		Descripcion:      "La luminaria de la esquina lleva una semana apagada.",
		FechaPublicacion: time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC),
		Usuario:          models.Named{Nombre: "Ana Pérez"},
		Situacion:        models.Named{Nombre: models.SituationInProgress},
		Categoria:        models.Named{Nombre: "Alumbrado"},
		JuntaVecinal:     models.NeighborhoodUnit{Nombre: "JV 12", Villa: "Villa Ayquina", NombreCalle: "Granaderos", NumeroCalle: "1450"},
		Departamento:     models.Named{Nombre: "Obras"},
		Latitud:          "-22.4600",
		Longitud:         "-68.9300",
		Evidencias:       []models.Evidence{{Archivo: "image/upload/a.jpg"}, {Archivo: "image/upload/b.jpg"}},
	}
}

func newDetail() *DetailRenderer {
	return NewDetailRenderer(func(a string) string { return "https://media.example/" + a }, CalamaCenter)
}

func TestMapLink_SpansAroundPoint(t *testing.T) {
	link := MapLink(-22.45, -68.93)
	assert.Contains(t, link, "bbox=-68.932500%2C-22.452500%2C-68.927500%2C-22.447500")
	assert.Contains(t, link, "marker=-22.450000%2C-68.930000")
}

func TestMapRect_ContainsCenter(t *testing.T) {
	r := MapRect(-22.45, -68.93)
	assert.True(t, r.ContainsLatLng(s2.LatLngFromDegrees(-22.45, -68.93)))
	assert.False(t, r.ContainsLatLng(s2.LatLngFromDegrees(-22.46, -68.93)))
	assert.InDelta(t, MapSpan, r.Size().Lat.Degrees(), 1e-9)
}

func TestDistanceKm(t *testing.T) {
	d := DistanceKm(s2.LatLngFromDegrees(0, 0), s2.LatLngFromDegrees(1, 0))
	assert.InDelta(t, 111.19, d, 0.1)
	assert.Zero(t, DistanceKm(CalamaCenter, CalamaCenter))
}

func TestFormatDistance(t *testing.T) {
	assert.Equal(t, "250 m", FormatDistance(0.25))
	assert.Equal(t, "3.4 km", FormatDistance(3.42))
}

func TestDetail_AllCards(t *testing.T) {
	out := newDetail().Render(samplePublication())

	for _, want := range []string{
		"Luminaria apagada", "PUB-0007",
		"Información General", "Autor: Ana Pérez", "En curso", "Alumbrado",
		"Descripción", "una semana apagada",
		"Ubicación", "Junta Vecinal: Villa Ayquina", "Dirección: Granaderos 1450",
		"Coordenadas: -22.460000, -68.930000", "Distancia al centro:", "openstreetmap.org",
		"Departamento", "Obras",
		"Evidencias", "[1] https://media.example/image/upload/a.jpg", "[2] https://media.example/image/upload/b.jpg",
	} {
		assert.Contains(t, out, want)
	}
}

func TestDetail_BadCoordinates(t *testing.T) {
	p := samplePublication()
	p.Latitud = "n/a"

	out := newDetail().Render(p)
	assert.Contains(t, out, NoLocation)
	assert.NotContains(t, out, "openstreetmap.org")
}

func TestDetail_NoEvidences(t *testing.T) {
	p := samplePublication()
	p.Evidencias = nil
	assert.Contains(t, newDetail().Evidences(p), NoEvidences)
}

func TestDetail_VillaFallsBackToName(t *testing.T) {
	p := samplePublication()
	p.JuntaVecinal.Villa = ""
	assert.Contains(t, newDetail().Render(p), "Junta Vecinal: JV 12")
}

func TestFeed_States(t *testing.T) {
	p := samplePublication()
	items := []feed.Item{{Key: models.RowKey(p.ID, 1), Page: 1, Publication: p}}

	assert.Contains(t, Feed(feed.State{IsLoading: true}), "Cargando...")
	assert.Contains(t, Feed(feed.State{IsFilterLoading: true, Items: items}), "Aplicando filtros")
	assert.Contains(t, Feed(feed.State{}), "No hay publicaciones")

	out := Feed(feed.State{Items: items, HasMore: true, IsLoadingMore: true})
	assert.Contains(t, out, "[1]")
	assert.Contains(t, out, "Luminaria apagada")
	assert.Contains(t, out, "Por: Ana Pérez")
	assert.Contains(t, out, "Cargando más")

	assert.Contains(t, Feed(feed.State{Items: items}), "No hay más publicaciones")
}

func TestFeed_ShowsActiveFilter(t *testing.T) {
	st := feed.State{
		Categories: []models.Category{{ID: 1, Nombre: "Alumbrado"}, {ID: 2, Nombre: "Basura"}},
		Selected:   []int64{2},
	}
	assert.Contains(t, Feed(st), "filtro: Basura")
}

func TestFilters(t *testing.T) {
	st := feed.State{
		Categories: []models.Category{{ID: 1, Nombre: "Alumbrado"}, {ID: 2, Nombre: "Basura"}},
		Selected:   []int64{2},
	}
	out := Filters(st)
	assert.Contains(t, out, "[ ] 1 Alumbrado")
	assert.Contains(t, out, "[x] 2 Basura")

	assert.Contains(t, Filters(feed.State{}), "No hay categorías disponibles")
}

func TestDraft(t *testing.T) {
	d := models.NewDraft()
	d.Title = "Feria"
	d.Toggle("Eventos")

	out := Draft(d)
	assert.Contains(t, out, "Título: Feria")
	assert.Contains(t, out, "General")
	assert.Contains(t, out, "Eventos")
	assert.Contains(t, out, "(Discusiones)")
}

func TestFieldError(t *testing.T) {
	assert.Empty(t, FieldError(nil))
	require.Contains(t, FieldError(models.ErrTitleRequired), "el título es requerido")
}

func TestHome_Menus(t *testing.T) {
	closed := Home(false, false)
	assert.Contains(t, closed, "Bienvenido a CalamaUnido!")
	assert.Contains(t, closed, "Publicaciones")
	assert.Contains(t, closed, "Temas Populares")
	assert.NotContains(t, closed, "Notificaciones")
	assert.NotContains(t, closed, "Cerrar Sesión")

	open := Home(true, true)
	assert.Contains(t, open, "Notificaciones")
	assert.Contains(t, open, "Cerrar Sesión")
}

func TestBottomBar(t *testing.T) {
	bar := BottomBar()
	for _, tab := range []string{"inicio", "crear", "ajustes", "perfil"} {
		assert.Contains(t, bar, tab)
	}
}
