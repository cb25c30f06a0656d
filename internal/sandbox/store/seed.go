package store

import (
	"fmt"
	"strconv"
	"time"

	"github.com/dmitrijs2005/calamaunido/internal/client/models"
	"github.com/google/uuid"
)

// SeedUser is a development account created by Seed.
type SeedUser struct {
	RUT      string
	Name     string
	Password string
}

// DefaultUsers are the accounts Seed creates.
var DefaultUsers = []SeedUser{
	{RUT: "12.345.678-5", Name: "María Tapia", Password: "calama2024"},
	{RUT: "11.111.111-1", Name: "Juan Rojas", Password: "loa1234"},
	{RUT: "7.654.321-6", Name: "Ana Cortés", Password: "chuqui77"},
}

// DefaultCategories are the filter options Seed creates.
var DefaultCategories = []models.Category{
	{ID: 1, Nombre: "Alumbrado público"},
	{ID: 2, Nombre: "Basura"},
	{ID: 3, Nombre: "Áreas verdes"},
	{ID: 4, Nombre: "Seguridad"},
	{ID: 5, Nombre: "Vialidad"},
	{ID: 6, Nombre: "Agua potable"},
}

// SeedPublications is how many publications Seed generates.
const SeedPublications = 25

var codeNamespace = uuid.MustParse("6f1c2a3e-90b4-4d38-8e8a-0c5d1f7b2a10")

var (
	seedTitles = []string{
		"Luminaria apagada", "Microbasural en la esquina", "Plaza sin riego", "Robo de cables",
		"Bache profundo", "Fuga de agua en la vereda", "Semáforo intermitente", "Contenedor desbordado",
		"Árbol seco con riesgo de caída", "Poste inclinado",
	}
	seedUnits = []models.NeighborhoodUnit{
		{Nombre: "Junta Vecinal N°12", Villa: "Villa Ayquina", NombreCalle: "Av. Granaderos", NumeroCalle: "2450"},
		{Nombre: "Junta Vecinal N°7", Villa: "Población Independencia", NombreCalle: "Calle Vivar", NumeroCalle: "1830"},
		{Nombre: "Junta Vecinal N°31", Villa: "", NombreCalle: "Av. Balmaceda", NumeroCalle: "3102"},
		{Nombre: "Junta Vecinal N°18", Villa: "Villa Exótica", NombreCalle: "Pasaje Toconao", NumeroCalle: "455"},
		{Nombre: "Junta Vecinal N°4", Villa: "Villa Chica", NombreCalle: "Calle Sotomayor", NumeroCalle: "1201"},
	}
	seedDepartments = []string{"Dirección de Aseo y Ornato", "Dirección de Obras", "Seguridad Pública", "Tránsito"}
	seedSituations  = []string{models.SituationReceived, models.SituationInProgress, models.SituationPending}
)

// Seed fills m with DefaultUsers, DefaultCategories and SeedPublications
// publications. Output is deterministic for a given base time.
func Seed(m *Memory, base time.Time) error {
	for _, u := range DefaultUsers {
		if err := m.AddUser(u.RUT, u.Name, u.Password); err != nil {
			return fmt.Errorf("seed user %s: %w", u.RUT, err)
		}
	}
	m.SetCategories(DefaultCategories)
	m.AddPublications(GeneratePublications(SeedPublications, base)...)
	return nil
}

// GeneratePublications builds n publications spread over the days before
// base, cycling through titles, categories and neighbourhood units.
func GeneratePublications(n int, base time.Time) []models.Publication {
	out := make([]models.Publication, 0, n)
	for i := range n {
		id := int64(i + 1)
		unit := seedUnits[i%len(seedUnits)]
		p := models.Publication{
			ID:               id,
			Codigo:           PublicationCode(id),
			Titulo:           seedTitles[i%len(seedTitles)],
			Descripcion:      fmt.Sprintf("Reporte vecinal N°%d en %s.", id, unit.DisplayName()),
			FechaPublicacion: base.Add(-time.Duration(i) * 7 * time.Hour).UTC().Truncate(time.Second),
			Usuario:          models.Named{Nombre: DefaultUsers[i%len(DefaultUsers)].Name},
			Situacion:        models.Named{Nombre: seedSituations[i%len(seedSituations)]},
			Categoria:        models.Named{Nombre: DefaultCategories[i%len(DefaultCategories)].Nombre},
			JuntaVecinal:     unit,
			Departamento:     models.Named{Nombre: seedDepartments[i%len(seedDepartments)]},
			Evidencias:       seedEvidences(id, i%3),
		}
		// every seventh report has no usable location
		if i%7 != 6 {
			p.Latitud = strconv.FormatFloat(-22.4560+float64(i%5-2)*0.004, 'f', 6, 64)
			p.Longitud = strconv.FormatFloat(-68.9290+float64(i%4-2)*0.005, 'f', 6, 64)
		}
		out = append(out, p)
	}
	return out
}

// PublicationCode derives the stable public code of a publication.
func PublicationCode(id int64) string {
	return uuid.NewSHA1(codeNamespace, []byte(strconv.FormatInt(id, 10))).String()
}

func seedEvidences(id int64, n int) []models.Evidence {
	ev := make([]models.Evidence, 0, n)
	for j := range n {
		key := uuid.NewSHA1(codeNamespace, []byte(fmt.Sprintf("%d/%d", id, j)))
		ev = append(ev, models.Evidence{Archivo: "image/upload/calamaunido/" + key.String() + ".png"})
	}
	return ev
}
