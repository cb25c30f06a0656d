// Package models defines the wire types of the CalamaUnido REST API as the
// client receives them. Field names follow the server's JSON.
package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Named is the shape of every nested lookup the server embeds by name only.
type Named struct {
	Nombre string `json:"nombre"`
}

// NeighborhoodUnit is the "junta vecinal" a publication belongs to.
type NeighborhoodUnit struct {
	Nombre      string `json:"nombre"`
	Villa       string `json:"villa"`
	NombreCalle string `json:"nombre_calle"`
	NumeroCalle string `json:"numero_calle"`
}

// DisplayName prefers the villa, which is what residents recognise.
func (n NeighborhoodUnit) DisplayName() string {
	if n.Villa != "" {
		return n.Villa
	}
	return n.Nombre
}

// Address joins street name and number.
func (n NeighborhoodUnit) Address() string {
	return strings.TrimSpace(n.NombreCalle + " " + n.NumeroCalle)
}

// Evidence is one attached photo; Archivo is relative to the media host.
type Evidence struct {
	Archivo string `json:"archivo"`
}

// Publication is an incident report. It is fetched read-only.
type Publication struct {
	ID               int64            `json:"id"`
	Codigo           string           `json:"codigo"`
	Titulo           string           `json:"titulo"`
	Descripcion      string           `json:"descripcion"`
	FechaPublicacion time.Time        `json:"fecha_publicacion"`
	Usuario          Named            `json:"usuario"`
	Situacion        Named            `json:"situacion"`
	Categoria        Named            `json:"categoria"`
	JuntaVecinal     NeighborhoodUnit `json:"junta_vecinal"`
	Departamento     Named            `json:"departamento"`
	Latitud          string           `json:"latitud"`
	Longitud         string           `json:"longitud"`
	Evidencias       []Evidence       `json:"evidencias"`
}

// Coordinates parses Latitud/Longitud. ok is false when either is missing
// or not a number.
func (p Publication) Coordinates() (lat, lng float64, ok bool) {
	lat, err := strconv.ParseFloat(strings.TrimSpace(p.Latitud), 64)
	if err != nil {
		return 0, 0, false
	}
	lng, err = strconv.ParseFloat(strings.TrimSpace(p.Longitud), 64)
	if err != nil {
		return 0, 0, false
	}
	return lat, lng, true
}

// Category is a filter option.
type Category struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
}

// Page is one page of the publications endpoint.
type Page struct {
	Count    int           `json:"count"`
	Next     *string       `json:"next"`
	Previous *string       `json:"previous"`
	Results  []Publication `json:"results"`
}

// HasNext reports whether the server advertised another page.
func (p Page) HasNext() bool {
	return p.Next != nil && *p.Next != ""
}

// Credentials is the token endpoint request body.
type Credentials struct {
	Rut      string `json:"rut"`
	Password string `json:"password"`
}

// TokenResponse is the token endpoint reply. Error and Detail are how the
// server reports failures; either being set means the login failed.
type TokenResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh,omitempty"`
	Error   string `json:"error,omitempty"`
	Detail  string `json:"detail,omitempty"`
}

// Failure returns the server-provided failure message, or "".
func (t TokenResponse) Failure() string {
	if t.Error != "" {
		return t.Error
	}
	return t.Detail
}

// RowKey identifies a publication row in a rendered list. It only depends
// on the entity and the page it arrived on, so it is stable across renders.
func RowKey(id int64, page int) string {
	return fmt.Sprintf("%d-p%d", id, page)
}
