package client

import (
	"net/url"
	"strconv"
	"strings"
)

// PublicationsQuery selects one page of the feed, optionally restricted to
// categories by name.
type PublicationsQuery struct {
	Page       int
	Categories []string
}

// Encode renders "page=N[&categoria=A%2CB]". Names are joined with a comma
// and percent-encoded the way browsers encode URI components (space as %20).
func (q PublicationsQuery) Encode() string {
	page := q.Page
	if page < 1 {
		page = 1
	}
	s := "page=" + strconv.Itoa(page)

	names := make([]string, 0, len(q.Categories))
	for _, n := range q.Categories {
		if n != "" {
			names = append(names, n)
		}
	}
	if len(names) > 0 {
		s += "&categoria=" + encodeURIComponent(strings.Join(names, ","))
	}
	return s
}

// componentUnescaper undoes the escapes url.QueryEscape adds on top of
// encodeURIComponent: the space form and the marks ! ' ( ) *.
var componentUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

func encodeURIComponent(s string) string {
	return componentUnescaper.Replace(url.QueryEscape(s))
}
