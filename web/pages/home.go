// Package pages contains the page components for the application.
// This file defines the Home page, which mounts one language filter.
package pages

import (
	"langfilter/models"
	"langfilter/web/pages/comps"
	"langfilter/web/pages/shared"

	"github.com/rohanthewiz/element"
	"github.com/rohanthewiz/serr"
)

// LanguageFilterEndpoint is where the browser posts widget events.
const LanguageFilterEndpoint = "/partials/language-filter"

// Home is the demo page hosting the language filter
type Home struct {
	shared.Page
	Heading string
	Filter  comps.LanguageFilter
}

// NewHomePage mounts a fresh widget over the given catalog.
func NewHomePage(entries []models.Entry) (Home, error) {
	filter, err := comps.NewLanguageFilter(comps.NewWidgetID(), models.NewFilterState(),
		entries, LanguageFilterEndpoint)
	if err != nil {
		return Home{}, serr.Wrap(err, "failed to mount language filter")
	}

	return Home{
		Page:    shared.Page{Title: "Language Filter"},
		Heading: "Browse by language",
		Filter:  filter,
	}, nil
}

// Render generates the complete HTML document
func (h Home) Render() (out string) {
	b := element.NewBuilder()

	b.Html("lang", "en").R(
		b.Head().R(
			b.Meta("charset", "UTF-8"),
			b.Meta("name", "viewport", "content", "width=device-width, initial-scale=1.0"),
			b.Title().T(h.Title),
			b.Link("rel", "stylesheet", "href", "/static/css/language_filter.css?v=1"),
		),
		b.Body().R(
			element.RenderComponents(b,
				h.Banner(),
				comps.Heading{Title: h.Heading},
			),
			b.DivClass("filter-host").R(
				element.RenderComponents(b, h.Filter),
			),
			element.RenderComponents(b, h.Footer()),
			b.Script("src", "/static/js/language_filter.js?v=1").R(),
		),
	)

	return b.String()
}
