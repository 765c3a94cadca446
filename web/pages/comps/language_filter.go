package comps

import (
	"html"
	"strconv"

	"langfilter/models"

	"github.com/google/uuid"
	"github.com/rohanthewiz/element"
	"github.com/rohanthewiz/serr"
)

// LanguageFilter renders one filterable language dropdown.
//
// Layout: [▾ All Languages] then, when open, header / filter input / rows.
// The wrapper carries the state token and the partial endpoint so the
// browser script can post events back and swap in the re-rendered widget.
type LanguageFilter struct {
	ID       string // instance id, prefixes every DOM handle
	State    models.FilterState
	Entries  []models.Entry // full catalog, filtered at render time
	Token    string         // encoded State
	Endpoint string         // partial endpoint for events
}

// NewWidgetID returns a fresh instance id so several widgets can share a page.
func NewWidgetID() string {
	return "lf-" + uuid.New().String()
}

// NewLanguageFilter prepares a widget for rendering, encoding its state token.
func NewLanguageFilter(id string, s models.FilterState, entries []models.Entry, endpoint string) (LanguageFilter, error) {
	token, err := models.EncodeStateToken(s)
	if err != nil {
		return LanguageFilter{}, serr.Wrap(err, "failed to build language filter "+id)
	}

	return LanguageFilter{
		ID:       id,
		State:    s,
		Entries:  entries,
		Token:    token,
		Endpoint: endpoint,
	}, nil
}

// ItemHandle is the DOM id of the row at index i in the filtered list.
func (lf LanguageFilter) ItemHandle(i int) string {
	return lf.ID + "-item-" + strconv.Itoa(i)
}

// InputHandle is the DOM id of the filter text input.
func (lf LanguageFilter) InputHandle() string {
	return lf.ID + "-input"
}

// ActiveHandle returns the DOM id of the highlighted row, or "" when the
// panel is closed or no row sits at the highlighted index.
func (lf LanguageFilter) ActiveHandle() string {
	if !lf.State.ShowDropdown {
		return ""
	}
	n := len(models.FilterEntries(lf.Entries, lf.State.FilterText))
	if lf.State.SelectedIndex < 0 || lf.State.SelectedIndex >= n {
		return ""
	}
	return lf.ItemHandle(lf.State.SelectedIndex)
}

// Render implements element.Component
func (lf LanguageFilter) Render(b *element.Builder) (x any) {
	b.Div("class", "language-filter-wrap", "id", lf.ID,
		"data-lf-state", lf.Token,
		"data-lf-endpoint", lf.Endpoint).R(
		b.A("href", "javascript:void(0)", "class", "btn btn-light language-filter shadowed",
			"data-lf-action", "toggle").R(
			b.Span("class", "fa fa-filter mr-2").R(),
			b.T(html.EscapeString(lf.State.Label())),
		),
		b.Wrap(func() {
			if lf.State.ShowDropdown {
				lf.renderDropdown(b)
			}
		}),
	)
	return
}

func (lf LanguageFilter) renderDropdown(b *element.Builder) any {
	return b.DivClass("language-select").R(
		b.DivClass("select-menu-header").R(
			b.SpanClass("select-menu-title").T("Search Language"),
		),
		b.DivClass("select-menu-filters").R(
			b.DivClass("select-menu-text-filter").R(
				b.Input("type", "text", "class", "form-control", "id", lf.InputHandle(),
					"placeholder", "Filter Languages",
					"value", html.EscapeString(lf.State.FilterText),
					"autocomplete", "off",
					"data-lf-input", "true"),
			),
		),
		lf.renderList(b),
	)
}

// renderList draws the filtered rows. Rows have no click handler.
func (lf LanguageFilter) renderList(b *element.Builder) any {
	filtered := models.FilterEntries(lf.Entries, lf.State.FilterText)

	return b.DivClass("select-menu-list").R(
		b.Wrap(func() {
			for i, entry := range filtered {
				class := "select-menu-item"
				if i == lf.State.SelectedIndex {
					class += " active-item"
				}
				b.A("class", class, "id", lf.ItemHandle(i), "data-lf-value", html.EscapeString(entry.Value)).R(
					b.SpanClass("select-menu-item-text").T(html.EscapeString(entry.Title)),
				)
			}
		}),
	)
}
