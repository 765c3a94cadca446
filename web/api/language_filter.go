package api

import (
	"net/http"
	"regexp"

	"langfilter/models"
	"langfilter/web/pages/comps"

	"github.com/rohanthewiz/element"
	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"
	"github.com/rohanthewiz/serr"
)

// Response headers carrying the effects of a widget event back to the browser.
const (
	HeaderFocus          = "X-LF-Focus"           // DOM id of the input to focus
	HeaderScroll         = "X-LF-Scroll"          // DOM id of the row to scroll into view
	HeaderPreventDefault = "X-LF-Prevent-Default" // "true" when the key was consumed
)

var widgetIDPattern = regexp.MustCompile(`^[A-Za-z0-9-]{1,64}$`)

// LanguageFilter serves the language filter partial and the catalog API.
// The catalog is injected at construction and only ever read.
type LanguageFilter struct {
	Catalog  models.Catalog
	Endpoint string // path the re-rendered widget posts its next event to
}

// NewLanguageFilter creates the handler set over a loaded catalog
func NewLanguageFilter(catalog models.Catalog, endpoint string) LanguageFilter {
	return LanguageFilter{Catalog: catalog, Endpoint: endpoint}
}

// EventForm is the form body the browser posts for each widget event.
type EventForm struct {
	ID    string // widget instance id
	State string // state token rendered with the widget
	Event string // event kind wire name
	Key   string // KeyboardEvent.key for keydown
	Value string // filter text for filter-input
}

// EventResult is the re-rendered widget plus the effects for the host page.
type EventResult struct {
	Widget  comps.LanguageFilter
	Effects models.Effects
}

// FocusHandle returns the input to focus, or "" for none.
func (r EventResult) FocusHandle() string {
	if !r.Effects.FocusInput || !r.Widget.State.ShowDropdown {
		return ""
	}
	return r.Widget.InputHandle()
}

// ScrollHandle returns the row to scroll into view, or "" when there is
// nothing to scroll or the row is not mounted.
func (r EventResult) ScrollHandle() string {
	if !r.Effects.ScrollToActive {
		return ""
	}
	return r.Widget.ActiveHandle()
}

// ApplyEvent decodes the posted state, runs the reducer and prepares the
// widget for rendering.
func (lf LanguageFilter) ApplyEvent(form EventForm) (EventResult, error) {
	if !widgetIDPattern.MatchString(form.ID) {
		return EventResult{}, serr.New("invalid widget id")
	}

	kind, ok := models.ParseEventKind(form.Event)
	if !ok {
		return EventResult{}, serr.New("unknown widget event " + form.Event)
	}

	state, err := models.DecodeStateToken(form.State)
	if err != nil {
		return EventResult{}, serr.Wrap(err, "failed to decode widget state")
	}

	next, fx := models.Reduce(state, models.Event{Kind: kind, Key: form.Key, Value: form.Value}, lf.Catalog)

	widget, err := comps.NewLanguageFilter(form.ID, next, lf.Catalog, lf.Endpoint)
	if err != nil {
		return EventResult{}, err
	}

	return EventResult{Widget: widget, Effects: fx}, nil
}

// HandleEvent handles POST /partials/language-filter
// Applies one widget event and returns the re-rendered widget as an HTML
// fragment. Effects travel in the X-LF-* headers.
func (lf LanguageFilter) HandleEvent(ctx rweb.Context) error {
	form := EventForm{
		ID:    ctx.Request().FormValue("id"),
		State: ctx.Request().FormValue("state"),
		Event: ctx.Request().FormValue("event"),
		Key:   ctx.Request().FormValue("key"),
		Value: ctx.Request().FormValue("value"),
	}

	result, err := lf.ApplyEvent(form)
	if err != nil {
		logger.LogErr(err, "rejected language filter event")
		ctx.SetStatus(http.StatusBadRequest)
		return ctx.WriteHTML("<div>Invalid language filter event</div>")
	}

	logger.Debug("Language filter event",
		"id", form.ID,
		"event", form.Event,
		"open", result.Widget.State.ShowDropdown,
		"index", result.Widget.State.SelectedIndex,
	)

	if h := result.FocusHandle(); h != "" {
		ctx.Response().SetHeader(HeaderFocus, h)
	}
	if h := result.ScrollHandle(); h != "" {
		ctx.Response().SetHeader(HeaderScroll, h)
	}
	if result.Effects.PreventDefault {
		ctx.Response().SetHeader(HeaderPreventDefault, "true")
	}

	b := element.NewBuilder()
	result.Widget.Render(b)
	return ctx.WriteHTML(b.String())
}

// ListLanguages handles GET /api/v1/languages
// Returns the catalog filtered by the optional q parameter.
func (lf LanguageFilter) ListLanguages(ctx rweb.Context) error {
	q := ctx.Request().QueryParam("q")
	if len(q) > 256 {
		return writeError(ctx, http.StatusBadRequest, "filter text too long")
	}

	return writeSuccess(ctx, http.StatusOK, lf.Catalog.Filter(q))
}
