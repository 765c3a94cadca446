package api

import (
	"strings"
	"testing"

	"langfilter/models"
)

var testCatalog = models.Catalog{
	{Value: "python", Title: "Python"},
	{Value: "java", Title: "Java"},
	{Value: "javascript", Title: "JavaScript"},
}

func newTestHandlers() LanguageFilter {
	return NewLanguageFilter(testCatalog, "/partials/language-filter")
}

// apply posts one event on top of a token, failing the test on error
func apply(t *testing.T, lf LanguageFilter, token string, form EventForm) EventResult {
	t.Helper()

	form.ID = "lf-test"
	form.State = token
	result, err := lf.ApplyEvent(form)
	if err != nil {
		t.Fatalf("event %s failed: %v", form.Event, err)
	}
	return result
}

// TestApplyEventSequence drives the widget through open, filter, navigate and blur
func TestApplyEventSequence(t *testing.T) {
	lf := newTestHandlers()

	// Mount: empty token means default state
	r := apply(t, lf, "", EventForm{Event: "toggle"})
	if !r.Widget.State.ShowDropdown {
		t.Fatal("toggle should open the panel")
	}
	if r.FocusHandle() != "lf-test-input" {
		t.Errorf("opening should focus the input, got %q", r.FocusHandle())
	}

	r = apply(t, lf, r.Widget.Token, EventForm{Event: "filter-input", Value: "java"})
	if r.Widget.State.FilterText != "java" || r.Widget.State.SelectedIndex != 0 {
		t.Errorf("unexpected state after filter: %+v", r.Widget.State)
	}
	if r.FocusHandle() != "" {
		t.Error("filtering should not refocus")
	}

	r = apply(t, lf, r.Widget.Token, EventForm{Event: "keydown", Key: "ArrowDown"})
	if r.Widget.State.SelectedIndex != 1 {
		t.Fatalf("expected index 1, got %d", r.Widget.State.SelectedIndex)
	}
	if r.ScrollHandle() != "lf-test-item-1" {
		t.Errorf("expected scroll to lf-test-item-1, got %q", r.ScrollHandle())
	}
	if !r.Effects.PreventDefault {
		t.Error("arrow key should be consumed")
	}

	r = apply(t, lf, r.Widget.Token, EventForm{Event: "keydown", Key: "ArrowDown"})
	if r.Widget.State.SelectedIndex != 1 {
		t.Errorf("down at the end should clamp, got %d", r.Widget.State.SelectedIndex)
	}
	if r.ScrollHandle() != "" {
		t.Error("unchanged index should not scroll")
	}

	r = apply(t, lf, r.Widget.Token, EventForm{Event: "keydown", Key: "a"})
	if r.Effects.PreventDefault {
		t.Error("letter keys should not be consumed")
	}

	r = apply(t, lf, r.Widget.Token, EventForm{Event: "blur"})
	if r.Widget.State.ShowDropdown || r.Widget.State.FilterText != "" {
		t.Errorf("blur should close and clear, got %+v", r.Widget.State)
	}
	if r.Widget.State.SelectedIndex != 1 {
		t.Errorf("blur should keep the index, got %d", r.Widget.State.SelectedIndex)
	}
}

// TestApplyEventRejectsBadInput verifies malformed posts fail
func TestApplyEventRejectsBadInput(t *testing.T) {
	lf := newTestHandlers()

	testCases := []struct {
		name string
		form EventForm
	}{
		{"missing id", EventForm{Event: "toggle"}},
		{"id with markup", EventForm{ID: `"><script>`, Event: "toggle"}},
		{"unknown event", EventForm{ID: "lf-1", Event: "select"}},
		{"garbage token", EventForm{ID: "lf-1", Event: "toggle", State: "!!!"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := lf.ApplyEvent(tc.form); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

// TestScrollHandleAbsentWhenClosed verifies scroll lookup is a no-op without a mounted row
func TestScrollHandleAbsentWhenClosed(t *testing.T) {
	lf := newTestHandlers()

	open := apply(t, lf, "", EventForm{Event: "toggle"})
	moved := apply(t, lf, open.Widget.Token, EventForm{Event: "keydown", Key: "ArrowDown"})
	closed := apply(t, lf, moved.Widget.Token, EventForm{Event: "toggle"})

	if closed.ScrollHandle() != "" {
		t.Errorf("closed widget should never scroll, got %q", closed.ScrollHandle())
	}
}

// TestReRenderedWidgetKeepsEndpoint verifies the next event has somewhere to go
func TestReRenderedWidgetKeepsEndpoint(t *testing.T) {
	r := apply(t, newTestHandlers(), "", EventForm{Event: "toggle"})
	if r.Widget.Endpoint != "/partials/language-filter" {
		t.Errorf("unexpected endpoint %q", r.Widget.Endpoint)
	}
	if !strings.HasPrefix(r.Widget.ID, "lf-") {
		t.Errorf("widget id should be preserved, got %q", r.Widget.ID)
	}
}
