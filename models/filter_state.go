package models

// ============================================================================
// Language Filter State
//
// The widget is an explicit State plus a pure reducer. Hosts (the web partial
// endpoint, the terminal UI) translate their own input into Events, call
// Reduce, then render the new State and carry out the returned Effects.
// ============================================================================

// Arrow keys handled by the navigator. Names follow KeyboardEvent.key.
const (
	KeyArrowUp   = "ArrowUp"
	KeyArrowDown = "ArrowDown"
)

// AllLanguagesLabel is shown on the toggle button when nothing is selected.
const AllLanguagesLabel = "All Languages"

// FilterState is the transient UI state owned by one widget instance.
type FilterState struct {
	Selected      string `msgpack:"s"` // chosen label; empty means all languages
	FilterText    string `msgpack:"f"`
	SelectedIndex int    `msgpack:"i"` // index into the filtered list
	ShowDropdown  bool   `msgpack:"o"`
}

// NewFilterState returns the state a widget mounts with.
func NewFilterState() FilterState {
	return FilterState{}
}

// Label is the text for the toggle button.
func (s FilterState) Label() string {
	if s.Selected == "" {
		return AllLanguagesLabel
	}
	return s.Selected
}

// EventKind enumerates the user interactions the widget reacts to.
type EventKind string

const (
	EventToggle      EventKind = "toggle"       // toggle button clicked
	EventFilterInput EventKind = "filter-input" // filter text changed
	EventKeyDown     EventKind = "keydown"      // key pressed in the filter input
	EventBlur        EventKind = "blur"         // filter input lost focus
)

// ParseEventKind maps a wire name onto an EventKind.
func ParseEventKind(name string) (EventKind, bool) {
	switch k := EventKind(name); k {
	case EventToggle, EventFilterInput, EventKeyDown, EventBlur:
		return k, true
	}
	return "", false
}

// Event is one discrete interaction. Value carries the new filter text for
// EventFilterInput; Key carries the key name for EventKeyDown.
type Event struct {
	Kind  EventKind
	Value string
	Key   string
}

// Effects are the side effects a host performs after rendering the new state.
type Effects struct {
	FocusInput     bool // panel just opened
	ScrollToActive bool // highlighted index changed
	PreventDefault bool // key event was consumed by the navigator
}

// Reduce applies ev to s and returns the next state along with the effects
// the host must carry out. It never mutates s and never fails.
func Reduce(s FilterState, ev Event, entries []Entry) (FilterState, Effects) {
	next := s
	var fx Effects

	switch ev.Kind {
	case EventToggle:
		next.ShowDropdown = !s.ShowDropdown
		if next.ShowDropdown {
			fx.FocusInput = true
		}

	case EventFilterInput:
		next.FilterText = ev.Value
		next.SelectedIndex = 0

	case EventKeyDown:
		if !s.ShowDropdown {
			break
		}
		step := 0
		switch ev.Key {
		case KeyArrowUp:
			step = -1
		case KeyArrowDown:
			step = 1
		}
		if step == 0 {
			break
		}
		fx.PreventDefault = true
		next.SelectedIndex = clampIndex(s.SelectedIndex+step, len(FilterEntries(entries, s.FilterText)))

	case EventBlur:
		next.ShowDropdown = false
		next.FilterText = ""
	}

	if next.SelectedIndex != s.SelectedIndex {
		fx.ScrollToActive = true
	}

	return next, fx
}

// clampIndex bounds idx to [0, n-1], or 0 for an empty list. A state posted
// back by a browser may carry an index past the end of the list.
func clampIndex(idx, n int) int {
	if idx > n-1 {
		idx = n - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}
