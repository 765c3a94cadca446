package models

import (
	_ "embed"
	"encoding/json"
	"os"
	"strconv"
	"strings"

	"github.com/rohanthewiz/serr"
)

// ============================================================================
// Language Catalog
//
// The catalog is the read-only lookup table the language filter works over.
// It is loaded once at startup and handed to every widget that needs it,
// so nothing in the widget reaches for package-level state.
// ============================================================================

//go:embed languages.json
var defaultLanguagesJSON []byte

// Entry is one selectable language: a machine key plus a display label.
type Entry struct {
	Value string `json:"value" msgpack:"value"`
	Title string `json:"title" msgpack:"title"`
}

// Catalog is an ordered, read-only sequence of entries.
// Callers must not modify the slice after it is handed out.
type Catalog []Entry

// DefaultCatalog parses the language table embedded in the binary.
func DefaultCatalog() (Catalog, error) {
	return ParseCatalog(defaultLanguagesJSON)
}

// LoadCatalog reads a JSON catalog from disk. An empty path yields the
// embedded default table.
func LoadCatalog(path string) (Catalog, error) {
	if path == "" {
		return DefaultCatalog()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, serr.Wrap(err, "failed to read languages file "+path)
	}

	return ParseCatalog(data)
}

// ParseCatalog decodes a JSON array of {value, title} objects.
// Entries without a value cannot be matched and are rejected.
func ParseCatalog(data []byte) (Catalog, error) {
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, serr.Wrap(err, "failed to decode languages catalog")
	}

	for i, e := range entries {
		if e.Value == "" {
			return nil, serr.New("language entry " + strconv.Itoa(i) + " has an empty value")
		}
	}

	return Catalog(entries), nil
}

// Filter returns the entries whose value contains text as a case-insensitive
// substring, preserving catalog order. An empty text returns the whole catalog.
func (c Catalog) Filter(text string) []Entry {
	return FilterEntries(c, text)
}

// FilterEntries is the filter engine behind Catalog.Filter.
func FilterEntries(entries []Entry, text string) []Entry {
	if text == "" {
		out := make([]Entry, len(entries))
		copy(out, entries)
		return out
	}

	needle := strings.ToLower(text)
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if strings.Contains(strings.ToLower(e.Value), needle) {
			out = append(out, e)
		}
	}
	return out
}
