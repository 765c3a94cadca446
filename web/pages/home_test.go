package pages

import (
	"strings"
	"testing"

	"langfilter/models"
)

// TestHomePageMountsWidget verifies the demo page carries a closed widget and its assets
func TestHomePageMountsWidget(t *testing.T) {
	cat, err := models.DefaultCatalog()
	if err != nil {
		t.Fatalf("failed to load catalog: %v", err)
	}

	home, err := NewHomePage(cat)
	if err != nil {
		t.Fatalf("failed to build home page: %v", err)
	}

	html := home.Render()

	expected := []string{
		"<title>Language Filter</title>",
		"language-filter-wrap",
		"All Languages",
		home.Filter.ID,
		"/static/js/language_filter.js",
		"/static/css/language_filter.css",
		`data-lf-endpoint="` + LanguageFilterEndpoint + `"`,
	}
	for _, want := range expected {
		if !strings.Contains(html, want) {
			t.Errorf("home page should contain %s", want)
		}
	}

	if strings.Contains(html, "select-menu-item") {
		t.Error("widget should mount closed")
	}
}

// TestHomePagesGetDistinctWidgets verifies each page load mounts its own instance
func TestHomePagesGetDistinctWidgets(t *testing.T) {
	a, err := NewHomePage(models.Catalog{{Value: "go", Title: "Go"}})
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewHomePage(models.Catalog{{Value: "go", Title: "Go"}})
	if err != nil {
		t.Fatal(err)
	}

	if a.Filter.ID == b.Filter.ID {
		t.Error("each page should mount a widget with its own id")
	}
}
