// Package shared contains reusable components that are shared across multiple pages.
package shared

// Page is embedded by concrete pages to give them a title plus the common
// banner and footer.
type Page struct {
	Title string
}

func (p Page) Banner() Banner {
	return Banner{Title: p.Title}
}

func (p Page) Footer() Footer {
	return Footer{Note: "Languages are matched on their key, case-insensitively."}
}
