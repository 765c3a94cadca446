package shared

import "github.com/rohanthewiz/element"

// Banner is the page-wide header strip
type Banner struct {
	Title string
}

// Render implements element.Component
func (b Banner) Render(builder *element.Builder) any {
	builder.Header("class", "banner").R(
		builder.H1().T(b.Title),
	)

	return nil
}
