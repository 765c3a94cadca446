package shared

import "github.com/rohanthewiz/element"

// Footer closes every page
type Footer struct {
	Note string
}

func (f Footer) Render(b *element.Builder) any {
	b.Div("class", "footer").R(
		b.P("class", "footer-note").T(f.Note),
	)

	return nil
}
