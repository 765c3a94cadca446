package comps

import "github.com/rohanthewiz/element"

type Heading struct {
	Title string
}

func (h Heading) Render(b *element.Builder) (x any) {
	b.H2("class", "page-heading").T(h.Title)
	return
}
