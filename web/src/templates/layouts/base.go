package layouts

import (
	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/lastlook/site/internal/view"
)

const (
	tailwindCDN = "https://cdn.tailwindcss.com"
	htmxCDN     = "https://unpkg.com/htmx.org@2.0.4"
)

// tailwindConfig switches Tailwind to class-based dark mode so the root
// wrapper's "dark" class drives every dark: variant.
const tailwindConfig = `tailwind.config = {
  darkMode: 'class',
  theme: {
    extend: {
      fontFamily: {
        logo: ['"Great Vibes"', 'cursive'],
        display: ['"Playfair Display"', 'serif'],
      },
    },
  },
};`

// PageMeta describes the document head.
type PageMeta struct {
	Title        string
	SiteName     string
	Description  string
	CanonicalURL string
	Mode         view.Mode
	// StructuredData is rendered at the end of <head>, usually a JSON-LD
	// script.
	StructuredData templ.Component
}

// Document wraps page content in the HTML document.
func Document(meta PageMeta, body ...g.Node) g.Node {
	return Doctype(
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
				TitleEl(g.Text(CalculateTitle(meta.Title, meta.SiteName))),
				Meta(Name("description"), Content(meta.Description)),
				Meta(g.Attr("property", "og:title"), Content(meta.SiteName)),
				Meta(g.Attr("property", "og:description"), Content(meta.Description)),
				Meta(g.Attr("property", "og:type"), Content("website")),
				g.If(meta.CanonicalURL != "", g.Group{
					Link(Rel("canonical"), Href(meta.CanonicalURL)),
					Meta(g.Attr("property", "og:url"), Content(meta.CanonicalURL)),
				}),
				Link(Rel("icon"), Type("image/svg+xml"), Href("/static/img/logo.svg")),
				Link(Rel("preconnect"), Href("https://fonts.googleapis.com")),
				Link(Rel("stylesheet"), Href("https://fonts.googleapis.com/css2?family=Great+Vibes&family=Playfair+Display:wght@600&display=swap")),
				Script(Src(tailwindCDN)),
				Script(g.Raw(tailwindConfig)),
				Link(Rel("stylesheet"), Href("/static/css/site.css")),
				g.If(meta.Mode == view.ModeServer, Script(Src(htmxCDN), Defer())),
				g.If(meta.StructuredData != nil, view.AdaptTemplToGomponent(meta.StructuredData)),
			),
			Body(
				Class("antialiased"),
				g.Group(body),
			),
		),
	)
}
