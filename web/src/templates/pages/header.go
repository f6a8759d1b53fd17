package pages

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/lastlook/site/internal/content"
	"github.com/lastlook/site/web/src/templates/partials"
)

// NavLink is an in-page anchor in the header.
type NavLink struct {
	Href string
	Text string
}

// NavLinks are the header anchors, in display order.
var NavLinks = []NavLink{
	{"#about", "About"},
	{"#services", "Packages"},
	{"#process", "How It Works"},
	{"#faq", "FAQ"},
	{"#contact", "Contact"},
}

const ctaClass = "inline-flex items-center justify-center rounded-full bg-[#c9a46a] px-4 py-2 text-xs font-semibold uppercase tracking-wide text-slate-900 shadow-md hover:bg-[#b58c4f] dark:bg-[#f1cd85] dark:text-slate-950 dark:hover:bg-[#e2b96b]"

func siteHeader(p HomeProps) g.Node {
	return Header(
		Class("sticky top-0 z-20 border-b border-[#e0cba9] bg-[#f2e1c8]/90 backdrop-blur dark:border-slate-800 dark:bg-slate-950/80"),
		Div(
			Class("mx-auto flex max-w-5xl flex-col items-start gap-3 px-4 py-3 md:flex-row md:items-center md:justify-between"),
			wordmark(p.Catalog.Business),
			Nav(
				Class("flex flex-wrap items-center gap-4 text-xs font-medium text-slate-800 dark:text-slate-200 md:text-sm"),
				g.Map(NavLinks, func(l NavLink) g.Node {
					return A(Href(l.Href), Class("hover:text-[#c39a5e] dark:hover:text-[#f4cf86]"), g.Text(l.Text))
				}),
			),
			Div(
				Class("flex items-center gap-3"),
				partials.ThemeToggle(p.Theme, p.Mode),
				A(Href("#contact"), Class(ctaClass), g.Text("Request a Quote")),
			),
		),
	)
}

func wordmark(b content.Business) g.Node {
	return Div(
		Class("flex items-center gap-3"),
		Div(
			Class("h-12 w-9 overflow-hidden rounded-lg border border-[#d8c19f] bg-[#f6eada] shadow-sm dark:border-slate-700 dark:bg-slate-900"),
			Img(Src(b.LogoPath), Alt(b.LogoAlt), Class("h-full w-full object-cover")),
		),
		Div(
			Class("leading-tight"),
			Div(Class("font-logo text-2xl text-[#c9a46a] drop-shadow-sm dark:text-[#e8c982]"), g.Text(b.Name)),
			Div(Class("text-[0.65rem] font-semibold uppercase tracking-[0.25em] text-[#9a7c4e] dark:text-slate-400"), g.Text(b.Tagline)),
		),
	)
}
