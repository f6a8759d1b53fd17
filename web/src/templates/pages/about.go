package pages

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/lastlook/site/internal/content"
	"github.com/lastlook/site/web/src/templates/partials"
)

func about(c content.Catalog) g.Node {
	b := c.Business
	return Section(
		ID("about"),
		Class("px-4 py-12 md:py-16"),
		Div(
			Class("mx-auto max-w-5xl"),
			partials.SectionHeader("mb-8",
				"About "+b.Name,
				"A boutique service for the end of your best day.",
				"Based in Peachtree City, Georgia, "+b.Name+" was created for couples who want to fully enjoy their celebration—without worrying about who’s taking down the centerpieces or collecting the card box.",
			),
			Div(
				Class("grid gap-8 md:grid-cols-[1.2fr_minmax(0,1fr)] md:items-start"),
				Div(
					P(
						Class("text-sm text-slate-700 dark:text-slate-300 sm:text-base"),
						g.Text("We partner with local venues, planners, and couples to ensure a smooth, respectful, and discreet breakdown at the end of your event. From golf course clubhouses to barn venues and private properties, we understand how to work within venue guidelines while treating your décor like the keepsakes they are."),
					),
					Ul(
						Class("mt-5 grid gap-3 text-sm text-slate-800 dark:text-slate-100 sm:grid-cols-2"),
						g.Map(c.EventTypes, func(s string) g.Node {
							return Li(
								Data("event-type", ""),
								Class("rounded-full border border-[#e0cba9] bg-[#fdf2e2] px-3 py-2 dark:border-slate-700 dark:bg-slate-900"),
								g.Text(s),
							)
						}),
					),
				),
				Div(
					Class(cardClass+" text-sm text-slate-800 dark:text-slate-100"),
					Strong(Class("block text-[#7a5a33] dark:text-[#f5e0ba]"), g.Text("Our mission:")),
					Span(g.Text("To provide stress-free, detail-oriented event cleanup and décor care so clients can fully enjoy their celebration—without worrying about the mess.")),
				),
			),
		),
	)
}
