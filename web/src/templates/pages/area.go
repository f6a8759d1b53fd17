package pages

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/lastlook/site/internal/content"
	"github.com/lastlook/site/web/src/templates/partials"
)

func serviceArea(c content.Catalog) g.Node {
	return Section(
		ID("area"),
		Class("px-4 py-12 md:py-16"),
		Div(
			Class("mx-auto grid max-w-5xl gap-10 md:grid-cols-[1.2fr_minmax(0,1fr)]"),
			Div(
				partials.SectionHeader("mb-4",
					"Service area",
					"Based in Peachtree City, serving the Southside & beyond.",
					"We primarily serve venues within ~30 miles of Peachtree City, Georgia. Travel outside this radius may incur an additional fee—just mention your venue in your inquiry.",
				),
				Div(
					Class("flex flex-wrap gap-2 text-xs text-slate-800 dark:text-slate-100 sm:text-sm"),
					g.Map(c.Areas, func(a string) g.Node {
						return Span(
							Data("area", ""),
							Class("rounded-full border border-[#e0cba9] bg-[#fdf4e4] px-3 py-1 dark:border-slate-700 dark:bg-slate-900"),
							g.Text(a),
						)
					}),
				),
			),
			Aside(
				partials.SectionHeader("mb-4", "Client notes", "Thoughtful endings matter.", ""),
				Div(
					Class("rounded-xl border border-[#e0cba9] bg-[#fdf4e4] p-5 text-sm text-slate-800 shadow-md dark:border-slate-700 dark:bg-slate-900 dark:text-slate-200"),
					P(Class("italic"), g.Text(c.Testimonial.Quote)),
					P(
						Class("mt-3 text-xs font-semibold uppercase tracking-wide text-[#9a7c4e] dark:text-slate-400"),
						g.Text(c.Testimonial.Attribution),
					),
				),
			),
		),
	)
}
