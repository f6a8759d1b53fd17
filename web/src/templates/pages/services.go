package pages

import (
	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"

	"github.com/lastlook/site/internal/content"
	"github.com/lastlook/site/web/src/templates/partials"
)

func services(cat content.Catalog) g.Node {
	return Section(
		ID("services"),
		Class("bg-[#f8ecdc] px-4 py-12 dark:bg-slate-900 md:py-16"),
		Div(
			Class("mx-auto max-w-5xl"),
			partials.SectionHeader("mb-8",
				"Packages",
				"Choose the level of “last look” you need.",
				"Every event is unique. These starting packages help you get a sense of pricing—final quotes are based on guest count, venue rules, and travel distance.",
			),
			Div(
				Class("grid gap-6 md:grid-cols-3"),
				g.Map(cat.Services, tierCard),
			),
			P(
				Class("mt-6 text-xs text-slate-700 dark:text-slate-300 sm:text-sm"),
				Strong(g.Text("Add-ons:")),
				g.Text(" "+cat.AddOnsNote),
			),
		),
	)
}

func tierCard(t content.ServiceTier) g.Node {
	return Article(
		Data("tier", string(t.ID)),
		c.Classes{
			"relative flex flex-col rounded-xl border bg-[#fdf4e4] p-5 text-sm text-slate-800 shadow-md dark:bg-slate-900 dark:text-slate-100": true,
			"border-[#d8c19f] dark:border-amber-300/60": t.Highlight,
			"border-[#e0cba9] dark:border-slate-700":    !t.Highlight,
		},
		g.If(t.Highlight, Span(
			Class("absolute right-4 top-3 rounded-full bg-[#f3e0c3] px-2 py-1 text-[0.65rem] font-semibold uppercase tracking-[0.2em] text-[#8f6a39] dark:bg-slate-800 dark:text-amber-200"),
			g.Text("Most Popular"),
		)),
		Div(Class("text-2xl"), Aria("hidden", "true"), g.Text(t.Icon)),
		Div(Class("mt-2 font-semibold text-[#7a5a33] dark:text-[#f5e0ba]"), g.Text(t.Name)),
		Div(Class("text-sm font-semibold text-[#b28342] dark:text-amber-200"), g.Text(t.PriceLabel())),
		Ul(
			Class("mt-3 space-y-1.5"),
			g.Map(t.Bullets, func(b string) g.Node { return Li(g.Text(b)) }),
		),
	)
}
