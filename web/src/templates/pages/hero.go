package pages

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/lastlook/site/internal/content"
)

const (
	cardClass    = "rounded-xl border border-[#e0cba9] bg-[#fdf2e2] p-5 shadow-md dark:border-slate-700 dark:bg-slate-900"
	primaryBtn   = "inline-flex items-center justify-center rounded-full bg-[#c9a46a] px-5 py-2.5 text-sm font-semibold text-slate-900 shadow-md hover:bg-[#b58c4f] dark:bg-[#f1cd85] dark:text-slate-950 dark:hover:bg-[#e2b96b]"
	secondaryBtn = "inline-flex items-center justify-center rounded-full border border-[#c9a46a] px-5 py-2.5 text-sm font-semibold text-[#8f6a39] hover:bg-[#c9a46a] hover:text-slate-900 dark:border-[#f1cd85] dark:text-[#fbe7b5] dark:hover:bg-[#f1cd85] dark:hover:text-slate-950"
)

func hero(c content.Catalog) g.Node {
	b := c.Business
	return Section(
		Class("bg-gradient-to-br from-[#f6e8d4] to-[#ead7b8] px-4 py-12 dark:from-slate-950 dark:to-slate-900 md:py-16"),
		Div(
			Class("mx-auto grid max-w-5xl gap-10 md:grid-cols-[1.2fr_minmax(0,1fr)] md:items-center"),
			Div(
				Div(
					Class("mb-4 inline-flex items-center rounded-full bg-[#f3e0c3] px-3 py-1 text-[0.7rem] font-semibold uppercase tracking-[0.25em] text-[#8f6a39] dark:bg-slate-800 dark:text-slate-100"),
					g.Text(b.LocationBadge),
				),
				H1(
					Class("font-display text-3xl font-semibold leading-tight text-[#7a5a33] dark:text-[#f5e0ba] sm:text-4xl"),
					g.Text("We handle the aftermath so you can stay in the glow."),
				),
				P(
					Class("mt-4 max-w-xl text-sm text-slate-700 dark:text-slate-300 sm:text-base"),
					g.Textf("%s specializes in post-wedding cleanup, décor collection, and short-term storage. Your venue is left spotless, and your keepsakes are handled with care—so you can leave when the party ends, not when the work is done.", b.Name),
				),
				Div(
					Class("mt-6 flex flex-wrap items-center gap-3"),
					A(Href("#contact"), Class(primaryBtn), g.Text("Get a Custom Quote")),
					A(Href("#services"), Class(secondaryBtn), g.Text("View Packages")),
				),
				Div(
					Class("mt-5 flex flex-wrap gap-5 text-xs font-medium text-slate-700 dark:text-slate-300 sm:text-[0.8rem]"),
					g.Map(c.HeroHighlights, func(s string) g.Node {
						return Span(Data("highlight", ""), g.Text(s))
					}),
				),
			),
			Aside(
				Class(cardClass+" text-slate-800 dark:text-slate-100"),
				H3(Class("font-display text-lg font-semibold text-[#7a5a33] dark:text-[#f5e0ba]"), g.Text("Stress-free goodbyes")),
				P(
					Class("mt-2 text-sm text-slate-700 dark:text-slate-300"),
					g.Text("Instead of staying late to break down tables, box up décor, and haul it all home, hand us the keys and enjoy your send-off. We’ll take care of the rest."),
				),
				Ul(
					Class("mt-4 space-y-2 text-sm text-slate-800 dark:text-slate-200"),
					g.Map(c.HeroChecklist, func(s string) g.Node {
						return Li(
							Class("flex items-start gap-2"),
							Span(Class("mt-[3px] text-[#c39a5e] dark:text-[#f1cd85]"), g.Text("✓")),
							Span(g.Text(s)),
						)
					}),
				),
			),
		),
	)
}
