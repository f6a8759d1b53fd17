package pages

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/lastlook/site/internal/content"
	"github.com/lastlook/site/web/src/templates/partials"
)

func process(c content.Catalog) g.Node {
	return Section(
		ID("process"),
		Class("px-4 py-12 md:py-16"),
		Div(
			Class("mx-auto max-w-5xl"),
			partials.SectionHeader("mb-8",
				"How it works",
				"Simple, thoughtful, and venue-friendly.",
				"We coordinate with your venue and/or planner so your breakdown plan is just as intentional as your timeline.",
			),
			Div(
				Class("grid gap-5 md:grid-cols-3"),
				g.Map(c.Steps, stepCard),
			),
			P(
				Class("mt-6 rounded-lg border border-[#e0cba9] bg-[#f7ebda] px-4 py-3 text-xs text-slate-700 dark:border-emerald-500/40 dark:bg-slate-900 dark:text-slate-200 sm:text-sm"),
				g.Text(c.ProcessNote),
			),
		),
	)
}

func stepCard(s content.ProcessStep) g.Node {
	id := strconv.Itoa(s.ID)
	return Div(
		Data("step", id),
		Class("relative rounded-xl border border-[#e0cba9] bg-[#fdf2e2] p-5 text-sm text-slate-700 shadow-md dark:border-slate-700 dark:bg-slate-900 dark:text-slate-300"),
		Div(
			Class("absolute left-4 top-4 flex h-7 w-7 items-center justify-center rounded-full bg-[#c9a46a] text-xs font-bold text-slate-900 dark:bg-amber-300 dark:text-slate-950"),
			g.Text(id),
		),
		Div(Class("ml-10 font-semibold text-[#7a5a33] dark:text-[#f5e0ba]"), g.Text(s.Title)),
		P(Class("ml-10 mt-2"), g.Text(s.Body)),
	)
}
