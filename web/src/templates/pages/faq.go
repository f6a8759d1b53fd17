package pages

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/lastlook/site/internal/content"
	"github.com/lastlook/site/web/src/templates/partials"
)

func faq(c content.Catalog) g.Node {
	return Section(
		ID("faq"),
		Class("bg-[#f5ead9] px-4 py-12 dark:bg-slate-900 md:py-16"),
		Div(
			Class("mx-auto max-w-5xl"),
			partials.SectionHeader("mb-8",
				"FAQ",
				"Questions we’re often asked.",
				"Don’t see your question here? Include it in your quote request and we’ll get you a clear, honest answer.",
			),
			Div(
				Class("space-y-3"),
				g.Map(c.FAQ, func(item content.FAQItem) g.Node {
					return Details(
						Data("faq", item.ID),
						Class("group rounded-lg border border-[#e0cba9] bg-[#fdf4e4] p-4 text-sm text-slate-800 shadow-sm dark:border-slate-700 dark:bg-slate-900 dark:text-slate-200"),
						Summary(Class("cursor-pointer list-none font-semibold text-[#7a5a33] dark:text-[#f5e0ba]"), g.Text(item.Question)),
						P(Class("mt-2 text-sm text-slate-700 dark:text-slate-300"), g.Text(item.Answer)),
					)
				}),
			),
		),
	)
}
