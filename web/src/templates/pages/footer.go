package pages

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/lastlook/site/internal/content"
)

func siteFooter(b content.Business) g.Node {
	return Footer(
		Class("bg-slate-900 px-4 py-5 text-xs text-slate-200"),
		Div(
			Class("mx-auto flex max-w-5xl flex-wrap items-center justify-between gap-3"),
			Div(g.Textf("© %d %s. All rights reserved.", b.Copyright, b.Name)),
			Div(
				Class("space-x-4"),
				A(Href("#top"), Class("hover:underline"), g.Text("Back to top")),
				A(Href("#contact"), Class("hover:underline"), g.Text("Book now")),
			),
		),
		P(
			Class("mx-auto mt-3 max-w-5xl text-xs text-slate-500"),
			g.Text("Website by "),
			A(
				Href(b.Credit.Href),
				Target("_blank"),
				Rel("noopener noreferrer"),
				Class("text-yellow-300 underline-offset-2 hover:text-yellow-200 hover:underline"),
				g.Text(b.Credit.Text),
			),
		),
	)
}
