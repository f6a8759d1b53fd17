package pages

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/lastlook/site/internal/content"
)

// NotFound is shown for any path other than the landing page.
func NotFound(b content.Business) g.Node {
	return Div(
		ID(RootID),
		Div(
			ID("top"),
			Class("flex min-h-screen items-center justify-center bg-[#f4e4cf] px-4 text-slate-900"),
			Div(
				Class("max-w-md text-center"),
				P(Class("text-xs font-semibold uppercase tracking-[0.25em] text-[#9a7c4e]"), g.Text("404")),
				H1(Class("mt-2 font-display text-3xl font-semibold text-[#7a5a33]"), g.Text("This page has already been cleaned up.")),
				P(Class("mt-4 text-sm text-slate-700"), g.Textf("There’s nothing here, but %s is one click away.", b.Name)),
				A(Href("/"), Class("mt-6 "+primaryBtn), g.Text("Back to the homepage")),
			),
		),
	)
}
