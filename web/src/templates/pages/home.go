package pages

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/lastlook/site/internal/content"
	"github.com/lastlook/site/internal/view"
)

// RootID is the id of the wrapper that carries the theme class. The theme
// toggle swaps this element.
const RootID = "app"

// HomeProps is everything the landing page needs to render.
type HomeProps struct {
	Catalog content.Catalog
	Theme   view.Theme
	Mode    view.Mode
	// QuoteMailto is the pre-filled quote request link.
	QuoteMailto string
	Flash       view.FlashData
}

// NewHomeProps builds props for a light-mode render of c.
func NewHomeProps(c content.Catalog, mode view.Mode) HomeProps {
	return HomeProps{
		Catalog:     c,
		Mode:        mode,
		QuoteMailto: c.QuoteMailto(),
	}
}

// Home renders the whole page body: header, the seven content sections and
// the footer, in that order, inside the themed root wrapper.
func Home(p HomeProps) g.Node {
	return Div(
		ID(RootID),
		Class(p.Theme.RootClass()),
		Div(
			ID("top"),
			Class("min-h-screen bg-[#f4e4cf] text-slate-900 dark:bg-slate-950 dark:text-slate-100"),
			siteHeader(p),
			Main(
				hero(p.Catalog),
				about(p.Catalog),
				services(p.Catalog),
				process(p.Catalog),
				serviceArea(p.Catalog),
				faq(p.Catalog),
				contact(p),
			),
			siteFooter(p.Catalog.Business),
		),
	)
}
