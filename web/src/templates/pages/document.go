package pages

import (
	"strings"

	g "maragu.dev/gomponents"

	"github.com/lastlook/site/internal/content"
	"github.com/lastlook/site/internal/view"
	"github.com/lastlook/site/web/src/templates/layouts"
)

// HomeDocument is the complete landing page document.
func HomeDocument(p HomeProps, baseURL string) g.Node {
	b := p.Catalog.Business
	return layouts.Document(layouts.PageMeta{
		Title:          b.Tagline,
		SiteName:       b.Name,
		Description:    b.Description,
		CanonicalURL:   canonical(baseURL, "/"),
		Mode:           p.Mode,
		StructuredData: layouts.LocalBusiness(b, strings.TrimSuffix(baseURL, "/"), p.Catalog.Areas),
	}, Home(p))
}

// NotFoundDocument is the complete 404 document.
func NotFoundDocument(b content.Business, mode view.Mode) g.Node {
	return layouts.Document(layouts.PageMeta{
		Title:       "Page not found",
		SiteName:    b.Name,
		Description: b.Description,
		Mode:        mode,
	}, NotFound(b))
}

// Robots is the robots.txt body. Everything may be crawled.
const Robots = "User-agent: *\nAllow: /\n"

func canonical(baseURL, path string) string {
	if baseURL == "" {
		return ""
	}
	return strings.TrimSuffix(baseURL, "/") + path
}
