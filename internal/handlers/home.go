package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lastlook/site/internal/content"
	"github.com/lastlook/site/internal/middleware"
	"github.com/lastlook/site/internal/view"
	"github.com/lastlook/site/web/src/templates/pages"
)

// HomeHandler serves the landing page, its theme toggle and the 404 page.
type HomeHandler struct {
	catalog content.Catalog
	baseURL string
}

// NewHomeHandler creates a new HomeHandler.
func NewHomeHandler(catalog content.Catalog, baseURL string) *HomeHandler {
	return &HomeHandler{catalog: catalog, baseURL: baseURL}
}

func (h *HomeHandler) props(c echo.Context) pages.HomeProps {
	p := pages.NewHomeProps(h.catalog, view.ModeServer)
	p.Flash = view.GetFlashData(c)
	return p
}

// HomeGet handles the GET request for the home page. It always starts in
// light mode.
func (h *HomeHandler) HomeGet(c echo.Context) error {
	return c.Render(http.StatusOK, "", pages.HomeDocument(h.props(c), h.baseURL))
}

// ThemePost flips the theme. The request carries the theme currently shown
// and the response is the page root rendered with the other one, which
// htmx swaps in place of #app.
func (h *HomeHandler) ThemePost(c echo.Context) error {
	var req ThemeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid theme request")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid theme value")
	}

	next := view.ParseTheme(req.Dark).Toggle()
	middleware.FromContext(c.Request().Context()).Debug("theme toggled", "dark", next.Dark)

	if !isHTMX(c) {
		return c.Redirect(http.StatusSeeOther, "/")
	}

	// Flashes stay pending: #quote-form is hx-preserve, so a notice
	// rendered here would never reach the page.
	p := pages.NewHomeProps(h.catalog, view.ModeServer)
	p.Theme = next
	return c.Render(http.StatusOK, "", pages.Home(p))
}

// NotFound renders the 404 page.
func (h *HomeHandler) NotFound(c echo.Context) error {
	return c.Render(http.StatusNotFound, "", pages.NotFoundDocument(h.catalog.Business, view.ModeServer))
}

// RobotsGet serves robots.txt.
func (h *HomeHandler) RobotsGet(c echo.Context) error {
	return c.String(http.StatusOK, pages.Robots)
}

// isHTMX reports whether the request was issued by htmx.
func isHTMX(c echo.Context) bool {
	return c.Request().Header.Get("HX-Request") == "true"
}
