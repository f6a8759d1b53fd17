package server

import (
	"errors"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/labstack/echo/v4"
	g "maragu.dev/gomponents"

	"github.com/lastlook/site/internal/middleware"
	"github.com/lastlook/site/internal/rendering"
)

// setupErrorHandling installs an error handler that logs anything that is
// not an *echo.HTTPError with a stack trace before answering 500. A 404 for
// a page request renders notFound; every other HTTP error keeps echo's
// default response.
func setupErrorHandling(e *echo.Echo, renderer rendering.Renderer, notFound g.Node) {
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var he *echo.HTTPError
		if !errors.As(err, &he) {
			middleware.FromContext(c.Request().Context()).Error("Internal Server Error (Unhandled)",
				"error", err,
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"stack_trace", string(debug.Stack()),
			)
		} else if he.Code == http.StatusNotFound && wantsPage(c.Request()) {
			rerr := renderer.RenderPage(c, http.StatusNotFound, notFound)
			if rerr == nil {
				return
			}
			middleware.FromContext(c.Request().Context()).Warn("could not render not found page", "error", rerr)
		}

		e.DefaultHTTPErrorHandler(err, c)
	}
}

// wantsPage reports whether r is a browser navigation that should get an
// HTML error page rather than echo's JSON body.
func wantsPage(r *http.Request) bool {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		return false
	}
	accept := r.Header.Get(echo.HeaderAccept)
	return accept == "" || accept == "*/*" || strings.Contains(accept, echo.MIMETextHTML)
}
