package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lastlook/site/internal/middleware"
	"github.com/lastlook/site/internal/view"
	"github.com/lastlook/site/web/src/templates/partials"
)

// ContactHandler answers quote form submissions. The form is a demo: the
// submission carries no fields and nothing is sent anywhere.
type ContactHandler struct{}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler() *ContactHandler {
	return &ContactHandler{}
}

// ContactPost shows the demo notice. htmx requests get the notice fragment
// for #form-notice; plain form posts get it as a flash on the next page
// load. It never fails.
func (h *ContactHandler) ContactPost(c echo.Context) error {
	logger := middleware.FromContext(c.Request().Context())
	logger.Info("demo quote form submitted", "htmx", isHTMX(c))

	if isHTMX(c) {
		return c.Render(http.StatusOK, "", partials.Notice(partials.DemoNotice))
	}

	if err := view.SetFlashInfo(c, partials.DemoNotice); err != nil {
		logger.Warn("could not store demo notice", "error", err)
	}
	return c.Redirect(http.StatusSeeOther, "/#contact")
}
