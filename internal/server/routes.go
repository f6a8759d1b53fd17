package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lastlook/site/internal/middleware"
	"github.com/lastlook/site/web"
)

// RegisterRoutes sets up all the application routes.
func (s *Server) RegisterRoutes() {
	rateLimiter := middleware.RateLimiter(s.Cfg.GetRateLimit())

	// Serve the embedded static assets.
	s.E.StaticFS("/static", echo.MustSubFS(web.FS, "static"))

	// Register routes.
	s.E.GET("/", s.homeHandler.HomeGet)
	s.E.POST("/theme", s.homeHandler.ThemePost, rateLimiter)
	s.E.POST("/contact", s.contactHandler.ContactPost, rateLimiter)
	s.E.GET("/robots.txt", s.homeHandler.RobotsGet)

	s.E.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	s.E.RouteNotFound("/*", s.homeHandler.NotFound)
}
