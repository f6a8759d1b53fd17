package server

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/lastlook/site/internal/config"
	"github.com/lastlook/site/internal/content"
	"github.com/lastlook/site/internal/handlers"
	appmw "github.com/lastlook/site/internal/middleware"
	"github.com/lastlook/site/internal/rendering"
	"github.com/lastlook/site/internal/view"
	"github.com/lastlook/site/web/src/templates/pages"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	E              *echo.Echo
	Cfg            config.Provider
	homeHandler    *handlers.HomeHandler
	contactHandler *handlers.ContactHandler
}

// New creates a new Server instance with its middleware chain installed.
// Routes are added by RegisterRoutes.
func New(cfg config.Provider, catalog content.Catalog, renderer *rendering.UniversalRenderer) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Debug = cfg.IsDevelopment()
	e.Renderer = renderer
	e.Validator = handlers.NewValidator()
	// Identify clients by the connection address; forwarded headers are
	// client supplied and not trusted.
	e.IPExtractor = echo.ExtractIPDirect()
	setupErrorHandling(e, renderer, pages.NotFoundDocument(catalog.Business, view.ModeServer))

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string { return uuid.NewString() },
	}))
	e.Use(appmw.Logger)
	e.Use(appmw.AccessLog())
	e.Use(middleware.Recover())
	e.Use(middleware.SecureWithConfig(middleware.SecureConfig{
		XSSProtection:      "1; mode=block",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "SAMEORIGIN",
		ReferrerPolicy:     "strict-origin-when-cross-origin",
	}))
	e.Use(middleware.Gzip())

	// Configure and use session middleware
	store := sessions.NewCookieStore([]byte(cfg.GetSessionSecret()))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   3600, // flash notices are short-lived
		HttpOnly: true,
		Secure:   !cfg.IsDevelopment(),
		SameSite: http.SameSiteLaxMode,
	}
	e.Use(session.Middleware(store))

	return &Server{
		E:              e,
		Cfg:            cfg,
		homeHandler:    handlers.NewHomeHandler(catalog, cfg.GetBaseURL()),
		contactHandler: handlers.NewContactHandler(),
	}
}
