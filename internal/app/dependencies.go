package app

import (
	"fmt"
	"io/fs"

	"github.com/samber/do/v2"

	"github.com/lastlook/site/internal/config"
	"github.com/lastlook/site/internal/content"
	"github.com/lastlook/site/internal/export"
	"github.com/lastlook/site/internal/rendering"
	"github.com/lastlook/site/internal/server"
	"github.com/lastlook/site/web"
)

// NewInjector builds the container the commands pull their services from.
// Services are created lazily on first invoke, so a command only pays for
// what it uses.
func NewInjector(cfg *config.Config) do.Injector {
	i := do.New()
	do.ProvideValue(i, cfg)
	do.Provide(i, provideCatalog)
	do.Provide(i, provideRenderer)
	do.Provide(i, provideAssets)
	do.Provide(i, provideServer)
	do.Provide(i, provideExporter)
	return i
}

// provideCatalog returns the site copy, refusing to start on a broken one.
func provideCatalog(i do.Injector) (content.Catalog, error) {
	c := content.Default()
	if err := c.Validate(); err != nil {
		return content.Catalog{}, err
	}
	return c, nil
}

func provideRenderer(i do.Injector) (*rendering.UniversalRenderer, error) {
	return rendering.NewUniversalRenderer(), nil
}

// provideAssets exposes the embedded static directory with paths relative
// to it.
func provideAssets(i do.Injector) (fs.FS, error) {
	sub, err := fs.Sub(web.FS, "static")
	if err != nil {
		return nil, fmt.Errorf("static assets: %w", err)
	}
	return sub, nil
}

func provideServer(i do.Injector) (*server.Server, error) {
	cfg, err := do.Invoke[*config.Config](i)
	if err != nil {
		return nil, err
	}
	catalog, err := do.Invoke[content.Catalog](i)
	if err != nil {
		return nil, err
	}
	s := server.New(cfg, catalog, do.MustInvoke[*rendering.UniversalRenderer](i))
	s.RegisterRoutes()
	return s, nil
}

func provideExporter(i do.Injector) (*export.Exporter, error) {
	cfg, err := do.Invoke[*config.Config](i)
	if err != nil {
		return nil, err
	}
	catalog, err := do.Invoke[content.Catalog](i)
	if err != nil {
		return nil, err
	}
	assets, err := do.Invoke[fs.FS](i)
	if err != nil {
		return nil, err
	}
	return export.New(do.MustInvoke[*rendering.UniversalRenderer](i), catalog, cfg.GetBaseURL(), assets), nil
}
