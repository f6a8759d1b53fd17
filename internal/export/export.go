// Package export writes the site as plain files that any static host can
// serve.
package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"strings"

	g "maragu.dev/gomponents"

	"github.com/lastlook/site/internal/audit"
	"github.com/lastlook/site/internal/content"
	"github.com/lastlook/site/internal/rendering"
	"github.com/lastlook/site/internal/storage"
	"github.com/lastlook/site/internal/view"
	"github.com/lastlook/site/web/src/templates/pages"
)

// ErrAuditFailed is returned when a rendered page fails the markup audit.
var ErrAuditFailed = errors.New("markup audit failed")

// Names of the pages an export writes.
const (
	IndexPage    = "index.html"
	NotFoundPage = "404.html"
)

// Pages lists the exported HTML pages in the order they are written.
var Pages = []string{IndexPage, NotFoundPage}

// Options tune a single export.
type Options struct {
	// SkipAudit writes the pages even when the audit finds violations.
	SkipAudit bool
}

// Result describes what an export wrote.
type Result struct {
	Files   []string
	Reports map[string]*audit.Report
}

// Exporter renders the site in static mode and writes it to a store.
type Exporter struct {
	renderer rendering.Renderer
	catalog  content.Catalog
	baseURL  string
	assets   fs.FS
}

// New creates an Exporter. assets is copied below static/ as is.
func New(renderer rendering.Renderer, catalog content.Catalog, baseURL string, assets fs.FS) *Exporter {
	return &Exporter{
		renderer: renderer,
		catalog:  catalog,
		baseURL:  baseURL,
		assets:   assets,
	}
}

type page struct {
	name string
	node g.Node
}

// Export writes index.html, 404.html, robots.txt and the static assets to
// store. Pages are audited before anything is written; violations abort the
// export with ErrAuditFailed unless opts.SkipAudit is set. When a write
// fails, the files already written are deleted again.
func (x *Exporter) Export(ctx context.Context, store storage.Store, opts Options) (*Result, error) {
	props := pages.NewHomeProps(x.catalog, view.ModeStatic)
	docs := []page{
		{IndexPage, pages.HomeDocument(props, x.baseURL)},
		{NotFoundPage, pages.NotFoundDocument(x.catalog.Business, view.ModeStatic)},
	}

	res := &Result{Reports: make(map[string]*audit.Report, len(docs))}
	rendered := make(map[string][]byte, len(docs))
	var failed []string
	for _, d := range docs {
		body, err := x.renderer.RenderComponent(ctx, d.node)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", d.name, err)
		}
		report, err := audit.Check(bytes.NewReader(body))
		if err != nil {
			return nil, fmt.Errorf("audit %s: %w", d.name, err)
		}
		res.Reports[d.name] = report
		rendered[d.name] = body

		for _, v := range report.Violations {
			slog.Warn("Audit violation", "page", d.name, "rule", v.Rule, "element", v.Element, "message", v.Message)
		}
		if !report.OK() {
			failed = append(failed, d.name)
		}
	}
	if len(failed) > 0 && !opts.SkipAudit {
		return res, fmt.Errorf("%w: %s", ErrAuditFailed, strings.Join(failed, ", "))
	}

	if err := x.write(ctx, store, res, docs, rendered); err != nil {
		rollback(ctx, store, res.Files)
		return nil, err
	}

	slog.Info("Site exported", "files", len(res.Files))
	return res, nil
}

func (x *Exporter) write(ctx context.Context, store storage.Store, res *Result, docs []page, rendered map[string][]byte) error {
	for _, d := range docs {
		if err := x.save(ctx, store, res, d.name, rendered[d.name]); err != nil {
			return err
		}
	}
	if err := x.save(ctx, store, res, "robots.txt", []byte(pages.Robots)); err != nil {
		return err
	}
	return x.copyAssets(ctx, store, res)
}

// rollback removes the files a failed export already wrote so the output
// directory never holds a half-written site.
func rollback(ctx context.Context, store storage.Store, files []string) {
	ctx = context.WithoutCancel(ctx)
	for _, name := range files {
		if err := store.Delete(ctx, name); err != nil {
			slog.Warn("Could not remove partial export file", "file", name, "error", err)
		}
	}
}

// Verify reads the exported pages back from store and audits them.
func Verify(ctx context.Context, store storage.Store) (map[string]*audit.Report, error) {
	reports := make(map[string]*audit.Report, len(Pages))
	for _, name := range Pages {
		report, err := verifyPage(ctx, store, name)
		if err != nil {
			return nil, err
		}
		reports[name] = report
	}
	return reports, nil
}

func verifyPage(ctx context.Context, store storage.Store, name string) (*audit.Report, error) {
	f, err := store.Open(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()
	report, err := audit.Check(f)
	if err != nil {
		return nil, fmt.Errorf("audit %s: %w", name, err)
	}
	return report, nil
}

func (x *Exporter) save(ctx context.Context, store storage.Store, res *Result, name string, body []byte) error {
	if _, err := store.Save(ctx, name, bytes.NewReader(body)); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	res.Files = append(res.Files, name)
	return nil
}

func (x *Exporter) copyAssets(ctx context.Context, store storage.Store, res *Result) error {
	if x.assets == nil {
		return nil
	}
	return fs.WalkDir(x.assets, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		body, err := fs.ReadFile(x.assets, p)
		if err != nil {
			return fmt.Errorf("read asset %s: %w", p, err)
		}
		return x.save(ctx, store, res, path.Join("static", p), body)
	})
}
