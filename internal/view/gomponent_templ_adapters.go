package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"maragu.dev/gomponents"
)

// --- TEMPL -> GOMPONENTS ADAPTER ---

// TemplToGomponentAdapter wraps a templ.Component so it can sit inside a
// gomponents tree, e.g. the JSON-LD block in the document head.
type TemplToGomponentAdapter struct {
	Component templ.Component
}

// Render implements gomponents.Node. gomponents does not pass a context, so
// the templ component is rendered with context.Background().
func (a *TemplToGomponentAdapter) Render(w io.Writer) error {
	return a.Component.Render(context.Background(), w)
}

// AdaptTemplToGomponent converts a templ.Component into a gomponents.Node.
func AdaptTemplToGomponent(component templ.Component) gomponents.Node {
	return &TemplToGomponentAdapter{Component: component}
}
