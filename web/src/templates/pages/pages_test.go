package pages_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/lastlook/site/internal/content"
	"github.com/lastlook/site/internal/testutils"
	"github.com/lastlook/site/internal/view"
	"github.com/lastlook/site/web/src/templates/pages"
	"github.com/lastlook/site/web/src/templates/partials"
)

func homeDoc(t *testing.T, mode view.Mode, theme view.Theme) *html.Node {
	t.Helper()
	p := pages.NewHomeProps(content.Default(), mode)
	p.Theme = theme
	return testutils.RenderDOM(t, pages.Home(p))
}

func TestHomeRendersOneNodePerEntryInOrder(t *testing.T) {
	c := content.Default()
	doc := homeDoc(t, view.ModeServer, view.Theme{})

	t.Run("service tiers", func(t *testing.T) {
		nodes := testutils.FindAll(doc, "data-tier")
		require.Len(t, nodes, len(c.Services))
		for i, n := range nodes {
			assert.Equal(t, "article", n.Data)
			id, _ := testutils.Attr(n, "data-tier")
			assert.Equal(t, string(c.Services[i].ID), id)
			assert.Contains(t, testutils.Text(n), c.Services[i].Name)
			assert.Contains(t, testutils.Text(n), c.Services[i].PriceLabel())
		}
	})

	t.Run("process steps", func(t *testing.T) {
		nodes := testutils.FindAll(doc, "data-step")
		require.Len(t, nodes, len(c.Steps))
		for i, n := range nodes {
			id, _ := testutils.Attr(n, "data-step")
			assert.Equal(t, strconv.Itoa(c.Steps[i].ID), id)
			assert.Contains(t, testutils.Text(n), c.Steps[i].Title)
		}
	})

	t.Run("service areas", func(t *testing.T) {
		nodes := testutils.FindAll(doc, "data-area")
		require.Len(t, nodes, len(c.Areas))
		for i, n := range nodes {
			assert.Equal(t, c.Areas[i], testutils.Text(n))
		}
	})

	t.Run("faq entries", func(t *testing.T) {
		nodes := testutils.FindAll(doc, "data-faq")
		require.Len(t, nodes, len(c.FAQ))
		for i, n := range nodes {
			assert.Equal(t, "details", n.Data)
			id, _ := testutils.Attr(n, "data-faq")
			assert.Equal(t, c.FAQ[i].ID, id)
			assert.Contains(t, testutils.Text(n), c.FAQ[i].Question)
		}
	})

	t.Run("contact entries", func(t *testing.T) {
		nodes := testutils.FindAll(doc, "data-contact")
		require.Len(t, nodes, len(c.Contact))
		for i, n := range nodes {
			label, _ := testutils.Attr(n, "data-contact")
			assert.Equal(t, c.Contact[i].Label, label)
		}
	})

	t.Run("event types", func(t *testing.T) {
		nodes := testutils.FindAll(doc, "data-event-type")
		require.Len(t, nodes, len(c.EventTypes))
		for i, n := range nodes {
			assert.Equal(t, c.EventTypes[i], testutils.Text(n))
		}
	})
}

func TestHomeSectionsInFixedOrder(t *testing.T) {
	doc := homeDoc(t, view.ModeServer, view.Theme{})

	var ids []string
	for _, n := range testutils.FindAll(doc, "id") {
		if n.Data == "section" {
			id, _ := testutils.Attr(n, "id")
			ids = append(ids, id)
		}
	}
	assert.Equal(t, []string{"about", "services", "process", "area", "faq", "contact"}, ids)

	for _, anchor := range []string{"top", "about", "services", "process", "faq", "contact"} {
		assert.NotNil(t, testutils.ByID(doc, anchor), anchor)
	}
}

func TestHighlightedTierHasBadge(t *testing.T) {
	doc := homeDoc(t, view.ModeServer, view.Theme{})

	for _, n := range testutils.FindAll(doc, "data-tier") {
		id, _ := testutils.Attr(n, "data-tier")
		class, _ := testutils.Attr(n, "class")
		if id == string(content.TierKeepsake) {
			assert.Contains(t, testutils.Text(n), "Most Popular")
			assert.Contains(t, class, "dark:border-amber-300/60")
		} else {
			assert.NotContains(t, testutils.Text(n), "Most Popular")
			assert.Contains(t, class, "dark:border-slate-700")
		}
	}
}

func TestContactEntryLinks(t *testing.T) {
	tests := []struct {
		name string
		info content.ContactInfo
	}{
		{"mailto", content.ContactInfo{Label: "Email", Value: "a@example.com", Href: "mailto:a@example.com"}},
		{"tel", content.ContactInfo{Label: "Phone", Value: "(706) 973-0371", Href: "tel:17069730371"}},
		{"plain", content.ContactInfo{Label: "Hours", Value: "Within 1–2 business days"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := testutils.RenderDOM(t, pages.ContactEntry(tt.info))
			anchors := testutils.FindAll(doc, "href")
			if tt.info.HasLink() {
				require.Len(t, anchors, 1)
				assert.Equal(t, "a", anchors[0].Data)
				href, _ := testutils.Attr(anchors[0], "href")
				assert.Equal(t, tt.info.Href, href)
				assert.Equal(t, tt.info.Value, testutils.Text(anchors[0]))
			} else {
				assert.Empty(t, anchors)
				assert.Contains(t, testutils.Text(doc), tt.info.Value)
			}
		})
	}
}

func TestRootClassFollowsTheme(t *testing.T) {
	light := homeDoc(t, view.ModeServer, view.Theme{})
	dark := homeDoc(t, view.ModeServer, view.Theme{}.Toggle())
	back := homeDoc(t, view.ModeServer, view.Theme{}.Toggle().Toggle())

	class := func(doc *html.Node) string {
		root := testutils.ByID(doc, pages.RootID)
		require.NotNil(t, root)
		v, _ := testutils.Attr(root, "class")
		return v
	}

	assert.Equal(t, "", class(light))
	assert.Equal(t, "dark", class(dark))
	assert.Equal(t, class(light), class(back))
}

func TestThemeToggleCarriesCurrentState(t *testing.T) {
	t.Run("server mode posts the current flag", func(t *testing.T) {
		doc := homeDoc(t, view.ModeServer, view.Theme{Dark: true})
		btn := testutils.ByID(doc, "theme-toggle")
		require.NotNil(t, btn)

		post, _ := testutils.Attr(btn, "hx-post")
		vals, _ := testutils.Attr(btn, "hx-vals")
		target, _ := testutils.Attr(btn, "hx-target")
		assert.Equal(t, "/theme", post)
		assert.Equal(t, `{"dark": "true"}`, vals)
		assert.Equal(t, "#app", target)
		assert.Equal(t, "☾", testutils.Text(btn))
	})

	t.Run("static mode toggles in the browser", func(t *testing.T) {
		doc := homeDoc(t, view.ModeStatic, view.Theme{})
		btn := testutils.ByID(doc, "theme-toggle")
		require.NotNil(t, btn)

		_, hasPost := testutils.Attr(btn, "hx-post")
		onclick, _ := testutils.Attr(btn, "onclick")
		assert.False(t, hasPost)
		assert.Contains(t, onclick, "classList.toggle('dark')")
		assert.Contains(t, onclick, "this.setAttribute('aria-pressed',d)", "the pressed state follows the class")
	})
}

func TestQuoteForm(t *testing.T) {
	t.Run("labels pair with controls that carry no names", func(t *testing.T) {
		doc := testutils.RenderDOM(t, pages.QuoteForm(view.ModeServer, view.FlashData{}))

		labels := testutils.FindAll(doc, "for")
		require.Len(t, labels, len(pages.QuoteFields))
		for i, l := range labels {
			forID, _ := testutils.Attr(l, "for")
			assert.Equal(t, pages.QuoteFields[i].ID, forID)
			control := testutils.ByID(doc, forID)
			require.NotNil(t, control, forID)
			_, named := testutils.Attr(control, "name")
			assert.False(t, named, "%s must not be submitted", forID)
		}
		assert.Equal(t, "textarea", testutils.ByID(doc, "details").Data)
	})

	t.Run("server mode intercepts with htmx", func(t *testing.T) {
		doc := testutils.RenderDOM(t, pages.QuoteForm(view.ModeServer, view.FlashData{}))
		form := testutils.ByID(doc, pages.FormID)
		require.NotNil(t, form)

		post, _ := testutils.Attr(form, "hx-post")
		target, _ := testutils.Attr(form, "hx-target")
		assert.Equal(t, "/contact", post)
		assert.Equal(t, "#"+pages.NoticeID, target)
		assert.NotNil(t, testutils.ByID(doc, pages.NoticeID))
	})

	t.Run("static mode prevents the default submit", func(t *testing.T) {
		doc := testutils.RenderDOM(t, pages.QuoteForm(view.ModeStatic, view.FlashData{}))
		form := testutils.ByID(doc, pages.FormID)
		require.NotNil(t, form)

		onsubmit, _ := testutils.Attr(form, "onsubmit")
		_, hasAction := testutils.Attr(form, "action")
		assert.True(t, strings.HasPrefix(onsubmit, "event.preventDefault();"))
		assert.Contains(t, onsubmit, partials.DemoNotice)
		assert.False(t, hasAction)
	})

	t.Run("pending flash notices render in the notice area", func(t *testing.T) {
		doc := testutils.RenderDOM(t, pages.QuoteForm(view.ModeServer, view.FlashData{Info: []string{partials.DemoNotice}}))
		notice := testutils.ByID(doc, pages.NoticeID)
		require.NotNil(t, notice)
		assert.Equal(t, partials.DemoNotice, testutils.Text(notice))
	})
}

func TestQuoteMailtoButton(t *testing.T) {
	c := content.Default()
	doc := homeDoc(t, view.ModeServer, view.Theme{})

	found := false
	for _, a := range testutils.FindAll(doc, "href") {
		if href, _ := testutils.Attr(a, "href"); href == c.QuoteMailto() {
			found = true
			assert.Equal(t, "Email us to request a quote", testutils.Text(a))
		}
	}
	assert.True(t, found, "quote mailto link should be rendered")
}

func TestNotFound(t *testing.T) {
	doc := testutils.RenderDOM(t, pages.NotFound(content.Default().Business))
	assert.Contains(t, testutils.Text(doc), "This page has already been cleaned up.")
	assert.NotNil(t, testutils.ByID(doc, "top"))
}
