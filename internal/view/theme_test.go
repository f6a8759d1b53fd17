package view_test

import (
	"bytes"
	"testing"

	"github.com/a-h/templ"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	h "maragu.dev/gomponents/html"

	"github.com/lastlook/site/internal/view"
)

func TestThemeToggle(t *testing.T) {
	light := view.Theme{}
	dark := light.Toggle()

	assert.True(t, dark.Dark)
	assert.Equal(t, "dark", dark.RootClass())
	assert.Equal(t, "", light.RootClass())
	assert.Equal(t, light, dark.Toggle())
}

func TestThemeToggleTwiceIsIdentity(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("toggling twice restores the root class", prop.ForAll(
		func(dark bool) bool {
			start := view.Theme{Dark: dark}
			return start.Toggle().Toggle().RootClass() == start.RootClass()
		},
		gen.Bool(),
	))

	properties.Property("value round-trips through ParseTheme", prop.ForAll(
		func(dark bool) bool {
			th := view.Theme{Dark: dark}
			return view.ParseTheme(th.Value()) == th
		},
		gen.Bool(),
	))

	properties.TestingRun(t)
}

func TestParseTheme(t *testing.T) {
	tests := []struct {
		in   string
		dark bool
	}{
		{"true", true},
		{"TRUE", true},
		{" 1 ", true},
		{"on", true},
		{"dark", true},
		{"false", false},
		{"", false},
		{"maybe", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.dark, view.ParseTheme(tt.in).Dark)
		})
	}
}

func TestThemeIcon(t *testing.T) {
	assert.Equal(t, "☀︎", view.Theme{}.Icon())
	assert.Equal(t, "☾", view.Theme{Dark: true}.Icon())
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "server", view.ModeServer.String())
	assert.Equal(t, "static", view.ModeStatic.String())
}

func TestTemplAdapter(t *testing.T) {
	t.Run("templ renders inside gomponents", func(t *testing.T) {
		node := h.Div(view.AdaptTemplToGomponent(templ.Raw("<b>x</b>")))

		var buf bytes.Buffer
		require.NoError(t, node.Render(&buf))
		assert.Equal(t, "<div><b>x</b></div>", buf.String())
	})

	t.Run("json-ld script", func(t *testing.T) {
		node := h.Head(view.AdaptTemplToGomponent(templ.JSONScript("ld", map[string]string{"@type": "LocalBusiness"}).WithType("application/ld+json")))

		var buf bytes.Buffer
		require.NoError(t, node.Render(&buf))
		assert.Contains(t, buf.String(), `type="application/ld+json"`)
		assert.Contains(t, buf.String(), `{"@type":"LocalBusiness"}`)
	})
}
