package cmd

import (
	"bytes"
	"testing"

	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/lastlook/site/internal/content"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		for _, c := range rootCmd.Commands() {
			c.Flags().VisitAll(func(f *pflag.Flag) {
				_ = f.Value.Set(f.DefValue)
				f.Changed = false
			})
		}
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "lastlook v"+version+"\n", out)
}

func TestContentCommand(t *testing.T) {
	out, err := run(t, "content")
	require.NoError(t, err)

	var got content.Catalog
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, content.Default(), got)
}

func TestAuditCommand(t *testing.T) {
	for _, mode := range []string{"server", "static"} {
		t.Run(mode, func(t *testing.T) {
			out, err := run(t, "audit", "--mode", mode)
			require.NoError(t, err)
			assert.Contains(t, out, "No violations found")
		})
	}

	t.Run("unknown mode", func(t *testing.T) {
		_, err := run(t, "audit", "--mode", "print")
		assert.ErrorContains(t, err, `unknown mode "print"`)
	})
}

func TestExportCommand(t *testing.T) {
	memFs := afero.NewMemMapFs()
	original := outputFs
	outputFs = memFs
	t.Cleanup(func() { outputFs = original })

	out, err := run(t, "export", "--out", "dist", "--base-url", "https://lastlookevents.com")
	require.NoError(t, err)
	assert.Contains(t, out, "Exported")

	index, err := afero.ReadFile(memFs, "dist/index.html")
	require.NoError(t, err)
	assert.Contains(t, string(index), `href="https://lastlookevents.com/"`)

	for _, f := range []string{"dist/404.html", "dist/robots.txt", "dist/static/css/site.css"} {
		exists, err := afero.Exists(memFs, f)
		require.NoError(t, err)
		assert.True(t, exists, f)
	}

	t.Run("audit reads the export back", func(t *testing.T) {
		out, err := run(t, "audit", "--dir", "dist")
		require.NoError(t, err)
		assert.Contains(t, out, "No violations found")
	})

	t.Run("audit reports edited files", func(t *testing.T) {
		require.NoError(t, afero.WriteFile(memFs, "dist/404.html", []byte(`<img src="/x.png">`), 0o644))

		out, err := run(t, "audit", "--dir", "dist")
		assert.ErrorContains(t, err, "1 audit violations")
		assert.Contains(t, out, "404.html: [img-alt]")
	})
}
