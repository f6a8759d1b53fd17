package cmd

import (
	"bytes"
	"fmt"
	"io"

	"github.com/samber/do/v2"
	"github.com/spf13/cobra"

	"github.com/lastlook/site/internal/app"
	"github.com/lastlook/site/internal/audit"
	"github.com/lastlook/site/internal/config"
	"github.com/lastlook/site/internal/content"
	"github.com/lastlook/site/internal/export"
	"github.com/lastlook/site/internal/storage"
	"github.com/lastlook/site/internal/view"
	"github.com/lastlook/site/web/src/templates/pages"
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Check the rendered page for markup mistakes",
	Long: `Render the landing page and check it for unlabeled form controls,
images without alt text, duplicate ids, in-page links to missing sections,
malformed mailto/tel links and buttons without a name.

With --dir the pages of an existing export are read back and checked
instead.

Exits with status 1 when anything is found.

Examples:
  lastlook audit                 # audit the server-rendered page
  lastlook audit --mode static   # audit the exported rendition
  lastlook audit --dir public    # audit the files written by export`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, _ := cmd.Flags().GetString("dir")
		modeName, _ := cmd.Flags().GetString("mode")

		var (
			names   []string
			reports map[string]*audit.Report
			err     error
		)
		if dir != "" {
			names = export.Pages
			reports, err = export.Verify(cmd.Context(), storage.NewDirStore(outputFs, dir))
		} else {
			names = []string{modeName}
			reports, err = auditRendered(cmd, modeName)
		}
		if err != nil {
			return err
		}
		return printReports(cmd.OutOrStdout(), names, reports)
	},
}

// auditRendered renders the landing page from the validated catalog and
// audits it.
func auditRendered(cmd *cobra.Command, modeName string) (map[string]*audit.Report, error) {
	var mode view.Mode
	switch modeName {
	case "server":
		mode = view.ModeServer
	case "static":
		mode = view.ModeStatic
	default:
		return nil, fmt.Errorf("unknown mode %q: must be server or static", modeName)
	}

	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return nil, err
	}
	catalog, err := do.Invoke[content.Catalog](app.NewInjector(cfg))
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := pages.HomeDocument(pages.NewHomeProps(catalog, mode), cfg.GetBaseURL()).Render(&buf); err != nil {
		return nil, err
	}
	report, err := audit.Check(&buf)
	if err != nil {
		return nil, err
	}
	return map[string]*audit.Report{modeName: report}, nil
}

func printReports(out io.Writer, names []string, reports map[string]*audit.Report) error {
	violations, elements := 0, 0
	for _, name := range names {
		report := reports[name]
		for _, v := range report.Violations {
			fmt.Fprintf(out, "%s: %s\n", name, v)
		}
		violations += len(report.Violations)
		elements += report.Elements
	}
	if violations > 0 {
		return fmt.Errorf("%d audit violations", violations)
	}
	fmt.Fprintf(out, "No violations found in %d elements\n", elements)
	return nil
}

func init() {
	auditCmd.Flags().String("mode", "server", "page rendition to audit: server or static")
	auditCmd.Flags().String("dir", "", "audit the pages of an existing export in this directory")
	rootCmd.AddCommand(auditCmd)
}
