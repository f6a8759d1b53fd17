package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/samber/do/v2"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/lastlook/site/internal/app"
	"github.com/lastlook/site/internal/config"
	"github.com/lastlook/site/internal/export"
	"github.com/lastlook/site/internal/storage"
)

// outputFs is where export writes. Tests swap in a memory filesystem.
var outputFs = afero.NewOsFs()

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the site as static files",
	Long: `Render the site without a server and write index.html, 404.html,
robots.txt and the static assets to the output directory. The exported page
toggles dark mode and answers the demo form entirely in the browser.

The markup audit runs first; any violation stops the export unless
--skip-audit is given.

Examples:
  lastlook export                       # write to LASTLOOK_EXPORT_DIR or ./public
  lastlook export --out dist --base-url https://lastlookevents.com`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cmd.Flags())
		if err != nil {
			return err
		}
		skip, _ := cmd.Flags().GetBool("skip-audit")

		x, err := do.Invoke[*export.Exporter](app.NewInjector(cfg))
		if err != nil {
			return err
		}
		store := storage.NewDirStore(outputFs, cfg.GetExportDir())
		res, err := x.Export(cmd.Context(), store, export.Options{SkipAudit: skip})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, f := range res.Files {
			fmt.Fprintln(out, filepath.Join(cfg.GetExportDir(), f))
		}
		fmt.Fprintf(out, "Exported %d files\n", len(res.Files))
		return nil
	},
}

func init() {
	exportCmd.Flags().String("out", "public", "output directory")
	exportCmd.Flags().String("base-url", "http://localhost:8080", "public URL used for canonical links")
	exportCmd.Flags().Bool("skip-audit", false, "write files even if the markup audit fails")
	rootCmd.AddCommand(exportCmd)
}
