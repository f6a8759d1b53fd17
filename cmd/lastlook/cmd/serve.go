package cmd

import (
	"github.com/samber/do/v2"
	"github.com/spf13/cobra"

	"github.com/lastlook/site/internal/app"
	"github.com/lastlook/site/internal/config"
	"github.com/lastlook/site/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web server",
	Long: `Run the site over HTTP. The dark-mode toggle and the demo quote form
post back to the server with htmx; without JavaScript the form falls back to
a regular POST and the notice is shown after the redirect.

Examples:
  lastlook serve                      # listen on LASTLOOK_ADDR or :8080
  lastlook serve --addr 127.0.0.1:3000
  lastlook serve --dev                # development mode, insecure cookies allowed`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cmd.Flags())
		if err != nil {
			return err
		}
		s, err := do.Invoke[*server.Server](app.NewInjector(cfg))
		if err != nil {
			return err
		}
		return s.Start()
	},
}

func init() {
	serveCmd.Flags().String("addr", ":8080", "address to listen on")
	serveCmd.Flags().String("base-url", "http://localhost:8080", "public URL used for canonical links")
	serveCmd.Flags().Bool("dev", false, "run in development mode")
	rootCmd.AddCommand(serveCmd)
}
