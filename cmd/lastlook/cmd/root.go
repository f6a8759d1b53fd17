package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/lastlook/site/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "lastlook",
	Short: "Last Look Events website",
	Long: `lastlook serves and builds the Last Look Events marketing site.

Available commands:
  serve      Run the site with the htmx-powered theme toggle and demo form
  export     Write the site as static files for any static host
  content    Print the site copy as YAML
  audit      Check the rendered page for markup mistakes
  version    Print the version

Configuration is read from LASTLOOK_* environment variables and an optional
.env file. Use "lastlook [command] --help" for more information about a
command.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.New()
	},
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
