package cmd

import (
	"github.com/samber/do/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/lastlook/site/internal/app"
	"github.com/lastlook/site/internal/config"
	"github.com/lastlook/site/internal/content"
)

var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Print the site copy as YAML",
	Long: `Print every piece of copy the page renders (packages, process steps,
service areas, FAQ and contact details) as YAML, after validating it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cmd.Flags())
		if err != nil {
			return err
		}
		c, err := do.Invoke[content.Catalog](app.NewInjector(cfg))
		if err != nil {
			return err
		}
		enc := yaml.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent(2)
		if err := enc.Encode(c); err != nil {
			return err
		}
		return enc.Close()
	},
}

func init() {
	rootCmd.AddCommand(contentCmd)
}
