package cmd

import (
	"github.com/spf13/cobra"

	"github.com/osgames/curator/internal/gen"
)

// NewExportCommand creates and returns the export subcommand
func NewExportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the catalog as JSON for the browser-side table",
		Long: `Project every entry to a [name, download] pair and write the payload
to the export file (docs/data.json by default), overwriting it
wholesale. Entries without a download field export an empty string.

Exit code: 0 on success, 1 on filesystem errors`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			return withCatalogLock(root, cfg, out, func() error {
				return gen.ExportJSON(root, cfg, out)
			})
		},
		SilenceUsage: true,
	}

	return cmd
}
