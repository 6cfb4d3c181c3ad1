package cmd

import (
	"github.com/spf13/cobra"

	"github.com/osgames/curator/internal/gen"
)

// NewTocCommand creates and returns the toc subcommand
func NewTocCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "toc",
		Short: "Regenerate the table of contents of every category",
		Long: `Rebuild the autogenerated entry listing in every category's _toc.md.

Each entry is listed as "- **[title](file)** (language, license, state)",
sorted by title. The header line and any hand-written text outside the
marker region are preserved byte for byte. A category whose markers are
missing or duplicated is reported and skipped; the remaining categories
are still regenerated.

Exit code: 0 if the pass ran, 1 on filesystem errors`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			return withCatalogLock(root, cfg, out, func() error {
				return gen.UpdateTOCs(root, cfg, out)
			})
		},
		SilenceUsage: true,
	}

	return cmd
}
