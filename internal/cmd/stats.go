package cmd

import (
	"github.com/spf13/cobra"

	"github.com/osgames/curator/internal/gen"
)

// NewStatsCommand creates and returns the stats subcommand
func NewStatsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Generate the statistics report",
		Long: `Aggregate every entry in the catalog and write statistics.md into the
games directory: state counts with percentages, the inactive entries,
entries missing a state, language or license tag, and language and
license frequency tables computed over tag occurrences.

Entry problems found while parsing are printed as warnings and the
entry still counts with whatever fields it has.

Exit code: 0 on success, 1 on filesystem errors`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			return withCatalogLock(root, cfg, out, func() error {
				return gen.WriteStatistics(root, cfg, out)
			})
		},
		SilenceUsage: true,
	}

	return cmd
}
