package cmd

import (
	"github.com/spf13/cobra"

	"github.com/osgames/curator/internal/gen"
)

// NewReadmeCommand creates and returns the readme subcommand
func NewReadmeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "readme",
		Short: "Recount the categories and rewrite the readme overview",
		Long: `Rewrite the autogenerated block of the readme: the total entry count
followed by one bullet per category linking to its table of contents,
sorted by category title.

The readme must keep its fixed shape, a "# <title>" heading and an
"A collection" trailer around the generated middle. If that shape is not
found exactly once the readme is left untouched and the command fails,
so a reorganized readme is never half-rewritten.

Exit code: 0 on success, 1 when the readme shape does not match or on
filesystem errors`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			return withCatalogLock(root, cfg, out, func() error {
				return gen.UpdateReadme(root, cfg, out)
			})
		},
		SilenceUsage: true,
	}

	return cmd
}
