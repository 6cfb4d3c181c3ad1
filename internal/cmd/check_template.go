package cmd

import (
	"github.com/spf13/cobra"

	"github.com/osgames/curator/internal/check"
)

// NewCheckTemplateCommand creates and returns the check template subcommand
func NewCheckTemplateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Report template boilerplate left in entries",
		Long: `Compare every entry against the template's non-heading lines and
report entries that still contain one verbatim, as "<file>: found
<line>". Such lines are placeholders the author forgot to fill in.

Exit code: 0 when the pass completes, 1 on filesystem errors`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return check.Templates(cfg.TemplatePath(root), cfg.GamesPath(root), cmd.OutOrStdout())
		},
		SilenceUsage: true,
	}

	return cmd
}
