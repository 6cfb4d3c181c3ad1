package cmd

import (
	"github.com/spf13/cobra"
)

// NewCheckCommand creates and returns the check parent command
func NewCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Read-only catalog checks",
		Long: `Checks inspect the catalog and report problems without modifying
anything:

  links     fetch every external link and report the broken ones
  template  report template boilerplate left in entries

Both run occasionally rather than on every catalog change.`,
		SilenceUsage: true,
	}

	cmd.AddCommand(NewCheckLinksCommand())
	cmd.AddCommand(NewCheckTemplateCommand())

	return cmd
}
