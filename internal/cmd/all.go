package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/osgames/curator/internal/display"
	"github.com/osgames/curator/internal/gen"
	"github.com/osgames/curator/internal/logger"
)

// NewAllCommand creates and returns the all subcommand
func NewAllCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "all",
		Short: "Run every generator in sequence",
		Long: `Run the regular maintenance set in one go: readme, tables of
contents, statistics and the JSON export. The whole sequence runs
under a single catalog lock. The checks (links, template) are not part
of this set; run them separately when needed.

Exit code: 0 when every pass succeeded, 1 on the first failing pass`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			log := logger.NewConsoleLogger(out, cfg.LogLevel)

			return withCatalogLock(root, cfg, out, func() error {
				passes := []struct {
					name string
					run  func() error
				}{
					{"update readme", func() error { return gen.UpdateReadme(root, cfg, out) }},
					{"generate tables of contents", func() error { return gen.UpdateTOCs(root, cfg, out) }},
					{"generate statistics", func() error { return gen.WriteStatistics(root, cfg, out) }},
					{"export json", func() error { return gen.ExportJSON(root, cfg, out) }},
				}

				progress := display.NewProgressIndicator(out, len(passes))
				progress.Start()
				for _, pass := range passes {
					progress.Step(pass.name)
					if err := pass.run(); err != nil {
						return fmt.Errorf("%s: %w", pass.name, err)
					}
					log.LogDebug(fmt.Sprintf("pass complete: %s", pass.name))
				}
				progress.Complete()
				return nil
			})
		},
		SilenceUsage: true,
	}

	return cmd
}
