package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/osgames/curator/internal/check"
	"github.com/osgames/curator/internal/config"
	"github.com/osgames/curator/internal/logger"
)

// NewCheckLinksCommand creates and returns the check links subcommand
func NewCheckLinksCommand() *cobra.Command {
	defaults := config.DefaultConfig().LinkCheck

	var (
		timeout        time.Duration
		maxConcurrency int
		rps            float64
		verbose        bool
	)

	cmd := &cobra.Command{
		Use:   "links",
		Short: "Check the external links of every entry",
		Long: `Fetch every external link referenced by the entries and report those
answering with an error status or not answering at all. All three
reference styles are recognized: <url> autolinks, [title](url) links
and bare urls in the text.

Fetches run concurrently behind a global rate limit and each unique url
is fetched once per run. Broken links are reported per referencing
entry as "<file>: <url> - <reason>" and do not affect the exit code; a
progress line is printed every 50 checks.

Exit code: 0 when the pass completes, 1 on filesystem errors or when
interrupted`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			// Flags override the config file, but only when given.
			var timeoutFlag *time.Duration
			var concurrencyFlag *int
			var rpsFlag *float64
			if cmd.Flags().Changed("timeout") {
				timeoutFlag = &timeout
			}
			if cmd.Flags().Changed("max-concurrency") {
				concurrencyFlag = &maxConcurrency
			}
			if cmd.Flags().Changed("rps") {
				rpsFlag = &rps
			}
			cfg.MergeWithFlags(timeoutFlag, concurrencyFlag, rpsFlag)
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			logLevel := cfg.LogLevel
			if verbose {
				logLevel = "debug"
			}
			out := cmd.OutOrStdout()
			log := logger.NewConsoleLogger(out, logLevel)

			checker := check.NewLinkChecker(cfg.LinkCheck, log)
			return checker.Run(cmd.Context(), cfg.GamesPath(root), out)
		},
		SilenceUsage: true,
	}

	cmd.Flags().DurationVar(&timeout, "timeout", defaults.Timeout, "per-request timeout")
	cmd.Flags().IntVar(&maxConcurrency, "max-concurrency", defaults.MaxConcurrency, "number of concurrent fetches")
	cmd.Flags().Float64Var(&rps, "rps", defaults.RequestsPerSecond, "maximum requests per second (0 = unlimited)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log every checked url")

	return cmd
}
