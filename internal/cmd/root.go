package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/osgames/curator/internal/config"
	"github.com/osgames/curator/internal/display"
	"github.com/osgames/curator/internal/fileutil"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for curator
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "curator",
		Short: "Maintenance tooling for a markdown catalog of open source games",
		Long: `Curator maintains a markdown catalog of open source games: the table
of contents of every category, the readme overview, the statistics
report and the JSON export for the browser-side table.

Generators rewrite only the autogenerated regions of their target
documents and are safe to re-run at any time; checks are read-only and
merely report. Entry problems (missing fields, bad state tags) are
printed as warnings and never abort a run.`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringP("dir", "d", ".", "catalog root directory (holds the games directory and the readme)")
	cmd.PersistentFlags().String("config", "", "config file (default is <dir>/.curator/config.yaml)")

	// Add subcommands
	cmd.AddCommand(NewTocCommand())
	cmd.AddCommand(NewReadmeCommand())
	cmd.AddCommand(NewStatsCommand())
	cmd.AddCommand(NewExportCommand())
	cmd.AddCommand(NewAllCommand())
	cmd.AddCommand(NewCheckCommand())

	return cmd
}

// loadConfig resolves the catalog root and configuration for a command
// invocation: an explicit --config path wins, otherwise the config file is
// looked up under the root, and a missing file falls back to defaults.
func loadConfig(cmd *cobra.Command) (string, *config.Config, error) {
	root, err := cmd.Flags().GetString("dir")
	if err != nil {
		return "", nil, err
	}
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return "", nil, err
	}

	var cfg *config.Config
	if configPath != "" {
		cfg, err = config.LoadConfig(configPath)
	} else {
		cfg, err = config.LoadConfigFromDir(root)
	}
	if err != nil {
		return "", nil, err
	}
	if err := cfg.Validate(); err != nil {
		return "", nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return root, cfg, nil
}

// withCatalogLock runs fn while holding the catalog regeneration lock so
// two curator processes cannot interleave writes. When another process
// holds the lock a warning is displayed and the command fails.
func withCatalogLock(root string, cfg *config.Config, out io.Writer, fn func() error) error {
	lock := fileutil.NewLock(cfg.LockPath(root))
	acquired, err := lock.TryLock()
	if err != nil {
		return err
	}
	if !acquired {
		display.WarnLockHeld(lock.Path()).Display(out)
		return fmt.Errorf("catalog at %s is locked by another process", root)
	}
	defer lock.Unlock()

	return fn()
}
