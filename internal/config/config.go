package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// LinkCheckConfig controls the external link checker.
type LinkCheckConfig struct {
	// Timeout is the per-request timeout for link fetches
	Timeout time.Duration `yaml:"timeout"`

	// MaxConcurrency is the number of concurrent link fetches
	MaxConcurrency int `yaml:"max_concurrency"`

	// RequestsPerSecond caps the global fetch rate (0 = unlimited)
	RequestsPerSecond float64 `yaml:"requests_per_second"`
}

// Config represents curator configuration options. All paths are relative
// to the catalog root directory passed on the command line; the root itself
// is deliberately not part of the configuration.
type Config struct {
	// GamesDir is the directory holding the category subdirectories
	GamesDir string `yaml:"games_dir"`

	// ReadmeFile is the summary document rewritten by the readme generator
	ReadmeFile string `yaml:"readme_file"`

	// ExportFile is the target of the JSON export
	ExportFile string `yaml:"export_file"`

	// Title is the literal level-1 heading the readme must start with
	Title string `yaml:"title"`

	// LogLevel sets the logging verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// LinkCheck contains link checker configuration
	LinkCheck LinkCheckConfig `yaml:"link_check"`
}

// DefaultConfig returns a Config with sensible default values matching the
// catalog's conventional layout.
func DefaultConfig() *Config {
	return &Config{
		GamesDir:   "games",
		ReadmeFile: "README.md",
		ExportFile: filepath.Join("docs", "data.json"),
		Title:      "Open Source Games",
		LogLevel:   "info",
		LinkCheck: LinkCheckConfig{
			Timeout:           10 * time.Second,
			MaxConcurrency:    8,
			RequestsPerSecond: 4,
		},
	}
}

// LoadConfig loads configuration from the specified file path.
// If the file doesn't exist, returns default configuration without error.
// If the file exists but is malformed, returns an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Temporary struct so durations can be given as strings ("30s").
	type yamlLinkCheck struct {
		Timeout           string  `yaml:"timeout"`
		MaxConcurrency    int     `yaml:"max_concurrency"`
		RequestsPerSecond float64 `yaml:"requests_per_second"`
	}
	type yamlConfig struct {
		GamesDir   string        `yaml:"games_dir"`
		ReadmeFile string        `yaml:"readme_file"`
		ExportFile string        `yaml:"export_file"`
		Title      string        `yaml:"title"`
		LogLevel   string        `yaml:"log_level"`
		LinkCheck  yamlLinkCheck `yaml:"link_check"`
	}

	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Apply non-zero values from the file over the defaults.
	if yamlCfg.GamesDir != "" {
		cfg.GamesDir = yamlCfg.GamesDir
	}
	if yamlCfg.ReadmeFile != "" {
		cfg.ReadmeFile = yamlCfg.ReadmeFile
	}
	if yamlCfg.ExportFile != "" {
		cfg.ExportFile = yamlCfg.ExportFile
	}
	if yamlCfg.Title != "" {
		cfg.Title = yamlCfg.Title
	}
	if yamlCfg.LogLevel != "" {
		cfg.LogLevel = yamlCfg.LogLevel
	}
	if yamlCfg.LinkCheck.Timeout != "" {
		timeout, err := time.ParseDuration(yamlCfg.LinkCheck.Timeout)
		if err != nil {
			return nil, fmt.Errorf("invalid link_check.timeout %q: %w", yamlCfg.LinkCheck.Timeout, err)
		}
		cfg.LinkCheck.Timeout = timeout
	}
	if yamlCfg.LinkCheck.MaxConcurrency != 0 {
		cfg.LinkCheck.MaxConcurrency = yamlCfg.LinkCheck.MaxConcurrency
	}
	if yamlCfg.LinkCheck.RequestsPerSecond != 0 {
		cfg.LinkCheck.RequestsPerSecond = yamlCfg.LinkCheck.RequestsPerSecond
	}

	return cfg, nil
}

// LoadConfigFromDir loads configuration from .curator/config.yaml in the
// given catalog root. A missing file yields the defaults.
func LoadConfigFromDir(dir string) (*Config, error) {
	return LoadConfig(filepath.Join(dir, ".curator", "config.yaml"))
}

// MergeWithFlags merges CLI flags into the configuration. Non-nil flag
// values override configuration values so that flags take precedence over
// the config file.
func (c *Config) MergeWithFlags(timeout *time.Duration, maxConcurrency *int, requestsPerSecond *float64) {
	if timeout != nil {
		c.LinkCheck.Timeout = *timeout
	}
	if maxConcurrency != nil {
		c.LinkCheck.MaxConcurrency = *maxConcurrency
	}
	if requestsPerSecond != nil {
		c.LinkCheck.RequestsPerSecond = *requestsPerSecond
	}
}

// Validate validates the configuration values.
func (c *Config) Validate() error {
	if c.GamesDir == "" {
		return fmt.Errorf("games_dir cannot be empty")
	}
	if c.ReadmeFile == "" {
		return fmt.Errorf("readme_file cannot be empty")
	}
	if c.ExportFile == "" {
		return fmt.Errorf("export_file cannot be empty")
	}
	if c.Title == "" {
		return fmt.Errorf("title cannot be empty")
	}

	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.LogLevel] {
		return fmt.Errorf("invalid log_level %q, must be one of: trace, debug, info, warn, error", c.LogLevel)
	}

	if c.LinkCheck.Timeout < 0 {
		return fmt.Errorf("link_check.timeout must be >= 0, got %v", c.LinkCheck.Timeout)
	}
	if c.LinkCheck.MaxConcurrency < 1 {
		return fmt.Errorf("link_check.max_concurrency must be >= 1, got %d", c.LinkCheck.MaxConcurrency)
	}
	if c.LinkCheck.RequestsPerSecond < 0 {
		return fmt.Errorf("link_check.requests_per_second must be >= 0, got %v", c.LinkCheck.RequestsPerSecond)
	}

	return nil
}

// GamesPath returns the games directory under the catalog root.
func (c *Config) GamesPath(root string) string {
	return filepath.Join(root, c.GamesDir)
}

// ReadmePath returns the readme file under the catalog root.
func (c *Config) ReadmePath(root string) string {
	return filepath.Join(root, c.ReadmeFile)
}

// ExportPath returns the JSON export target under the catalog root.
func (c *Config) ExportPath(root string) string {
	return filepath.Join(root, c.ExportFile)
}

// StatisticsPath returns the statistics report inside the games directory.
func (c *Config) StatisticsPath(root string) string {
	return filepath.Join(c.GamesPath(root), "statistics.md")
}

// TemplatePath returns the entry template inside the games directory.
func (c *Config) TemplatePath(root string) string {
	return filepath.Join(c.GamesPath(root), "template.md")
}

// LockPath returns the lock file that serializes catalog regeneration.
func (c *Config) LockPath(root string) string {
	return filepath.Join(root, ".curator.lock")
}
