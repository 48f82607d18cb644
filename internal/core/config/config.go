// Package config handles configuration loading and validation for todo.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hay-kot/criterio"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/colonyops/todo/internal/core/styles"
	"github.com/colonyops/todo/internal/core/validate"
	"github.com/colonyops/todo/internal/core/todo"
)

// SnapshotFileName is the snapshot file name inside the data directory.
const SnapshotFileName = "todo.json"

// Config holds the application configuration.
type Config struct {
	SnapshotFile  string    `yaml:"snapshot_file"`
	DefaultStatus string    `yaml:"default_status"`
	TUI           TUIConfig `yaml:"tui"`
	DataDir       string    `yaml:"-"` // set by caller, not from config file
}

// TUIConfig holds settings for the interactive front-end.
type TUIConfig struct {
	Theme string `yaml:"theme"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		DefaultStatus: todo.StatusPending,
		TUI: TUIConfig{
			Theme: styles.DefaultTheme,
		},
	}
}

// Load reads configuration from the given path and validates it.
// If configPath is empty or doesn't exist, returns defaults with the provided dataDir.
func Load(configPath, dataDir string) (*Config, error) {
	cfg, err := Read(configPath, dataDir)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Read parses the config file and applies defaults without validating. It is
// used by commands that report on a broken configuration instead of failing.
func Read(configPath, dataDir string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.DataDir = dataDir

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}

			// Re-set dataDir since Unmarshal may have cleared it
			cfg.DataDir = dataDir
		}
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.DefaultStatus == "" {
		c.DefaultStatus = defaults.DefaultStatus
	}
	if c.TUI.Theme == "" {
		c.TUI.Theme = defaults.TUI.Theme
	}
}

// Validate checks that the configuration is valid. All problems are collected
// into a criterio.FieldErrors.
func (c *Config) Validate() error {
	return c.ValidateFs(afero.NewOsFs())
}

// ValidateFs is Validate with path checks made against fs.
func (c *Config) ValidateFs(fs afero.Fs) error {
	return criterio.ValidateStruct(
		criterio.Run("data_dir", c.DataDir, validate.NotBlank),
		criterio.Run("default_status", c.DefaultStatus, validate.NotBlank),
		criterio.Run("tui.theme", c.TUI.Theme, knownTheme),
		criterio.Run("snapshot_file", c.SnapshotFile, notDirectory(fs)),
	)
}

// SnapshotPath returns the snapshot file location. An explicit snapshot_file
// wins; otherwise the file lives in the data directory.
func (c *Config) SnapshotPath() string {
	if c.SnapshotFile != "" {
		return expandHome(c.SnapshotFile)
	}
	return filepath.Join(c.DataDir, SnapshotFileName)
}

// DefaultLogFile returns the log file path for a data directory. The logger
// is created before the config file is read, so it cannot depend on Config.
func DefaultLogFile(dataDir string) string {
	return filepath.Join(dataDir, "todo.log")
}

func knownTheme(name string) error {
	if _, ok := styles.GetPalette(name); !ok {
		return fmt.Errorf("unknown theme %q (available: %s)", name, strings.Join(styles.ThemeNames(), ", "))
	}
	return nil
}

// notDirectory validates that a path is a file or doesn't exist yet.
func notDirectory(fs afero.Fs) func(string) error {
	return func(path string) error {
		if path == "" {
			return nil
		}
		info, err := fs.Stat(expandHome(path))
		if os.IsNotExist(err) {
			return nil // will be created
		}
		if err != nil {
			return fmt.Errorf("cannot access: %w", err)
		}
		if info.IsDir() {
			return fmt.Errorf("%s is a directory, not a file", path)
		}
		return nil
	}
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
