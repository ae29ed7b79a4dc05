// Package config provides reading and writing of evsearch configuration.
// Supports both global (~/.evsearch/config.yaml) and local (.evsearch/config.yaml).
// Reading: uses local if it exists, otherwise global.
// Writing: defaults to global, use --local for local.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

var (
	// ErrNoConfigPath is returned when the config path cannot be determined.
	ErrNoConfigPath = errors.New("cannot determine config path")
	// ErrUnknownKey is returned when getting/setting an unknown config key.
	ErrUnknownKey = errors.New("unknown config key")
	// ErrInvalidValue is returned when a config value is invalid.
	ErrInvalidValue = errors.New("invalid config value")
)

// Scope represents the configuration scope (global or local).
type Scope int

const (
	// ScopeGlobal is user-wide config in ~/.evsearch/config.yaml (default)
	ScopeGlobal Scope = iota
	// ScopeLocal is directory-specific config in .evsearch/config.yaml
	ScopeLocal
)

// Engine holds settings for the native search engine binding.
type Engine struct {
	// Library optionally names an explicit Everything64.dll path, tried
	// before the default search path and install location.
	Library string `yaml:"library,omitempty"`
}

// Defaults holds default search parameters.
type Defaults struct {
	MaxResults *int `yaml:"max_results,omitempty"`
}

// Log holds search history settings.
type Log struct {
	Enabled *bool `yaml:"enabled,omitempty"`
}

// DefaultMaxResults is the result cap applied when not configured. It
// matches the standard MCP tool default.
const DefaultMaxResults = 50

// Validation bounds for configuration values. The engine clamps caps to
// the same range at query time; validating here surfaces typos early.
const (
	MinMaxResults = 1
	MaxMaxResults = 500
)

// Config contains configuration for evsearch.
type Config struct {
	Engine   Engine   `yaml:"engine,omitempty"`
	Defaults Defaults `yaml:"defaults,omitempty"`
	Log      Log      `yaml:"log,omitempty"`

	// path is the file this config was loaded from (for Save)
	path  string
	scope Scope
}

// Validate checks that all configured values are within acceptable bounds.
// Returns nil if all values are valid or not set (defaults will be used).
func (c *Config) Validate() error {
	if c.Defaults.MaxResults != nil {
		v := *c.Defaults.MaxResults
		if v < MinMaxResults || v > MaxMaxResults {
			return fmt.Errorf("%w: max_results must be between %d and %d, got %d",
				ErrInvalidValue, MinMaxResults, MaxMaxResults, v)
		}
	}
	return nil
}

// Library returns the configured DLL override path, or empty for the
// default load order.
func (c *Config) Library() string {
	return c.Engine.Library
}

// MaxResults returns the default result cap (defaults to 50).
func (c *Config) MaxResults() int {
	if c.Defaults.MaxResults == nil {
		return DefaultMaxResults
	}
	return *c.Defaults.MaxResults
}

// LogEnabled returns whether search history logging is on (defaults to true).
func (c *Config) LogEnabled() bool {
	if c.Log.Enabled == nil {
		return true
	}
	return *c.Log.Enabled
}

// LocalPath returns the path to the local (directory) config file.
func LocalPath() string {
	return filepath.Join(".evsearch", "config.yaml")
}

// GlobalPath returns the path to the global (user) config file: ~/.evsearch/config.yaml
func GlobalPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".evsearch", "config.yaml")
}

// Load reads configuration: uses local if it exists, otherwise global.
func Load() (*Config, error) {
	if _, err := os.Stat(LocalPath()); err == nil {
		return LoadScope(ScopeLocal)
	}
	return LoadScope(ScopeGlobal)
}

// LoadScope reads configuration from a specific scope.
func LoadScope(scope Scope) (*Config, error) {
	path := pathForScope(scope)
	if path == "" {
		return &Config{scope: scope}, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{path: path, scope: scope}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("malformed config file %s: %w\n\nTo fix: edit the file to correct the YAML syntax, or delete it to use defaults", path, err)
	}
	cfg.path = path
	cfg.scope = scope

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return &cfg, nil
}

// Scope returns which scope this config was loaded from.
func (c *Config) Scope() Scope {
	return c.scope
}

// Save writes the configuration to its original location.
func (c *Config) Save() error {
	if c.path == "" {
		c.path = pathForScope(c.scope)
	}
	if c.path == "" {
		return ErrNoConfigPath
	}
	return c.saveToPath(c.path)
}

// SaveScope writes the configuration to the specified scope.
func (c *Config) SaveScope(scope Scope) error {
	path := pathForScope(scope)
	if path == "" {
		return ErrNoConfigPath
	}
	return c.saveToPath(path)
}

// saveToPath writes configuration to a specific filesystem path.
// Creates parent directories as needed with mode 0755.
func (c *Config) saveToPath(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// pathForScope returns the filesystem path for a given scope.
func pathForScope(scope Scope) string {
	switch scope {
	case ScopeLocal:
		return LocalPath()
	case ScopeGlobal:
		return GlobalPath()
	default:
		return ""
	}
}
