package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultServerURL is the public leaderboard instance.
const DefaultServerURL = "https://gitstars.dev"

// Config represents the application configuration
type Config struct {
	ServerURL      string `yaml:"server_url,omitempty"`
	DefaultMetric  string `yaml:"default_metric,omitempty"`
	DefaultView    string `yaml:"default_view,omitempty"`
	DefaultFormat  string `yaml:"default_format,omitempty"`
	TimeoutSeconds int    `yaml:"timeout_seconds,omitempty"`
}

// DefaultConfigDir returns the default config directory
func DefaultConfigDir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ".starboard"
	}
	return filepath.Join(configDir, "starboard")
}

// ConfigPath returns the path to the config file
func ConfigPath() string {
	return filepath.Join(DefaultConfigDir(), "config.yaml")
}

// LocalConfigPath returns the path to the local config file in the current directory
func LocalConfigPath() string {
	return ".starboard.yaml"
}

// DefaultConfig returns a fully populated config with all default values.
func DefaultConfig() *Config {
	return &Config{
		ServerURL:      DefaultServerURL,
		DefaultMetric:  "stars",
		DefaultView:    "table",
		DefaultFormat:  "table",
		TimeoutSeconds: 15,
	}
}

// Load loads the configuration from disk.
// It first loads the global config from the XDG config directory, then merges
// any local .starboard.yaml on top (local values take precedence). The
// STARBOARD_SERVER environment variable overrides server_url from either file.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	globalPath := ConfigPath()
	if _, err := os.Stat(globalPath); err == nil {
		data, err := os.ReadFile(globalPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read global config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse global config file: %w", err)
		}
	}

	localPath := LocalConfigPath()
	if _, err := os.Stat(localPath); err == nil {
		data, err := os.ReadFile(localPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read local config file: %w", err)
		}
		var localCfg Config
		if err := yaml.Unmarshal(data, &localCfg); err != nil {
			return nil, fmt.Errorf("failed to parse local config file: %w", err)
		}
		cfg = mergeConfig(cfg, &localCfg)
	}

	if server := os.Getenv("STARBOARD_SERVER"); server != "" {
		cfg.ServerURL = server
	}

	// Guard against empty values from a sparse config file
	if cfg.ServerURL == "" {
		cfg.ServerURL = DefaultServerURL
	}
	if cfg.TimeoutSeconds <= 0 {
		cfg.TimeoutSeconds = 15
	}

	return cfg, nil
}

// mergeConfig merges local config on top of global config.
// Local values take precedence; unset local values preserve global values.
func mergeConfig(global, local *Config) *Config {
	result := *global
	if local.ServerURL != "" {
		result.ServerURL = local.ServerURL
	}
	if local.DefaultMetric != "" {
		result.DefaultMetric = local.DefaultMetric
	}
	if local.DefaultView != "" {
		result.DefaultView = local.DefaultView
	}
	if local.DefaultFormat != "" {
		result.DefaultFormat = local.DefaultFormat
	}
	if local.TimeoutSeconds > 0 {
		result.TimeoutSeconds = local.TimeoutSeconds
	}
	return &result
}

// Save saves the configuration to disk
func (c *Config) Save() error {
	configDir := DefaultConfigDir()

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(ConfigPath(), data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ToYAML returns the config as a YAML string
func (c *Config) ToYAML() (string, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("failed to marshal config: %w", err)
	}
	return string(data), nil
}

// ConfigPathInfo contains information about config file paths
type ConfigPathInfo struct {
	GlobalPath   string
	GlobalExists bool
	LocalPath    string
	LocalExists  bool
}

// GetConfigPaths returns path info for both global and local configs
func GetConfigPaths() ConfigPathInfo {
	globalPath := ConfigPath()
	localPath := LocalConfigPath()

	absLocalPath, err := filepath.Abs(localPath)
	if err != nil {
		absLocalPath = localPath
	}

	_, globalErr := os.Stat(globalPath)
	_, localErr := os.Stat(localPath)

	return ConfigPathInfo{
		GlobalPath:   globalPath,
		GlobalExists: globalErr == nil,
		LocalPath:    absLocalPath,
		LocalExists:  localErr == nil,
	}
}

// MinimalConfig returns a minimal config template with comments
func MinimalConfig() string {
	return `# Starboard configuration file
# See: starboard config defaults  (for all available options)

# Leaderboard server to query (STARBOARD_SERVER overrides this)
server_url: ` + DefaultServerURL + `

# Initial leaderboard metric: stars, forks, watchers, diskUsage,
# trending24h, trending3d, trending7d, trending30d
default_metric: stars

# Initial layout: table or cards
default_view: table

# Non-interactive output format: table, json, or markdown
default_format: table

# HTTP request timeout
# timeout_seconds: 15
`
}

// SaveTo writes content to a specific path, creating directories as needed
func SaveTo(path string, content string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}

	return nil
}
