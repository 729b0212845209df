package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/PhilipKram/rtab/internal/tableprinter"
)

const (
	appName    = "rtab"
	configFile = "config.json"
)

// Config holds default rendering settings.
type Config struct {
	Style      string `json:"style,omitempty"`
	Spaces     int    `json:"spaces"`
	Headers    bool   `json:"headers,omitempty"`
	Separators bool   `json:"separators,omitempty"`
}

var (
	configDir  string
	configOnce sync.Once
)

// ConfigDir returns the directory where config files are stored.
func ConfigDir() string {
	configOnce.Do(func() {
		if d := os.Getenv("RTAB_CONFIG_DIR"); d != "" {
			configDir = d
			return
		}
		home, err := os.UserHomeDir()
		if err != nil {
			configDir = filepath.Join(".", ".config", appName)
			return
		}
		configDir = filepath.Join(home, ".config", appName)
	})
	return configDir
}

// Default returns the built-in configuration.
func Default() *Config {
	opts := tableprinter.DefaultOptions()
	return &Config{
		Style:  string(opts.Style),
		Spaces: opts.Spacing,
	}
}

// Load reads the config file from disk.
func Load() (*Config, error) {
	cfg := Default()
	path := filepath.Join(ConfigDir(), configFile)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if _, err := tableprinter.ParseStyle(cfg.Style); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.Spaces < 0 || cfg.Spaces > tableprinter.MaxSpacing {
		cfg.Spaces = Default().Spaces
	}
	return cfg, nil
}

// Save writes the config to disk.
func (c *Config) Save() error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	path := filepath.Join(dir, configFile)
	return os.WriteFile(path, data, 0o644)
}

// Options converts the config into rendering options.
func (c *Config) Options() tableprinter.Options {
	return tableprinter.Options{
		Style:      tableprinter.Style(c.Style),
		Spacing:    c.Spaces,
		Headers:    c.Headers,
		Separators: c.Separators,
	}
}

// Get returns a config value by key name.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "style":
		return c.Style, nil
	case "spaces":
		return strconv.Itoa(c.Spaces), nil
	case "headers":
		return strconv.FormatBool(c.Headers), nil
	case "separators":
		return strconv.FormatBool(c.Separators), nil
	default:
		return "", fmt.Errorf("unknown config key: %s", key)
	}
}

// Set updates a config value by key name.
func (c *Config) Set(key, value string) error {
	switch key {
	case "style":
		style, err := tableprinter.ParseStyle(value)
		if err != nil {
			return err
		}
		c.Style = string(style)
	case "spaces":
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 || n > tableprinter.MaxSpacing {
			return fmt.Errorf("invalid value for spaces: %q (want an integer from 0 to %d)", value, tableprinter.MaxSpacing)
		}
		c.Spaces = n
	case "headers":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid value for headers: %q", value)
		}
		c.Headers = b
	case "separators":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid value for separators: %q", value)
		}
		c.Separators = b
	default:
		return fmt.Errorf("unknown config key: %s\nValid keys: %s", key, strings.Join(Keys(), ", "))
	}
	return nil
}

// Keys returns all valid config keys.
func Keys() []string {
	return []string{"style", "spaces", "headers", "separators"}
}
