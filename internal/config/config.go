package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// UserConfigPath is the per-user fallback used when the working directory
// holds no config file.
func UserConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "digestview", "config.yml")
}

// Resolve picks the file Load should read. An explicitly given path that
// differs from DefaultFile is always used as-is.
func Resolve(path string) string {
	if path != "" && path != DefaultFile {
		return path
	}
	if _, err := os.Stat(DefaultFile); err == nil {
		return DefaultFile
	}
	if _, err := os.Stat(UserConfigPath()); err == nil {
		return UserConfigPath()
	}
	return DefaultFile
}

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (DIGESTVIEW_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating config dir %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	switch c.Kind() {
	case SourceDir:
		info, err := os.Stat(c.DigestsDir)
		if err != nil {
			return fmt.Errorf("digests_dir %s: %w", c.DigestsDir, err)
		}
		if !info.IsDir() {
			return fmt.Errorf("digests_dir %s is not a directory", c.DigestsDir)
		}
	default:
		if c.SourceURL == "" {
			return fmt.Errorf("source_url is required when digests_dir is not set")
		}
		u, err := url.Parse(c.SourceURL)
		if err != nil {
			return fmt.Errorf("invalid source_url %q: %w", c.SourceURL, err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("invalid source_url %q: scheme must be http or https", c.SourceURL)
		}
	}

	if c.ProbeDays < 0 {
		return fmt.Errorf("probe_days must be non-negative")
	}
	if c.RecentLimit <= 0 {
		return fmt.Errorf("recent_limit must be positive")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.RequestTimeout < 0 {
		return fmt.Errorf("request_timeout must be non-negative")
	}

	return nil
}
