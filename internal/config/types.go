package config

import "time"

// SourceKind identifies where digests are read from.
type SourceKind string

const (
	SourceHTTP SourceKind = "http"
	SourceDir  SourceKind = "dir"
)

// Config is the top-level digestview configuration, corresponding to .digestview.yml.
type Config struct {
	Title          string        `yaml:"title" koanf:"title"`
	SourceURL      string        `yaml:"source_url" koanf:"source_url"`
	DigestsDir     string        `yaml:"digests_dir" koanf:"digests_dir"`
	DigestsPath    string        `yaml:"digests_path" koanf:"digests_path"`
	ProbeDays      int           `yaml:"probe_days" koanf:"probe_days"`
	RecentLimit    int           `yaml:"recent_limit" koanf:"recent_limit"`
	Port           int           `yaml:"port" koanf:"port"`
	OutputDir      string        `yaml:"output_dir" koanf:"output_dir"`
	RequestTimeout time.Duration `yaml:"request_timeout" koanf:"request_timeout"`
}

// Kind reports which source the configuration selects. A local directory
// wins over a URL when both are set.
func (c *Config) Kind() SourceKind {
	if c.DigestsDir != "" {
		return SourceDir
	}
	return SourceHTTP
}
