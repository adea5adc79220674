package config

import "time"

const (
	// DefaultFile is the config file looked up in the working directory.
	DefaultFile = ".digestview.yml"

	// EnvPrefix prefixes environment overrides: DIGESTVIEW_SOURCE_URL -> source_url.
	EnvPrefix = "DIGESTVIEW_"
)

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Title:          "The Daily Unhinged",
		SourceURL:      "http://localhost:8000/",
		DigestsPath:    "digests",
		ProbeDays:      30,
		RecentLimit:    10,
		Port:           8080,
		OutputDir:      "site",
		RequestTimeout: 15 * time.Second,
	}
}
