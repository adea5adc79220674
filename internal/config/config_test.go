package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.DigestsPath != "digests" {
		t.Errorf("expected default digests_path %q, got %q", "digests", cfg.DigestsPath)
	}
	if cfg.ProbeDays != 30 {
		t.Errorf("expected default probe_days 30, got %d", cfg.ProbeDays)
	}
	if cfg.RecentLimit != 10 {
		t.Errorf("expected default recent_limit 10, got %d", cfg.RecentLimit)
	}
	if cfg.Kind() != SourceHTTP {
		t.Errorf("expected http source by default, got %q", cfg.Kind())
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.digestview.yml")

	cfg := DefaultConfig()
	cfg.Title = "Morning Notes"
	cfg.SourceURL = "https://example.com/site/"
	cfg.ProbeDays = 7
	cfg.RecentLimit = 5
	cfg.RequestTimeout = 3 * time.Second

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Title != cfg.Title {
		t.Errorf("title: got %q, want %q", loaded.Title, cfg.Title)
	}
	if loaded.SourceURL != cfg.SourceURL {
		t.Errorf("source_url: got %q, want %q", loaded.SourceURL, cfg.SourceURL)
	}
	if loaded.ProbeDays != cfg.ProbeDays {
		t.Errorf("probe_days: got %d, want %d", loaded.ProbeDays, cfg.ProbeDays)
	}
	if loaded.RecentLimit != cfg.RecentLimit {
		t.Errorf("recent_limit: got %d, want %d", loaded.RecentLimit, cfg.RecentLimit)
	}
	if loaded.RequestTimeout != cfg.RequestTimeout {
		t.Errorf("request_timeout: got %v, want %v", loaded.RequestTimeout, cfg.RequestTimeout)
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(filepath.Join(dir, "nonexistent.yml"))
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.Port != 8080 {
		t.Errorf("expected default port, got %d", cfg.Port)
	}
}

func TestLoadYAMLDuration(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cfg.yml")
	body := "source_url: http://digests.local/\nrequest_timeout: 2s\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.RequestTimeout != 2*time.Second {
		t.Errorf("request_timeout = %v, want 2s", cfg.RequestTimeout)
	}
	if cfg.SourceURL != "http://digests.local/" {
		t.Errorf("source_url = %q", cfg.SourceURL)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")

	if err := DefaultConfig().Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	t.Setenv("DIGESTVIEW_TITLE", "Overridden")
	t.Setenv("DIGESTVIEW_PROBE_DAYS", "12")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Title != "Overridden" {
		t.Errorf("env override failed: got %q", loaded.Title)
	}
	if loaded.ProbeDays != 12 {
		t.Errorf("env override failed: probe_days = %d", loaded.ProbeDays)
	}
}

func TestResolveExplicitPath(t *testing.T) {
	if got := Resolve("custom.yml"); got != "custom.yml" {
		t.Errorf("Resolve(custom.yml) = %q", got)
	}
}

func TestValidateValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig should be valid, got: %v", err)
	}
}

func TestValidateDirSource(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DigestsDir = t.TempDir()
	if cfg.Kind() != SourceDir {
		t.Fatalf("expected dir source, got %q", cfg.Kind())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected valid dir source, got: %v", err)
	}

	cfg.DigestsDir = filepath.Join(cfg.DigestsDir, "missing")
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for missing digests_dir")
	}
}

func TestValidateInvalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty source url", func(c *Config) { c.SourceURL = "" }},
		{"non-http scheme", func(c *Config) { c.SourceURL = "ftp://example.com" }},
		{"negative probe days", func(c *Config) { c.ProbeDays = -1 }},
		{"zero recent limit", func(c *Config) { c.RecentLimit = 0 }},
		{"port out of range", func(c *Config) { c.Port = 70000 }},
		{"negative timeout", func(c *Config) { c.RequestTimeout = -time.Second }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestWizardValidators(t *testing.T) {
	if err := validateURL("https://example.com"); err != nil {
		t.Errorf("validateURL: %v", err)
	}
	if err := validateURL("example.com"); err == nil {
		t.Error("expected error for URL without scheme")
	}
	if err := validatePort("8080"); err != nil {
		t.Errorf("validatePort: %v", err)
	}
	if err := validatePort("0"); err == nil {
		t.Error("expected error for port 0")
	}
	if err := validateDir(t.TempDir()); err != nil {
		t.Errorf("validateDir: %v", err)
	}
}
