package cmd

import (
	"fmt"
	"os"

	"github.com/ziadkadry99/digestview/internal/config"
	"github.com/ziadkadry99/digestview/internal/digest"
	"github.com/ziadkadry99/digestview/internal/glossary"
	"github.com/ziadkadry99/digestview/internal/progress"
	"github.com/ziadkadry99/digestview/internal/render"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	path := config.Resolve(cfgFile)
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `digestview init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// newSource creates the digest source selected by cfg.
func newSource(cfg *config.Config) (digest.Source, error) {
	switch cfg.Kind() {
	case config.SourceDir:
		return digest.NewDirSource(cfg.DigestsDir, cfg.DigestsPath), nil
	default:
		src, err := digest.NewHTTPSource(cfg.SourceURL, cfg.DigestsPath, cfg.RequestTimeout)
		if err != nil {
			return nil, fmt.Errorf("creating source: %w", err)
		}
		return src, nil
	}
}

// describeSource names where digests come from for CLI notices.
func describeSource(cfg *config.Config) string {
	if cfg.Kind() == config.SourceDir {
		return fmt.Sprintf("%s/%s", cfg.DigestsDir, cfg.DigestsPath)
	}
	return cfg.SourceURL
}

func newPipeline() *render.Pipeline {
	return render.NewPipeline(glossary.Default())
}

// probeProgress reports fallback probing through a progress reporter.
func probeProgress() digest.ProbeFunc {
	var reporter progress.Reporter
	return func(step, total int, date digest.Date, found bool) {
		if reporter == nil {
			reporter = progress.NewReporter("Probing for digests")
			reporter.Start(total)
		}
		status := "none"
		if found {
			status = "found"
		}
		reporter.Update(step, fmt.Sprintf("%s %s", date, status))
		if step == total {
			reporter.Finish()
		}
	}
}

func warnf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Warning: "+format+"\n", args...)
}
