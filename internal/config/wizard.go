package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to digestview! Let's point it at your digests.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Source kind.
	kindPrompt := promptui.Select{
		Label: "Where are the digests published",
		Items: []string{
			"http: a static host serving digests/index.json and digests/YYYY-MM-DD.md",
			"dir: a local directory with the same layout",
		},
	}
	kindIdx, _, err := kindPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("source selection: %w", err)
	}

	// 2. Location.
	if kindIdx == 0 {
		urlPrompt := promptui.Prompt{
			Label:    "Base URL of the static host",
			Default:  cfg.SourceURL,
			Validate: validateURL,
		}
		cfg.SourceURL, err = urlPrompt.Run()
		if err != nil {
			return nil, fmt.Errorf("source url: %w", err)
		}
	} else {
		dirPrompt := promptui.Prompt{
			Label:    "Directory containing the digests folder",
			Default:  ".",
			Validate: validateDir,
		}
		cfg.DigestsDir, err = dirPrompt.Run()
		if err != nil {
			return nil, fmt.Errorf("digests dir: %w", err)
		}
	}

	// 3. Page title.
	titlePrompt := promptui.Prompt{
		Label:   "Page title",
		Default: cfg.Title,
	}
	cfg.Title, err = titlePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("title: %w", err)
	}

	// 4. Port.
	portPrompt := promptui.Prompt{
		Label:    "Local viewer port",
		Default:  strconv.Itoa(cfg.Port),
		Validate: validatePort,
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Port, _ = strconv.Atoi(portStr)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

func validateURL(s string) error {
	u, err := url.Parse(s)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("scheme must be http or https")
	}
	return nil
}

func validateDir(s string) error {
	info, err := os.Stat(s)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", s)
	}
	return nil
}

func validatePort(s string) error {
	p, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("port must be a number")
	}
	if p <= 0 || p > 65535 {
		return fmt.Errorf("port out of range")
	}
	return nil
}
