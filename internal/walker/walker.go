package walker

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ziadkadry99/digestview/internal/digest"
)

// Entry is one digest document found in a directory.
type Entry struct {
	Path string // Absolute path on disk.
	Date string // Digest date taken from the file name.
	Size int64  // File size in bytes.
}

// Config controls the behaviour of the Scan function.
type Config struct {
	Dir     string   // Directory holding the digest documents.
	Include []string // Glob patterns on dates; only matching dates are kept.
	Exclude []string // Glob patterns on dates; matching dates are dropped.
}

// Scan lists the digest documents directly inside config.Dir, newest date
// first. Files whose name is not a valid YYYY-MM-DD.md are ignored, as are
// empty files.
func Scan(config Config) ([]Entry, error) {
	root, err := filepath.Abs(config.Dir)
	if err != nil {
		return nil, fmt.Errorf("walker: resolve dir: %w", err)
	}
	if err := ValidatePatterns(append(append([]string{}, config.Include...), config.Exclude...)); err != nil {
		return nil, fmt.Errorf("walker: %w", err)
	}

	dirEntries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("walker: read dir: %w", err)
	}

	var entries []Entry
	for _, d := range dirEntries {
		if !d.Type().IsRegular() {
			continue
		}
		name := d.Name()
		stem, ok := strings.CutSuffix(name, ".md")
		if !ok {
			continue
		}
		date, err := digest.ParseDate(stem)
		if err != nil || date.String() != stem {
			continue
		}
		if !MatchesInclude(stem, config.Include) || MatchesExclude(stem, config.Exclude) {
			continue
		}

		info, err := d.Info()
		if err != nil || info.Size() == 0 {
			continue
		}
		entries = append(entries, Entry{
			Path: filepath.Join(root, name),
			Date: stem,
			Size: info.Size(),
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Date > entries[j].Date
	})
	return entries, nil
}

// Dates returns the dates of entries in order.
func Dates(entries []Entry) []string {
	dates := make([]string, len(entries))
	for i, e := range entries {
		dates[i] = e.Date
	}
	return dates
}

// WriteIndex writes dates as the index document of dir. The file is
// replaced atomically so readers never see a partial index.
func WriteIndex(dir string, dates []string) error {
	if dates == nil {
		dates = []string{}
	}
	data, err := json.MarshalIndent(dates, "", "  ")
	if err != nil {
		return fmt.Errorf("walker: encode index: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".index-*.json")
	if err != nil {
		return fmt.Errorf("walker: write index: %w", err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("walker: write index: %w", err)
	}
	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("walker: write index: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("walker: write index: %w", err)
	}
	if err := os.Rename(tmp.Name(), filepath.Join(dir, digest.IndexFile)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("walker: write index: %w", err)
	}
	return nil
}
