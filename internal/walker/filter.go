package walker

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
)

// ValidatePatterns reports the first malformed glob pattern.
func ValidatePatterns(patterns []string) error {
	for _, p := range patterns {
		if !doublestar.ValidatePattern(p) {
			return fmt.Errorf("invalid date pattern %q", p)
		}
	}
	return nil
}

// MatchesInclude returns true if the given date matches any of the
// include patterns. If patterns is empty, everything is included.
func MatchesInclude(date string, patterns []string) bool {
	if len(patterns) == 0 {
		return true
	}
	return matchesAny(date, patterns)
}

// MatchesExclude returns true if the given date matches any of the
// exclude patterns. If patterns is empty, nothing is excluded.
func MatchesExclude(date string, patterns []string) bool {
	if len(patterns) == 0 {
		return false
	}
	return matchesAny(date, patterns)
}

// Filter keeps the dates selected by include and not rejected by exclude,
// preserving order.
func Filter(dates, include, exclude []string) []string {
	var out []string
	for _, d := range dates {
		if MatchesInclude(d, include) && !MatchesExclude(d, exclude) {
			out = append(out, d)
		}
	}
	return out
}

// matchesAny checks a date key such as "2026-10-17" against glob patterns
// like "2026-10-*" or "2026-1[01]-*".
func matchesAny(date string, patterns []string) bool {
	for _, pattern := range patterns {
		if matched, err := doublestar.Match(pattern, date); err == nil && matched {
			return true
		}
	}
	return false
}
