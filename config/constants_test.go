package config

import (
	"testing"
	"time"
)

func TestParseFreshness(t *testing.T) {
	valid := map[string]time.Duration{
		"hour":  time.Hour,
		"day":   24 * time.Hour,
		"week":  7 * 24 * time.Hour,
		"month": 30 * 24 * time.Hour,
	}

	for name, horizon := range valid {
		f, err := ParseFreshness(name)
		if err != nil {
			t.Errorf("ParseFreshness(%q): %v", name, err)
			continue
		}
		if Horizons[f] != horizon {
			t.Errorf("horizon for %q = %v, want %v", name, Horizons[f], horizon)
		}
	}

	for _, bad := range []string{"", "year", "WEEK", "7d"} {
		if _, err := ParseFreshness(bad); err == nil {
			t.Errorf("ParseFreshness(%q) accepted, want error", bad)
		}
	}
}
