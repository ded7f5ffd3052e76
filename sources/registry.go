package sources

import (
	"fmt"
	"sort"
	"strings"
)

// KnownSources lists the adapter identifiers Build accepts by default.
// "reddit" may be scoped as "reddit/r/<subreddit>", "rss" as
// "rss/<preset-or-url>", and specific pages are watched with
// "webpage/<url>".
var KnownSources = []string{"reddit", "hackernews", "arxiv", "rss"}

// Build resolves adapter identifiers into adapters. An unknown identifier is
// a caller error and is reported before any network activity happens.
func Build(names []string) ([]Adapter, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("no sources enabled")
	}

	adapters := make([]Adapter, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		adapter, err := buildOne(name)
		if err != nil {
			return nil, err
		}
		adapters = append(adapters, adapter)
	}
	return adapters, nil
}

func buildOne(name string) (Adapter, error) {
	switch {
	case name == "reddit":
		return NewReddit(), nil
	case strings.HasPrefix(name, "reddit/r/"):
		sub := strings.TrimPrefix(name, "reddit/r/")
		if sub == "" {
			return nil, fmt.Errorf("empty subreddit in source %q", name)
		}
		return NewReddit(sub), nil
	case name == "hackernews":
		return NewHackerNews(), nil
	case name == "arxiv":
		return NewArxiv(), nil
	case name == "rss":
		return NewRSS(""), nil
	case strings.HasPrefix(name, "rss/"):
		feed := strings.TrimPrefix(name, "rss/")
		if feed == "" {
			return nil, fmt.Errorf("empty feed in source %q", name)
		}
		return NewRSS(feed), nil
	case strings.HasPrefix(name, "webpage/"):
		page := strings.TrimPrefix(name, "webpage/")
		if page == "" {
			return nil, fmt.Errorf("empty page URL in source %q", name)
		}
		return NewWebpage([]string{page}), nil
	default:
		known := append([]string(nil), KnownSources...)
		sort.Strings(known)
		return nil, fmt.Errorf("unknown source %q (known: %s)", name, strings.Join(known, ", "))
	}
}
