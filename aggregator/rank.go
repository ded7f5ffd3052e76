package aggregator

import (
	"sort"
	"time"

	"webhunt/config"
	"webhunt/types"
)

// Rank scores every item and returns the slice ordered best-first.
//
// score = popularity + freshness bonus + quality bonus. The freshness bonus
// is maximal at zero age and decays linearly to zero as age approaches
// config.FreshnessBonusWindow; the quality bonus rewards snippets long enough
// to carry context. The sort is fully deterministic: ties break on more
// recent publication, then on URL.
func Rank(items []types.Evidence, now time.Time) []types.Evidence {
	for i := range items {
		items[i].Score = scoreItem(&items[i], now)
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Score != items[j].Score {
			return items[i].Score > items[j].Score
		}
		pi, pj := items[i].PublishedAt, items[j].PublishedAt
		switch {
		case pi != nil && pj != nil && !pi.Equal(*pj):
			return pi.After(*pj)
		case pi != nil && pj == nil:
			return true
		case pi == nil && pj != nil:
			return false
		}
		return items[i].URL < items[j].URL
	})
	return items
}

func scoreItem(item *types.Evidence, now time.Time) float64 {
	score := item.Popularity

	if item.PublishedAt != nil {
		age := now.Sub(*item.PublishedAt).Seconds()
		if age < 0 {
			age = 0
		}
		if bonus := (config.FreshnessBonusWindow - age) / config.FreshnessBonusDivisor; bonus > 0 {
			score += bonus
		}
	}

	if len(item.Snippet) > config.QualityMinSnippetLen {
		score += config.QualityBonus
	}
	return score
}
