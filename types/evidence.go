package types

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// RawItem is a single candidate item exactly as a source adapter returned it.
// Fields are loose on purpose: Published carries whatever timestamp string the
// source supplied (RFC3339, unix seconds, ...) and is parsed by the normalizer.
type RawItem struct {
	Title      string  `json:"title"`
	URL        string  `json:"url"`
	Snippet    string  `json:"snippet"`
	Source     string  `json:"source"`
	Published  string  `json:"published,omitempty"`
	Popularity float64 `json:"popularity,omitempty"`
}

// Evidence is one normalized candidate item of information.
// PublishedAt is nil when the source could not supply a parseable timestamp.
// Score is only meaningful after ranking has run.
type Evidence struct {
	Title       string     `json:"title"`
	URL         string     `json:"url"`
	Snippet     string     `json:"snippet"`
	Source      string     `json:"source"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	Popularity  float64    `json:"popularity"`
	Score       float64    `json:"score"`
}

// GenerateID creates a short, stable ID by hashing the evidence URL
func GenerateID(url string) string {
	hash := sha256.Sum256([]byte(url))
	return hex.EncodeToString(hash[:])[:16]
}
