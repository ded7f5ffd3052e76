package aggregator

import (
	"strings"
	"testing"
	"time"

	"webhunt/config"
	"webhunt/types"
)

func TestNormalizeTruncatesSnippet(t *testing.T) {
	long := strings.Repeat("a", config.SnippetMaxLen+50)

	out := Normalize([]types.RawItem{{Title: "t", URL: "u", Snippet: long}})

	if len(out) != 1 {
		t.Fatalf("expected 1 item, got %d", len(out))
	}
	if got := len(out[0].Snippet); got != config.SnippetMaxLen {
		t.Errorf("snippet length = %d, want %d", got, config.SnippetMaxLen)
	}
}

func TestNormalizeClampsNegativePopularity(t *testing.T) {
	out := Normalize([]types.RawItem{{Title: "t", URL: "u", Popularity: -42}})

	if out[0].Popularity != 0 {
		t.Errorf("popularity = %v, want 0", out[0].Popularity)
	}
}

func TestNormalizeTimestampParsing(t *testing.T) {
	tests := []struct {
		name      string
		published string
		want      *time.Time
	}{
		{
			name:      "rfc3339",
			published: "2026-08-29T10:00:00Z",
			want:      timePtr(time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)),
		},
		{
			name:      "unix seconds",
			published: "1756461600",
			want:      timePtr(time.Unix(1756461600, 0).UTC()),
		},
		{
			name:      "date only",
			published: "2026-08-29",
			want:      timePtr(time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)),
		},
		{
			name:      "empty",
			published: "",
			want:      nil,
		},
		{
			name:      "garbage",
			published: "yesterday-ish",
			want:      nil,
		},
		{
			name:      "zero unix means absent",
			published: "0",
			want:      nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Normalize([]types.RawItem{{Title: "t", URL: "u", Published: tt.published}})

			got := out[0].PublishedAt
			switch {
			case tt.want == nil && got != nil:
				t.Errorf("PublishedAt = %v, want absent", got)
			case tt.want != nil && got == nil:
				t.Errorf("PublishedAt absent, want %v", tt.want)
			case tt.want != nil && got != nil && !got.Equal(*tt.want):
				t.Errorf("PublishedAt = %v, want %v", got, tt.want)
			}
		})
	}
}

func timePtr(t time.Time) *time.Time {
	return &t
}
