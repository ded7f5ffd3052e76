package aggregator

import (
	"fmt"
	"testing"

	"webhunt/types"
)

type fakeEmbeddings struct {
	vectors map[string][]float32
	err     error
}

func (f *fakeEmbeddings) ModelName() string { return "fake-embed" }

func (f *fakeEmbeddings) EmbedTexts(texts []string) ([][]float32, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([][]float32, len(texts))
	for i, text := range texts {
		vec, ok := f.vectors[text]
		if !ok {
			return nil, fmt.Errorf("no vector for %q", text)
		}
		out[i] = vec
	}
	return out, nil
}

func TestSemanticFilterDropsNearDuplicates(t *testing.T) {
	provider := &fakeEmbeddings{vectors: map[string][]float32{
		"NVIDIA acquires Groq":     {1, 0, 0},
		"Nvidia buys Groq chipper": {0.99, 0.1, 0},
		"Rainfall hits record":     {0, 1, 0},
	}}
	deduper := NewSemanticDeduper(provider, 0.95)

	items := []types.Evidence{
		{Title: "NVIDIA acquires Groq", URL: "https://a.example"},
		{Title: "Nvidia buys Groq chipper", URL: "https://b.example"},
		{Title: "Rainfall hits record", URL: "https://c.example"},
	}

	out := deduper.Filter(items)
	if len(out) != 2 {
		t.Fatalf("got %d items, want 2", len(out))
	}
	if out[0].URL != "https://a.example" || out[1].URL != "https://c.example" {
		t.Errorf("wrong survivors: %q, %q", out[0].URL, out[1].URL)
	}
}

func TestSemanticFilterProviderFailureIsNonFatal(t *testing.T) {
	deduper := NewSemanticDeduper(&fakeEmbeddings{err: fmt.Errorf("quota exceeded")}, 0.95)

	items := []types.Evidence{
		{Title: "one", URL: "https://a.example"},
		{Title: "two", URL: "https://b.example"},
	}

	out := deduper.Filter(items)
	if len(out) != len(items) {
		t.Fatalf("provider failure must leave evidence untouched, got %d of %d", len(out), len(items))
	}
}
