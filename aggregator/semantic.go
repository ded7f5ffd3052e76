package aggregator

import (
	"log"
	"math"

	"webhunt/types"
)

// DefaultSemanticThreshold marks titles as near-duplicates at or above this
// cosine similarity.
const DefaultSemanticThreshold float32 = 0.95

// SemanticDeduper drops items whose titles are semantically near-identical to
// an already-kept item. It runs after the lexical dedup pass and only ever
// tightens it; a failing embeddings provider leaves the evidence untouched.
type SemanticDeduper struct {
	provider  EmbeddingsProvider
	threshold float32
}

// NewSemanticDeduper creates a deduper over the given provider.
// A threshold <= 0 falls back to DefaultSemanticThreshold.
func NewSemanticDeduper(provider EmbeddingsProvider, threshold float32) *SemanticDeduper {
	if threshold <= 0 || threshold > 1 {
		threshold = DefaultSemanticThreshold
	}
	return &SemanticDeduper{provider: provider, threshold: threshold}
}

// Filter returns the items with semantic near-duplicates removed,
// first-seen-wins like the lexical pass.
func (s *SemanticDeduper) Filter(items []types.Evidence) []types.Evidence {
	if len(items) < 2 {
		return items
	}

	texts := make([]string, len(items))
	for i, item := range items {
		texts[i] = item.Title
	}

	embeddings, err := s.provider.EmbedTexts(texts)
	if err != nil || len(embeddings) != len(items) {
		log.Printf("Warning: semantic dedup skipped (%s): %v", s.provider.ModelName(), err)
		return items
	}

	kept := make([]types.Evidence, 0, len(items))
	keptVecs := make([][]float32, 0, len(items))

	for i, item := range items {
		duplicate := false
		for _, vec := range keptVecs {
			if cosineSimilarity(embeddings[i], vec) >= s.threshold {
				duplicate = true
				break
			}
		}
		if duplicate {
			continue
		}
		kept = append(kept, item)
		keptVecs = append(keptVecs, embeddings[i])
	}
	return kept
}

func cosineSimilarity(a, b []float32) float32 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return float32(dot / (math.Sqrt(normA) * math.Sqrt(normB)))
}
