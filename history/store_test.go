package history

import (
	"path/filepath"
	"testing"
	"time"

	"webhunt/types"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(filepath.Join(t.TempDir(), "checks.db"))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func resultAt(claim string, verdict types.Verdict, checkedAt time.Time) *types.VerdictResult {
	return &types.VerdictResult{
		Claim:      claim,
		Verdict:    verdict,
		Confidence: 0.8,
		Evidence:   []types.Evidence{{Title: "t", URL: "https://example.com"}},
		CheckedAt:  checkedAt,
	}
}

func TestSaveAndRecentChecks(t *testing.T) {
	store := newTestStore(t)
	base := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

	claims := []string{"first claim", "second claim", "third claim"}
	for i, claim := range claims {
		if err := store.SaveCheck(resultAt(claim, types.VerdictTrue, base.Add(time.Duration(i)*time.Minute))); err != nil {
			t.Fatalf("SaveCheck: %v", err)
		}
	}

	records, err := store.RecentChecks(10)
	if err != nil {
		t.Fatalf("RecentChecks: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}
	// Newest first.
	if records[0].Claim != "third claim" || records[2].Claim != "first claim" {
		t.Errorf("wrong order: %q ... %q", records[0].Claim, records[2].Claim)
	}
	if records[0].EvidenceCount != 1 {
		t.Errorf("evidence count = %d, want 1", records[0].EvidenceCount)
	}
}

func TestRecentChecksLimit(t *testing.T) {
	store := newTestStore(t)
	base := time.Now().UTC()

	for i := 0; i < 5; i++ {
		if err := store.SaveCheck(resultAt("claim", types.VerdictUnverified, base.Add(time.Duration(i)*time.Second))); err != nil {
			t.Fatalf("SaveCheck: %v", err)
		}
	}

	records, err := store.RecentChecks(2)
	if err != nil {
		t.Fatalf("RecentChecks: %v", err)
	}
	if len(records) != 2 {
		t.Errorf("got %d records, want 2", len(records))
	}
}

func TestLastVerdict(t *testing.T) {
	store := newTestStore(t)
	base := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

	if _, found, err := store.LastVerdict("never checked"); err != nil || found {
		t.Fatalf("LastVerdict on empty store: found=%v err=%v", found, err)
	}

	if err := store.SaveCheck(resultAt("flip claim", types.VerdictTrue, base)); err != nil {
		t.Fatalf("SaveCheck: %v", err)
	}
	if err := store.SaveCheck(resultAt("flip claim", types.VerdictFalse, base.Add(time.Hour))); err != nil {
		t.Fatalf("SaveCheck: %v", err)
	}

	verdict, found, err := store.LastVerdict("flip claim")
	if err != nil {
		t.Fatalf("LastVerdict: %v", err)
	}
	if !found || verdict != string(types.VerdictFalse) {
		t.Errorf("got %q found=%v, want the latest verdict false", verdict, found)
	}
}
