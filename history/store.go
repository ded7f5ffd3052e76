// Package history persists verification results to SQLite so repeated checks
// of the same claim can be compared over time. The pipeline itself stays
// stateless; callers write here after it returns.
package history

import (
	"database/sql"
	"fmt"
	"time"

	"webhunt/types"

	_ "modernc.org/sqlite" // Pure-Go SQLite driver (no CGO required)
)

// CheckRecord is one persisted verification run.
type CheckRecord struct {
	ID                 int64     `json:"id"`
	Claim              string    `json:"claim"`
	Verdict            string    `json:"verdict"`
	Confidence         float64   `json:"confidence"`
	EvidenceCount      int       `json:"evidence_count"`
	ContradictionCount int       `json:"contradiction_count"`
	CheckedAt          time.Time `json:"checked_at"`
}

// Store handles persistence of verification results.
type Store struct {
	db *sql.DB
}

// NewStore creates a SQLite store at the given path, creating the database
// and applying the schema if needed.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return s, nil
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS checks (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		claim TEXT NOT NULL,
		verdict TEXT NOT NULL,
		confidence REAL NOT NULL,
		evidence_count INTEGER NOT NULL,
		contradiction_count INTEGER NOT NULL,
		checked_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_checks_claim ON checks(claim);
	CREATE INDEX IF NOT EXISTS idx_checks_checked_at ON checks(checked_at DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

// SaveCheck records one verification result.
func (s *Store) SaveCheck(result *types.VerdictResult) error {
	_, err := s.db.Exec(
		`INSERT INTO checks (claim, verdict, confidence, evidence_count, contradiction_count, checked_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		result.Claim,
		string(result.Verdict),
		result.Confidence,
		len(result.Evidence),
		len(result.Contradictions),
		result.CheckedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to save check: %w", err)
	}
	return nil
}

// RecentChecks returns up to limit checks, newest first.
func (s *Store) RecentChecks(limit int) ([]CheckRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, claim, verdict, confidence, evidence_count, contradiction_count, checked_at
		 FROM checks ORDER BY checked_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query checks: %w", err)
	}
	defer rows.Close()

	var records []CheckRecord
	for rows.Next() {
		var r CheckRecord
		if err := rows.Scan(&r.ID, &r.Claim, &r.Verdict, &r.Confidence,
			&r.EvidenceCount, &r.ContradictionCount, &r.CheckedAt); err != nil {
			return nil, fmt.Errorf("failed to scan check: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// LastVerdict returns the most recent verdict recorded for a claim, with
// found=false when the claim was never checked.
func (s *Store) LastVerdict(claim string) (verdict string, found bool, err error) {
	row := s.db.QueryRow(
		`SELECT verdict FROM checks WHERE claim = ? ORDER BY checked_at DESC, id DESC LIMIT 1`, claim)
	switch err := row.Scan(&verdict); err {
	case nil:
		return verdict, true, nil
	case sql.ErrNoRows:
		return "", false, nil
	default:
		return "", false, fmt.Errorf("failed to query last verdict: %w", err)
	}
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
