package types

import "time"

// Verdict is the categorical judgment on a claim's truthfulness.
type Verdict string

const (
	VerdictTrue          Verdict = "true"
	VerdictFalse         Verdict = "false"
	VerdictPartiallyTrue Verdict = "partially_true"
	VerdictUnverified    Verdict = "unverified"
)

// Contradiction summarizes conflicting confirming/denying evidence for a claim.
// SampleConfirm and SampleDeny each carry one representative item from their
// group (the highest-scored one when ranking already ran).
type Contradiction struct {
	Type          string    `json:"type"`
	ConfirmCount  int       `json:"confirm_count"`
	DenyCount     int       `json:"deny_count"`
	SampleConfirm *Evidence `json:"sample_confirm,omitempty"`
	SampleDeny    *Evidence `json:"sample_deny,omitempty"`
}

// VerdictResult is the output of one claim verification run.
type VerdictResult struct {
	Claim          string          `json:"claim"`
	Verdict        Verdict         `json:"verdict"`
	Confidence     float64         `json:"confidence"`
	Evidence       []Evidence      `json:"evidence"`
	Contradictions []Contradiction `json:"contradictions"`
	Explanation    string          `json:"explanation"`
	CheckedAt      time.Time       `json:"checked_at"`
}
