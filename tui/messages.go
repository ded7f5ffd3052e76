package tui

import "webhunt/types"

// CheckDoneMsg is sent when a claim check finishes
type CheckDoneMsg struct {
	Result *types.VerdictResult
	Err    error
}
