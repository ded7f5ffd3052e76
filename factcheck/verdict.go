package factcheck

import (
	"fmt"
	"strings"
	"time"

	"webhunt/config"
	"webhunt/types"
)

// Signal weights. An item with a confirming or denying cue moves its tally by
// two; a suspicious cue is a softer penalty worth one.
const (
	cueWeight        = 2
	suspiciousWeight = 1
)

// Judge computes the verdict for a claim from an evidence set. The evidence
// may be ranked or unranked; only contradiction samples care about scores.
// minConfidence must already be validated into [0,1] by the caller.
func Judge(claim string, evidence []types.Evidence, minConfidence float64) *types.VerdictResult {
	confirmSignal, denySignal, counted := countSignals(claim, evidence)

	verdict, confidence := decide(confirmSignal, denySignal, counted)

	downgraded := false
	if (verdict == types.VerdictTrue || verdict == types.VerdictFalse) && confidence < minConfidence {
		// The label drops to unverified but the computed confidence is kept,
		// so the explanation still reports the original figure.
		verdict = types.VerdictUnverified
		downgraded = true
	}

	contradictions := DetectContradictions(evidence)

	explanation := explain(verdict, confidence, contradictions)
	if downgraded {
		explanation += fmt.Sprintf(" Confidence (%.0f%%) is below the required threshold (%.0f%%).",
			confidence*100, minConfidence*100)
	}

	top := evidence
	if len(top) > config.MaxVerdictEvidence {
		top = top[:config.MaxVerdictEvidence]
	}

	return &types.VerdictResult{
		Claim:          claim,
		Verdict:        verdict,
		Confidence:     confidence,
		Evidence:       top,
		Contradictions: contradictions,
		Explanation:    explanation,
		CheckedAt:      time.Now(),
	}
}

// countSignals tallies confirm/deny signals over items that mention the claim.
// An item counts only when its title+snippet contains at least one claim
// token; everything else is ignored for signal purposes.
func countSignals(claim string, evidence []types.Evidence) (confirmSignal, denySignal, counted int) {
	claimTokens := strings.Fields(strings.ToLower(claim))

	for _, item := range evidence {
		text := strings.ToLower(item.Title + " " + item.Snippet)

		mentions := false
		for _, token := range claimTokens {
			if strings.Contains(text, token) {
				mentions = true
				break
			}
		}
		if !mentions {
			continue
		}
		counted++

		if containsAny(text, confirmCues) {
			confirmSignal += cueWeight
		}
		if containsAny(text, denyCues) {
			denySignal += cueWeight
		}
		if containsAny(text, suspiciousCues) {
			denySignal += suspiciousWeight
		}
	}
	return confirmSignal, denySignal, counted
}

// decide turns the signal tallies into a verdict. A side must outweigh the
// other two-to-one to win outright; anything weaker is partial or unverified.
func decide(confirmSignal, denySignal, counted int) (types.Verdict, float64) {
	if counted == 0 {
		return types.VerdictUnverified, 0.0
	}

	switch {
	case confirmSignal > denySignal*2:
		return types.VerdictTrue, capConfidence(float64(confirmSignal) / float64(counted))
	case denySignal > confirmSignal*2:
		return types.VerdictFalse, capConfidence(float64(denySignal) / float64(counted))
	case confirmSignal > 0 || denySignal > 0:
		return types.VerdictPartiallyTrue, 0.5
	default:
		// Evidence exists but carries no diagnostic cues either way
		return types.VerdictUnverified, 0.3
	}
}

func capConfidence(c float64) float64 {
	if c > 1.0 {
		return 1.0
	}
	return c
}

// explain renders the fixed template for a verdict and confidence band,
// always stating the confidence percentage and whether sources conflict.
func explain(verdict types.Verdict, confidence float64, contradictions []types.Contradiction) string {
	var msg string
	switch verdict {
	case types.VerdictTrue:
		if confidence > 0.8 {
			msg = fmt.Sprintf("The claim is corroborated by multiple sources (confidence: %.0f%%). Official statements or coverage by established outlets were found.", confidence*100)
		} else {
			msg = fmt.Sprintf("The claim is most likely accurate but deserves further verification (confidence: %.0f%%). Sources mention it, though not all of them are authoritative.", confidence*100)
		}
	case types.VerdictFalse:
		if confidence > 0.8 {
			msg = fmt.Sprintf("The claim is refuted. Direct rebuttals from official sources or fact-checking coverage were found (confidence: %.0f%%).", confidence*100)
		} else {
			msg = fmt.Sprintf("The claim is most likely inaccurate (confidence: %.0f%%). Markers of fabricated or unreliable information were detected.", confidence*100)
		}
	case types.VerdictPartiallyTrue:
		msg = fmt.Sprintf("The claim is partially accurate or needs qualification (confidence: %.0f%%). Sources offer conflicting interpretations or context is missing.", confidence*100)
	default:
		msg = fmt.Sprintf("Not enough data to verify the claim (confidence: %.0f%%). Too few mentions were found in the available sources.", confidence*100)
	}

	if len(contradictions) > 0 {
		c := contradictions[0]
		msg += fmt.Sprintf(" Sources conflict: %d confirming vs %d denying.", c.ConfirmCount, c.DenyCount)
	} else {
		msg += " No conflicting reports among sources."
	}
	return msg
}
