package factcheck

import (
	"context"
	"fmt"

	"webhunt/aggregator"
	"webhunt/config"
	"webhunt/types"
)

// CheckParams are the caller-supplied knobs for one verification run.
type CheckParams struct {
	Freshness     config.Freshness
	Limit         int
	MinConfidence float64
}

// Checker verifies claims by gathering evidence through an aggregator and
// judging the signal strength. Stateless across calls.
type Checker struct {
	agg *aggregator.Aggregator
}

// NewChecker creates a checker over the given aggregator.
func NewChecker(agg *aggregator.Aggregator) *Checker {
	return &Checker{agg: agg}
}

// Check verifies a claim. Invalid caller input fails before any network
// activity; an empty evidence set is not an error and yields an unverified
// verdict with zero confidence.
func (c *Checker) Check(ctx context.Context, claim string, params CheckParams) (*types.VerdictResult, error) {
	if params.MinConfidence < 0 || params.MinConfidence > 1 {
		return nil, fmt.Errorf("min confidence must be within [0,1], got %g", params.MinConfidence)
	}

	evidence, err := c.agg.Search(ctx, claim, aggregator.Params{
		Freshness: params.Freshness,
		Limit:     params.Limit,
	})
	if err != nil {
		return nil, err
	}

	return Judge(claim, evidence, params.MinConfidence), nil
}
