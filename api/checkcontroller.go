package api

import (
	"log"
	"net/http"

	"webhunt/aggregator"
	"webhunt/config"
	"webhunt/factcheck"
	"webhunt/history"
	"webhunt/sources"

	"github.com/gin-gonic/gin"
)

// CheckRequest is the inbound claim verification payload.
type CheckRequest struct {
	Claim         string   `json:"claim" binding:"required"`
	Sources       []string `json:"sources"`
	Freshness     string   `json:"freshness"`
	Limit         int      `json:"limit"`
	MinConfidence *float64 `json:"min_confidence"`
}

// RegisterCheckRoutes registers claim verification endpoints.
// The store may be nil; results are then simply not persisted.
func RegisterCheckRoutes(r *gin.Engine, checker *factcheck.Checker, store *history.Store) {
	r.POST("/api/check", func(c *gin.Context) {
		handleCheck(c, checker, store)
	})
}

func handleCheck(c *gin.Context, defaultChecker *factcheck.Checker, store *history.Store) {
	var req CheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	searchP, err := searchParams(req.Freshness, req.Limit)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	minConfidence := config.DefaultMinConfidence
	if req.MinConfidence != nil {
		minConfidence = *req.MinConfidence
	}

	checker := defaultChecker
	if len(req.Sources) > 0 {
		adapters, err := sources.Build(req.Sources)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		agg, err := aggregator.New(adapters)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		checker = factcheck.NewChecker(agg)
	}

	result, err := checker.Check(c.Request.Context(), req.Claim, factcheck.CheckParams{
		Freshness:     searchP.Freshness,
		Limit:         searchP.Limit,
		MinConfidence: minConfidence,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Persistence is best-effort; a broken store must not fail the check
	if store != nil {
		if err := store.SaveCheck(result); err != nil {
			log.Printf("Warning: failed to save check: %v", err)
		}
	}

	c.JSON(http.StatusOK, result)
}
