package api

import (
	"net/http"
	"time"

	"webhunt/aggregator"
	"webhunt/config"
	"webhunt/sources"
	"webhunt/types"

	"github.com/gin-gonic/gin"
)

// SearchRequest is the inbound search payload. Sources defaults to the
// server's configured adapter set when empty.
type SearchRequest struct {
	Query     string   `json:"query" binding:"required"`
	Sources   []string `json:"sources"`
	Freshness string   `json:"freshness"`
	Limit     int      `json:"limit"`
}

// SearchResponse carries the ranked evidence for a query.
type SearchResponse struct {
	Query     string           `json:"query"`
	Count     int              `json:"count"`
	Results   []types.Evidence `json:"results"`
	FetchedAt time.Time        `json:"fetched_at"`
}

// RegisterSearchRoutes registers evidence search endpoints.
func RegisterSearchRoutes(r *gin.Engine, agg *aggregator.Aggregator) {
	r.POST("/api/search", func(c *gin.Context) {
		handleSearch(c, agg)
	})
}

func handleSearch(c *gin.Context, defaultAgg *aggregator.Aggregator) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	params, err := searchParams(req.Freshness, req.Limit)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	agg := defaultAgg
	if len(req.Sources) > 0 {
		adapters, err := sources.Build(req.Sources)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if agg, err = aggregator.New(adapters); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	results, err := agg.Search(c.Request.Context(), req.Query, params)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, SearchResponse{
		Query:     req.Query,
		Count:     len(results),
		Results:   results,
		FetchedAt: time.Now(),
	})
}

// searchParams applies defaults and validates the freshness name before any
// adapter gets invoked.
func searchParams(freshness string, limit int) (aggregator.Params, error) {
	f := config.DefaultFreshness
	if freshness != "" {
		parsed, err := config.ParseFreshness(freshness)
		if err != nil {
			return aggregator.Params{}, err
		}
		f = parsed
	}
	if limit == 0 {
		limit = config.DefaultResultLimit
	}
	return aggregator.Params{Freshness: f, Limit: limit}, nil
}
