package api

import (
	"webhunt/aggregator"
	"webhunt/factcheck"
	"webhunt/history"

	"github.com/gin-gonic/gin"
)

// NewRouter constructs a Gin engine with registered routes.
// The history store may be nil; history endpoints then report 503.
func NewRouter(agg *aggregator.Aggregator, checker *factcheck.Checker, store *history.Store) *gin.Engine {
	r := gin.New()
	// Minimal middleware: recovery; logger optional to reduce verbosity
	r.Use(gin.Recovery())

	RegisterSearchRoutes(r, agg)
	RegisterCheckRoutes(r, checker, store)
	RegisterHistoryRoutes(r, store)
	RegisterHealthRoutes(r)
	return r
}
