package api

import (
	"net/http"
	"strconv"

	"webhunt/history"

	"github.com/gin-gonic/gin"
)

// RegisterHistoryRoutes registers persisted-result endpoints.
func RegisterHistoryRoutes(r *gin.Engine, store *history.Store) {
	g := r.Group("/api/history")
	g.GET("/checks", func(c *gin.Context) {
		handleRecentChecks(c, store)
	})
}

func handleRecentChecks(c *gin.Context, store *history.Store) {
	if store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "history store not configured"})
		return
	}

	limit := 20
	if l := c.Query("limit"); l != "" {
		v, err := strconv.Atoi(l)
		if err != nil || v <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = v
	}

	records, err := store.RecentChecks(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count":  len(records),
		"checks": records,
	})
}
