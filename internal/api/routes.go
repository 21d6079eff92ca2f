package api

import (
	"github.com/gin-gonic/gin"

	"github.com/relisha1/MoMo-Data-Analysis/internal/store"
)

// RegisterRoutes wires the query API routes onto a gin engine.
func RegisterRoutes(r *gin.Engine, s *store.TransactionStore) {
	h := NewHandler(s)

	api := r.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api.GET("/transactions", h.ListTransactions)
	api.GET("/transactions/:category", h.ListByCategory)
	api.GET("/transactions/id/:id", h.GetByID)
	api.GET("/summary_by_type", h.SummaryByType)
}
