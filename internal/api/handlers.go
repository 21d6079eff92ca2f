// Package api exposes the read-only HTTP query API over the transaction
// store: filtered listings, single-record lookup and the per-category
// aggregate.
package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/relisha1/MoMo-Data-Analysis/internal/models"
	"github.com/relisha1/MoMo-Data-Analysis/internal/store"
)

// Handler serves transaction queries.
type Handler struct {
	store *store.TransactionStore
}

// NewHandler creates a Handler backed by the given store.
func NewHandler(s *store.TransactionStore) *Handler {
	return &Handler{store: s}
}

// transactionView exposes the category under both "type" and "category";
// existing API clients read either key.
type transactionView struct {
	models.Transaction
	Category string `json:"category"`
}

func viewsOf(transactions []models.Transaction) []transactionView {
	views := make([]transactionView, len(transactions))
	for i, t := range transactions {
		views[i] = transactionView{Transaction: t, Category: t.Type}
	}
	return views
}

// ListTransactions handles GET /api/transactions with optional type,
// date_from, date_to and min_amount filters.
func (h *Handler) ListTransactions(c *gin.Context) {
	filter := store.Filter{
		Type:     c.Query("type"),
		DateFrom: c.Query("date_from"),
		DateTo:   c.Query("date_to"),
	}
	if raw := c.Query("min_amount"); raw != "" {
		minAmount, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid min_amount"})
			return
		}
		filter.MinAmount = minAmount
	}

	transactions, err := h.store.List(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, viewsOf(transactions))
}

// ListByCategory handles GET /api/transactions/:category with an exact
// category match.
func (h *Handler) ListByCategory(c *gin.Context) {
	transactions, err := h.store.List(store.Filter{Type: c.Param("category")})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, viewsOf(transactions))
}

// GetByID handles GET /api/transactions/id/:id.
func (h *Handler) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid transaction id"})
		return
	}

	t, err := h.store.Get(uint(id))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, transactionView{Transaction: *t, Category: t.Type})
}

// SummaryByType handles GET /api/summary_by_type.
func (h *Handler) SummaryByType(c *gin.Context) {
	summary, err := h.store.SummaryByType()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}
