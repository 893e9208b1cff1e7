package handlers

import (
	"net/http"

	service "github.com/stocklight/inventory-tracker/internal/services"
	"github.com/stocklight/inventory-tracker/internal/utils/response"
)

type StatsHandler struct {
	inventory service.InventoryService
}

func NewStatsHandler(inventory service.InventoryService) *StatsHandler {
	return &StatsHandler{inventory: inventory}
}

// Totals cover the whole collection, never the filtered view.
func (h *StatsHandler) GetStats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, http.StatusOK, h.inventory.Stats())
	}
}
