package handlers

import (
	"log/slog"
	"net/http"

	"github.com/stocklight/inventory-tracker/internal/api/middleware"
	appErrors "github.com/stocklight/inventory-tracker/internal/errors"
	service "github.com/stocklight/inventory-tracker/internal/services"
	"github.com/stocklight/inventory-tracker/internal/utils/response"
)

type ThemeHandler struct {
	inventory service.InventoryService
}

func NewThemeHandler(inventory service.InventoryService) *ThemeHandler {
	return &ThemeHandler{inventory: inventory}
}

func (h *ThemeHandler) GetTheme() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, http.StatusOK, map[string]string{"theme": string(h.inventory.Theme())})
	}
}

func (h *ThemeHandler) ToggleTheme() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		theme, err := h.inventory.ToggleTheme(r.Context())
		if err != nil {
			if appErr, ok := appErrors.IsAppError(err); ok && appErr.Code == appErrors.ErrCodePersistence {
				response.SuccessWithWarning(w, http.StatusOK, map[string]string{"theme": string(theme)}, appErr.Message)
				return
			}

			response.Error(w, err)
			return
		}

		logger.Info("Theme toggled", slog.String("theme", string(theme)))
		response.Success(w, http.StatusOK, map[string]string{"theme": string(theme)})
	}
}
