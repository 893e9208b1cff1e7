package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cast"

	"github.com/stocklight/inventory-tracker/internal/api/middleware"
	appErrors "github.com/stocklight/inventory-tracker/internal/errors"
	"github.com/stocklight/inventory-tracker/internal/models"
	service "github.com/stocklight/inventory-tracker/internal/services"
	"github.com/stocklight/inventory-tracker/internal/utils"
	"github.com/stocklight/inventory-tracker/internal/utils/response"
)

type ProductHandler struct {
	inventory service.InventoryService
	validator *validator.Validate
}

func NewProductHandler(inventory service.InventoryService) *ProductHandler {
	return &ProductHandler{inventory: inventory, validator: validator.New()}
}

func (h *ProductHandler) CreateProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		var draft models.ProductDraft
		if err := utils.DecodeJSONBody(r, &draft); err != nil {
			response.Error(w, appErrors.BadRequestError(err.Error()))
			return
		}

		if err := h.validator.Struct(draft); err != nil {
			if validationErrs, ok := err.(validator.ValidationErrors); ok {
				response.ValidationError(w, validationErrs)
				return
			}

			response.Error(w, appErrors.ValidationError(err.Error()))
			return
		}

		product, err := h.inventory.CreateProduct(r.Context(), &draft)
		if err != nil {
			if appErr, ok := appErrors.IsAppError(err); ok && appErr.Code == appErrors.ErrCodePersistence {
				// mutation applied, only the snapshot write failed
				response.SuccessWithWarning(w, http.StatusCreated, product, appErr.Message)
				return
			}

			logger.Warn("Product creation rejected", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Product created", slog.Int64("product_id", product.ID))
		response.Success(w, http.StatusCreated, product)
	}
}

func (h *ProductHandler) GetProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id := cast.ToInt64(r.PathValue("id"))
		if id == 0 {
			response.Error(w, appErrors.BadRequestError("Invalid product id"))
			return
		}

		product, err := h.inventory.GetProduct(id)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, product)
	}
}

func (h *ProductHandler) UpdateProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		id := cast.ToInt64(r.PathValue("id"))
		if id == 0 {
			response.Error(w, appErrors.BadRequestError("Invalid product id"))
			return
		}

		var draft models.ProductDraft
		if err := utils.DecodeJSONBody(r, &draft); err != nil {
			response.Error(w, appErrors.BadRequestError(err.Error()))
			return
		}

		if err := h.validator.Struct(draft); err != nil {
			if validationErrs, ok := err.(validator.ValidationErrors); ok {
				response.ValidationError(w, validationErrs)
				return
			}

			response.Error(w, appErrors.ValidationError(err.Error()))
			return
		}

		product, err := h.inventory.UpdateProduct(r.Context(), id, &draft)
		if err != nil {
			if appErr, ok := appErrors.IsAppError(err); ok && appErr.Code == appErrors.ErrCodePersistence {
				response.SuccessWithWarning(w, http.StatusOK, product, appErr.Message)
				return
			}

			logger.Warn("Product update rejected", slog.Int64("product_id", id), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Product updated", slog.Int64("product_id", id))
		response.Success(w, http.StatusOK, product)
	}
}

func (h *ProductHandler) DeleteProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		id := cast.ToInt64(r.PathValue("id"))
		if id == 0 {
			response.Error(w, appErrors.BadRequestError("Invalid product id"))
			return
		}

		// destructive operations require explicit confirmation
		if !cast.ToBool(r.URL.Query().Get("confirm")) {
			response.Error(w, appErrors.BadRequestError("Deletion must be confirmed with confirm=true"))
			return
		}

		name, err := h.inventory.DeleteProduct(r.Context(), id)
		if err != nil {
			if appErr, ok := appErrors.IsAppError(err); ok && appErr.Code == appErrors.ErrCodePersistence {
				response.SuccessWithWarning(w, http.StatusOK, map[string]string{"name": name}, appErr.Message)
				return
			}

			response.Error(w, err)
			return
		}

		logger.Info("Product deleted", slog.Int64("product_id", id), slog.String("name", name))
		response.Success(w, http.StatusOK, map[string]string{"name": name})
	}
}

func (h *ProductHandler) ClearProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		if !cast.ToBool(r.URL.Query().Get("confirm")) {
			response.Error(w, appErrors.BadRequestError("Clearing the inventory must be confirmed with confirm=true"))
			return
		}

		if err := h.inventory.Clear(r.Context()); err != nil {
			if appErr, ok := appErrors.IsAppError(err); ok && appErr.Code == appErrors.ErrCodePersistence {
				response.SuccessWithWarning(w, http.StatusOK, nil, appErr.Message)
				return
			}

			response.Error(w, err)
			return
		}

		logger.Info("Inventory cleared")
		response.Success(w, http.StatusOK, nil)
	}
}

// for eg: GET /products?category=books&sort=price&q=go
func (h *ProductHandler) ListProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		opts := models.ListOptions{
			Category: models.Category(r.URL.Query().Get("category")),
			Sort:     models.SortKey(r.URL.Query().Get("sort")),
			Search:   r.URL.Query().Get("q"),
		}

		products, err := h.inventory.ListProducts(opts)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, products)
	}
}
