package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sweetshop/backend/internal/logger"
	"github.com/sweetshop/backend/internal/middlewares"
	"github.com/sweetshop/backend/internal/services"
)

// SweetPurchaser defines the interface that the service must implement.
type SweetPurchaser interface {
	Purchase(ctx context.Context, id, username string) (int, error)
}

// PurchaseResponse represents a successful purchase response
// swagger:model PurchaseResponse
type PurchaseResponse struct {
	// Success message
	// default: Purchase successful
	Message string `json:"message"`

	// Remaining stock after the purchase
	Quantity int `json:"quantity"`
}

// PurchaseErrorResponse represents an error response for a purchase
// swagger:model PurchaseErrorResponse
type PurchaseErrorResponse struct {
	// Error message
	// default: Sweet out of stock
	Error string `json:"error"`
}

// NewPurchaseHandler returns an HTTP handler for purchasing one unit of a
// sweet. Requires any authenticated user. The decrement is a single atomic
// conditional update, so concurrent purchases of the last unit cannot both
// succeed.
// @Summary Purchase a sweet
// @Description Takes one unit of stock and returns the remaining quantity.
// @Tags sweets
// @Produce json
// @Param id path string true "Sweet id"
// @Success 200 {object} handlers.PurchaseResponse "Purchase successful"
// @Failure 400 {object} handlers.PurchaseErrorResponse "Sweet out of stock"
// @Failure 401 {object} handlers.PurchaseErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.PurchaseErrorResponse "Sweet not found"
// @Router /sweets/{id}/purchase [post]
// @Security BearerAuth
func NewPurchaseHandler(svc SweetPurchaser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		var username string
		if user, ok := middlewares.UserFromContext(r.Context()); ok {
			username = user.Username
		}

		quantity, err := svc.Purchase(r.Context(), id, username)
		if err != nil {
			w.Header().Set("Content-Type", "application/json")
			switch {
			case errors.Is(err, services.ErrSweetNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(PurchaseErrorResponse{Error: "Sweet not found"})
			case errors.Is(err, services.ErrOutOfStock):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(PurchaseErrorResponse{Error: "Sweet out of stock"})
			default:
				logger.Log.Errorw("failed to purchase sweet", "id", id, "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(PurchaseErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(PurchaseResponse{
			Message:  "Purchase successful",
			Quantity: quantity,
		})
	}
}
