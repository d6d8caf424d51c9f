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

// SweetRestocker defines the interface that the service must implement.
type SweetRestocker interface {
	Restock(ctx context.Context, id string, amount int, username string) (int, error)
}

// RestockRequest represents the JSON body for restocking a sweet
// swagger:model RestockRequest
type RestockRequest struct {
	// Amount of stock to add, must be a positive integer
	// required: true
	// default: 50
	Quantity int `json:"quantity"`
}

// RestockResponse represents a successful restock response
// swagger:model RestockResponse
type RestockResponse struct {
	// Success message
	// default: Restock successful
	Message string `json:"message"`

	// Stock after the restock
	Quantity int `json:"quantity"`
}

// RestockErrorResponse represents an error response for a restock
// swagger:model RestockErrorResponse
type RestockErrorResponse struct {
	// Error message
	// default: Valid quantity required
	Error string `json:"error"`
}

// NewRestockHandler returns an HTTP handler for restocking a sweet (admin
// only). The increment is a single atomic update, so concurrent restocks and
// purchases against the same sweet never lose deltas.
// @Summary Restock a sweet
// @Description Adds the given amount of stock and returns the new quantity.
// @Tags sweets
// @Accept json
// @Produce json
// @Param id path string true "Sweet id"
// @Param restockRequest body handlers.RestockRequest true "Restock amount"
// @Success 200 {object} handlers.RestockResponse "Restock successful"
// @Failure 400 {object} handlers.RestockErrorResponse "Valid quantity required"
// @Failure 401 {object} handlers.RestockErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.RestockErrorResponse "Admin access required"
// @Failure 404 {object} handlers.RestockErrorResponse "Sweet not found"
// @Router /sweets/{id}/restock [post]
// @Security BearerAuth
func NewRestockHandler(svc SweetRestocker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		var req RestockRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(RestockErrorResponse{Error: "Invalid request body"})
			return
		}

		if req.Quantity <= 0 {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(RestockErrorResponse{Error: "Valid quantity required"})
			return
		}

		var username string
		if user, ok := middlewares.UserFromContext(r.Context()); ok {
			username = user.Username
		}

		quantity, err := svc.Restock(r.Context(), id, req.Quantity, username)
		if err != nil {
			w.Header().Set("Content-Type", "application/json")
			switch {
			case errors.Is(err, services.ErrSweetNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(RestockErrorResponse{Error: "Sweet not found"})
			case errors.Is(err, services.ErrInvalidQuantity):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(RestockErrorResponse{Error: "Valid quantity required"})
			default:
				logger.Log.Errorw("failed to restock sweet", "id", id, "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(RestockErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(RestockResponse{
			Message:  "Restock successful",
			Quantity: quantity,
		})
	}
}
