package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sweetshop/backend/internal/logger"
	"github.com/sweetshop/backend/internal/models"
	"github.com/sweetshop/backend/internal/services"
)

// SweetUpdater defines the interface that the service must implement.
type SweetUpdater interface {
	Update(ctx context.Context, id, name, category string, price float64, quantity int) (*models.SweetDB, error)
}

// UpdateSweetRequest represents the JSON body for updating a sweet.
// This is a full replacement: every field is required, partial payloads are
// rejected rather than zeroing omitted fields.
// swagger:model UpdateSweetRequest
type UpdateSweetRequest struct {
	// Name
	// required: true
	Name string `json:"name"`

	// Category
	// required: true
	Category string `json:"category"`

	// Unit price, non-negative
	// required: true
	Price *float64 `json:"price"`

	// Stock, non-negative
	// required: true
	Quantity *int `json:"quantity"`
}

// UpdateSweetErrorResponse represents an error response for sweet update
// swagger:model UpdateSweetErrorResponse
type UpdateSweetErrorResponse struct {
	// Error message
	// default: Sweet not found
	Error string `json:"error"`
}

// NewUpdateHandler returns an HTTP handler for replacing a sweet (admin only).
// @Summary Update a sweet
// @Description Replaces name, category, price and quantity of an existing sweet.
// @Tags sweets
// @Accept json
// @Produce json
// @Param id path string true "Sweet id"
// @Param updateSweetRequest body handlers.UpdateSweetRequest true "New field values"
// @Success 200 {object} models.SweetDB "Updated sweet"
// @Failure 400 {object} handlers.UpdateSweetErrorResponse "Missing or invalid fields"
// @Failure 401 {object} handlers.UpdateSweetErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.UpdateSweetErrorResponse "Admin access required"
// @Failure 404 {object} handlers.UpdateSweetErrorResponse "Sweet not found"
// @Router /sweets/{id} [put]
// @Security BearerAuth
func NewUpdateHandler(svc SweetUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		var req UpdateSweetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(UpdateSweetErrorResponse{Error: "Invalid request body"})
			return
		}

		if req.Name == "" || req.Category == "" || req.Price == nil || req.Quantity == nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(UpdateSweetErrorResponse{Error: "Name, category, price and quantity are required"})
			return
		}
		if *req.Price < 0 || *req.Quantity < 0 {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(UpdateSweetErrorResponse{Error: "Price and quantity must be non-negative"})
			return
		}

		sweet, err := svc.Update(r.Context(), id, req.Name, req.Category, *req.Price, *req.Quantity)
		if err != nil {
			w.Header().Set("Content-Type", "application/json")
			switch {
			case errors.Is(err, services.ErrSweetNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(UpdateSweetErrorResponse{Error: "Sweet not found"})
			default:
				logger.Log.Errorw("failed to update sweet", "id", id, "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(UpdateSweetErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(sweet)
	}
}
