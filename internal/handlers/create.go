package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sweetshop/backend/internal/logger"
	"github.com/sweetshop/backend/internal/models"
)

// SweetCreator defines the interface that the service must implement.
type SweetCreator interface {
	Create(ctx context.Context, name, category string, price float64, quantity int) (*models.SweetDB, error)
}

// CreateSweetRequest represents the JSON body for creating a sweet.
// Price and quantity are pointers so missing fields can be rejected.
// swagger:model CreateSweetRequest
type CreateSweetRequest struct {
	// Name
	// required: true
	// default: Rainbow Gummy Bears
	Name string `json:"name"`

	// Category
	// required: true
	// default: Gummy
	Category string `json:"category"`

	// Unit price, non-negative
	// required: true
	// default: 1.99
	Price *float64 `json:"price"`

	// Initial stock, non-negative
	// required: true
	// default: 80
	Quantity *int `json:"quantity"`
}

// CreateSweetErrorResponse represents an error response for sweet creation
// swagger:model CreateSweetErrorResponse
type CreateSweetErrorResponse struct {
	// Error message
	// default: Name, category, price and quantity are required
	Error string `json:"error"`
}

// NewCreateHandler returns an HTTP handler for creating sweets (admin only).
// @Summary Create a sweet
// @Description Stores a new inventory item and returns it with its generated id.
// @Tags sweets
// @Accept json
// @Produce json
// @Param createSweetRequest body handlers.CreateSweetRequest true "Sweet to create"
// @Success 201 {object} models.SweetDB "Created sweet"
// @Failure 400 {object} handlers.CreateSweetErrorResponse "Missing or invalid fields"
// @Failure 401 {object} handlers.CreateSweetErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.CreateSweetErrorResponse "Admin access required"
// @Router /sweets [post]
// @Security BearerAuth
func NewCreateHandler(svc SweetCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateSweetRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CreateSweetErrorResponse{Error: "Invalid request body"})
			return
		}

		if req.Name == "" || req.Category == "" || req.Price == nil || req.Quantity == nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CreateSweetErrorResponse{Error: "Name, category, price and quantity are required"})
			return
		}
		if *req.Price < 0 || *req.Quantity < 0 {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CreateSweetErrorResponse{Error: "Price and quantity must be non-negative"})
			return
		}

		sweet, err := svc.Create(r.Context(), req.Name, req.Category, *req.Price, *req.Quantity)
		if err != nil {
			logger.Log.Errorw("failed to create sweet", "name", req.Name, "err", err)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(CreateSweetErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(sweet)
	}
}
