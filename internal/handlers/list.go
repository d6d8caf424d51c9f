package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sweetshop/backend/internal/logger"
	"github.com/sweetshop/backend/internal/models"
)

// SweetLister defines the interface that the service must implement.
type SweetLister interface {
	List(ctx context.Context) ([]models.SweetDB, error)
}

// ListErrorResponse represents an error response for the sweet listing
// swagger:model ListErrorResponse
type ListErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// NewListHandler returns an HTTP handler for the public sweet catalog.
// @Summary List sweets
// @Description Returns all sweets ordered by name ascending. No authentication required.
// @Tags sweets
// @Produce json
// @Success 200 {array} models.SweetDB "All sweets"
// @Failure 500 {object} handlers.ListErrorResponse "Internal server error"
// @Router /sweets [get]
func NewListHandler(svc SweetLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sweets, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list sweets", "err", err)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ListErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(sweets)
	}
}
