package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sweetshop/backend/internal/logger"
	"github.com/sweetshop/backend/internal/services"
)

// SweetDeleter defines the interface that the service must implement.
type SweetDeleter interface {
	Delete(ctx context.Context, id string) error
}

// DeleteSweetResponse represents a successful deletion response
// swagger:model DeleteSweetResponse
type DeleteSweetResponse struct {
	// Success message
	// default: Sweet deleted successfully
	Message string `json:"message"`
}

// DeleteSweetErrorResponse represents an error response for sweet deletion
// swagger:model DeleteSweetErrorResponse
type DeleteSweetErrorResponse struct {
	// Error message
	// default: Sweet not found
	Error string `json:"error"`
}

// NewDeleteHandler returns an HTTP handler for deleting a sweet (admin only).
// @Summary Delete a sweet
// @Description Hard-deletes the sweet. A repeated delete of the same id returns 404.
// @Tags sweets
// @Produce json
// @Param id path string true "Sweet id"
// @Success 200 {object} handlers.DeleteSweetResponse "Sweet deleted"
// @Failure 401 {object} handlers.DeleteSweetErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.DeleteSweetErrorResponse "Admin access required"
// @Failure 404 {object} handlers.DeleteSweetErrorResponse "Sweet not found"
// @Router /sweets/{id} [delete]
// @Security BearerAuth
func NewDeleteHandler(svc SweetDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		err := svc.Delete(r.Context(), id)
		if err != nil {
			w.Header().Set("Content-Type", "application/json")
			switch {
			case errors.Is(err, services.ErrSweetNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(DeleteSweetErrorResponse{Error: "Sweet not found"})
			default:
				logger.Log.Errorw("failed to delete sweet", "id", id, "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(DeleteSweetErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(DeleteSweetResponse{Message: "Sweet deleted successfully"})
	}
}
