package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/sweetshop/backend/internal/logger"
	"github.com/sweetshop/backend/internal/models"
)

// SweetSearcher defines the interface that the service must implement.
type SweetSearcher interface {
	Search(ctx context.Context, filter models.SweetFilter) ([]models.SweetDB, error)
}

// SearchErrorResponse represents an error response for the sweet search
// swagger:model SearchErrorResponse
type SearchErrorResponse struct {
	// Error message
	// default: Invalid price filter
	Error string `json:"error"`
}

// NewSearchHandler returns an HTTP handler for searching sweets.
// All filters are optional and compose with logical AND; without filters the
// result equals the full listing.
// @Summary Search sweets
// @Description Filter by case-insensitive name substring, exact category, and inclusive price bounds.
// @Tags sweets
// @Produce json
// @Param name query string false "Name substring, case-insensitive"
// @Param category query string false "Exact category"
// @Param minPrice query number false "Inclusive lower price bound"
// @Param maxPrice query number false "Inclusive upper price bound"
// @Success 200 {array} models.SweetDB "Matching sweets"
// @Failure 400 {object} handlers.SearchErrorResponse "Invalid price filter"
// @Failure 500 {object} handlers.SearchErrorResponse "Internal server error"
// @Router /sweets/search [get]
func NewSearchHandler(svc SweetSearcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		var filter models.SweetFilter

		if name := query.Get("name"); name != "" {
			filter.Name = &name
		}
		if category := query.Get("category"); category != "" {
			filter.Category = &category
		}
		if raw := query.Get("minPrice"); raw != "" {
			minPrice, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(SearchErrorResponse{Error: "Invalid price filter"})
				return
			}
			filter.MinPrice = &minPrice
		}
		if raw := query.Get("maxPrice"); raw != "" {
			maxPrice, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(SearchErrorResponse{Error: "Invalid price filter"})
				return
			}
			filter.MaxPrice = &maxPrice
		}

		sweets, err := svc.Search(r.Context(), filter)
		if err != nil {
			logger.Log.Errorw("failed to search sweets", "err", err)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(SearchErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(sweets)
	}
}
