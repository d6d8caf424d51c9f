package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sweetshop/backend/internal/middlewares"
)

// MeResponse is the public projection of the authenticated principal
// swagger:model MeResponse
type MeResponse struct {
	// User id
	ID string `json:"id"`

	// Username
	Username string `json:"username"`

	// Admin role flag
	IsAdmin bool `json:"isAdmin"`
}

// MeErrorResponse represents an error response for the me endpoint
// swagger:model MeErrorResponse
type MeErrorResponse struct {
	// Error message
	// default: Access token required
	Error string `json:"error"`
}

// NewMeHandler returns an HTTP handler that echoes the authenticated user.
// The principal is resolved by the auth middleware with a fresh storage read,
// so the response reflects the current record, not the token claims.
// @Summary Current user
// @Description Returns the public projection of the authenticated user.
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.MeResponse "Current user"
// @Failure 401 {object} handlers.MeErrorResponse "Unauthorized"
// @Router /auth/me [get]
// @Security BearerAuth
func NewMeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := middlewares.UserFromContext(r.Context())
		if !ok {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(MeErrorResponse{Error: "Access token required"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(MeResponse{
			ID:       user.ID,
			Username: user.Username,
			IsAdmin:  user.IsAdmin,
		})
	}
}
