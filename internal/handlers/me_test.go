package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/sweetshop/backend/internal/jwt"
	"github.com/sweetshop/backend/internal/middlewares"
	"github.com/sweetshop/backend/internal/models"
)

// asUser wraps next with the auth middleware resolving to the given user, so
// handlers that read the principal from the request context can be exercised.
func asUser(t *testing.T, user *models.UserDB, next http.Handler) http.Handler {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockTokener := middlewares.NewMockTokener(ctrl)
	mockUsers := middlewares.NewMockUserGetter(ctrl)

	mockTokener.EXPECT().
		GetTokenFromRequest(gomock.Any(), gomock.Any()).
		Return("token", nil).
		AnyTimes()
	mockTokener.EXPECT().
		GetClaims(gomock.Any(), "token").
		Return(&jwt.Claims{Username: user.Username, IsAdmin: user.IsAdmin}, nil).
		AnyTimes()
	mockUsers.EXPECT().
		GetByUsername(gomock.Any(), user.Username).
		Return(user, nil).
		AnyTimes()

	return middlewares.Authenticate(mockTokener, mockUsers)(next)
}

func TestMeHandler(t *testing.T) {
	t.Run("authenticated user echoed", func(t *testing.T) {
		alice := &models.UserDB{ID: "id-1", Username: "alice", IsAdmin: true}
		handler := asUser(t, alice, NewMeHandler())

		req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"id":"id-1","username":"alice","isAdmin":true}`, rec.Body.String())
	})

	t.Run("no principal in context", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
		rec := httptest.NewRecorder()
		NewMeHandler().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"error":"Access token required"}`, rec.Body.String())
	})
}
