package middlewares_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/sweetshop/backend/internal/jwt"
	"github.com/sweetshop/backend/internal/middlewares"
	"github.com/sweetshop/backend/internal/models"
)

func TestAuthenticate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTokener := middlewares.NewMockTokener(ctrl)
	mockUsers := middlewares.NewMockUserGetter(ctrl)

	alice := &models.UserDB{ID: "id-1", Username: "alice", IsAdmin: false}

	tests := []struct {
		name       string
		setup      func()
		wantStatus int
		wantBody   string
		wantUser   *models.UserDB
	}{
		{
			name: "missing token",
			setup: func() {
				mockTokener.EXPECT().
					GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("", errors.New("no authorization header"))
			},
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"error":"Access token required"}`,
		},
		{
			name: "invalid token",
			setup: func() {
				mockTokener.EXPECT().
					GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("bad-token", nil)
				mockTokener.EXPECT().
					GetClaims(gomock.Any(), "bad-token").
					Return(nil, errors.New("signature invalid"))
			},
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"error":"Invalid or expired token"}`,
		},
		{
			name: "user lookup error",
			setup: func() {
				mockTokener.EXPECT().
					GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("token", nil)
				mockTokener.EXPECT().
					GetClaims(gomock.Any(), "token").
					Return(&jwt.Claims{Username: "alice"}, nil)
				mockUsers.EXPECT().
					GetByUsername(gomock.Any(), "alice").
					Return(nil, errors.New("db error"))
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Internal server error"}`,
		},
		{
			name: "token references deleted user",
			setup: func() {
				mockTokener.EXPECT().
					GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("token", nil)
				mockTokener.EXPECT().
					GetClaims(gomock.Any(), "token").
					Return(&jwt.Claims{Username: "ghost"}, nil)
				mockUsers.EXPECT().
					GetByUsername(gomock.Any(), "ghost").
					Return(nil, nil)
			},
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"error":"Invalid token"}`,
		},
		{
			name: "valid token attaches fresh user",
			setup: func() {
				mockTokener.EXPECT().
					GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("token", nil)
				mockTokener.EXPECT().
					GetClaims(gomock.Any(), "token").
					Return(&jwt.Claims{Username: "alice"}, nil)
				mockUsers.EXPECT().
					GetByUsername(gomock.Any(), "alice").
					Return(alice, nil)
			},
			wantStatus: http.StatusOK,
			wantUser:   alice,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			var gotUser *models.UserDB
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUser, _ = middlewares.UserFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			handler := middlewares.Authenticate(mockTokener, mockUsers)(next)

			req := httptest.NewRequest(http.MethodGet, "/api/sweets", nil)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			}
			if tt.wantUser != nil {
				assert.Equal(t, tt.wantUser, gotUser)
			}
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTokener := middlewares.NewMockTokener(ctrl)
	mockUsers := middlewares.NewMockUserGetter(ctrl)

	tests := []struct {
		name       string
		user       *models.UserDB
		wantStatus int
		wantBody   string
	}{
		{
			name:       "admin passes through",
			user:       &models.UserDB{ID: "id-1", Username: "root", IsAdmin: true},
			wantStatus: http.StatusOK,
		},
		{
			name:       "non-admin forbidden",
			user:       &models.UserDB{ID: "id-2", Username: "alice", IsAdmin: false},
			wantStatus: http.StatusForbidden,
			wantBody:   `{"error":"Admin access required"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockTokener.EXPECT().
				GetTokenFromRequest(gomock.Any(), gomock.Any()).
				Return("token", nil)
			mockTokener.EXPECT().
				GetClaims(gomock.Any(), "token").
				Return(&jwt.Claims{Username: tt.user.Username, IsAdmin: tt.user.IsAdmin}, nil)
			mockUsers.EXPECT().
				GetByUsername(gomock.Any(), tt.user.Username).
				Return(tt.user, nil)

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})

			handler := middlewares.Authenticate(mockTokener, mockUsers)(middlewares.RequireAdmin(next))

			req := httptest.NewRequest(http.MethodPost, "/api/sweets", nil)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestRequireAdmin_NoPrincipal(t *testing.T) {
	// RequireAdmin mounted without Authenticate in front must not panic.
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/api/sweets", nil)
	rec := httptest.NewRecorder()
	middlewares.RequireAdmin(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Access token required"}`, rec.Body.String())
}
