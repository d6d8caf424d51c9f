package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/sweetshop/backend/internal/models"
)

func TestListHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockSweetLister(ctrl)
	handler := NewListHandler(mockSvc)

	t.Run("catalog returned", func(t *testing.T) {
		mockSvc.EXPECT().List(gomock.Any()).Return([]models.SweetDB{
			{ID: "id-1", Name: "Barfi", Category: "Traditional", Price: 30, Quantity: 10},
			{ID: "id-2", Name: "Ladoo", Category: "Traditional", Price: 25, Quantity: 5},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/sweets", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[
			{"id":"id-1","name":"Barfi","category":"Traditional","price":30,"quantity":10},
			{"id":"id-2","name":"Ladoo","category":"Traditional","price":25,"quantity":5}
		]`, rec.Body.String())
	})

	t.Run("empty catalog is an empty array", func(t *testing.T) {
		mockSvc.EXPECT().List(gomock.Any()).Return([]models.SweetDB{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/sweets", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("storage error", func(t *testing.T) {
		mockSvc.EXPECT().List(gomock.Any()).Return(nil, errors.New("db error"))

		req := httptest.NewRequest(http.MethodGet, "/api/sweets", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"error":"Internal server error"}`, rec.Body.String())
	})
}
