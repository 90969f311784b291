package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"home_cleaning/internal/adapter/http/handlers/mocks"
	"home_cleaning/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestDashboardHandler_FrequentCustomers(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAnalyticsUseCase(ctrl)
		h := NewDashboardHandler(uc)

		r := gin.New()
		r.GET("/v1/dashboard/frequent-customers", h.FrequentCustomers)

		uc.EXPECT().FrequentCustomers(gomock.Any()).Return([]entities.Customer{{ID: "c-1", Name: "Ana"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/frequent-customers", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 1 || body[0]["id"] != "c-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("scan failure is a 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAnalyticsUseCase(ctrl)
		h := NewDashboardHandler(uc)

		r := gin.New()
		r.GET("/v1/dashboard/frequent-customers", h.FrequentCustomers)

		uc.EXPECT().FrequentCustomers(gomock.Any()).Return(nil, errors.New("db"))

		req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/frequent-customers", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestDashboardHandler_AcceptedQuotesInMonth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing month query", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAnalyticsUseCase(ctrl)
		h := NewDashboardHandler(uc)

		r := gin.New()
		r.GET("/v1/dashboard/accepted-quotes", h.AcceptedQuotesInMonth)

		req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/accepted-quotes?year=2026", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("month out of range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAnalyticsUseCase(ctrl)
		h := NewDashboardHandler(uc)

		r := gin.New()
		r.GET("/v1/dashboard/accepted-quotes", h.AcceptedQuotesInMonth)

		req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/accepted-quotes?year=2026&month=13", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAnalyticsUseCase(ctrl)
		h := NewDashboardHandler(uc)

		r := gin.New()
		r.GET("/v1/dashboard/accepted-quotes", h.AcceptedQuotesInMonth)

		uc.EXPECT().AcceptedQuotesInMonth(gomock.Any(), 2026, time.May).Return([]entities.Quote{{ID: "q-1", Status: entities.QuoteStatusAccepted}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/accepted-quotes?year=2026&month=5", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestDashboardHandler_LargestJob(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("empty object when nothing completed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAnalyticsUseCase(ctrl)
		h := NewDashboardHandler(uc)

		r := gin.New()
		r.GET("/v1/dashboard/largest-job", h.LargestJob)

		uc.EXPECT().LargestJob(gomock.Any()).Return(entities.ServiceRequest{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/largest-job", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Body.String() != "{}" {
			t.Fatalf("expected empty object, got %s", w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAnalyticsUseCase(ctrl)
		h := NewDashboardHandler(uc)

		r := gin.New()
		r.GET("/v1/dashboard/largest-job", h.LargestJob)

		uc.EXPECT().LargestJob(gomock.Any()).Return(entities.ServiceRequest{ID: "r-1", Rooms: 8}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/largest-job", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "r-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}
