package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"home_cleaning/internal/adapter/http/handlers/mocks"
	"home_cleaning/internal/domain/entities"
	"home_cleaning/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestBillHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillUseCase(ctrl)
		h := NewBillHandler(uc)

		r := gin.New()
		r.POST("/v1/bills", h.Create)

		req := httptest.NewRequest(http.MethodPost, "/v1/bills", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("order not completed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillUseCase(ctrl)
		h := NewBillHandler(uc)

		r := gin.New()
		r.POST("/v1/bills", h.Create)

		uc.EXPECT().Create(gomock.Any(), "o-1", 350.0, "").Return(entities.Bill{}, usecase.ErrOrderNotCompleted)

		req := httptest.NewRequest(http.MethodPost, "/v1/bills", bytes.NewBufferString(`{"order_id":"o-1","amount":350}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillUseCase(ctrl)
		h := NewBillHandler(uc)

		r := gin.New()
		r.POST("/v1/bills", h.Create)

		uc.EXPECT().Create(gomock.Any(), "o-1", 350.0, "deep clean").Return(entities.Bill{ID: "b-1", OrderID: "o-1", Amount: 350, Status: entities.BillStatusUnpaid}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/bills", bytes.NewBufferString(`{"order_id":"o-1","amount":350,"note":"deep clean"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "b-1" || body["status"] != "UNPAID" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestBillHandler_PayAndDispute(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("pay already paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillUseCase(ctrl)
		h := NewBillHandler(uc)

		r := gin.New()
		r.PATCH("/v1/bills/pay", h.Pay)

		uc.EXPECT().Pay(gomock.Any(), "b-1", 350.0).Return(entities.Bill{}, usecase.ErrBillNotUnpaid)

		req := httptest.NewRequest(http.MethodPatch, "/v1/bills/pay", bytes.NewBufferString(`{"bill_id":"b-1","amount":350}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("pay success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillUseCase(ctrl)
		h := NewBillHandler(uc)

		r := gin.New()
		r.PATCH("/v1/bills/pay", h.Pay)

		uc.EXPECT().Pay(gomock.Any(), "b-1", 350.0).Return(entities.Bill{ID: "b-1", Status: entities.BillStatusPaid}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/bills/pay", bytes.NewBufferString(`{"bill_id":"b-1","amount":350}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("dispute requires note", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillUseCase(ctrl)
		h := NewBillHandler(uc)

		r := gin.New()
		r.PATCH("/v1/bills/dispute", h.Dispute)

		req := httptest.NewRequest(http.MethodPatch, "/v1/bills/dispute", bytes.NewBufferString(`{"bill_id":"b-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("dispute success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillUseCase(ctrl)
		h := NewBillHandler(uc)

		r := gin.New()
		r.PATCH("/v1/bills/dispute", h.Dispute)

		uc.EXPECT().Dispute(gomock.Any(), "b-1", "wrong amount").Return(entities.Bill{ID: "b-1", Status: entities.BillStatusDisputed, DisputeNote: "wrong amount"}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/bills/dispute", bytes.NewBufferString(`{"bill_id":"b-1","note":"wrong amount"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestMapBillError(t *testing.T) {
	if got := mapBillError(usecase.ErrBillNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapBillError(usecase.ErrOrderNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapBillError(usecase.ErrInvalidBillAmount); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapBillError(usecase.ErrEmptyDisputeNote); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapBillError(usecase.ErrOrderNotCompleted); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapBillError(usecase.ErrBillNotUnpaid); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapBillError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
