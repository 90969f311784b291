package handlers

import (
	"errors"
	"net/http"

	request "home_cleaning/internal/adapter/http/dto/request"
	response "home_cleaning/internal/adapter/http/dto/response"
	"home_cleaning/internal/usecase"
	"home_cleaning/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidBillPayload = pkg.NewDomainErrorSimple("INVALID_BILL_INPUT", "Invalid bill payload", http.StatusBadRequest)

// BillHandler handles billing: issuance, payment and dispute.
type BillHandler struct {
	usecase usecase.IBillUseCase
}

func NewBillHandler(uc usecase.IBillUseCase) *BillHandler {
	return &BillHandler{usecase: uc}
}

func (h *BillHandler) Create(c *gin.Context) {
	var payload request.CreateBillRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBillPayload.HTTPStatus, errInvalidBillPayload.ToHTTPError())
		return
	}

	bill, err := h.usecase.Create(c.Request.Context(), payload.OrderID, payload.Amount, payload.Note)
	if err != nil {
		appErr := mapBillError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromBill(bill))
}

func (h *BillHandler) Pay(c *gin.Context) {
	var payload request.PayBillRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBillPayload.HTTPStatus, errInvalidBillPayload.ToHTTPError())
		return
	}

	bill, err := h.usecase.Pay(c.Request.Context(), payload.BillID, payload.Amount)
	if err != nil {
		appErr := mapBillError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBill(bill))
}

func (h *BillHandler) Dispute(c *gin.Context) {
	var payload request.DisputeBillRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBillPayload.HTTPStatus, errInvalidBillPayload.ToHTTPError())
		return
	}

	bill, err := h.usecase.Dispute(c.Request.Context(), payload.BillID, payload.Note)
	if err != nil {
		appErr := mapBillError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBill(bill))
}

func (h *BillHandler) GetByID(c *gin.Context) {
	bill, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapBillError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBill(bill))
}

func (h *BillHandler) ListAll(c *gin.Context) {
	bills, err := h.usecase.ListAll(c.Request.Context())
	if err != nil {
		appErr := mapBillError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBillList(bills))
}

func mapBillError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrBillNotFound):
		return pkg.NewDomainErrorSimple("BILL_NOT_FOUND", "Bill not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Service order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidBillID):
		return pkg.NewDomainErrorSimple("INVALID_BILL_ID", "Invalid bill ID", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidOrderID):
		return pkg.NewDomainErrorSimple("INVALID_ORDER_ID", "Invalid service order ID", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidBillAmount):
		return pkg.NewDomainErrorSimple("INVALID_BILL_AMOUNT", "Bill amount must be positive", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEmptyDisputeNote):
		return pkg.NewDomainErrorSimple("EMPTY_DISPUTE_NOTE", "Dispute note is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotCompleted):
		return pkg.NewDomainErrorSimple("ORDER_NOT_COMPLETED", "Service order has not been completed", http.StatusConflict)
	case errors.Is(err, usecase.ErrBillNotUnpaid):
		return pkg.NewDomainErrorSimple("BILL_NOT_UNPAID", "Bill is no longer open", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
