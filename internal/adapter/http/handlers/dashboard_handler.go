package handlers

import (
	"net/http"
	"strconv"
	"time"

	response "home_cleaning/internal/adapter/http/dto/response"
	"home_cleaning/internal/usecase"
	"home_cleaning/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidMonthQuery = pkg.NewDomainErrorSimple("INVALID_MONTH", "year and month query parameters are required", http.StatusBadRequest)

// DashboardHandler serves the read-only reporting views. Every view is
// computed from the live tables on each call; failures here are always
// infrastructure failures, never domain errors.
type DashboardHandler struct {
	usecase usecase.IAnalyticsUseCase
}

func NewDashboardHandler(uc usecase.IAnalyticsUseCase) *DashboardHandler {
	return &DashboardHandler{usecase: uc}
}

func (h *DashboardHandler) FrequentCustomers(c *gin.Context) {
	customers, err := h.usecase.FrequentCustomers(c.Request.Context())
	if err != nil {
		appErr := mapDashboardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCustomerList(customers))
}

func (h *DashboardHandler) UncommittedCustomers(c *gin.Context) {
	customers, err := h.usecase.UncommittedCustomers(c.Request.Context())
	if err != nil {
		appErr := mapDashboardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCustomerList(customers))
}

func (h *DashboardHandler) ProspectiveCustomers(c *gin.Context) {
	customers, err := h.usecase.ProspectiveCustomers(c.Request.Context())
	if err != nil {
		appErr := mapDashboardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCustomerList(customers))
}

func (h *DashboardHandler) AcceptedQuotesInMonth(c *gin.Context) {
	year, errYear := strconv.Atoi(c.Query("year"))
	month, errMonth := strconv.Atoi(c.Query("month"))
	if errYear != nil || errMonth != nil || month < 1 || month > 12 {
		c.JSON(errInvalidMonthQuery.HTTPStatus, errInvalidMonthQuery.ToHTTPError())
		return
	}

	quotes, err := h.usecase.AcceptedQuotesInMonth(c.Request.Context(), year, time.Month(month))
	if err != nil {
		appErr := mapDashboardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuoteList(quotes))
}

func (h *DashboardHandler) LargestJob(c *gin.Context) {
	job, err := h.usecase.LargestJob(c.Request.Context())
	if err != nil {
		appErr := mapDashboardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if job.ID == "" {
		c.JSON(http.StatusOK, gin.H{})
		return
	}
	c.JSON(http.StatusOK, response.FromServiceRequest(job))
}

func (h *DashboardHandler) OverdueBills(c *gin.Context) {
	bills, err := h.usecase.OverdueBills(c.Request.Context())
	if err != nil {
		appErr := mapDashboardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBillList(bills))
}

func (h *DashboardHandler) BadCustomers(c *gin.Context) {
	customers, err := h.usecase.BadCustomers(c.Request.Context())
	if err != nil {
		appErr := mapDashboardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCustomerList(customers))
}

func (h *DashboardHandler) GoodCustomers(c *gin.Context) {
	customers, err := h.usecase.GoodCustomers(c.Request.Context())
	if err != nil {
		appErr := mapDashboardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCustomerList(customers))
}

func mapDashboardError(err error) *pkg.AppError {
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}
