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

var errInvalidRegisterPayload = pkg.NewDomainErrorSimple("INVALID_CUSTOMER_INPUT", "Invalid customer payload", http.StatusBadRequest)

// CustomerHandler handles customer registration and lookup.
type CustomerHandler struct {
	usecase usecase.ICustomerUseCase
}

func NewCustomerHandler(uc usecase.ICustomerUseCase) *CustomerHandler {
	return &CustomerHandler{usecase: uc}
}

func (h *CustomerHandler) Register(c *gin.Context) {
	var payload request.RegisterCustomerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRegisterPayload.HTTPStatus, errInvalidRegisterPayload.ToHTTPError())
		return
	}

	customer, err := h.usecase.Register(c.Request.Context(), usecase.RegisterCustomerInput{
		Name:      payload.Name,
		Address:   payload.Address,
		Phone:     payload.Phone,
		Email:     payload.Email,
		CardLast4: payload.CardLast4,
		CardToken: payload.CardToken,
		Secret:    payload.Password,
	})
	if err != nil {
		appErr := mapCustomerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromCustomer(customer))
}

func (h *CustomerHandler) GetByID(c *gin.Context) {
	customer, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapCustomerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCustomer(customer))
}

func mapCustomerError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrCustomerNotFound):
		return pkg.NewDomainErrorSimple("CUSTOMER_NOT_FOUND", "Customer not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEmailAlreadyTaken):
		return pkg.NewDomainErrorSimple("EMAIL_ALREADY_TAKEN", "Email is already registered", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidCustomerID):
		return pkg.NewDomainErrorSimple("INVALID_CUSTOMER_ID", "Invalid customer ID", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidCustomerInput):
		return pkg.NewDomainErrorSimple("INVALID_CUSTOMER_INPUT", "Invalid customer payload", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
