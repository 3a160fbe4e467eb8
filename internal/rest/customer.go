package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"myShopStack/business/customer"
	"myShopStack/domain"
	"myShopStack/pkg/logger"
	"myShopStack/pkg/response"

	"github.com/labstack/echo/v4"
)

type CustomerService interface {
	Register(ctx context.Context, req customer.RegisterRequest) (domain.Customer, error)
	GetByUsername(ctx context.Context, username string) (domain.Customer, error)
	GetAll(ctx context.Context) ([]domain.Customer, error)
	Update(ctx context.Context, username string, req customer.UpdateRequest) (domain.Customer, error)
	Delete(ctx context.Context, username string) error
	ChargeWallet(ctx context.Context, username string, amount float64) (float64, error)
	DeductWallet(ctx context.Context, username string, amount float64) (float64, error)
}

type CustomerHandler struct {
	service CustomerService
	timeout time.Duration
}

func NewCustomerHandler(service CustomerService) *CustomerHandler {
	return &CustomerHandler{
		service: service,
		timeout: 10 * time.Second,
	}
}

type AmountRequest struct {
	Amount float64 `json:"amount"`
}

func (h *CustomerHandler) Register(c echo.Context) error {
	var req customer.RegisterRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, response.Error("Validation Error", "Invalid request body"))
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	created, err := h.service.Register(ctx, req)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			return c.JSON(http.StatusBadRequest, response.Validation(verr.Messages))
		}
		if domain.IsConflict(err) {
			return c.JSON(http.StatusConflict, response.Error("Registration Error", domain.ErrorMessage(err)))
		}
		logger.Error("Failed to register customer", err)
		return c.JSON(http.StatusBadRequest, response.Error("Registration Error", domain.ErrorMessage(err)))
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message":  "Customer registered successfully",
		"customer": created,
	})
}

func (h *CustomerHandler) GetAll(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	customers, err := h.service.GetAll(ctx)
	if err != nil {
		logger.Error("Failed to get all customers", err)
		return c.JSON(http.StatusInternalServerError, response.Error("Retrieval Error", domain.ErrorMessage(err)))
	}

	return c.JSON(http.StatusOK, echo.Map{
		"customers": customers,
	})
}

func (h *CustomerHandler) GetByUsername(c echo.Context) error {
	username := c.Param("username")

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	found, err := h.service.GetByUsername(ctx, username)
	if err != nil {
		if domain.IsNotFound(err) {
			return c.JSON(http.StatusNotFound, response.Error("Not Found", domain.ErrorMessage(err)))
		}
		logger.Error("Failed to get customer", err)
		return c.JSON(http.StatusInternalServerError, response.Error("Retrieval Error", domain.ErrorMessage(err)))
	}

	return c.JSON(http.StatusOK, echo.Map{
		"customer": found,
	})
}

func (h *CustomerHandler) Update(c echo.Context) error {
	username := c.Param("username")

	var req customer.UpdateRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, response.Error("Validation Error", "Invalid request body"))
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	updated, err := h.service.Update(ctx, username, req)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			return c.JSON(http.StatusBadRequest, response.Validation(verr.Messages))
		}
		if domain.IsNotFound(err) {
			return c.JSON(http.StatusNotFound, response.Error("Update Error", domain.ErrorMessage(err)))
		}
		logger.Error("Failed to update customer", err)
		return c.JSON(http.StatusBadRequest, response.Error("Update Error", domain.ErrorMessage(err)))
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message":  "Customer updated successfully",
		"customer": updated,
	})
}

func (h *CustomerHandler) Delete(c echo.Context) error {
	username := c.Param("username")

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.service.Delete(ctx, username); err != nil {
		if domain.IsNotFound(err) {
			return c.JSON(http.StatusNotFound, response.Error("Deletion Error", domain.ErrorMessage(err)))
		}
		logger.Error("Failed to delete customer", err)
		return c.JSON(http.StatusBadRequest, response.Error("Deletion Error", domain.ErrorMessage(err)))
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Customer deleted successfully",
	})
}

func (h *CustomerHandler) ChargeWallet(c echo.Context) error {
	username := c.Param("username")

	amount, ok := bindAmount(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, response.Error("Invalid Amount", "Amount must be a positive number"))
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	balance, err := h.service.ChargeWallet(ctx, username, amount)
	if err != nil {
		if domain.IsNotFound(err) {
			return c.JSON(http.StatusNotFound, response.Error("Charge Error", domain.ErrorMessage(err)))
		}
		logger.Error("Failed to charge wallet", err)
		return c.JSON(http.StatusBadRequest, response.Error("Charge Error", domain.ErrorMessage(err)))
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message":     "Wallet charged successfully",
		"new_balance": balance,
	})
}

func (h *CustomerHandler) DeductWallet(c echo.Context) error {
	username := c.Param("username")

	amount, ok := bindAmount(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, response.Error("Invalid Amount", "Amount must be a positive number"))
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	balance, err := h.service.DeductWallet(ctx, username, amount)
	if err != nil {
		if domain.IsNotFound(err) {
			return c.JSON(http.StatusNotFound, response.Error("Deduction Error", domain.ErrorMessage(err)))
		}
		logger.Error("Failed to deduct wallet", err)
		return c.JSON(http.StatusBadRequest, response.Error("Deduction Error", domain.ErrorMessage(err)))
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message":     "Wallet deducted successfully",
		"new_balance": balance,
	})
}

// bindAmount reads the {"amount": N} body; amounts must be strictly
// positive.
func bindAmount(c echo.Context) (float64, bool) {
	var req AmountRequest
	if err := c.Bind(&req); err != nil {
		return 0, false
	}
	if req.Amount <= 0 {
		return 0, false
	}
	return req.Amount, true
}
