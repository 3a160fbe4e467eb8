package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"myShopStack/business/sale"
	"myShopStack/domain"
	"myShopStack/pkg/logger"
	"myShopStack/pkg/response"

	"github.com/labstack/echo/v4"
)

type SaleService interface {
	Submit(ctx context.Context, req sale.SubmitRequest) (domain.Sale, error)
	Update(ctx context.Context, saleID int, req sale.UpdateRequest) (domain.Sale, error)
	Delete(ctx context.Context, saleID int) (domain.Sale, error)
	GetCustomerSales(ctx context.Context, customerID int) ([]domain.Sale, error)
	GetAvailableGoods(ctx context.Context) ([]domain.Sale, error)
}

type SaleHandler struct {
	service SaleService
	timeout time.Duration
}

func NewSaleHandler(service SaleService) *SaleHandler {
	return &SaleHandler{
		service: service,
		timeout: 10 * time.Second,
	}
}

func (h *SaleHandler) Submit(c echo.Context) error {
	var req sale.SubmitRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, response.Error("Validation Error", "Invalid request body"))
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	created, err := h.service.Submit(ctx, req)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			return c.JSON(http.StatusBadRequest, response.Validation(verr.Messages))
		}
		logger.Error("Failed to submit sale", err)
		return c.JSON(http.StatusBadRequest, response.Error("Submission Error", domain.ErrorMessage(err)))
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Sale submitted successfully",
		"sale":    created,
	})
}

func (h *SaleHandler) Update(c echo.Context) error {
	saleID, err := pathID(c, "sale_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.Error("Update Error", "Invalid sale ID"))
	}

	var req sale.UpdateRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, response.Error("Validation Error", "Invalid request body"))
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	updated, err := h.service.Update(ctx, saleID, req)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			return c.JSON(http.StatusBadRequest, response.Validation(verr.Messages))
		}
		if domain.IsNotFound(err) {
			return c.JSON(http.StatusNotFound, response.Error("Not Found", domain.ErrorMessage(err)))
		}
		logger.Error("Failed to update sale", err)
		return c.JSON(http.StatusBadRequest, response.Error("Update Error", domain.ErrorMessage(err)))
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Sale updated successfully",
		"sale":    updated,
	})
}

// Delete echoes the deleted record back in the response.
func (h *SaleHandler) Delete(c echo.Context) error {
	saleID, err := pathID(c, "sale_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.Error("Deletion Error", "Invalid sale ID"))
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	deleted, err := h.service.Delete(ctx, saleID)
	if err != nil {
		if domain.IsNotFound(err) {
			return c.JSON(http.StatusNotFound, response.Error("Not Found", domain.ErrorMessage(err)))
		}
		logger.Error("Failed to delete sale", err)
		return c.JSON(http.StatusBadRequest, response.Error("Deletion Error", domain.ErrorMessage(err)))
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Sale deleted successfully",
		"sale":    deleted,
	})
}

func (h *SaleHandler) GetCustomerSales(c echo.Context) error {
	customerID, err := pathID(c, "customer_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.Error("Retrieval Error", "Invalid customer ID"))
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	sales, err := h.service.GetCustomerSales(ctx, customerID)
	if err != nil {
		logger.Error("Failed to get customer sales", err)
		return c.JSON(http.StatusBadRequest, response.Error("Retrieval Error", domain.ErrorMessage(err)))
	}

	return c.JSON(http.StatusOK, echo.Map{
		"sales": sales,
	})
}

func (h *SaleHandler) GetAvailableGoods(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	goods, err := h.service.GetAvailableGoods(ctx)
	if err != nil {
		logger.Error("Failed to get available goods", err)
		return c.JSON(http.StatusBadRequest, response.Error("Retrieval Error", domain.ErrorMessage(err)))
	}

	return c.JSON(http.StatusOK, echo.Map{
		"goods": goods,
	})
}
