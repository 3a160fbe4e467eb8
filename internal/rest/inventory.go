package rest

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"myShopStack/business/inventory"
	"myShopStack/domain"
	"myShopStack/pkg/logger"
	"myShopStack/pkg/response"

	"github.com/labstack/echo/v4"
)

type InventoryService interface {
	AddGoods(ctx context.Context, req inventory.AddRequest) (domain.Product, error)
	GetProduct(ctx context.Context, productID int) (domain.Product, error)
	DeductGoods(ctx context.Context, productID int) (domain.Product, error)
	UpdateGoods(ctx context.Context, productID int, req inventory.UpdateRequest) (domain.Product, error)
}

type InventoryHandler struct {
	service InventoryService
	timeout time.Duration
}

func NewInventoryHandler(service InventoryService) *InventoryHandler {
	return &InventoryHandler{
		service: service,
		timeout: 10 * time.Second,
	}
}

func (h *InventoryHandler) AddGoods(c echo.Context) error {
	var req inventory.AddRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, response.Error("Validation Error", "Invalid request body"))
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	created, err := h.service.AddGoods(ctx, req)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			return c.JSON(http.StatusBadRequest, response.Validation(verr.Messages))
		}
		logger.Error("Failed to add product", err)
		return c.JSON(http.StatusBadRequest, response.Error("Addition Error", domain.ErrorMessage(err)))
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Product added successfully",
		"product": created,
	})
}

// DeductGoods answers 400 for both "product not found" and "stock already
// zero": the deduction itself is the failing operation either way.
func (h *InventoryHandler) DeductGoods(c echo.Context) error {
	productID, err := pathID(c, "product_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.Error("Deduction Error", "Invalid product ID"))
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	updated, err := h.service.DeductGoods(ctx, productID)
	if err != nil {
		logger.Error("Failed to deduct product", err)
		return c.JSON(http.StatusBadRequest, response.Error("Deduction Error", domain.ErrorMessage(err)))
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Product deducted successfully",
		"product": updated,
	})
}

func (h *InventoryHandler) UpdateGoods(c echo.Context) error {
	productID, err := pathID(c, "product_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.Error("Update Error", "Invalid product ID"))
	}

	var req inventory.UpdateRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, response.Error("Validation Error", "Invalid request body"))
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	updated, err := h.service.UpdateGoods(ctx, productID, req)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			return c.JSON(http.StatusBadRequest, response.Validation(verr.Messages))
		}
		if domain.IsNotFound(err) {
			return c.JSON(http.StatusNotFound, response.Error("Update Error", domain.ErrorMessage(err)))
		}
		logger.Error("Failed to update product", err)
		return c.JSON(http.StatusBadRequest, response.Error("Update Error", domain.ErrorMessage(err)))
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Product updated successfully",
		"product": updated,
	})
}

func (h *InventoryHandler) GetProduct(c echo.Context) error {
	productID, err := pathID(c, "product_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.Error("Retrieval Error", "Invalid product ID"))
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	found, err := h.service.GetProduct(ctx, productID)
	if err != nil {
		if domain.IsNotFound(err) {
			return c.JSON(http.StatusNotFound, response.Error("Not Found", domain.ErrorMessage(err)))
		}
		logger.Error("Failed to get product", err)
		return c.JSON(http.StatusInternalServerError, response.Error("Retrieval Error", domain.ErrorMessage(err)))
	}

	return c.JSON(http.StatusOK, echo.Map{
		"product": found,
	})
}

// pathID parses an integer path parameter.
func pathID(c echo.Context, name string) (int, error) {
	return strconv.Atoi(c.Param(name))
}
