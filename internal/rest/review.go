package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"myShopStack/business/review"
	"myShopStack/domain"
	"myShopStack/pkg/logger"
	"myShopStack/pkg/response"

	"github.com/labstack/echo/v4"
)

type ReviewService interface {
	Submit(ctx context.Context, req review.SubmitRequest) (domain.Review, error)
	Update(ctx context.Context, reviewID int, req review.UpdateRequest) (domain.Review, error)
	Moderate(ctx context.Context, reviewID int, req review.ModerateRequest) (domain.Review, error)
	Delete(ctx context.Context, reviewID int) error
	GetByID(ctx context.Context, reviewID int) (domain.Review, error)
	GetProductReviews(ctx context.Context, productID int) ([]domain.Review, error)
	GetCustomerReviews(ctx context.Context, customerID int) ([]domain.Review, error)
}

type ReviewHandler struct {
	service ReviewService
	timeout time.Duration
}

func NewReviewHandler(service ReviewService) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		timeout: 10 * time.Second,
	}
}

func (h *ReviewHandler) Submit(c echo.Context) error {
	var req review.SubmitRequest
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
		logger.Error("Failed to submit review", err)
		return c.JSON(http.StatusBadRequest, response.Error("Submission Error", domain.ErrorMessage(err)))
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Review submitted successfully",
		"review":  created,
	})
}

func (h *ReviewHandler) Update(c echo.Context) error {
	reviewID, err := pathID(c, "review_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.Error("Update Error", "Invalid review ID"))
	}

	var req review.UpdateRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, response.Error("Validation Error", "Invalid request body"))
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	updated, err := h.service.Update(ctx, reviewID, req)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			return c.JSON(http.StatusBadRequest, response.Validation(verr.Messages))
		}
		if domain.IsNotFound(err) {
			return c.JSON(http.StatusNotFound, response.Error("Not Found", domain.ErrorMessage(err)))
		}
		logger.Error("Failed to update review", err)
		return c.JSON(http.StatusBadRequest, response.Error("Update Error", domain.ErrorMessage(err)))
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Review updated successfully",
		"review":  updated,
	})
}

func (h *ReviewHandler) Moderate(c echo.Context) error {
	reviewID, err := pathID(c, "review_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.Error("Moderation Error", "Invalid review ID"))
	}

	var req review.ModerateRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, response.Error("Validation Error", "Invalid request body"))
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	moderated, err := h.service.Moderate(ctx, reviewID, req)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			return c.JSON(http.StatusBadRequest, response.Validation(verr.Messages))
		}
		if domain.IsNotFound(err) {
			return c.JSON(http.StatusNotFound, response.Error("Not Found", domain.ErrorMessage(err)))
		}
		logger.Error("Failed to moderate review", err)
		return c.JSON(http.StatusBadRequest, response.Error("Moderation Error", domain.ErrorMessage(err)))
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Review moderated successfully",
		"review":  moderated,
	})
}

func (h *ReviewHandler) Delete(c echo.Context) error {
	reviewID, err := pathID(c, "review_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.Error("Deletion Error", "Invalid review ID"))
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.service.Delete(ctx, reviewID); err != nil {
		if domain.IsNotFound(err) {
			return c.JSON(http.StatusNotFound, response.Error("Not Found", domain.ErrorMessage(err)))
		}
		logger.Error("Failed to delete review", err)
		return c.JSON(http.StatusBadRequest, response.Error("Deletion Error", domain.ErrorMessage(err)))
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Review deleted successfully",
	})
}

func (h *ReviewHandler) GetByID(c echo.Context) error {
	reviewID, err := pathID(c, "review_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.Error("Retrieval Error", "Invalid review ID"))
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	found, err := h.service.GetByID(ctx, reviewID)
	if err != nil {
		if domain.IsNotFound(err) {
			return c.JSON(http.StatusNotFound, response.Error("Not Found", domain.ErrorMessage(err)))
		}
		logger.Error("Failed to get review", err)
		return c.JSON(http.StatusInternalServerError, response.Error("Retrieval Error", domain.ErrorMessage(err)))
	}

	return c.JSON(http.StatusOK, echo.Map{
		"review": found,
	})
}

// GetProductReviews returns the bare list of reviews for a product.
func (h *ReviewHandler) GetProductReviews(c echo.Context) error {
	productID, err := pathID(c, "product_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.Error("Retrieval Error", "Invalid product ID"))
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	reviews, err := h.service.GetProductReviews(ctx, productID)
	if err != nil {
		logger.Error("Failed to get product reviews", err)
		return c.JSON(http.StatusBadRequest, response.Error("Retrieval Error", domain.ErrorMessage(err)))
	}

	return c.JSON(http.StatusOK, reviews)
}

// GetCustomerReviews returns the bare list of reviews by a customer.
func (h *ReviewHandler) GetCustomerReviews(c echo.Context) error {
	customerID, err := pathID(c, "customer_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.Error("Retrieval Error", "Invalid customer ID"))
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	reviews, err := h.service.GetCustomerReviews(ctx, customerID)
	if err != nil {
		logger.Error("Failed to get customer reviews", err)
		return c.JSON(http.StatusBadRequest, response.Error("Retrieval Error", domain.ErrorMessage(err)))
	}

	return c.JSON(http.StatusOK, reviews)
}
