package review

import (
	"context"

	"myShopStack/domain"
	"myShopStack/internal/validation"
	"myShopStack/pkg/logger"

	"github.com/go-playground/validator/v10"
)

// Repository contract interface
type Repository interface {
	Insert(ctx context.Context, payload map[string]any) (domain.Review, error)
	FindByID(ctx context.Context, reviewID int) (domain.Review, error)
	Update(ctx context.Context, reviewID int, payload map[string]any) (domain.Review, error)
	Delete(ctx context.Context, reviewID int) error
	FindByProduct(ctx context.Context, productID int) ([]domain.Review, error)
	FindByCustomer(ctx context.Context, customerID int) ([]domain.Review, error)
}

type SubmitRequest struct {
	CustomerID *int         `json:"customer_id" validate:"required"`
	ProductID  *int         `json:"product_id" validate:"required"`
	Rating     *int         `json:"rating" validate:"required,gte=1,lte=5"`
	Comment    *string      `json:"comment"`
	ReviewDate *domain.Date `json:"review_date" validate:"omitempty,notfuture"`
	Status     *string      `json:"status" validate:"omitempty,oneof=Pending Approved Rejected"`
}

type UpdateRequest struct {
	Rating     *int         `json:"rating" validate:"omitempty,gte=1,lte=5"`
	Comment    *string      `json:"comment"`
	ReviewDate *domain.Date `json:"review_date" validate:"omitempty,notfuture"`
	Status     *string      `json:"status" validate:"omitempty,oneof=Pending Approved Rejected"`
}

type ModerateRequest struct {
	Status *string `json:"status" validate:"required,oneof=Pending Approved Rejected"`
}

var fieldMessages = validation.Messages{
	"rating":      "Rating must be between 1 and 5",
	"review_date": "Review date cannot be in the future",
	"status":      "Invalid review status",
}

type Service struct {
	repo     Repository
	validate *validator.Validate
}

func NewService(repo Repository, validate *validator.Validate) *Service {
	return &Service{
		repo:     repo,
		validate: validate,
	}
}

// Submit inserts a review, defaulting review_date to today and status to
// Pending when omitted.
func (s *Service) Submit(ctx context.Context, req SubmitRequest) (domain.Review, error) {
	if err := s.validate.Struct(req); err != nil {
		return domain.Review{}, validation.Translate(err, fieldMessages)
	}

	reviewDate := domain.Today()
	if req.ReviewDate != nil {
		reviewDate = *req.ReviewDate
	}

	status := domain.ReviewStatusPending
	if req.Status != nil {
		status = *req.Status
	}

	payload := map[string]any{
		"customer_id": *req.CustomerID,
		"product_id":  *req.ProductID,
		"rating":      *req.Rating,
		"review_date": reviewDate.String(),
		"status":      status,
	}
	if req.Comment != nil {
		payload["comment"] = *req.Comment
	}

	logger.Info("Submitting review", "product_id", *req.ProductID, "customer_id", *req.CustomerID)

	return s.repo.Insert(ctx, payload)
}

// Update applies the supplied fields only.
func (s *Service) Update(ctx context.Context, reviewID int, req UpdateRequest) (domain.Review, error) {
	if err := s.validate.Struct(req); err != nil {
		return domain.Review{}, validation.Translate(err, fieldMessages)
	}

	payload := map[string]any{}
	if req.Rating != nil {
		payload["rating"] = *req.Rating
	}
	if req.Comment != nil {
		payload["comment"] = *req.Comment
	}
	if req.ReviewDate != nil {
		payload["review_date"] = req.ReviewDate.String()
	}
	if req.Status != nil {
		payload["status"] = *req.Status
	}

	if len(payload) == 0 {
		return s.repo.FindByID(ctx, reviewID)
	}

	return s.repo.Update(ctx, reviewID, payload)
}

// Moderate sets the review status (approve, reject, or back to pending).
func (s *Service) Moderate(ctx context.Context, reviewID int, req ModerateRequest) (domain.Review, error) {
	if err := s.validate.Struct(req); err != nil {
		return domain.Review{}, validation.Translate(err, fieldMessages)
	}

	return s.repo.Update(ctx, reviewID, map[string]any{"status": *req.Status})
}

func (s *Service) Delete(ctx context.Context, reviewID int) error {
	return s.repo.Delete(ctx, reviewID)
}

func (s *Service) GetByID(ctx context.Context, reviewID int) (domain.Review, error) {
	return s.repo.FindByID(ctx, reviewID)
}

func (s *Service) GetProductReviews(ctx context.Context, productID int) ([]domain.Review, error) {
	return s.repo.FindByProduct(ctx, productID)
}

func (s *Service) GetCustomerReviews(ctx context.Context, customerID int) ([]domain.Review, error) {
	return s.repo.FindByCustomer(ctx, customerID)
}
