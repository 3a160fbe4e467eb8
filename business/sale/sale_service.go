package sale

import (
	"context"

	"myShopStack/domain"
	"myShopStack/internal/validation"
	"myShopStack/pkg/logger"

	"github.com/go-playground/validator/v10"
)

// Repository contract interface
type Repository interface {
	Insert(ctx context.Context, payload map[string]any) (domain.Sale, error)
	FindByID(ctx context.Context, saleID int) (domain.Sale, error)
	Update(ctx context.Context, saleID int, payload map[string]any) (domain.Sale, error)
	Delete(ctx context.Context, saleID int) (domain.Sale, error)
	FindByCustomer(ctx context.Context, customerID int) ([]domain.Sale, error)
	FindAll(ctx context.Context) ([]domain.Sale, error)
}

type SubmitRequest struct {
	CustomerID *int         `json:"customer_id" validate:"required"`
	ProductID  *int         `json:"product_id" validate:"required"`
	SaleDate   *domain.Date `json:"sale_date" validate:"omitempty,notfuture"`
	Quantity   *int         `json:"quantity" validate:"required,gte=1"`
	TotalPrice *float64     `json:"total_price" validate:"required,gte=0"`
}

type UpdateRequest struct {
	SaleDate   *domain.Date `json:"sale_date" validate:"omitempty,notfuture"`
	Quantity   *int         `json:"quantity" validate:"omitempty,gte=1"`
	TotalPrice *float64     `json:"total_price" validate:"omitempty,gte=0"`
}

var fieldMessages = validation.Messages{
	"sale_date":   "Sale date cannot be in the future",
	"quantity":    "Quantity must be at least 1",
	"total_price": "Total price must be non-negative",
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

// Submit inserts a sale, defaulting sale_date to today when omitted.
func (s *Service) Submit(ctx context.Context, req SubmitRequest) (domain.Sale, error) {
	if err := s.validate.Struct(req); err != nil {
		return domain.Sale{}, validation.Translate(err, fieldMessages)
	}

	saleDate := domain.Today()
	if req.SaleDate != nil {
		saleDate = *req.SaleDate
	}

	payload := map[string]any{
		"customer_id": *req.CustomerID,
		"product_id":  *req.ProductID,
		"sale_date":   saleDate.String(),
		"quantity":    *req.Quantity,
		"total_price": *req.TotalPrice,
	}

	logger.Info("Submitting sale", "product_id", *req.ProductID, "customer_id", *req.CustomerID)

	return s.repo.Insert(ctx, payload)
}

// Update applies the supplied fields only.
func (s *Service) Update(ctx context.Context, saleID int, req UpdateRequest) (domain.Sale, error) {
	if err := s.validate.Struct(req); err != nil {
		return domain.Sale{}, validation.Translate(err, fieldMessages)
	}

	payload := map[string]any{}
	if req.SaleDate != nil {
		payload["sale_date"] = req.SaleDate.String()
	}
	if req.Quantity != nil {
		payload["quantity"] = *req.Quantity
	}
	if req.TotalPrice != nil {
		payload["total_price"] = *req.TotalPrice
	}

	if len(payload) == 0 {
		return s.repo.FindByID(ctx, saleID)
	}

	return s.repo.Update(ctx, saleID, payload)
}

// Delete removes the sale and returns the deleted record.
func (s *Service) Delete(ctx context.Context, saleID int) (domain.Sale, error) {
	return s.repo.Delete(ctx, saleID)
}

func (s *Service) GetCustomerSales(ctx context.Context, customerID int) ([]domain.Sale, error) {
	return s.repo.FindByCustomer(ctx, customerID)
}

func (s *Service) GetAvailableGoods(ctx context.Context) ([]domain.Sale, error) {
	return s.repo.FindAll(ctx)
}
