package inventory

import (
	"context"

	"myShopStack/domain"
	"myShopStack/internal/validation"
	"myShopStack/pkg/logger"

	"github.com/go-playground/validator/v10"
)

// Repository contract interface
type Repository interface {
	Insert(ctx context.Context, payload map[string]any) (domain.Product, error)
	FindByID(ctx context.Context, productID int) (domain.Product, error)
	Update(ctx context.Context, productID int, payload map[string]any) (domain.Product, error)
	UpdateStockCount(ctx context.Context, productID, current, next int) (domain.Product, error)
}

type AddRequest struct {
	Name        string   `json:"name" validate:"required,min=1,max=255"`
	Category    string   `json:"category" validate:"required,max=255"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
	Description *string  `json:"description"`
	StockCount  *int     `json:"stock_count" validate:"omitempty,gte=0"`
}

type UpdateRequest struct {
	Name        *string  `json:"name" validate:"omitempty,min=1,max=255"`
	Category    *string  `json:"category" validate:"omitempty,max=255"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	Description *string  `json:"description"`
	StockCount  *int     `json:"stock_count" validate:"omitempty,gte=0"`
}

var fieldMessages = validation.Messages{
	"name":        "Product name must be between 1 and 255 characters",
	"category":    "Category must be less than 255 characters",
	"price":       "Price must be non-negative",
	"stock_count": "Stock count must be non-negative",
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

// AddGoods inserts a product, defaulting stock_count to 0 when omitted.
func (s *Service) AddGoods(ctx context.Context, req AddRequest) (domain.Product, error) {
	if err := s.validate.Struct(req); err != nil {
		return domain.Product{}, validation.Translate(err, fieldMessages)
	}

	stock := 0
	if req.StockCount != nil {
		stock = *req.StockCount
	}

	payload := map[string]any{
		"name":        req.Name,
		"category":    req.Category,
		"price":       *req.Price,
		"stock_count": stock,
	}
	if req.Description != nil {
		payload["description"] = *req.Description
	}

	logger.Info("Adding product", "name", req.Name)

	return s.repo.Insert(ctx, payload)
}

func (s *Service) GetProduct(ctx context.Context, productID int) (domain.Product, error) {
	return s.repo.FindByID(ctx, productID)
}

// DeductGoods decrements the stock count by exactly one, refusing when it
// is already zero.
func (s *Service) DeductGoods(ctx context.Context, productID int) (domain.Product, error) {
	product, err := s.repo.FindByID(ctx, productID)
	if err != nil {
		return domain.Product{}, err
	}

	if product.StockCount <= 0 {
		return domain.Product{}, domain.DomainError("Stock count is already zero")
	}

	return s.repo.UpdateStockCount(ctx, productID, product.StockCount, product.StockCount-1)
}

// UpdateGoods applies the supplied fields only.
func (s *Service) UpdateGoods(ctx context.Context, productID int, req UpdateRequest) (domain.Product, error) {
	if err := s.validate.Struct(req); err != nil {
		return domain.Product{}, validation.Translate(err, fieldMessages)
	}

	payload := map[string]any{}
	if req.Name != nil {
		payload["name"] = *req.Name
	}
	if req.Category != nil {
		payload["category"] = *req.Category
	}
	if req.Price != nil {
		payload["price"] = *req.Price
	}
	if req.Description != nil {
		payload["description"] = *req.Description
	}
	if req.StockCount != nil {
		payload["stock_count"] = *req.StockCount
	}

	if len(payload) == 0 {
		return s.repo.FindByID(ctx, productID)
	}

	return s.repo.Update(ctx, productID, payload)
}
