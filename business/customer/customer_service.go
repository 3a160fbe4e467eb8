package customer

import (
	"context"
	"time"

	"myShopStack/domain"
	"myShopStack/internal/validation"
	"myShopStack/pkg/logger"
	"myShopStack/pkg/utils"

	"github.com/go-playground/validator/v10"
)

// Repository contract interface
type Repository interface {
	Insert(ctx context.Context, payload map[string]any) (domain.Customer, error)
	FindByUsername(ctx context.Context, username string) (domain.Customer, error)
	FindAll(ctx context.Context) ([]domain.Customer, error)
	Update(ctx context.Context, username string, payload map[string]any) (domain.Customer, error)
	Delete(ctx context.Context, username string) error
	UpdateWalletBalance(ctx context.Context, username string, current, next float64) (domain.Customer, error)
}

type RegisterRequest struct {
	FullName      string  `json:"full_name" validate:"required,min=2,max=100"`
	Username      string  `json:"username" validate:"required,min=3,max=50"`
	Password      string  `json:"password" validate:"required,min=8"`
	Age           *int    `json:"age" validate:"required,gte=18,lte=120"`
	Address       *string `json:"address" validate:"omitempty,max=200"`
	Gender        *string `json:"gender" validate:"omitempty,oneof=Male Female Other"`
	MaritalStatus *string `json:"marital_status" validate:"omitempty,oneof=Single Married Divorced Widowed"`
}

// UpdateRequest carries a partial update; only non-nil fields are applied.
// A supplied password is ignored: passwords never change through this path.
type UpdateRequest struct {
	FullName      *string `json:"full_name" validate:"omitempty,min=2,max=100"`
	Username      *string `json:"username" validate:"omitempty,min=3,max=50"`
	Password      *string `json:"password"`
	Age           *int    `json:"age" validate:"omitempty,gte=18,lte=120"`
	Address       *string `json:"address" validate:"omitempty,max=200"`
	Gender        *string `json:"gender" validate:"omitempty,oneof=Male Female Other"`
	MaritalStatus *string `json:"marital_status" validate:"omitempty,oneof=Single Married Divorced Widowed"`
}

var fieldMessages = validation.Messages{
	"full_name":      "Full name must be between 2 and 100 characters",
	"username":       "Username must be between 3 and 50 characters",
	"password":       "Password must be at least 8 characters long",
	"age":            "Age must be between 18 and 120",
	"address":        "Address must be at most 200 characters",
	"gender":         "Gender must be Male, Female, or Other",
	"marital_status": "Invalid marital status",
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

// Register checks username uniqueness, hashes the password and inserts the
// customer with its defaults (wallet_balance 0, created_at now).
func (s *Service) Register(ctx context.Context, req RegisterRequest) (domain.Customer, error) {
	if err := s.validate.Struct(req); err != nil {
		return domain.Customer{}, validation.Translate(err, fieldMessages)
	}

	if _, err := s.repo.FindByUsername(ctx, req.Username); err == nil {
		return domain.Customer{}, domain.ConflictError("Username already exists")
	} else if !domain.IsNotFound(err) {
		return domain.Customer{}, err
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		logger.Error("Failed to hash password", err)
		return domain.Customer{}, domain.StorageError("customer.register", "Error registering customer", err)
	}

	payload := map[string]any{
		"full_name":      req.FullName,
		"username":       req.Username,
		"password":       hash,
		"age":            *req.Age,
		"wallet_balance": 0.0,
		"created_at":     time.Now().UTC().Format(time.RFC3339),
	}
	if req.Address != nil {
		payload["address"] = *req.Address
	}
	if req.Gender != nil {
		payload["gender"] = *req.Gender
	}
	if req.MaritalStatus != nil {
		payload["marital_status"] = *req.MaritalStatus
	}

	logger.Info("Registering customer", "username", req.Username)

	return s.repo.Insert(ctx, payload)
}

func (s *Service) GetByUsername(ctx context.Context, username string) (domain.Customer, error) {
	return s.repo.FindByUsername(ctx, username)
}

func (s *Service) GetAll(ctx context.Context) ([]domain.Customer, error) {
	return s.repo.FindAll(ctx)
}

// Update applies the supplied fields only. The password field is stripped
// before the write.
func (s *Service) Update(ctx context.Context, username string, req UpdateRequest) (domain.Customer, error) {
	if err := s.validate.Struct(req); err != nil {
		return domain.Customer{}, validation.Translate(err, fieldMessages)
	}

	payload := map[string]any{}
	if req.FullName != nil {
		payload["full_name"] = *req.FullName
	}
	if req.Username != nil {
		payload["username"] = *req.Username
	}
	if req.Age != nil {
		payload["age"] = *req.Age
	}
	if req.Address != nil {
		payload["address"] = *req.Address
	}
	if req.Gender != nil {
		payload["gender"] = *req.Gender
	}
	if req.MaritalStatus != nil {
		payload["marital_status"] = *req.MaritalStatus
	}

	if len(payload) == 0 {
		return s.repo.FindByUsername(ctx, username)
	}

	return s.repo.Update(ctx, username, payload)
}

func (s *Service) Delete(ctx context.Context, username string) error {
	return s.repo.Delete(ctx, username)
}

// ChargeWallet adds amount to the wallet and returns the new balance. The
// caller guarantees amount > 0.
func (s *Service) ChargeWallet(ctx context.Context, username string, amount float64) (float64, error) {
	current, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return 0, err
	}

	next := current.WalletBalance + amount

	updated, err := s.repo.UpdateWalletBalance(ctx, username, current.WalletBalance, next)
	if err != nil {
		return 0, err
	}

	return updated.WalletBalance, nil
}

// DeductWallet subtracts amount from the wallet, failing without a write
// when the balance does not cover it.
func (s *Service) DeductWallet(ctx context.Context, username string, amount float64) (float64, error) {
	current, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return 0, err
	}

	if amount > current.WalletBalance {
		return 0, domain.DomainError("Insufficient funds")
	}

	next := current.WalletBalance - amount

	updated, err := s.repo.UpdateWalletBalance(ctx, username, current.WalletBalance, next)
	if err != nil {
		return 0, err
	}

	return updated.WalletBalance, nil
}
