package customer

import (
	"context"
	"errors"
	"testing"

	"myShopStack/domain"
	"myShopStack/internal/validation"
	"myShopStack/pkg/utils"
)

type fakeRepo struct {
	customers map[string]domain.Customer
	nextID    int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{customers: map[string]domain.Customer{}, nextID: 1}
}

func (f *fakeRepo) Insert(_ context.Context, payload map[string]any) (domain.Customer, error) {
	c := domain.Customer{
		CustomerID:    f.nextID,
		FullName:      payload["full_name"].(string),
		Username:      payload["username"].(string),
		Password:      payload["password"].(string),
		Age:           payload["age"].(int),
		WalletBalance: payload["wallet_balance"].(float64),
	}
	f.nextID++
	f.customers[c.Username] = c
	return c, nil
}

func (f *fakeRepo) FindByUsername(_ context.Context, username string) (domain.Customer, error) {
	c, ok := f.customers[username]
	if !ok {
		return domain.Customer{}, domain.NotFoundError("Customer not found")
	}
	return c, nil
}

func (f *fakeRepo) FindAll(_ context.Context) ([]domain.Customer, error) {
	out := []domain.Customer{}
	for _, c := range f.customers {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeRepo) Update(_ context.Context, username string, payload map[string]any) (domain.Customer, error) {
	c, ok := f.customers[username]
	if !ok {
		return domain.Customer{}, domain.NotFoundError("Customer not found")
	}
	if v, ok := payload["full_name"]; ok {
		c.FullName = v.(string)
	}
	if v, ok := payload["username"]; ok {
		delete(f.customers, username)
		c.Username = v.(string)
	}
	if v, ok := payload["age"]; ok {
		c.Age = v.(int)
	}
	if v, ok := payload["password"]; ok {
		c.Password = v.(string)
	}
	f.customers[c.Username] = c
	return c, nil
}

func (f *fakeRepo) Delete(_ context.Context, username string) error {
	if _, ok := f.customers[username]; !ok {
		return domain.NotFoundError("Customer not found")
	}
	delete(f.customers, username)
	return nil
}

func (f *fakeRepo) UpdateWalletBalance(_ context.Context, username string, current, next float64) (domain.Customer, error) {
	c, ok := f.customers[username]
	if !ok || c.WalletBalance != current {
		return domain.Customer{}, domain.DomainError("Wallet balance changed concurrently, please retry")
	}
	c.WalletBalance = next
	f.customers[username] = c
	return c, nil
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func validRegistration() RegisterRequest {
	return RegisterRequest{
		FullName: "Ana Pereira",
		Username: "ana",
		Password: "correct-horse",
		Age:      intPtr(30),
	}
}

func TestRegisterHashesPasswordAndDefaultsWallet(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, validation.New())

	created, err := svc.Register(context.Background(), validRegistration())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if created.WalletBalance != 0 {
		t.Errorf("expected zero wallet balance, got %v", created.WalletBalance)
	}

	stored := repo.customers["ana"]
	if stored.Password == "correct-horse" {
		t.Error("password stored in plaintext")
	}
	if !utils.CheckPassword("correct-horse", stored.Password) {
		t.Error("stored hash does not verify against original password")
	}
}

func TestRegisterRejectsDuplicateUsername(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, validation.New())

	if _, err := svc.Register(context.Background(), validRegistration()); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}

	_, err := svc.Register(context.Background(), validRegistration())
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict, got %v", err)
	}
	if domain.ErrorMessage(err) != "Username already exists" {
		t.Errorf("unexpected message: %q", domain.ErrorMessage(err))
	}
}

func TestRegisterAgeBounds(t *testing.T) {
	cases := []struct {
		age int
		ok  bool
	}{
		{17, false},
		{18, true},
		{120, true},
		{121, false},
	}

	for _, tc := range cases {
		repo := newFakeRepo()
		svc := NewService(repo, validation.New())

		req := validRegistration()
		req.Age = intPtr(tc.age)

		_, err := svc.Register(context.Background(), req)
		if tc.ok && err != nil {
			t.Errorf("age %d: unexpected error: %v", tc.age, err)
		}
		if !tc.ok {
			var verr *domain.ValidationError
			if !errors.As(err, &verr) {
				t.Errorf("age %d: expected validation error, got %v", tc.age, err)
				continue
			}
			if got := verr.Messages["age"]; len(got) != 1 || got[0] != "Age must be between 18 and 120" {
				t.Errorf("age %d: unexpected messages %v", tc.age, got)
			}
		}
	}
}

func TestRegisterReportsAllViolations(t *testing.T) {
	svc := NewService(newFakeRepo(), validation.New())

	_, err := svc.Register(context.Background(), RegisterRequest{
		FullName: "A",
		Username: "ab",
		Password: "short",
		Age:      intPtr(10),
	})

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	for _, field := range []string{"full_name", "username", "password", "age"} {
		if len(verr.Messages[field]) == 0 {
			t.Errorf("expected a message for %s, got none", field)
		}
	}
}

func TestUpdateIgnoresPassword(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, validation.New())

	if _, err := svc.Register(context.Background(), validRegistration()); err != nil {
		t.Fatalf("registration failed: %v", err)
	}
	before := repo.customers["ana"].Password

	_, err := svc.Update(context.Background(), "ana", UpdateRequest{
		FullName: strPtr("Ana P. Silva"),
		Password: strPtr("new-password-123"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	after := repo.customers["ana"]
	if after.FullName != "Ana P. Silva" {
		t.Errorf("full name not updated: %q", after.FullName)
	}
	if after.Password != before {
		t.Error("password must not change through update")
	}
}

func TestUpdateWithEmptyBodyReturnsCurrent(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, validation.New())

	if _, err := svc.Register(context.Background(), validRegistration()); err != nil {
		t.Fatalf("registration failed: %v", err)
	}

	got, err := svc.Update(context.Background(), "ana", UpdateRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Username != "ana" {
		t.Errorf("unexpected customer: %+v", got)
	}
}

func TestChargeAndDeductWallet(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, validation.New())

	if _, err := svc.Register(context.Background(), validRegistration()); err != nil {
		t.Fatalf("registration failed: %v", err)
	}

	balance, err := svc.ChargeWallet(context.Background(), "ana", 100)
	if err != nil {
		t.Fatalf("charge failed: %v", err)
	}
	if balance != 100 {
		t.Fatalf("expected balance 100, got %v", balance)
	}

	balance, err = svc.DeductWallet(context.Background(), "ana", 40)
	if err != nil {
		t.Fatalf("deduct failed: %v", err)
	}
	if balance != 60 {
		t.Fatalf("expected balance 60, got %v", balance)
	}
}

func TestDeductWalletInsufficientFundsLeavesBalance(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, validation.New())

	if _, err := svc.Register(context.Background(), validRegistration()); err != nil {
		t.Fatalf("registration failed: %v", err)
	}
	if _, err := svc.ChargeWallet(context.Background(), "ana", 50); err != nil {
		t.Fatalf("charge failed: %v", err)
	}

	_, err := svc.DeductWallet(context.Background(), "ana", 50.01)
	if err == nil {
		t.Fatal("expected insufficient funds error")
	}
	if domain.ErrorMessage(err) != "Insufficient funds" {
		t.Errorf("unexpected message: %q", domain.ErrorMessage(err))
	}

	if got := repo.customers["ana"].WalletBalance; got != 50 {
		t.Errorf("balance changed on failed deduction: %v", got)
	}
}

func TestWalletOperationsUnknownCustomer(t *testing.T) {
	svc := NewService(newFakeRepo(), validation.New())

	if _, err := svc.ChargeWallet(context.Background(), "ghost", 10); !domain.IsNotFound(err) {
		t.Errorf("charge: expected not found, got %v", err)
	}
	if _, err := svc.DeductWallet(context.Background(), "ghost", 10); !domain.IsNotFound(err) {
		t.Errorf("deduct: expected not found, got %v", err)
	}
}
