package supabase

import (
	"context"

	"myShopStack/domain"
)

const customerTable = "customer"

type CustomerRepository struct {
	client *Client
}

func NewCustomerRepository(client *Client) *CustomerRepository {
	return &CustomerRepository{
		client: client,
	}
}

func (r *CustomerRepository) Insert(ctx context.Context, payload map[string]any) (domain.Customer, error) {
	var rows []domain.Customer
	if err := r.client.From(customerTable).Insert(payload).Execute(ctx, &rows); err != nil {
		return domain.Customer{}, domain.StorageError("customer.insert", "Error registering customer", err)
	}
	if len(rows) == 0 {
		return domain.Customer{}, domain.DomainError("Error registering customer: no row returned")
	}

	return rows[0], nil
}

func (r *CustomerRepository) FindByUsername(ctx context.Context, username string) (domain.Customer, error) {
	var rows []domain.Customer
	if err := r.client.From(customerTable).Select("*").Eq("username", username).Execute(ctx, &rows); err != nil {
		return domain.Customer{}, domain.StorageError("customer.find", "Error retrieving customer", err)
	}
	if len(rows) == 0 {
		return domain.Customer{}, domain.NotFoundError("Customer not found")
	}

	return rows[0], nil
}

func (r *CustomerRepository) FindAll(ctx context.Context) ([]domain.Customer, error) {
	var rows []domain.Customer
	if err := r.client.From(customerTable).Select("*").Execute(ctx, &rows); err != nil {
		return nil, domain.StorageError("customer.list", "Error retrieving customers", err)
	}
	if rows == nil {
		rows = []domain.Customer{}
	}

	return rows, nil
}

func (r *CustomerRepository) Update(ctx context.Context, username string, payload map[string]any) (domain.Customer, error) {
	var rows []domain.Customer
	if err := r.client.From(customerTable).Update(payload).Eq("username", username).Execute(ctx, &rows); err != nil {
		return domain.Customer{}, domain.StorageError("customer.update", "Error updating customer", err)
	}
	if len(rows) == 0 {
		return domain.Customer{}, domain.NotFoundError("Customer not found")
	}

	return rows[0], nil
}

func (r *CustomerRepository) Delete(ctx context.Context, username string) error {
	var rows []domain.Customer
	if err := r.client.From(customerTable).Delete().Eq("username", username).Execute(ctx, &rows); err != nil {
		return domain.StorageError("customer.delete", "Error deleting customer", err)
	}
	if len(rows) == 0 {
		return domain.NotFoundError("Customer not found")
	}

	return nil
}

// UpdateWalletBalance writes next only if the stored balance still equals
// current, so two concurrent wallet mutations cannot both win; the loser
// matches zero rows and fails instead of overwriting.
func (r *CustomerRepository) UpdateWalletBalance(ctx context.Context, username string, current, next float64) (domain.Customer, error) {
	payload := map[string]any{"wallet_balance": next}

	var rows []domain.Customer
	err := r.client.From(customerTable).
		Update(payload).
		Eq("username", username).
		Eq("wallet_balance", current).
		Execute(ctx, &rows)
	if err != nil {
		return domain.Customer{}, domain.StorageError("customer.wallet", "Error updating wallet", err)
	}
	if len(rows) == 0 {
		return domain.Customer{}, domain.DomainError("Wallet balance changed concurrently, please retry")
	}

	return rows[0], nil
}
