package supabase

import (
	"context"

	"myShopStack/domain"
)

const saleTable = "sale"

type SaleRepository struct {
	client *Client
}

func NewSaleRepository(client *Client) *SaleRepository {
	return &SaleRepository{
		client: client,
	}
}

func (r *SaleRepository) Insert(ctx context.Context, payload map[string]any) (domain.Sale, error) {
	var rows []domain.Sale
	if err := r.client.From(saleTable).Insert(payload).Execute(ctx, &rows); err != nil {
		return domain.Sale{}, domain.StorageError("sale.insert", "Error submitting sale", err)
	}
	if len(rows) == 0 {
		return domain.Sale{}, domain.DomainError("Error submitting sale: no row returned")
	}

	return rows[0], nil
}

func (r *SaleRepository) Update(ctx context.Context, saleID int, payload map[string]any) (domain.Sale, error) {
	var rows []domain.Sale
	if err := r.client.From(saleTable).Update(payload).Eq("sale_id", saleID).Execute(ctx, &rows); err != nil {
		return domain.Sale{}, domain.StorageError("sale.update", "Error updating sale", err)
	}
	if len(rows) == 0 {
		return domain.Sale{}, domain.NotFoundError("Sale not found")
	}

	return rows[0], nil
}

// Delete removes the sale and returns the deleted record.
func (r *SaleRepository) Delete(ctx context.Context, saleID int) (domain.Sale, error) {
	var rows []domain.Sale
	if err := r.client.From(saleTable).Delete().Eq("sale_id", saleID).Execute(ctx, &rows); err != nil {
		return domain.Sale{}, domain.StorageError("sale.delete", "Error deleting sale", err)
	}
	if len(rows) == 0 {
		return domain.Sale{}, domain.NotFoundError("Sale not found")
	}

	return rows[0], nil
}

func (r *SaleRepository) FindByCustomer(ctx context.Context, customerID int) ([]domain.Sale, error) {
	var rows []domain.Sale
	if err := r.client.From(saleTable).Select("*").Eq("customer_id", customerID).Execute(ctx, &rows); err != nil {
		return nil, domain.StorageError("sale.list", "Error retrieving sales", err)
	}
	if rows == nil {
		rows = []domain.Sale{}
	}

	return rows, nil
}

func (r *SaleRepository) FindAll(ctx context.Context) ([]domain.Sale, error) {
	var rows []domain.Sale
	if err := r.client.From(saleTable).Select("*").Execute(ctx, &rows); err != nil {
		return nil, domain.StorageError("sale.list", "Error retrieving available goods", err)
	}
	if rows == nil {
		rows = []domain.Sale{}
	}

	return rows, nil
}

func (r *SaleRepository) FindByID(ctx context.Context, saleID int) (domain.Sale, error) {
	var rows []domain.Sale
	if err := r.client.From(saleTable).Select("*").Eq("sale_id", saleID).Execute(ctx, &rows); err != nil {
		return domain.Sale{}, domain.StorageError("sale.find", "Error retrieving sale", err)
	}
	if len(rows) == 0 {
		return domain.Sale{}, domain.NotFoundError("Sale not found")
	}

	return rows[0], nil
}
