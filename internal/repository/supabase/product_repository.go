package supabase

import (
	"context"

	"myShopStack/domain"
)

const productTable = "product"

type ProductRepository struct {
	client *Client
}

func NewProductRepository(client *Client) *ProductRepository {
	return &ProductRepository{
		client: client,
	}
}

func (r *ProductRepository) Insert(ctx context.Context, payload map[string]any) (domain.Product, error) {
	var rows []domain.Product
	if err := r.client.From(productTable).Insert(payload).Execute(ctx, &rows); err != nil {
		return domain.Product{}, domain.StorageError("product.insert", "Error adding product", err)
	}
	if len(rows) == 0 {
		return domain.Product{}, domain.DomainError("Error adding product: no row returned")
	}

	return rows[0], nil
}

func (r *ProductRepository) FindByID(ctx context.Context, productID int) (domain.Product, error) {
	var rows []domain.Product
	if err := r.client.From(productTable).Select("*").Eq("product_id", productID).Execute(ctx, &rows); err != nil {
		return domain.Product{}, domain.StorageError("product.find", "Error retrieving product", err)
	}
	if len(rows) == 0 {
		return domain.Product{}, domain.NotFoundError("Product not found")
	}

	return rows[0], nil
}

func (r *ProductRepository) Update(ctx context.Context, productID int, payload map[string]any) (domain.Product, error) {
	var rows []domain.Product
	if err := r.client.From(productTable).Update(payload).Eq("product_id", productID).Execute(ctx, &rows); err != nil {
		return domain.Product{}, domain.StorageError("product.update", "Error updating product", err)
	}
	if len(rows) == 0 {
		return domain.Product{}, domain.NotFoundError("Product not found")
	}

	return rows[0], nil
}

// UpdateStockCount decrements through a conditional write: the update only
// matches while the stored stock_count still equals current.
func (r *ProductRepository) UpdateStockCount(ctx context.Context, productID, current, next int) (domain.Product, error) {
	payload := map[string]any{"stock_count": next}

	var rows []domain.Product
	err := r.client.From(productTable).
		Update(payload).
		Eq("product_id", productID).
		Eq("stock_count", current).
		Execute(ctx, &rows)
	if err != nil {
		return domain.Product{}, domain.StorageError("product.stock", "Error deducting product", err)
	}
	if len(rows) == 0 {
		return domain.Product{}, domain.DomainError("Stock count changed concurrently, please retry")
	}

	return rows[0], nil
}
