package supabase

import (
	"context"

	"myShopStack/domain"
)

const reviewTable = "review"

type ReviewRepository struct {
	client *Client
}

func NewReviewRepository(client *Client) *ReviewRepository {
	return &ReviewRepository{
		client: client,
	}
}

func (r *ReviewRepository) Insert(ctx context.Context, payload map[string]any) (domain.Review, error) {
	var rows []domain.Review
	if err := r.client.From(reviewTable).Insert(payload).Execute(ctx, &rows); err != nil {
		return domain.Review{}, domain.StorageError("review.insert", "Error submitting review", err)
	}
	if len(rows) == 0 {
		return domain.Review{}, domain.DomainError("Error submitting review: no row returned")
	}

	return rows[0], nil
}

func (r *ReviewRepository) FindByID(ctx context.Context, reviewID int) (domain.Review, error) {
	var rows []domain.Review
	if err := r.client.From(reviewTable).Select("*").Eq("review_id", reviewID).Execute(ctx, &rows); err != nil {
		return domain.Review{}, domain.StorageError("review.find", "Error retrieving review details", err)
	}
	if len(rows) == 0 {
		return domain.Review{}, domain.NotFoundError("Review not found")
	}

	return rows[0], nil
}

func (r *ReviewRepository) Update(ctx context.Context, reviewID int, payload map[string]any) (domain.Review, error) {
	var rows []domain.Review
	if err := r.client.From(reviewTable).Update(payload).Eq("review_id", reviewID).Execute(ctx, &rows); err != nil {
		return domain.Review{}, domain.StorageError("review.update", "Error updating review", err)
	}
	if len(rows) == 0 {
		return domain.Review{}, domain.NotFoundError("Review not found")
	}

	return rows[0], nil
}

func (r *ReviewRepository) Delete(ctx context.Context, reviewID int) error {
	var rows []domain.Review
	if err := r.client.From(reviewTable).Delete().Eq("review_id", reviewID).Execute(ctx, &rows); err != nil {
		return domain.StorageError("review.delete", "Error deleting review", err)
	}
	if len(rows) == 0 {
		return domain.NotFoundError("Review not found")
	}

	return nil
}

func (r *ReviewRepository) FindByProduct(ctx context.Context, productID int) ([]domain.Review, error) {
	var rows []domain.Review
	if err := r.client.From(reviewTable).Select("*").Eq("product_id", productID).Execute(ctx, &rows); err != nil {
		return nil, domain.StorageError("review.list", "Error retrieving product reviews", err)
	}
	if rows == nil {
		rows = []domain.Review{}
	}

	return rows, nil
}

func (r *ReviewRepository) FindByCustomer(ctx context.Context, customerID int) ([]domain.Review, error) {
	var rows []domain.Review
	if err := r.client.From(reviewTable).Select("*").Eq("customer_id", customerID).Execute(ctx, &rows); err != nil {
		return nil, domain.StorageError("review.list", "Error retrieving customer reviews", err)
	}
	if rows == nil {
		rows = []domain.Review{}
	}

	return rows, nil
}
