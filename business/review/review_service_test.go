package review

import (
	"context"
	"errors"
	"testing"
	"time"

	"myShopStack/domain"
	"myShopStack/internal/validation"
)

type fakeRepo struct {
	reviews map[int]domain.Review
	nextID  int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{reviews: map[int]domain.Review{}, nextID: 1}
}

func (f *fakeRepo) Insert(_ context.Context, payload map[string]any) (domain.Review, error) {
	var date domain.Date
	if err := date.UnmarshalJSON([]byte(`"` + payload["review_date"].(string) + `"`)); err != nil {
		return domain.Review{}, err
	}
	r := domain.Review{
		ReviewID:   f.nextID,
		CustomerID: payload["customer_id"].(int),
		ProductID:  payload["product_id"].(int),
		Rating:     payload["rating"].(int),
		ReviewDate: date,
		Status:     payload["status"].(string),
	}
	if v, ok := payload["comment"]; ok {
		comment := v.(string)
		r.Comment = &comment
	}
	f.nextID++
	f.reviews[r.ReviewID] = r
	return r, nil
}

func (f *fakeRepo) FindByID(_ context.Context, reviewID int) (domain.Review, error) {
	r, ok := f.reviews[reviewID]
	if !ok {
		return domain.Review{}, domain.NotFoundError("Review not found")
	}
	return r, nil
}

func (f *fakeRepo) Update(_ context.Context, reviewID int, payload map[string]any) (domain.Review, error) {
	r, ok := f.reviews[reviewID]
	if !ok {
		return domain.Review{}, domain.NotFoundError("Review not found")
	}
	if v, ok := payload["rating"]; ok {
		r.Rating = v.(int)
	}
	if v, ok := payload["status"]; ok {
		r.Status = v.(string)
	}
	if v, ok := payload["comment"]; ok {
		comment := v.(string)
		r.Comment = &comment
	}
	f.reviews[reviewID] = r
	return r, nil
}

func (f *fakeRepo) Delete(_ context.Context, reviewID int) error {
	if _, ok := f.reviews[reviewID]; !ok {
		return domain.NotFoundError("Review not found")
	}
	delete(f.reviews, reviewID)
	return nil
}

func (f *fakeRepo) FindByProduct(_ context.Context, productID int) ([]domain.Review, error) {
	out := []domain.Review{}
	for _, r := range f.reviews {
		if r.ProductID == productID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRepo) FindByCustomer(_ context.Context, customerID int) ([]domain.Review, error) {
	out := []domain.Review{}
	for _, r := range f.reviews {
		if r.CustomerID == customerID {
			out = append(out, r)
		}
	}
	return out, nil
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func validSubmission() SubmitRequest {
	return SubmitRequest{
		CustomerID: intPtr(1),
		ProductID:  intPtr(7),
		Rating:     intPtr(4),
	}
}

func TestSubmitDefaultsDateAndStatus(t *testing.T) {
	svc := NewService(newFakeRepo(), validation.New())

	r, err := svc.Submit(context.Background(), validSubmission())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if r.Status != domain.ReviewStatusPending {
		t.Errorf("expected Pending status, got %q", r.Status)
	}
	if r.ReviewDate.String() != domain.Today().String() {
		t.Errorf("expected today's date, got %s", r.ReviewDate)
	}
}

func TestSubmitRejectsFutureDate(t *testing.T) {
	svc := NewService(newFakeRepo(), validation.New())

	tomorrow := domain.DateOf(time.Now().AddDate(0, 0, 1))
	req := validSubmission()
	req.ReviewDate = &tomorrow

	_, err := svc.Submit(context.Background(), req)

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if got := verr.Messages["review_date"]; len(got) != 1 || got[0] != "Review date cannot be in the future" {
		t.Errorf("unexpected messages: %v", got)
	}
}

func TestSubmitRatingBounds(t *testing.T) {
	svc := NewService(newFakeRepo(), validation.New())

	for _, rating := range []int{0, 6} {
		req := validSubmission()
		req.Rating = intPtr(rating)

		_, err := svc.Submit(context.Background(), req)

		var verr *domain.ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("rating %d: expected validation error, got %v", rating, err)
			continue
		}
		if got := verr.Messages["rating"]; len(got) != 1 || got[0] != "Rating must be between 1 and 5" {
			t.Errorf("rating %d: unexpected messages %v", rating, got)
		}
	}
}

func TestModerateSetsStatus(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, validation.New())

	r, err := svc.Submit(context.Background(), validSubmission())
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	moderated, err := svc.Moderate(context.Background(), r.ReviewID, ModerateRequest{Status: strPtr(domain.ReviewStatusApproved)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if moderated.Status != domain.ReviewStatusApproved {
		t.Errorf("expected Approved, got %q", moderated.Status)
	}
}

func TestModerateRejectsUnknownStatus(t *testing.T) {
	svc := NewService(newFakeRepo(), validation.New())

	_, err := svc.Moderate(context.Background(), 1, ModerateRequest{Status: strPtr("Published")})

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if got := verr.Messages["status"]; len(got) != 1 || got[0] != "Invalid review status" {
		t.Errorf("unexpected messages: %v", got)
	}
}

func TestDeleteUnknownReview(t *testing.T) {
	svc := NewService(newFakeRepo(), validation.New())

	if err := svc.Delete(context.Background(), 99); !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestGetProductReviewsFiltersByProduct(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, validation.New())

	first := validSubmission()
	second := validSubmission()
	second.ProductID = intPtr(8)

	if _, err := svc.Submit(context.Background(), first); err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if _, err := svc.Submit(context.Background(), second); err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	reviews, err := svc.GetProductReviews(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(reviews) != 1 || reviews[0].ProductID != 7 {
		t.Errorf("unexpected reviews: %+v", reviews)
	}
}
