package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/vokzo/api/internal/models"
)

func seedCompletedBooking(store *fakeStore, id, customerID string) {
	store.bookings = append(store.bookings, &models.Booking{
		ID:         id,
		CustomerID: customerID,
		ProviderID: "prov-1",
		Status:     models.BookingStatusCompleted,
	})
}

func TestCreateReviewRecomputesRating(t *testing.T) {
	store := newFakeStore()
	seedProvider(store)
	seedCompletedBooking(store, "book-1", "cust-1")
	seedCompletedBooking(store, "book-2", "cust-1")
	seedCompletedBooking(store, "book-3", "cust-1")
	svc := NewReviewService(store, store, store)
	ctx := context.Background()
	customer := testCustomer()

	review, err := svc.Create(ctx, customer, &models.ReviewCreateRequest{
		BookingID:  "book-1",
		ProviderID: "prov-1",
		Rating:     5,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if review.CustomerName != "Asha Patel" {
		t.Errorf("customer name = %q", review.CustomerName)
	}

	provider, _ := store.GetProviderByID(ctx, "prov-1")
	if provider.Rating != 5 || provider.TotalReviews != 1 {
		t.Errorf("after one review: rating %v, reviews %d", provider.Rating, provider.TotalReviews)
	}

	if _, err := svc.Create(ctx, customer, &models.ReviewCreateRequest{
		BookingID:  "book-2",
		ProviderID: "prov-1",
		Rating:     4,
	}); err != nil {
		t.Fatalf("second review failed: %v", err)
	}
	if _, err := svc.Create(ctx, customer, &models.ReviewCreateRequest{
		BookingID:  "book-3",
		ProviderID: "prov-1",
		Rating:     4,
	}); err != nil {
		t.Fatalf("third review failed: %v", err)
	}

	// Mean of 5, 4, 4 is 4.333..., rounded to one decimal place.
	provider, _ = store.GetProviderByID(ctx, "prov-1")
	if provider.Rating != 4.3 {
		t.Errorf("rating = %v, want 4.3", provider.Rating)
	}
	if provider.TotalReviews != 3 {
		t.Errorf("total reviews = %d, want 3", provider.TotalReviews)
	}
}

func TestCreateReviewDuplicateBooking(t *testing.T) {
	store := newFakeStore()
	seedProvider(store)
	seedCompletedBooking(store, "book-1", "cust-1")
	svc := NewReviewService(store, store, store)
	ctx := context.Background()
	customer := testCustomer()

	req := &models.ReviewCreateRequest{BookingID: "book-1", ProviderID: "prov-1", Rating: 5}
	if _, err := svc.Create(ctx, customer, req); err != nil {
		t.Fatalf("first review failed: %v", err)
	}
	_, err := svc.Create(ctx, customer, req)
	wantAPIError(t, err, http.StatusBadRequest, "Review already exists for this booking")
}

func TestCreateReviewForeignBooking(t *testing.T) {
	store := newFakeStore()
	seedProvider(store)
	seedCompletedBooking(store, "book-1", "someone-else")
	svc := NewReviewService(store, store, store)

	_, err := svc.Create(context.Background(), testCustomer(), &models.ReviewCreateRequest{
		BookingID:  "book-1",
		ProviderID: "prov-1",
		Rating:     5,
	})
	wantAPIError(t, err, http.StatusNotFound, "Booking not found")
}
