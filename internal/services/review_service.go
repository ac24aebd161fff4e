package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/vokzo/api/internal/errs"
	"github.com/vokzo/api/internal/helpers"
	"github.com/vokzo/api/internal/models"
)

type ReviewService struct {
	reviewRepo   models.ReviewRepo
	bookingRepo  models.BookingRepo
	providerRepo models.ProviderRepo
}

func NewReviewService(reviewRepo models.ReviewRepo, bookingRepo models.BookingRepo, providerRepo models.ProviderRepo) *ReviewService {
	return &ReviewService{
		reviewRepo:   reviewRepo,
		bookingRepo:  bookingRepo,
		providerRepo: providerRepo,
	}
}

// Create records a review for one of the caller's bookings, then rewrites
// the provider's rating as the mean of all its reviews. The two writes
// are not transactional; a concurrent review may briefly observe a stale
// average.
func (rs *ReviewService) Create(ctx context.Context, customer *models.User, req *models.ReviewCreateRequest) (*models.Review, error) {
	booking, err := rs.bookingRepo.GetBookingForCustomer(ctx, req.BookingID, customer.ID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, errs.NotFound("Booking not found")
	}

	existing, err := rs.reviewRepo.GetReviewByBookingID(ctx, req.BookingID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errs.Conflict("Review already exists for this booking")
	}

	review := &models.Review{
		ID:           uuid.New().String(),
		BookingID:    req.BookingID,
		CustomerID:   customer.ID,
		CustomerName: customer.FullName,
		ProviderID:   req.ProviderID,
		Rating:       req.Rating,
		Comment:      req.Comment,
		CreatedAt:    time.Now().UTC(),
	}
	if err := rs.reviewRepo.CreateReview(ctx, review); err != nil {
		return nil, err
	}

	if err := rs.recomputeRating(ctx, req.ProviderID); err != nil {
		return nil, err
	}
	return review, nil
}

// recomputeRating re-reads the full review set and overwrites the
// provider's rating and count unconditionally.
func (rs *ReviewService) recomputeRating(ctx context.Context, providerID string) error {
	reviews, err := rs.reviewRepo.ListReviewsByProvider(ctx, providerID, 0)
	if err != nil {
		return err
	}
	if len(reviews) == 0 {
		return nil
	}

	sum := 0
	for _, review := range reviews {
		sum += review.Rating
	}
	avg := helpers.RoundRating(float64(sum) / float64(len(reviews)))

	return rs.providerRepo.UpdateProviderRating(ctx, providerID, avg, len(reviews))
}
