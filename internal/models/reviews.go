package models

import (
	"context"
	"fmt"
	"time"
)

// Review is tied 1:1 to a booking. Creating one triggers a full
// recomputation of the provider's rating and review count.
type Review struct {
	ID           string    `bson:"id" json:"id"`
	BookingID    string    `bson:"booking_id" json:"booking_id" validate:"required"`
	CustomerID   string    `bson:"customer_id" json:"customer_id"`
	CustomerName string    `bson:"customer_name" json:"customer_name"`
	ProviderID   string    `bson:"provider_id" json:"provider_id" validate:"required"`
	Rating       int       `bson:"rating" json:"rating" validate:"required,min=1,max=5"`
	Comment      *string   `bson:"comment" json:"comment"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}

func (r Review) ValidateReview() error {
	if err := Validate.Struct(r); err != nil {
		return fmt.Errorf("invalid review: %w", err)
	}
	return nil
}

type ReviewCreateRequest struct {
	BookingID  string  `json:"booking_id" binding:"required"`
	ProviderID string  `json:"provider_id" binding:"required"`
	Rating     int     `json:"rating" binding:"required,min=1,max=5"`
	Comment    *string `json:"comment"`
}

type ReviewRepo interface {
	CreateReview(ctx context.Context, review *Review) error
	GetReviewByBookingID(ctx context.Context, bookingID string) (*Review, error)
	ListReviewsByProvider(ctx context.Context, providerID string, limit int64) ([]*Review, error)
}
