package models

import (
	"context"
	"time"
)

type Provider struct {
	ID           string    `bson:"id" json:"id"`
	UserID       string    `bson:"user_id" json:"user_id"`
	FullName     string    `bson:"full_name" json:"full_name"`
	Email        string    `bson:"email" json:"email"`
	CategoryID   string    `bson:"category_id" json:"category_id"`
	SubServiceID string    `bson:"sub_service_id" json:"sub_service_id"`
	Experience   int       `bson:"experience" json:"experience"`
	BasePrice    float64   `bson:"base_price" json:"base_price"`
	Rating       float64   `bson:"rating" json:"rating"`
	TotalReviews int       `bson:"total_reviews" json:"total_reviews"`
	IsVerified   bool      `bson:"is_verified" json:"is_verified"`
	IsApproved   bool      `bson:"is_approved" json:"is_approved"`
	IsOnline     bool      `bson:"is_online" json:"is_online"`
	City         string    `bson:"city" json:"city"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}

// ProviderDetail is a Provider enriched with display names resolved from
// the catalog, and optionally its reviews.
type ProviderDetail struct {
	Provider
	CategoryName   *string   `json:"category_name"`
	SubServiceName *string   `json:"sub_service_name"`
	Reviews        []*Review `json:"reviews,omitempty"`
}

// ProviderFilter narrows public provider listings. Empty fields are
// ignored; supplied fields combine with logical AND.
type ProviderFilter struct {
	SubServiceID string
	CategoryID   string
	City         string
}

type ProviderRepo interface {
	CreateProvider(ctx context.Context, provider *Provider) error
	GetProviderByID(ctx context.Context, id string) (*Provider, error)
	GetProviderByUserID(ctx context.Context, userID string) (*Provider, error)
	ListProviders(ctx context.Context, filter ProviderFilter, approvedOnly bool) ([]*Provider, error)
	SetOnline(ctx context.Context, userID string, online bool) error
	ApproveProvider(ctx context.Context, id string) (int64, error)
	RejectProvider(ctx context.Context, id string) (int64, error)
	UpdateProviderRating(ctx context.Context, id string, rating float64, totalReviews int) error
	CountProviders(ctx context.Context, approved *bool) (int64, error)
	CountApprovedByCategory(ctx context.Context, categoryID string) (int64, error)
}
