package services

import (
	"context"

	"github.com/vokzo/api/internal/errs"
	"github.com/vokzo/api/internal/models"
)

// providerReviewLimit caps the reviews embedded in a provider detail page.
const providerReviewLimit = 50

type ProviderService struct {
	providerRepo models.ProviderRepo
	catalogRepo  models.CatalogRepo
	bookingRepo  models.BookingRepo
	reviewRepo   models.ReviewRepo
}

func NewProviderService(providerRepo models.ProviderRepo, catalogRepo models.CatalogRepo, bookingRepo models.BookingRepo, reviewRepo models.ReviewRepo) *ProviderService {
	return &ProviderService{
		providerRepo: providerRepo,
		catalogRepo:  catalogRepo,
		bookingRepo:  bookingRepo,
		reviewRepo:   reviewRepo,
	}
}

// resolveNames looks up the category and sub-service display names for a
// provider. Missing references resolve to null rather than failing.
func (ps *ProviderService) resolveNames(ctx context.Context, provider *models.Provider) (*models.ProviderDetail, error) {
	detail := &models.ProviderDetail{Provider: *provider}

	category, err := ps.catalogRepo.GetCategoryByID(ctx, provider.CategoryID)
	if err != nil {
		return nil, err
	}
	if category != nil {
		detail.CategoryName = &category.Name
	}

	subService, err := ps.catalogRepo.GetSubServiceByID(ctx, provider.SubServiceID)
	if err != nil {
		return nil, err
	}
	if subService != nil {
		detail.SubServiceName = &subService.Name
	}

	return detail, nil
}

// List returns approved providers matching the filter, enriched with
// catalog display names.
func (ps *ProviderService) List(ctx context.Context, filter models.ProviderFilter) ([]*models.ProviderDetail, error) {
	providers, err := ps.providerRepo.ListProviders(ctx, filter, true)
	if err != nil {
		return nil, err
	}

	details := make([]*models.ProviderDetail, 0, len(providers))
	for _, provider := range providers {
		detail, err := ps.resolveNames(ctx, provider)
		if err != nil {
			return nil, err
		}
		details = append(details, detail)
	}
	return details, nil
}

// Get returns a provider whether approved or not, with its reviews.
func (ps *ProviderService) Get(ctx context.Context, id string) (*models.ProviderDetail, error) {
	provider, err := ps.providerRepo.GetProviderByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, errs.NotFound("Provider not found")
	}

	detail, err := ps.resolveNames(ctx, provider)
	if err != nil {
		return nil, err
	}

	reviews, err := ps.reviewRepo.ListReviewsByProvider(ctx, id, providerReviewLimit)
	if err != nil {
		return nil, err
	}
	detail.Reviews = reviews
	return detail, nil
}

// ToggleOnline flips the caller's availability flag and returns the new
// value.
func (ps *ProviderService) ToggleOnline(ctx context.Context, userID string) (bool, error) {
	provider, err := ps.providerRepo.GetProviderByUserID(ctx, userID)
	if err != nil {
		return false, err
	}
	if provider == nil {
		return false, errs.NotFound("Provider profile not found")
	}

	newStatus := !provider.IsOnline
	if err := ps.providerRepo.SetOnline(ctx, userID, newStatus); err != nil {
		return false, err
	}
	return newStatus, nil
}

type DashboardStats struct {
	Provider          *models.Provider `json:"provider"`
	TotalBookings     int64            `json:"total_bookings"`
	CompletedBookings int64            `json:"completed_bookings"`
	PendingBookings   int64            `json:"pending_bookings"`
	TotalEarnings     float64          `json:"total_earnings"`
}

func (ps *ProviderService) DashboardStats(ctx context.Context, userID string) (*DashboardStats, error) {
	provider, err := ps.providerRepo.GetProviderByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, errs.NotFound("Provider profile not found")
	}

	total, err := ps.bookingRepo.CountBookingsForProvider(ctx, provider.ID, "")
	if err != nil {
		return nil, err
	}
	completed, err := ps.bookingRepo.CountBookingsForProvider(ctx, provider.ID, models.BookingStatusCompleted)
	if err != nil {
		return nil, err
	}
	pending, err := ps.bookingRepo.CountBookingsForProvider(ctx, provider.ID, models.BookingStatusPending)
	if err != nil {
		return nil, err
	}
	earnings, err := ps.bookingRepo.SumProviderEarnings(ctx, provider.ID)
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		Provider:          provider,
		TotalBookings:     total,
		CompletedBookings: completed,
		PendingBookings:   pending,
		TotalEarnings:     earnings,
	}, nil
}
