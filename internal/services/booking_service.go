package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/vokzo/api/internal/errs"
	"github.com/vokzo/api/internal/models"
)

type BookingService struct {
	bookingRepo  models.BookingRepo
	providerRepo models.ProviderRepo
	catalogRepo  models.CatalogRepo
	settingsRepo models.SettingsRepo
}

func NewBookingService(bookingRepo models.BookingRepo, providerRepo models.ProviderRepo, catalogRepo models.CatalogRepo, settingsRepo models.SettingsRepo) *BookingService {
	return &BookingService{
		bookingRepo:  bookingRepo,
		providerRepo: providerRepo,
		catalogRepo:  catalogRepo,
		settingsRepo: settingsRepo,
	}
}

// Create books a provider for the calling customer. The price is the
// provider's base price, split into commission and provider earnings at
// the rate in effect right now; rate changes never touch this booking
// afterwards.
func (bs *BookingService) Create(ctx context.Context, customer *models.User, req *models.BookingCreateRequest) (*models.Booking, error) {
	provider, err := bs.providerRepo.GetProviderByID(ctx, req.ProviderID)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, errs.NotFound("Provider not found")
	}

	booking := &models.Booking{
		ID:           uuid.New().String(),
		CustomerID:   customer.ID,
		CustomerName: customer.FullName,
		ProviderID:   provider.ID,
		ProviderName: provider.FullName,
		SubServiceID: req.SubServiceID,
		BookingDate:  req.BookingDate,
		BookingTime:  req.BookingTime,
		Address:      req.Address,
		City:         req.City,
		Notes:        req.Notes,
		Status:       models.BookingStatusPending,
		BasePrice:    provider.BasePrice,
		CreatedAt:    time.Now().UTC(),
	}

	subService, err := bs.catalogRepo.GetSubServiceByID(ctx, req.SubServiceID)
	if err != nil {
		return nil, err
	}
	if subService != nil {
		booking.SubServiceName = &subService.Name
	}
	category, err := bs.catalogRepo.GetCategoryByID(ctx, provider.CategoryID)
	if err != nil {
		return nil, err
	}
	if category != nil {
		booking.CategoryName = &category.Name
	}

	rate, err := bs.settingsRepo.GetCommissionPercentage(ctx)
	if err != nil {
		return nil, err
	}
	booking.Commission = provider.BasePrice * rate / 100
	booking.ProviderEarnings = provider.BasePrice - booking.Commission

	if err := bs.bookingRepo.CreateBooking(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

func (bs *BookingService) Accept(ctx context.Context, userID, bookingID string) (string, error) {
	return bs.transition(ctx, userID, bookingID, models.BookingStatusAccepted)
}

func (bs *BookingService) Reject(ctx context.Context, userID, bookingID string) (string, error) {
	return bs.transition(ctx, userID, bookingID, models.BookingStatusRejected)
}

func (bs *BookingService) Complete(ctx context.Context, userID, bookingID string) (string, error) {
	return bs.transition(ctx, userID, bookingID, models.BookingStatusCompleted)
}

// transition moves a booking owned by the calling provider to the
// requested status, enforcing pending -> accepted/rejected and
// accepted -> completed.
func (bs *BookingService) transition(ctx context.Context, userID, bookingID, status string) (string, error) {
	provider, err := bs.providerRepo.GetProviderByUserID(ctx, userID)
	if err != nil {
		return "", err
	}
	if provider == nil {
		return "", errs.NotFound("Provider profile not found")
	}

	booking, err := bs.bookingRepo.GetBookingForProvider(ctx, bookingID, provider.ID)
	if err != nil {
		return "", err
	}
	if booking == nil {
		return "", errs.NotFound("Booking not found")
	}

	if !models.NextBookingStatus(booking.Status, status) {
		return "", errs.Conflict("Booking is " + booking.Status + ", cannot mark it " + status)
	}

	if err := bs.bookingRepo.UpdateBookingStatus(ctx, bookingID, status); err != nil {
		return "", err
	}
	return status, nil
}

func (bs *BookingService) ListForCustomer(ctx context.Context, customerID string) ([]*models.Booking, error) {
	return bs.bookingRepo.ListBookingsByCustomer(ctx, customerID)
}

func (bs *BookingService) ListForProvider(ctx context.Context, userID string) ([]*models.Booking, error) {
	provider, err := bs.providerRepo.GetProviderByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, errs.NotFound("Provider profile not found")
	}
	return bs.bookingRepo.ListBookingsByProvider(ctx, provider.ID)
}
