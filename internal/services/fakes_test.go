package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"testing"

	"github.com/vokzo/api/internal/errs"
	"github.com/vokzo/api/internal/models"
)

// wantAPIError fails the test unless err carries the given status and
// message.
func wantAPIError(t *testing.T, err error, status int, message string) {
	t.Helper()
	var apiErr *errs.Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected API error, got %v", err)
	}
	if apiErr.Status != status {
		t.Errorf("status = %d, want %d", apiErr.Status, status)
	}
	if message != "" && apiErr.Message != message {
		t.Errorf("message = %q, want %q", apiErr.Message, message)
	}
}

// fakeStore is an in-memory stand-in for the Mongo repositories so
// service logic can be tested without a database.
type fakeStore struct {
	users       []*models.User
	providers   []*models.Provider
	categories  []*models.ServiceCategory
	subServices []*models.SubService
	bookings    []*models.Booking
	reviews     []*models.Review
	commission  *float64
}

func newFakeStore() *fakeStore {
	return &fakeStore{}
}

// UserRepo

func (f *fakeStore) CreateUser(ctx context.Context, user *models.User) error {
	for _, existing := range f.users {
		if existing.Email == user.Email {
			return fmt.Errorf("duplicate email")
		}
	}
	f.users = append(f.users, user)
	return nil
}

func (f *fakeStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	for _, user := range f.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) UpdateCity(ctx context.Context, id, city string) error {
	for _, user := range f.users {
		if user.ID == id {
			user.City = &city
		}
	}
	return nil
}

func (f *fakeStore) CountNonAdminUsers(ctx context.Context) (int64, error) {
	var count int64
	for _, user := range f.users {
		if user.Role != models.RoleAdmin {
			count++
		}
	}
	return count, nil
}

func (f *fakeStore) CountUsersByRole(ctx context.Context, role string) (int64, error) {
	var count int64
	for _, user := range f.users {
		if user.Role == role {
			count++
		}
	}
	return count, nil
}

// ProviderRepo

func (f *fakeStore) CreateProvider(ctx context.Context, provider *models.Provider) error {
	f.providers = append(f.providers, provider)
	return nil
}

func (f *fakeStore) GetProviderByID(ctx context.Context, id string) (*models.Provider, error) {
	for _, provider := range f.providers {
		if provider.ID == id {
			return provider, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) GetProviderByUserID(ctx context.Context, userID string) (*models.Provider, error) {
	for _, provider := range f.providers {
		if provider.UserID == userID {
			return provider, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) ListProviders(ctx context.Context, filter models.ProviderFilter, approvedOnly bool) ([]*models.Provider, error) {
	result := []*models.Provider{}
	for _, provider := range f.providers {
		if approvedOnly && !provider.IsApproved {
			continue
		}
		if filter.SubServiceID != "" && provider.SubServiceID != filter.SubServiceID {
			continue
		}
		if filter.CategoryID != "" && provider.CategoryID != filter.CategoryID {
			continue
		}
		if filter.City != "" && provider.City != filter.City {
			continue
		}
		result = append(result, provider)
	}
	return result, nil
}

func (f *fakeStore) SetOnline(ctx context.Context, userID string, online bool) error {
	for _, provider := range f.providers {
		if provider.UserID == userID {
			provider.IsOnline = online
		}
	}
	return nil
}

func (f *fakeStore) ApproveProvider(ctx context.Context, id string) (int64, error) {
	for _, provider := range f.providers {
		if provider.ID == id {
			if provider.IsApproved && provider.IsVerified {
				return 0, nil
			}
			provider.IsApproved = true
			provider.IsVerified = true
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeStore) RejectProvider(ctx context.Context, id string) (int64, error) {
	for _, provider := range f.providers {
		if provider.ID == id {
			if !provider.IsApproved {
				return 0, nil
			}
			provider.IsApproved = false
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeStore) UpdateProviderRating(ctx context.Context, id string, rating float64, totalReviews int) error {
	for _, provider := range f.providers {
		if provider.ID == id {
			provider.Rating = rating
			provider.TotalReviews = totalReviews
		}
	}
	return nil
}

func (f *fakeStore) CountProviders(ctx context.Context, approved *bool) (int64, error) {
	var count int64
	for _, provider := range f.providers {
		if approved != nil && provider.IsApproved != *approved {
			continue
		}
		count++
	}
	return count, nil
}

func (f *fakeStore) CountApprovedByCategory(ctx context.Context, categoryID string) (int64, error) {
	var count int64
	for _, provider := range f.providers {
		if provider.IsApproved && provider.CategoryID == categoryID {
			count++
		}
	}
	return count, nil
}

// CatalogRepo

func (f *fakeStore) ListCategories(ctx context.Context) ([]*models.ServiceCategory, error) {
	return f.categories, nil
}

func (f *fakeStore) GetCategoryByID(ctx context.Context, id string) (*models.ServiceCategory, error) {
	for _, category := range f.categories {
		if category.ID == id {
			return category, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) ListSubServices(ctx context.Context, categoryID string) ([]*models.SubService, error) {
	result := []*models.SubService{}
	for _, subService := range f.subServices {
		if categoryID != "" && subService.CategoryID != categoryID {
			continue
		}
		result = append(result, subService)
	}
	return result, nil
}

func (f *fakeStore) GetSubServiceByID(ctx context.Context, id string) (*models.SubService, error) {
	for _, subService := range f.subServices {
		if subService.ID == id {
			return subService, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) SearchCategories(ctx context.Context, query string) ([]*models.ServiceCategory, error) {
	result := []*models.ServiceCategory{}
	for _, category := range f.categories {
		if containsFold(category.Name, query) || containsFold(category.Description, query) {
			result = append(result, category)
		}
	}
	return result, nil
}

func (f *fakeStore) SearchSubServices(ctx context.Context, query string) ([]*models.SubService, error) {
	result := []*models.SubService{}
	for _, subService := range f.subServices {
		if containsFold(subService.Name, query) || containsFold(subService.Description, query) {
			result = append(result, subService)
		}
	}
	return result, nil
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func (f *fakeStore) InsertCategory(ctx context.Context, category *models.ServiceCategory) error {
	f.categories = append(f.categories, category)
	return nil
}

func (f *fakeStore) InsertSubService(ctx context.Context, subService *models.SubService) error {
	f.subServices = append(f.subServices, subService)
	return nil
}

func (f *fakeStore) DeleteCategory(ctx context.Context, id string) (int64, error) {
	var deleted int64
	kept := f.categories[:0]
	for _, category := range f.categories {
		if category.ID == id {
			deleted++
			continue
		}
		kept = append(kept, category)
	}
	f.categories = kept
	return deleted, nil
}

func (f *fakeStore) DeleteSubServicesByCategory(ctx context.Context, categoryID string) (int64, error) {
	var deleted int64
	kept := f.subServices[:0]
	for _, subService := range f.subServices {
		if subService.CategoryID == categoryID {
			deleted++
			continue
		}
		kept = append(kept, subService)
	}
	f.subServices = kept
	return deleted, nil
}

func (f *fakeStore) DeleteSubService(ctx context.Context, id string) (int64, error) {
	var deleted int64
	kept := f.subServices[:0]
	for _, subService := range f.subServices {
		if subService.ID == id {
			deleted++
			continue
		}
		kept = append(kept, subService)
	}
	f.subServices = kept
	return deleted, nil
}

// BookingRepo

func (f *fakeStore) CreateBooking(ctx context.Context, booking *models.Booking) error {
	f.bookings = append(f.bookings, booking)
	return nil
}

func (f *fakeStore) GetBookingForProvider(ctx context.Context, id, providerID string) (*models.Booking, error) {
	for _, booking := range f.bookings {
		if booking.ID == id && booking.ProviderID == providerID {
			return booking, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) GetBookingForCustomer(ctx context.Context, id, customerID string) (*models.Booking, error) {
	for _, booking := range f.bookings {
		if booking.ID == id && booking.CustomerID == customerID {
			return booking, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) UpdateBookingStatus(ctx context.Context, id, status string) error {
	for _, booking := range f.bookings {
		if booking.ID == id {
			booking.Status = status
		}
	}
	return nil
}

func (f *fakeStore) ListBookingsByCustomer(ctx context.Context, customerID string) ([]*models.Booking, error) {
	result := []*models.Booking{}
	for _, booking := range f.bookings {
		if booking.CustomerID == customerID {
			result = append(result, booking)
		}
	}
	sortNewestFirst(result)
	return result, nil
}

func (f *fakeStore) ListBookingsByProvider(ctx context.Context, providerID string) ([]*models.Booking, error) {
	result := []*models.Booking{}
	for _, booking := range f.bookings {
		if booking.ProviderID == providerID {
			result = append(result, booking)
		}
	}
	sortNewestFirst(result)
	return result, nil
}

func (f *fakeStore) ListAllBookings(ctx context.Context) ([]*models.Booking, error) {
	result := append([]*models.Booking{}, f.bookings...)
	sortNewestFirst(result)
	return result, nil
}

func sortNewestFirst(bookings []*models.Booking) {
	sort.Slice(bookings, func(i, j int) bool {
		return bookings[i].CreatedAt.After(bookings[j].CreatedAt)
	})
}

func (f *fakeStore) CountBookings(ctx context.Context, status string) (int64, error) {
	var count int64
	for _, booking := range f.bookings {
		if status != "" && booking.Status != status {
			continue
		}
		count++
	}
	return count, nil
}

func (f *fakeStore) CountBookingsForProvider(ctx context.Context, providerID, status string) (int64, error) {
	var count int64
	for _, booking := range f.bookings {
		if booking.ProviderID != providerID {
			continue
		}
		if status != "" && booking.Status != status {
			continue
		}
		count++
	}
	return count, nil
}

func (f *fakeStore) SumProviderEarnings(ctx context.Context, providerID string) (float64, error) {
	var total float64
	for _, booking := range f.bookings {
		if booking.ProviderID == providerID && booking.Status == models.BookingStatusCompleted {
			total += booking.ProviderEarnings
		}
	}
	return total, nil
}

func (f *fakeStore) SumCommission(ctx context.Context) (float64, error) {
	var total float64
	for _, booking := range f.bookings {
		if booking.Status == models.BookingStatusCompleted {
			total += booking.Commission
		}
	}
	return total, nil
}

// ReviewRepo

func (f *fakeStore) CreateReview(ctx context.Context, review *models.Review) error {
	for _, existing := range f.reviews {
		if existing.BookingID == review.BookingID {
			return fmt.Errorf("duplicate review")
		}
	}
	f.reviews = append(f.reviews, review)
	return nil
}

func (f *fakeStore) GetReviewByBookingID(ctx context.Context, bookingID string) (*models.Review, error) {
	for _, review := range f.reviews {
		if review.BookingID == bookingID {
			return review, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) ListReviewsByProvider(ctx context.Context, providerID string, limit int64) ([]*models.Review, error) {
	result := []*models.Review{}
	for _, review := range f.reviews {
		if review.ProviderID == providerID {
			result = append(result, review)
		}
		if limit > 0 && int64(len(result)) == limit {
			break
		}
	}
	return result, nil
}

// SettingsRepo

func (f *fakeStore) GetCommissionPercentage(ctx context.Context) (float64, error) {
	if f.commission == nil {
		return models.DefaultCommissionPercentage, nil
	}
	return *f.commission, nil
}

func (f *fakeStore) SetCommissionPercentage(ctx context.Context, percentage float64) error {
	f.commission = &percentage
	return nil
}
