package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/vokzo/api/internal/errs"
	"github.com/vokzo/api/internal/helpers"
	"github.com/vokzo/api/internal/models"
)

type AdminService struct {
	userRepo     models.UserRepo
	providerRepo models.ProviderRepo
	bookingRepo  models.BookingRepo
	catalogRepo  models.CatalogRepo
	settingsRepo models.SettingsRepo
}

func NewAdminService(userRepo models.UserRepo, providerRepo models.ProviderRepo, bookingRepo models.BookingRepo, catalogRepo models.CatalogRepo, settingsRepo models.SettingsRepo) *AdminService {
	return &AdminService{
		userRepo:     userRepo,
		providerRepo: providerRepo,
		bookingRepo:  bookingRepo,
		catalogRepo:  catalogRepo,
		settingsRepo: settingsRepo,
	}
}

// ListProviders returns every provider, approved or not, with catalog
// display names resolved.
func (as *AdminService) ListProviders(ctx context.Context) ([]*models.ProviderDetail, error) {
	providers, err := as.providerRepo.ListProviders(ctx, models.ProviderFilter{}, false)
	if err != nil {
		return nil, err
	}

	details := make([]*models.ProviderDetail, 0, len(providers))
	for _, provider := range providers {
		detail := &models.ProviderDetail{Provider: *provider}

		category, err := as.catalogRepo.GetCategoryByID(ctx, provider.CategoryID)
		if err != nil {
			return nil, err
		}
		if category != nil {
			detail.CategoryName = &category.Name
		}
		subService, err := as.catalogRepo.GetSubServiceByID(ctx, provider.SubServiceID)
		if err != nil {
			return nil, err
		}
		if subService != nil {
			detail.SubServiceName = &subService.Name
		}
		details = append(details, detail)
	}
	return details, nil
}

// ApproveProvider and RejectProvider treat a no-op update the same as a
// missing provider: approving an already-approved provider is a 404.
func (as *AdminService) ApproveProvider(ctx context.Context, id string) error {
	modified, err := as.providerRepo.ApproveProvider(ctx, id)
	if err != nil {
		return err
	}
	if modified == 0 {
		return errs.NotFound("Provider not found")
	}
	return nil
}

func (as *AdminService) RejectProvider(ctx context.Context, id string) error {
	modified, err := as.providerRepo.RejectProvider(ctx, id)
	if err != nil {
		return err
	}
	if modified == 0 {
		return errs.NotFound("Provider not found")
	}
	return nil
}

func (as *AdminService) ListBookings(ctx context.Context) ([]*models.Booking, error) {
	return as.bookingRepo.ListAllBookings(ctx)
}

type Analytics struct {
	TotalUsers           int64   `json:"total_users"`
	TotalCustomers       int64   `json:"total_customers"`
	TotalProviders       int64   `json:"total_providers"`
	ApprovedProviders    int64   `json:"approved_providers"`
	PendingProviders     int64   `json:"pending_providers"`
	TotalBookings        int64   `json:"total_bookings"`
	PendingBookings      int64   `json:"pending_bookings"`
	CompletedBookings    int64   `json:"completed_bookings"`
	TotalRevenue         float64 `json:"total_revenue"`
	CommissionPercentage float64 `json:"commission_percentage"`
}

func (as *AdminService) Analytics(ctx context.Context) (*Analytics, error) {
	analytics := &Analytics{}
	var err error

	if analytics.TotalUsers, err = as.userRepo.CountNonAdminUsers(ctx); err != nil {
		return nil, err
	}
	if analytics.TotalCustomers, err = as.userRepo.CountUsersByRole(ctx, models.RoleCustomer); err != nil {
		return nil, err
	}
	if analytics.TotalProviders, err = as.providerRepo.CountProviders(ctx, nil); err != nil {
		return nil, err
	}
	approved, notApproved := true, false
	if analytics.ApprovedProviders, err = as.providerRepo.CountProviders(ctx, &approved); err != nil {
		return nil, err
	}
	if analytics.PendingProviders, err = as.providerRepo.CountProviders(ctx, &notApproved); err != nil {
		return nil, err
	}
	if analytics.TotalBookings, err = as.bookingRepo.CountBookings(ctx, ""); err != nil {
		return nil, err
	}
	if analytics.PendingBookings, err = as.bookingRepo.CountBookings(ctx, models.BookingStatusPending); err != nil {
		return nil, err
	}
	if analytics.CompletedBookings, err = as.bookingRepo.CountBookings(ctx, models.BookingStatusCompleted); err != nil {
		return nil, err
	}
	if analytics.TotalRevenue, err = as.bookingRepo.SumCommission(ctx); err != nil {
		return nil, err
	}
	if analytics.CommissionPercentage, err = as.settingsRepo.GetCommissionPercentage(ctx); err != nil {
		return nil, err
	}
	return analytics, nil
}

// SetCommission upserts the singleton rate. Only bookings created after
// the change pick it up.
func (as *AdminService) SetCommission(ctx context.Context, percentage float64) error {
	if percentage < 0 || percentage > 100 {
		return errs.Validation("Commission percentage must be between 0 and 100")
	}
	return as.settingsRepo.SetCommissionPercentage(ctx, percentage)
}

func (as *AdminService) CreateCategory(ctx context.Context, name, icon, description string) (*models.ServiceCategory, error) {
	if helpers.StringTrim(name) == "" {
		return nil, errs.Validation("Category name is required")
	}
	category := &models.ServiceCategory{
		ID:          uuid.New().String(),
		Name:        name,
		Icon:        icon,
		Description: description,
	}
	if err := as.catalogRepo.InsertCategory(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (as *AdminService) CreateSubService(ctx context.Context, categoryID, name, description, icon string) (*models.SubService, error) {
	if helpers.StringTrim(name) == "" {
		return nil, errs.Validation("Sub-service name is required")
	}
	subService := &models.SubService{
		ID:          uuid.New().String(),
		CategoryID:  categoryID,
		Name:        name,
		Description: description,
		Icon:        icon,
	}
	if err := as.catalogRepo.InsertSubService(ctx, subService); err != nil {
		return nil, err
	}
	return subService, nil
}

// DeleteCategory cascades to the sub-services referencing it.
func (as *AdminService) DeleteCategory(ctx context.Context, id string) error {
	if _, err := as.catalogRepo.DeleteCategory(ctx, id); err != nil {
		return err
	}
	_, err := as.catalogRepo.DeleteSubServicesByCategory(ctx, id)
	return err
}

// DeleteSubService removes only that record; bookings and providers
// referencing it are left as-is.
func (as *AdminService) DeleteSubService(ctx context.Context, id string) error {
	_, err := as.catalogRepo.DeleteSubService(ctx, id)
	return err
}

// Seed bootstraps the admin account, the catalog and the settings
// singleton. No-op when an admin already exists.
func (as *AdminService) Seed(ctx context.Context, adminEmail, adminPassword string) (bool, error) {
	count, err := as.userRepo.CountUsersByRole(ctx, models.RoleAdmin)
	if err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}
	if adminPassword == "" {
		return false, errs.Validation("Admin bootstrap password is not configured")
	}

	hash, err := helpers.HashPassword(adminPassword)
	if err != nil {
		return false, err
	}
	admin := &models.User{
		ID:        uuid.New().String(),
		FullName:  "Admin",
		Email:     adminEmail,
		Password:  hash,
		Role:      models.RoleAdmin,
		CreatedAt: time.Now().UTC(),
	}
	if err := as.userRepo.CreateUser(ctx, admin); err != nil {
		return false, err
	}

	for _, category := range models.SeedCategories() {
		if err := as.catalogRepo.InsertCategory(ctx, category); err != nil {
			return false, err
		}
	}
	for _, subService := range models.SeedSubServices() {
		if err := as.catalogRepo.InsertSubService(ctx, subService); err != nil {
			return false, err
		}
	}
	if err := as.settingsRepo.SetCommissionPercentage(ctx, models.DefaultCommissionPercentage); err != nil {
		return false, err
	}
	return true, nil
}
