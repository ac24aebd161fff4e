package services

import (
	"context"

	"github.com/vokzo/api/internal/errs"
	"github.com/vokzo/api/internal/helpers"
	"github.com/vokzo/api/internal/models"
)

type CatalogService struct {
	catalogRepo  models.CatalogRepo
	providerRepo models.ProviderRepo
}

func NewCatalogService(catalogRepo models.CatalogRepo, providerRepo models.ProviderRepo) *CatalogService {
	return &CatalogService{
		catalogRepo:  catalogRepo,
		providerRepo: providerRepo,
	}
}

// ListCategories annotates each category with a live count of approved
// providers. Computed per request, not cached.
func (cs *CatalogService) ListCategories(ctx context.Context) ([]*models.ServiceCategory, error) {
	categories, err := cs.catalogRepo.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	for _, category := range categories {
		count, err := cs.providerRepo.CountApprovedByCategory(ctx, category.ID)
		if err != nil {
			return nil, err
		}
		category.ProviderCount = count
	}
	return categories, nil
}

func (cs *CatalogService) ListSubServices(ctx context.Context, categoryID string) ([]*models.SubService, error) {
	return cs.catalogRepo.ListSubServices(ctx, categoryID)
}

type SearchResult struct {
	Categories  []*models.ServiceCategory `json:"categories"`
	SubServices []*models.SubService      `json:"sub_services"`
}

// Search is a case-insensitive substring match against category and
// sub-service name/description. No ranking or pagination.
func (cs *CatalogService) Search(ctx context.Context, query string) (*SearchResult, error) {
	query = helpers.StringTrim(query)
	if query == "" {
		return nil, errs.Validation("Search query is required")
	}

	categories, err := cs.catalogRepo.SearchCategories(ctx, query)
	if err != nil {
		return nil, err
	}
	subServices, err := cs.catalogRepo.SearchSubServices(ctx, query)
	if err != nil {
		return nil, err
	}
	return &SearchResult{Categories: categories, SubServices: subServices}, nil
}
