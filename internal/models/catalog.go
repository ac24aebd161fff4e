package models

import "context"

// ServiceCategory is static reference data. ProviderCount is derived on
// read from the providers collection, never stored.
type ServiceCategory struct {
	ID            string `bson:"id" json:"id"`
	Name          string `bson:"name" json:"name"`
	Icon          string `bson:"icon" json:"icon"`
	Description   string `bson:"description" json:"description"`
	ProviderCount int64  `bson:"-" json:"provider_count"`
}

type SubService struct {
	ID          string `bson:"id" json:"id"`
	CategoryID  string `bson:"category_id" json:"category_id"`
	Name        string `bson:"name" json:"name"`
	Description string `bson:"description" json:"description"`
	Icon        string `bson:"icon" json:"icon"`
}

type CatalogRepo interface {
	ListCategories(ctx context.Context) ([]*ServiceCategory, error)
	GetCategoryByID(ctx context.Context, id string) (*ServiceCategory, error)
	ListSubServices(ctx context.Context, categoryID string) ([]*SubService, error)
	GetSubServiceByID(ctx context.Context, id string) (*SubService, error)
	SearchCategories(ctx context.Context, query string) ([]*ServiceCategory, error)
	SearchSubServices(ctx context.Context, query string) ([]*SubService, error)
	InsertCategory(ctx context.Context, category *ServiceCategory) error
	InsertSubService(ctx context.Context, subService *SubService) error
	DeleteCategory(ctx context.Context, id string) (int64, error)
	DeleteSubServicesByCategory(ctx context.Context, categoryID string) (int64, error)
	DeleteSubService(ctx context.Context, id string) (int64, error)
}
