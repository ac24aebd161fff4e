package container

import (
	"log/slog"

	"github.com/vokzo/api/internal/config"
	"github.com/vokzo/api/internal/models"
	"github.com/vokzo/api/internal/services"
	"go.mongodb.org/mongo-driver/mongo"
)

// Container holds all application dependencies
type Container struct {
	Logger        *slog.Logger
	Config        *config.Config
	MongoDBClient *mongo.Client

	AuthService     *services.AuthService
	CatalogService  *services.CatalogService
	ProviderService *services.ProviderService
	BookingService  *services.BookingService
	ReviewService   *services.ReviewService
	AdminService    *services.AdminService
}

// NewContainer creates a new dependency injection container
func NewContainer(logger *slog.Logger, cfg *config.Config, mongoDBClient *mongo.Client) *Container {
	repo := models.MongodbNewRepo(mongoDBClient, cfg.DBName)

	authService := services.NewAuthService(repo, repo, cfg.JWTSecret)
	catalogService := services.NewCatalogService(repo, repo)
	providerService := services.NewProviderService(repo, repo, repo, repo)
	bookingService := services.NewBookingService(repo, repo, repo, repo)
	reviewService := services.NewReviewService(repo, repo, repo)
	adminService := services.NewAdminService(repo, repo, repo, repo, repo)

	return &Container{
		Logger:          logger,
		Config:          cfg,
		MongoDBClient:   mongoDBClient,
		AuthService:     authService,
		CatalogService:  catalogService,
		ProviderService: providerService,
		BookingService:  bookingService,
		ReviewService:   reviewService,
		AdminService:    adminService,
	}
}
