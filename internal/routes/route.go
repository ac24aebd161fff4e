package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/vokzo/api/internal/container"
	"github.com/vokzo/api/internal/handlers"
	"github.com/vokzo/api/internal/middleware"
	"github.com/vokzo/api/internal/models"
)

// SetupRoutes configures all routes with the dependency container
func SetupRoutes(c *container.Container) *gin.Engine {
	if c.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     c.Config.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	// Add middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(c.Logger))
	r.Use(middleware.ErrorHandler(c.Logger))
	r.Use(gin.Recovery())

	authRequired := middleware.AuthMiddleware(c.AuthService, c.Config.JWTSecret)
	providerOnly := middleware.RequireRole(models.RoleProvider)
	adminOnly := middleware.RequireRole(models.RoleAdmin)

	api := r.Group("/api")
	{
		// Health check
		api.GET("/health", func(ctx *gin.Context) {
			ctx.JSON(200, gin.H{
				"status":  "OK",
				"service": "vokzo-api",
			})
		})

		auth := api.Group("/auth")
		{
			auth.POST("/signup", handlers.Signup(c.AuthService))
			auth.POST("/provider-signup", handlers.ProviderSignup(c.AuthService))
			auth.POST("/login", handlers.Login(c.AuthService))
			auth.GET("/me", authRequired, handlers.GetProfile(c.AuthService))
			auth.PUT("/update-city", authRequired, handlers.UpdateCity(c.AuthService))
		}

		services := api.Group("/services")
		{
			services.GET("/categories", handlers.ListCategories(c.CatalogService))
			services.GET("/categories/:id/sub-services", handlers.ListSubServicesByCategory(c.CatalogService))
			services.GET("/sub-services", handlers.ListAllSubServices(c.CatalogService))
			services.GET("/search", handlers.SearchServices(c.CatalogService))
		}

		providers := api.Group("/providers")
		{
			providers.GET("", handlers.ListProviders(c.ProviderService))
			providers.PUT("/toggle-online", authRequired, providerOnly, handlers.ToggleOnline(c.ProviderService))
			providers.GET("/dashboard/stats", authRequired, providerOnly, handlers.ProviderDashboardStats(c.ProviderService))
			providers.GET("/:id", handlers.GetProvider(c.ProviderService))
		}

		bookings := api.Group("/bookings", authRequired)
		{
			bookings.POST("", handlers.CreateBooking(c.BookingService))
			bookings.GET("/customer", handlers.ListCustomerBookings(c.BookingService))
			bookings.GET("/provider", providerOnly, handlers.ListProviderBookings(c.BookingService))
			bookings.PUT("/:id/accept", providerOnly, handlers.AcceptBooking(c.BookingService))
			bookings.PUT("/:id/reject", providerOnly, handlers.RejectBooking(c.BookingService))
			bookings.PUT("/:id/complete", providerOnly, handlers.CompleteBooking(c.BookingService))
		}

		api.POST("/reviews", authRequired, handlers.CreateReview(c.ReviewService))

		admin := api.Group("/admin", authRequired, adminOnly)
		{
			admin.GET("/providers", handlers.AdminListProviders(c.AdminService))
			admin.PUT("/providers/:id/approve", handlers.AdminApproveProvider(c.AdminService))
			admin.PUT("/providers/:id/reject", handlers.AdminRejectProvider(c.AdminService))
			admin.GET("/bookings", handlers.AdminListBookings(c.AdminService))
			admin.GET("/analytics", handlers.AdminAnalytics(c.AdminService))
			admin.PUT("/settings/commission", handlers.AdminSetCommission(c.AdminService))
			admin.POST("/categories", handlers.AdminCreateCategory(c.AdminService))
			admin.DELETE("/categories/:id", handlers.AdminDeleteCategory(c.AdminService))
			admin.POST("/sub-services", handlers.AdminCreateSubService(c.AdminService))
			admin.DELETE("/sub-services/:id", handlers.AdminDeleteSubService(c.AdminService))
		}

		api.GET("/cities", handlers.ListCities())
		api.POST("/seed", handlers.SeedData(c.AdminService, c.Config.AdminEmail, c.Config.AdminPassword))
	}

	return r
}
