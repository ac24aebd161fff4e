package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vokzo/api/internal/errs"
	"github.com/vokzo/api/internal/helpers"
	"github.com/vokzo/api/internal/services"
)

func AdminListProviders(a *services.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		providers, err := a.ListProviders(c.Request.Context())
		if err != nil {
			errs.Abort(c, err)
			return
		}
		c.JSON(http.StatusOK, providers)
	}
}

func AdminApproveProvider(a *services.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := a.ApproveProvider(c.Request.Context(), helpers.StringTrim(c.Param("id"))); err != nil {
			errs.Abort(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Provider approved"})
	}
}

func AdminRejectProvider(a *services.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := a.RejectProvider(c.Request.Context(), helpers.StringTrim(c.Param("id"))); err != nil {
			errs.Abort(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Provider rejected"})
	}
}

func AdminListBookings(a *services.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		bookings, err := a.ListBookings(c.Request.Context())
		if err != nil {
			errs.Abort(c, err)
			return
		}
		c.JSON(http.StatusOK, bookings)
	}
}

func AdminAnalytics(a *services.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		analytics, err := a.Analytics(c.Request.Context())
		if err != nil {
			errs.Abort(c, err)
			return
		}
		c.JSON(http.StatusOK, analytics)
	}
}

func AdminSetCommission(a *services.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			CommissionPercentage float64 `json:"commission_percentage" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
			return
		}

		if err := a.SetCommission(c.Request.Context(), req.CommissionPercentage); err != nil {
			errs.Abort(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Commission updated", "commission_percentage": req.CommissionPercentage})
	}
}

// AdminCreateCategory takes its fields as query parameters, matching the
// admin console's form submission.
func AdminCreateCategory(a *services.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		category, err := a.CreateCategory(c.Request.Context(), c.Query("name"), c.Query("icon"), c.Query("description"))
		if err != nil {
			errs.Abort(c, err)
			return
		}
		c.JSON(http.StatusOK, category)
	}
}

func AdminCreateSubService(a *services.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		subService, err := a.CreateSubService(c.Request.Context(), c.Query("category_id"), c.Query("name"), c.Query("description"), c.Query("icon"))
		if err != nil {
			errs.Abort(c, err)
			return
		}
		c.JSON(http.StatusOK, subService)
	}
}

func AdminDeleteCategory(a *services.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := a.DeleteCategory(c.Request.Context(), helpers.StringTrim(c.Param("id"))); err != nil {
			errs.Abort(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
	}
}

func AdminDeleteSubService(a *services.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := a.DeleteSubService(c.Request.Context(), helpers.StringTrim(c.Param("id"))); err != nil {
			errs.Abort(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Sub-service deleted"})
	}
}

// SeedData bootstraps the admin account, catalog and settings. Safe to
// call repeatedly.
func SeedData(a *services.AdminService, adminEmail, adminPassword string) gin.HandlerFunc {
	return func(c *gin.Context) {
		seeded, err := a.Seed(c.Request.Context(), adminEmail, adminPassword)
		if err != nil {
			errs.Abort(c, err)
			return
		}
		if !seeded {
			c.JSON(http.StatusOK, gin.H{"message": "Data already seeded"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Data seeded successfully"})
	}
}
