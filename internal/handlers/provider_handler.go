package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vokzo/api/internal/errs"
	"github.com/vokzo/api/internal/helpers"
	"github.com/vokzo/api/internal/models"
	"github.com/vokzo/api/internal/services"
)

func ListProviders(p *services.ProviderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := models.ProviderFilter{
			SubServiceID: c.Query("sub_service_id"),
			CategoryID:   c.Query("category_id"),
			City:         c.Query("city"),
		}

		providers, err := p.List(c.Request.Context(), filter)
		if err != nil {
			errs.Abort(c, err)
			return
		}
		c.JSON(http.StatusOK, providers)
	}
}

func GetProvider(p *services.ProviderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		providerID := helpers.StringTrim(c.Param("id"))
		if providerID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "provider ID is required"})
			return
		}

		provider, err := p.Get(c.Request.Context(), providerID)
		if err != nil {
			errs.Abort(c, err)
			return
		}
		c.JSON(http.StatusOK, provider)
	}
}

func ToggleOnline(p *services.ProviderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			return
		}

		online, err := p.ToggleOnline(c.Request.Context(), user.ID)
		if err != nil {
			errs.Abort(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"is_online": online})
	}
}

func ProviderDashboardStats(p *services.ProviderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			return
		}

		stats, err := p.DashboardStats(c.Request.Context(), user.ID)
		if err != nil {
			errs.Abort(c, err)
			return
		}
		c.JSON(http.StatusOK, stats)
	}
}
