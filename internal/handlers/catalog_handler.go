package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vokzo/api/internal/errs"
	"github.com/vokzo/api/internal/helpers"
	"github.com/vokzo/api/internal/models"
	"github.com/vokzo/api/internal/services"
)

func ListCategories(s *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := s.ListCategories(c.Request.Context())
		if err != nil {
			errs.Abort(c, err)
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}

func ListSubServicesByCategory(s *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		categoryID := helpers.StringTrim(c.Param("id"))
		subServices, err := s.ListSubServices(c.Request.Context(), categoryID)
		if err != nil {
			errs.Abort(c, err)
			return
		}
		c.JSON(http.StatusOK, subServices)
	}
}

func ListAllSubServices(s *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		subServices, err := s.ListSubServices(c.Request.Context(), "")
		if err != nil {
			errs.Abort(c, err)
			return
		}
		c.JSON(http.StatusOK, subServices)
	}
}

func SearchServices(s *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := s.Search(c.Request.Context(), c.Query("q"))
		if err != nil {
			errs.Abort(c, err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// ListCities serves the static city directory.
func ListCities() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, models.Cities())
	}
}
