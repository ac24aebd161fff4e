package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vokzo/api/internal/errs"
	"github.com/vokzo/api/internal/helpers"
	"github.com/vokzo/api/internal/models"
	"github.com/vokzo/api/internal/services"
)

// currentUser pulls the live user resolved by the auth middleware.
func currentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get("user")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return nil, false
	}
	user, ok := value.(*models.User)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user in context"})
		return nil, false
	}
	return user, true
}

func Signup(a *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.SignupRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
			return
		}

		result, err := a.Signup(c.Request.Context(), &req)
		if err != nil {
			errs.Abort(c, err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

func ProviderSignup(a *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.ProviderSignupRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
			return
		}

		result, err := a.ProviderSignup(c.Request.Context(), &req)
		if err != nil {
			errs.Abort(c, err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

func Login(a *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
			return
		}

		result, err := a.Login(c.Request.Context(), &req)
		if err != nil {
			errs.Abort(c, err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

func GetProfile(a *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			return
		}

		profile, err := a.Profile(c.Request.Context(), user)
		if err != nil {
			errs.Abort(c, err)
			return
		}
		c.JSON(http.StatusOK, profile)
	}
}

// UpdateCity takes the new city as a query parameter and overwrites the
// caller's own city unconditionally.
func UpdateCity(a *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			return
		}

		city := helpers.StringTrim(c.Query("city"))
		if err := a.UpdateCity(c.Request.Context(), user.ID, city); err != nil {
			errs.Abort(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "City updated", "city": city})
	}
}
