package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vokzo/api/internal/errs"
	"github.com/vokzo/api/internal/models"
	"github.com/vokzo/api/internal/services"
)

func CreateReview(r *services.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			return
		}

		var req models.ReviewCreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
			return
		}

		review, err := r.Create(c.Request.Context(), user, &req)
		if err != nil {
			errs.Abort(c, err)
			return
		}
		c.JSON(http.StatusOK, review)
	}
}
