package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vokzo/api/internal/errs"
	"github.com/vokzo/api/internal/helpers"
	"github.com/vokzo/api/internal/models"
	"github.com/vokzo/api/internal/services"
)

func CreateBooking(b *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			return
		}

		var req models.BookingCreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
			return
		}

		booking, err := b.Create(c.Request.Context(), user, &req)
		if err != nil {
			errs.Abort(c, err)
			return
		}
		c.JSON(http.StatusOK, booking)
	}
}

func ListCustomerBookings(b *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			return
		}

		bookings, err := b.ListForCustomer(c.Request.Context(), user.ID)
		if err != nil {
			errs.Abort(c, err)
			return
		}
		c.JSON(http.StatusOK, bookings)
	}
}

func ListProviderBookings(b *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			return
		}

		bookings, err := b.ListForProvider(c.Request.Context(), user.ID)
		if err != nil {
			errs.Abort(c, err)
			return
		}
		c.JSON(http.StatusOK, bookings)
	}
}

func AcceptBooking(b *services.BookingService) gin.HandlerFunc {
	return transitionHandler(b.Accept, "Booking accepted")
}

func RejectBooking(b *services.BookingService) gin.HandlerFunc {
	return transitionHandler(b.Reject, "Booking rejected")
}

func CompleteBooking(b *services.BookingService) gin.HandlerFunc {
	return transitionHandler(b.Complete, "Booking completed")
}

func transitionHandler(transition func(ctx context.Context, userID, bookingID string) (string, error), message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			return
		}

		bookingID := helpers.StringTrim(c.Param("id"))
		if bookingID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "booking ID is required"})
			return
		}

		status, err := transition(c.Request.Context(), user.ID, bookingID)
		if err != nil {
			errs.Abort(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": message, "status": status})
	}
}
