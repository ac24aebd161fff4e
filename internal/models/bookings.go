package models

import (
	"context"
	"time"
)

const (
	BookingStatusPending   = "pending"
	BookingStatusAccepted  = "accepted"
	BookingStatusRejected  = "rejected"
	BookingStatusCompleted = "completed"
)

// Booking is immutable after creation except for the status field.
// Commission and provider earnings are fixed at creation time from the
// rate in effect then; later rate changes never touch existing bookings.
type Booking struct {
	ID               string    `bson:"id" json:"id"`
	CustomerID       string    `bson:"customer_id" json:"customer_id"`
	CustomerName     string    `bson:"customer_name" json:"customer_name"`
	ProviderID       string    `bson:"provider_id" json:"provider_id"`
	ProviderName     string    `bson:"provider_name" json:"provider_name"`
	SubServiceID     string    `bson:"sub_service_id" json:"sub_service_id"`
	SubServiceName   *string   `bson:"sub_service_name" json:"sub_service_name"`
	CategoryName     *string   `bson:"category_name" json:"category_name"`
	BookingDate      string    `bson:"booking_date" json:"booking_date"`
	BookingTime      string    `bson:"booking_time" json:"booking_time"`
	Address          string    `bson:"address" json:"address"`
	City             string    `bson:"city" json:"city"`
	Notes            *string   `bson:"notes" json:"notes"`
	Status           string    `bson:"status" json:"status"`
	BasePrice        float64   `bson:"base_price" json:"base_price"`
	Commission       float64   `bson:"commission" json:"commission"`
	ProviderEarnings float64   `bson:"provider_earnings" json:"provider_earnings"`
	CreatedAt        time.Time `bson:"created_at" json:"created_at"`
}

// NextBookingStatus reports whether a booking in the current status may
// move to the requested one: pending may become accepted or rejected,
// accepted may become completed.
func NextBookingStatus(current, requested string) bool {
	switch requested {
	case BookingStatusAccepted, BookingStatusRejected:
		return current == BookingStatusPending
	case BookingStatusCompleted:
		return current == BookingStatusAccepted
	default:
		return false
	}
}

type BookingCreateRequest struct {
	ProviderID   string  `json:"provider_id" binding:"required"`
	SubServiceID string  `json:"sub_service_id" binding:"required"`
	BookingDate  string  `json:"booking_date" binding:"required"`
	BookingTime  string  `json:"booking_time" binding:"required"`
	Address      string  `json:"address" binding:"required"`
	City         string  `json:"city" binding:"required"`
	Notes        *string `json:"notes"`
}

type BookingRepo interface {
	CreateBooking(ctx context.Context, booking *Booking) error
	GetBookingForProvider(ctx context.Context, id, providerID string) (*Booking, error)
	GetBookingForCustomer(ctx context.Context, id, customerID string) (*Booking, error)
	UpdateBookingStatus(ctx context.Context, id, status string) error
	ListBookingsByCustomer(ctx context.Context, customerID string) ([]*Booking, error)
	ListBookingsByProvider(ctx context.Context, providerID string) ([]*Booking, error)
	ListAllBookings(ctx context.Context) ([]*Booking, error)
	CountBookings(ctx context.Context, status string) (int64, error)
	CountBookingsForProvider(ctx context.Context, providerID, status string) (int64, error)
	SumProviderEarnings(ctx context.Context, providerID string) (float64, error)
	SumCommission(ctx context.Context) (float64, error)
}
