package booking

import (
	"context"

	"venuedesk/models"
)

// BookingService exposes the booking-engine operations consumed by the
// HTTP handlers.
type BookingService interface {
	// CreateBooking validates the payload, resolves venue conflicts,
	// derives pricing and persists the record.
	CreateBooking(ctx context.Context, in models.BookingInput) (*models.Booking, error)
	// GetBooking retrieves a booking by ID.
	GetBooking(ctx context.Context, id string) (*models.Booking, error)
	// ListBookings retrieves all bookings.
	ListBookings(ctx context.Context) ([]models.Booking, error)
	// UpdateBooking overlays a partial payload on the stored record,
	// re-validates and re-resolves conflicts excluding the record itself,
	// re-derives pricing and persists the result.
	UpdateBooking(ctx context.Context, id string, upd models.BookingUpdate) (*models.Booking, error)
	// DeleteBooking removes a booking by ID.
	DeleteBooking(ctx context.Context, id string) error
}
