package bookingRepo

import (
	"context"
	"time"

	"venuedesk/models"
)

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// Create inserts a new booking record.
	Create(ctx context.Context, booking *models.Booking) error
	// GetByID retrieves a booking by its unique ID; nil when not found.
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	// GetAll retrieves all bookings.
	GetAll(ctx context.Context) ([]models.Booking, error)
	// Update replaces an existing booking record. The returned bool reports
	// whether a record with the booking's ID existed.
	Update(ctx context.Context, booking *models.Booking) (bool, error)
	// Delete removes a booking record by its ID. The returned bool reports
	// whether a record was deleted.
	Delete(ctx context.Context, id string) (bool, error)
	// FindOverlapping returns one confirmed booking (paymentStatus != Enquiry)
	// in any of the given venue categories whose inclusive date range
	// intersects [start, end], skipping excludeID; nil when none exists.
	FindOverlapping(ctx context.Context, start, end time.Time, venueTypes []string, excludeID string) (*models.Booking, error)
}
