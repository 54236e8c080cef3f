package booking

import (
	"context"
	"fmt"
	"time"

	"venuedesk/models"
)

// searchVenues returns the venue categories whose confirmed bookings can
// collide with a booking of the given category. The lawn and the banquet
// hall are independently schedulable; "Both" occupies them together.
func searchVenues(venueType string) []string {
	if venueType == models.VenueBoth {
		return []string{models.VenueLawn, models.VenueBanquet, models.VenueBoth}
	}
	return []string{venueType, models.VenueBoth}
}

// resolveConflict looks for one confirmed booking colliding with the
// candidate range and maps it to a ConflictError. Only a single
// representative collision is reported.
func (svc *DefaultBookingService) resolveConflict(ctx context.Context, start, end time.Time, venueType, excludeID string) error {
	existing, err := svc.Repo.FindOverlapping(ctx, start, end, searchVenues(venueType), excludeID)
	if err != nil {
		return &StorageError{Op: "conflict check", Err: err}
	}
	if existing == nil {
		return nil
	}

	if existing.VenueType == models.VenueBoth || venueType == models.VenueBoth {
		return &ConflictError{
			Code:    CodeVenueFullyBooked,
			Venue:   existing.VenueType,
			Message: fmt.Sprintf("The venue is fully booked for the selected dates (%s booking from %s to %s).", existing.VenueType, formatDate(existing.StartDate), formatDate(existing.EndDate)),
		}
	}
	return &ConflictError{
		Code:    CodeVenueAlreadyBooked,
		Venue:   existing.VenueType,
		Message: fmt.Sprintf("The %s is already booked for the selected date range.", existing.VenueType),
	}
}

func formatDate(t time.Time) string {
	return t.Format(models.DateLayout)
}
