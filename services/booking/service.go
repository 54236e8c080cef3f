package booking

import (
	"context"
	"time"

	bookingRepo "venuedesk/database/repository/booking"
	"venuedesk/models"

	"github.com/google/uuid"
)

// DefaultBookingService is the production implementation of BookingService.
// Cache is optional; when set, fetch and list results are served from it and
// every write invalidates the affected entries.
type DefaultBookingService struct {
	Repo   bookingRepo.BookingRepository
	Locker VenueLocker
	Cache  BookingCache
}

// CreateBooking runs the full creation pipeline: validation, conflict
// resolution under the venue lock, pricing derivation, then insert. Any
// failure aborts before the write so no partial record is ever stored.
func (svc *DefaultBookingService) CreateBooking(ctx context.Context, in models.BookingInput) (*models.Booking, error) {
	applyDefaults(&in)
	if err := ValidateInput(&in); err != nil {
		return nil, err
	}

	// Dates are known to parse once validation has passed.
	start, _ := models.ParseDate(in.StartDate)
	end, _ := models.ParseDate(in.EndDate)

	// Enquiry records are provisional holds; they neither block dates nor
	// get checked against confirmed bookings, so the lock is skipped too.
	if in.PaymentStatus != models.PaymentEnquiry {
		release, err := svc.Locker.Lock(ctx, in.VenueType)
		if err != nil {
			return nil, &StorageError{Op: "venue lock", Err: err}
		}
		defer release()

		if err := svc.resolveConflict(ctx, start, end, in.VenueType, ""); err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()
	booking := assemble(&in, start, end, CalculatePricing(&in, now))
	booking.ID = uuid.New().String()
	booking.CreatedAt = now
	booking.UpdatedAt = now

	if err := svc.Repo.Create(ctx, booking); err != nil {
		return nil, &StorageError{Op: "insert", Err: err}
	}
	if svc.Cache != nil {
		svc.Cache.Invalidate(ctx, booking.ID)
		svc.Cache.StoreBooking(ctx, booking)
	}
	return booking, nil
}

// GetBooking retrieves a booking by ID, preferring the cache.
func (svc *DefaultBookingService) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	if svc.Cache != nil {
		if cached := svc.Cache.GetBooking(ctx, id); cached != nil {
			return cached, nil
		}
	}
	existing, err := svc.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, &StorageError{Op: "fetch", Err: err}
	}
	if existing == nil {
		return nil, &NotFoundError{ID: id}
	}
	if svc.Cache != nil {
		svc.Cache.StoreBooking(ctx, existing)
	}
	return existing, nil
}

// ListBookings retrieves all bookings, preferring the cache.
func (svc *DefaultBookingService) ListBookings(ctx context.Context) ([]models.Booking, error) {
	if svc.Cache != nil {
		if cached := svc.Cache.GetBookings(ctx); cached != nil {
			return cached, nil
		}
	}
	bookings, err := svc.Repo.GetAll(ctx)
	if err != nil {
		return nil, &StorageError{Op: "list", Err: err}
	}
	if svc.Cache != nil && bookings != nil {
		svc.Cache.StoreBookings(ctx, bookings)
	}
	return bookings, nil
}

// UpdateBooking overlays the partial payload on the stored record and runs
// the same pipeline as creation, excluding the record from its own
// conflict check.
func (svc *DefaultBookingService) UpdateBooking(ctx context.Context, id string, upd models.BookingUpdate) (*models.Booking, error) {
	existing, err := svc.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, &StorageError{Op: "fetch", Err: err}
	}
	if existing == nil {
		return nil, &NotFoundError{ID: id}
	}

	in := existing.AsInput()
	upd.Apply(&in)
	applyDefaults(&in)
	if err := ValidateInput(&in); err != nil {
		return nil, err
	}

	start, _ := models.ParseDate(in.StartDate)
	end, _ := models.ParseDate(in.EndDate)

	if in.PaymentStatus != models.PaymentEnquiry {
		release, err := svc.Locker.Lock(ctx, in.VenueType)
		if err != nil {
			return nil, &StorageError{Op: "venue lock", Err: err}
		}
		defer release()

		if err := svc.resolveConflict(ctx, start, end, in.VenueType, id); err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()
	booking := assemble(&in, start, end, CalculatePricing(&in, now))
	booking.ID = existing.ID
	booking.CreatedAt = existing.CreatedAt
	booking.UpdatedAt = now

	matched, err := svc.Repo.Update(ctx, booking)
	if err != nil {
		return nil, &StorageError{Op: "update", Err: err}
	}
	if !matched {
		return nil, &NotFoundError{ID: id}
	}
	if svc.Cache != nil {
		svc.Cache.Invalidate(ctx, booking.ID)
		svc.Cache.StoreBooking(ctx, booking)
	}
	return booking, nil
}

// DeleteBooking removes a booking by ID. There are no cascading effects.
func (svc *DefaultBookingService) DeleteBooking(ctx context.Context, id string) error {
	deleted, err := svc.Repo.Delete(ctx, id)
	if err != nil {
		return &StorageError{Op: "delete", Err: err}
	}
	if !deleted {
		return &NotFoundError{ID: id}
	}
	if svc.Cache != nil {
		svc.Cache.Invalidate(ctx, id)
	}
	return nil
}

// applyDefaults fills the schema defaults for fields the client may omit.
func applyDefaults(in *models.BookingInput) {
	if in.PaymentStatus == "" {
		in.PaymentStatus = models.PaymentBooked
	}
	if in.CateringOption == "" {
		in.CateringOption = models.OptionNo
	}
	if in.PackageAddonOption == "" {
		in.PackageAddonOption = models.OptionNo
	}
}

// assemble builds the persisted record from the validated payload and the
// derived pricing block.
func assemble(in *models.BookingInput, start, end time.Time, pricing Pricing) *models.Booking {
	items := in.Items
	if items == nil {
		items = []models.LineItem{}
	}
	return &models.Booking{
		VenueType:       in.VenueType,
		EventType:       in.EventType,
		Groom:           in.Groom,
		Bride:           in.Bride,
		CustomerName:    in.CustomerName,
		CustomerAddress: in.CustomerAddress,
		CustomerNumber:  in.CustomerNumber,
		CustomerNumber2: in.CustomerNumber2,
		StartDate:       start,
		EndDate:         end,
		PackageType:     in.PackageType,
		Items:           items,

		TotalAmount:       pricing.TotalAmount,
		DiscountAmount:    pricing.DiscountAmount,
		FinalPrice:        pricing.FinalPrice,
		AdvancePaid:       pricing.AdvancePaid,
		AdditionalAmounts: pricing.Charges,
		RemainingAmount:   pricing.RemainingAmount,

		PaymentStatus: in.PaymentStatus,

		CateringOption:     in.CateringOption,
		CateringItems:      gateItems(in.CateringOption, in.CateringItems),
		PackageAddonOption: in.PackageAddonOption,
		PackageAddonItems:  gateItems(in.PackageAddonOption, in.PackageAddonItems),

		CheckDetails: in.CheckDetails,
		Notes:        in.Notes,
	}
}
