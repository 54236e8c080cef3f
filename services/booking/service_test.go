package booking

import (
	"context"
	"slices"
	"sync"
	"testing"
	"time"

	"venuedesk/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryRepo is an in-memory BookingRepository used to exercise the service
// pipeline without MongoDB.
type memoryRepo struct {
	mu           sync.Mutex
	bookings     []models.Booking
	getByIDCalls int
	getAllCalls  int
}

func (m *memoryRepo) Create(_ context.Context, b *models.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.bookings = append(m.bookings, *b)
	return nil
}

func (m *memoryRepo) GetByID(_ context.Context, id string) (*models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.getByIDCalls++
	for i := range m.bookings {
		if m.bookings[i].ID == id {
			b := m.bookings[i]
			return &b, nil
		}
	}
	return nil, nil
}

func (m *memoryRepo) GetAll(_ context.Context) ([]models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.getAllCalls++
	return append([]models.Booking(nil), m.bookings...), nil
}

func (m *memoryRepo) Update(_ context.Context, b *models.Booking) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.bookings {
		if m.bookings[i].ID == b.ID {
			m.bookings[i] = *b
			return true, nil
		}
	}
	return false, nil
}

func (m *memoryRepo) Delete(_ context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.bookings {
		if m.bookings[i].ID == id {
			m.bookings = append(m.bookings[:i], m.bookings[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (m *memoryRepo) FindOverlapping(_ context.Context, start, end time.Time, venueTypes []string, excludeID string) (*models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.bookings {
		b := m.bookings[i]
		if b.ID == excludeID || b.PaymentStatus == models.PaymentEnquiry {
			continue
		}
		if !slices.Contains(venueTypes, b.VenueType) {
			continue
		}
		if !b.StartDate.After(end) && !b.EndDate.Before(start) {
			return &b, nil
		}
	}
	return nil, nil
}

// noopLocker skips advisory locking in tests.
type noopLocker struct{}

func (noopLocker) Lock(context.Context, string) (func(), error) { return func() {}, nil }

func newTestService() (*DefaultBookingService, *memoryRepo) {
	repo := &memoryRepo{}
	return &DefaultBookingService{Repo: repo, Locker: noopLocker{}}, repo
}

func lawnInput(start, end string) models.BookingInput {
	in := validInput()
	in.StartDate = start
	in.EndDate = end
	return in
}

func requireConflictCode(t *testing.T, err error, code, venue string) {
	t.Helper()
	require.Error(t, err)
	var cErr *ConflictError
	require.ErrorAs(t, err, &cErr)
	assert.Equal(t, code, cErr.Code)
	assert.Equal(t, venue, cErr.Venue)
}

func TestCreateBookingPersistsDerivedFields(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	in := lawnInput("2024-06-01", "2024-06-02")
	in.TotalAmount = models.Amount(10000)
	in.DiscountAmount = models.Amount(1000)
	in.AdvancePaid = models.Amount(2000)
	in.AdditionalAmounts = models.ChargeList{{Amount: models.Amount(500)}}
	in.CateringOption = models.OptionNo
	in.CateringItems = []models.LineItem{{Name: "Thali", Quantity: 50}}

	created, err := svc.CreateBooking(ctx, in)
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	assert.Equal(t, 9000.0, created.FinalPrice)
	assert.Equal(t, "6500.00", created.RemainingAmount)
	assert.Equal(t, models.PaymentBooked, created.PaymentStatus)
	// Catering items are discarded when the flag is off.
	assert.Empty(t, created.CateringItems)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, created.ID, all[0].ID)
}

func TestLawnAndBanquetShareDates(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.CreateBooking(ctx, lawnInput("2024-06-01", "2024-06-02"))
	require.NoError(t, err)

	banquet := lawnInput("2024-06-01", "2024-06-02")
	banquet.VenueType = models.VenueBanquet
	_, err = svc.CreateBooking(ctx, banquet)
	require.NoError(t, err)

	// A second lawn booking on the same dates collides.
	_, err = svc.CreateBooking(ctx, lawnInput("2024-06-01", "2024-06-02"))
	requireConflictCode(t, err, CodeVenueAlreadyBooked, models.VenueLawn)
}

func TestBothBlocksEverything(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	both := lawnInput("2024-07-01", "2024-07-03")
	both.VenueType = models.VenueBoth
	_, err := svc.CreateBooking(ctx, both)
	require.NoError(t, err)

	lawn := lawnInput("2024-07-02", "2024-07-02")
	_, err = svc.CreateBooking(ctx, lawn)
	requireConflictCode(t, err, CodeVenueFullyBooked, models.VenueBoth)
}

func TestBothCandidateConflictsWithSingleVenue(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	banquet := lawnInput("2024-08-10", "2024-08-12")
	banquet.VenueType = models.VenueBanquet
	_, err := svc.CreateBooking(ctx, banquet)
	require.NoError(t, err)

	both := lawnInput("2024-08-11", "2024-08-11")
	both.VenueType = models.VenueBoth
	_, err = svc.CreateBooking(ctx, both)
	// The conflict is attributed to the existing booking's category.
	requireConflictCode(t, err, CodeVenueFullyBooked, models.VenueBanquet)
}

func TestDisjointRangesDoNotConflict(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.CreateBooking(ctx, lawnInput("2024-06-01", "2024-06-02"))
	require.NoError(t, err)

	_, err = svc.CreateBooking(ctx, lawnInput("2024-06-03", "2024-06-04"))
	require.NoError(t, err)
}

func TestCandidateContainingExistingRangeConflicts(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.CreateBooking(ctx, lawnInput("2024-06-10", "2024-06-11"))
	require.NoError(t, err)

	_, err = svc.CreateBooking(ctx, lawnInput("2024-06-05", "2024-06-15"))
	requireConflictCode(t, err, CodeVenueAlreadyBooked, models.VenueLawn)
}

func TestEnquiryBookingsNeverConflict(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.CreateBooking(ctx, lawnInput("2024-06-01", "2024-06-02"))
	require.NoError(t, err)

	// An Enquiry over a Booked range is accepted: it is a provisional hold.
	enquiry := lawnInput("2024-06-01", "2024-06-02")
	enquiry.PaymentStatus = models.PaymentEnquiry
	_, err = svc.CreateBooking(ctx, enquiry)
	require.NoError(t, err)

	// And an existing Enquiry never blocks a new confirmed booking.
	enquiry2 := lawnInput("2024-09-01", "2024-09-02")
	enquiry2.PaymentStatus = models.PaymentEnquiry
	_, err = svc.CreateBooking(ctx, enquiry2)
	require.NoError(t, err)

	_, err = svc.CreateBooking(ctx, lawnInput("2024-09-01", "2024-09-02"))
	require.NoError(t, err)
}

func TestCreateBookingValidationFailureMutatesNothing(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	in := lawnInput("2024-06-01", "2024-06-02")
	in.EventType = models.EventMarriage
	in.Groom = ""
	in.Bride = "Meera"

	_, err := svc.CreateBooking(ctx, in)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, CodeMissingMarriageParties, vErr.Code)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestUpdateBookingExcludesItself(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.CreateBooking(ctx, lawnInput("2024-06-01", "2024-06-02"))
	require.NoError(t, err)

	// Touching only the notes must not conflict against the record itself.
	notes := "decorator confirmed"
	updated, err := svc.UpdateBooking(ctx, created.ID, models.BookingUpdate{Notes: &notes})
	require.NoError(t, err)
	assert.Equal(t, "decorator confirmed", updated.Notes)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
}

func TestUpdateBookingReValidatesAndRePrices(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	in := lawnInput("2024-06-01", "2024-06-02")
	in.TotalAmount = models.Amount(10000)
	created, err := svc.CreateBooking(ctx, in)
	require.NoError(t, err)

	discount := models.Amount(2500)
	updated, err := svc.UpdateBooking(ctx, created.ID, models.BookingUpdate{DiscountAmount: &discount})
	require.NoError(t, err)
	assert.Equal(t, 7500.0, updated.FinalPrice)
	assert.Equal(t, "7500.00", updated.RemainingAmount)

	badEnd := "2024-05-01"
	_, err = svc.UpdateBooking(ctx, created.ID, models.BookingUpdate{EndDate: &badEnd})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, CodeInvalidDateRange, vErr.Code)
}

func TestUpdateBookingConflictsAgainstOthers(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.CreateBooking(ctx, lawnInput("2024-06-01", "2024-06-02"))
	require.NoError(t, err)

	other, err := svc.CreateBooking(ctx, lawnInput("2024-06-10", "2024-06-11"))
	require.NoError(t, err)

	start, end := "2024-06-02", "2024-06-03"
	_, err = svc.UpdateBooking(ctx, other.ID, models.BookingUpdate{StartDate: &start, EndDate: &end})
	requireConflictCode(t, err, CodeVenueAlreadyBooked, models.VenueLawn)
}

func TestUpdateBookingNotFound(t *testing.T) {
	svc, _ := newTestService()

	notes := "x"
	_, err := svc.UpdateBooking(context.Background(), "missing", models.BookingUpdate{Notes: &notes})
	var nfErr *NotFoundError
	require.ErrorAs(t, err, &nfErr)
	assert.Equal(t, "missing", nfErr.ID)
}

func TestDeleteBooking(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	created, err := svc.CreateBooking(ctx, lawnInput("2024-06-01", "2024-06-02"))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteBooking(ctx, created.ID))
	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	var nfErr *NotFoundError
	require.ErrorAs(t, svc.DeleteBooking(ctx, created.ID), &nfErr)
}

func TestSearchVenues(t *testing.T) {
	assert.ElementsMatch(t, []string{models.VenueLawn, models.VenueBoth}, searchVenues(models.VenueLawn))
	assert.ElementsMatch(t, []string{models.VenueBanquet, models.VenueBoth}, searchVenues(models.VenueBanquet))
	assert.ElementsMatch(t, []string{models.VenueLawn, models.VenueBanquet, models.VenueBoth}, searchVenues(models.VenueBoth))
}

func TestLockKeys(t *testing.T) {
	assert.Equal(t, []string{"lock:venue:Lawn"}, lockKeys(models.VenueLawn))
	assert.Equal(t, []string{"lock:venue:Banquet"}, lockKeys(models.VenueBanquet))
	// Sorted so competing "Both" requests acquire in the same order.
	assert.Equal(t, []string{"lock:venue:Banquet", "lock:venue:Lawn"}, lockKeys(models.VenueBoth))
}
