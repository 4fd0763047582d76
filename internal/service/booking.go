package service

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/AncyStar/vehicle-rental-backend/internal/domain"
	"github.com/AncyStar/vehicle-rental-backend/internal/redis"
	"github.com/AncyStar/vehicle-rental-backend/internal/repository"
)

const (
	// vehicleLockTTL bounds how long a crashed request can hold a vehicle's
	// booking calendar.
	vehicleLockTTL = 10 * time.Second

	// defaultStorageTimeout is the deadline applied to every ledger call.
	defaultStorageTimeout = 5 * time.Second
)

// BookingService owns availability and pricing decisions for vehicle rentals.
// It is the only component allowed to write bookings; handlers translate wire
// requests into its calls and never touch the ledger directly.
type BookingService struct {
	bookingRepo         repository.BookingRepository
	vehicleRepo         repository.VehicleRepository
	lockStore           redis.LockStoreInterface
	notificationService *NotificationService
	storageTimeout      time.Duration
}

// NewBookingService creates a new BookingService.
func NewBookingService(
	bookingRepo repository.BookingRepository,
	vehicleRepo repository.VehicleRepository,
	lockStore redis.LockStoreInterface,
	notificationService *NotificationService,
	storageTimeout time.Duration,
) *BookingService {
	if storageTimeout <= 0 {
		storageTimeout = defaultStorageTimeout
	}
	return &BookingService{
		bookingRepo:         bookingRepo,
		vehicleRepo:         vehicleRepo,
		lockStore:           lockStore,
		notificationService: notificationService,
		storageTimeout:      storageTimeout,
	}
}

// AvailabilityResult contains the outcome of an availability check.
type AvailabilityResult struct {
	Available bool
	Conflicts []domain.DateRange // Active booked ranges overlapping the request.
}

// PriceQuoteResult contains a computed rental price.
type PriceQuoteResult struct {
	VehicleID  string
	StartDate  time.Time
	EndDate    time.Time
	RentalDays int
	DailyRate  float64
	TotalPrice float64
}

// CheckAvailability reports whether [start, end) is free for the vehicle.
// The vehicle need not exist; callers may probe before the catalog entry is
// created. No side effects.
func (s *BookingService) CheckAvailability(ctx context.Context, vehicleID string, start, end time.Time) (*AvailabilityResult, error) {
	if vehicleID == "" {
		return nil, ErrInvalidVehicleID
	}

	start, end = domain.NormalizeDate(start), domain.NormalizeDate(end)
	if !start.Before(end) {
		return nil, ErrInvalidRange
	}

	active, err := s.activeBookings(ctx, vehicleID)
	if err != nil {
		return nil, err
	}

	requested := domain.DateRange{Start: start, End: end}
	var conflicts []domain.DateRange
	for _, booking := range active {
		if requested.Overlaps(booking.Range()) {
			conflicts = append(conflicts, booking.Range())
		}
	}

	return &AvailabilityResult{
		Available: len(conflicts) == 0,
		Conflicts: conflicts,
	}, nil
}

// UnavailableRanges returns the booked ranges of all active bookings for a
// vehicle, for client display of blocked dates.
func (s *BookingService) UnavailableRanges(ctx context.Context, vehicleID string) ([]domain.DateRange, error) {
	if vehicleID == "" {
		return nil, ErrInvalidVehicleID
	}

	active, err := s.activeBookings(ctx, vehicleID)
	if err != nil {
		return nil, err
	}

	ranges := make([]domain.DateRange, 0, len(active))
	for _, booking := range active {
		ranges = append(ranges, booking.Range())
	}
	return ranges, nil
}

// PriceQuote computes the rental cost for [start, end) on a vehicle.
// Rental days round partial days up; dates in the past (relative to the
// server's current date at midnight UTC) are rejected.
func (s *BookingService) PriceQuote(ctx context.Context, vehicleID string, start, end time.Time) (*PriceQuoteResult, error) {
	if vehicleID == "" {
		return nil, ErrInvalidVehicleID
	}

	start, end = domain.NormalizeDate(start), domain.NormalizeDate(end)
	if err := validateBookingRange(start, end); err != nil {
		return nil, err
	}

	storageCtx, cancel := s.ledgerContext(ctx)
	defer cancel()

	vehicle, err := s.vehicleRepo.GetByID(storageCtx, vehicleID)
	if err != nil {
		return nil, mapStorageErr(err)
	}

	// A malformed catalog entry must never silently produce a zero, negative
	// or NaN price.
	rate := vehicle.DailyRate
	if rate <= 0 || math.IsNaN(rate) || math.IsInf(rate, 0) {
		return nil, ErrInvalidPricing
	}

	days := domain.DateRange{Start: start, End: end}.Days()

	return &PriceQuoteResult{
		VehicleID:  vehicleID,
		StartDate:  start,
		EndDate:    end,
		RentalDays: days,
		DailyRate:  rate,
		TotalPrice: float64(days) * rate,
	}, nil
}

// CreateBookingRequest contains the parameters for creating a booking.
// Any client-supplied price is deliberately absent: the total is always
// recomputed server-side.
type CreateBookingRequest struct {
	VehicleID string
	RenterID  string
	StartDate time.Time
	EndDate   time.Time
}

// CreateBooking checks availability, computes the price and inserts a PENDING
// booking against the same read-consistent view of the ledger.
//
// The ledger's exclusion constraint is the authority on overlaps: even if two
// racing requests both pass the availability read, at most one insert commits
// and the other surfaces ErrBookingConflict. The per-vehicle lock only narrows
// that window so most conflicts are caught by the read and reported with the
// blocking ranges.
func (s *BookingService) CreateBooking(ctx context.Context, req CreateBookingRequest) (*domain.Booking, error) {
	if req.VehicleID == "" {
		return nil, ErrInvalidVehicleID
	}
	if req.RenterID == "" {
		return nil, ErrInvalidRenterID
	}

	start, end := domain.NormalizeDate(req.StartDate), domain.NormalizeDate(req.EndDate)
	if err := validateBookingRange(start, end); err != nil {
		return nil, err
	}

	quote, err := s.PriceQuote(ctx, req.VehicleID, start, end)
	if err != nil {
		return nil, err
	}

	if s.lockStore != nil {
		locked, lockErr := s.lockStore.AcquireVehicleLock(ctx, req.VehicleID, vehicleLockTTL)
		if lockErr == nil && locked {
			defer func() {
				_ = s.lockStore.ReleaseVehicleLock(ctx, req.VehicleID)
			}()
		}
		// Lock unavailable: proceed anyway. The exclusion constraint still
		// rejects a double booking on insert.
	}

	availability, err := s.CheckAvailability(ctx, req.VehicleID, start, end)
	if err != nil {
		return nil, err
	}
	if !availability.Available {
		return nil, ErrBookingConflict
	}

	booking := &domain.Booking{
		ID:         uuid.New().String(),
		VehicleID:  req.VehicleID,
		RenterID:   req.RenterID,
		StartDate:  start,
		EndDate:    end,
		TotalPrice: quote.TotalPrice,
		Status:     domain.BookingStatusPending,
		CreatedAt:  time.Now(),
	}

	storageCtx, cancel := s.ledgerContext(ctx)
	defer cancel()

	if err := s.bookingRepo.Create(storageCtx, booking); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, ErrBookingConflict
		}
		return nil, mapStorageErr(err)
	}

	if s.notificationService != nil {
		_ = s.notificationService.NotifyBookingCreated(ctx, booking)
	}

	return booking, nil
}

// CancelBooking cancels a booking on behalf of its renter or an administrator
// and frees the date range. A second cancel is rejected, not a no-op.
func (s *BookingService) CancelBooking(ctx context.Context, bookingID, actorID string, actorIsAdmin bool) (*domain.Booking, error) {
	if bookingID == "" {
		return nil, ErrInvalidBookingID
	}

	storageCtx, cancel := s.ledgerContext(ctx)
	defer cancel()

	booking, err := s.bookingRepo.GetByID(storageCtx, bookingID)
	if err != nil {
		return nil, mapStorageErr(err)
	}

	if booking.RenterID != actorID && !actorIsAdmin {
		return nil, ErrForbidden
	}

	if booking.Status == domain.BookingStatusCancelled {
		return nil, ErrBookingAlreadyCancelled
	}

	if err := s.bookingRepo.UpdateStatus(storageCtx, bookingID, domain.BookingStatusCancelled); err != nil {
		return nil, mapStorageErr(err)
	}

	booking.Status = domain.BookingStatusCancelled
	booking.CancelledAt = time.Now()

	if s.notificationService != nil {
		_ = s.notificationService.NotifyBookingCancelled(ctx, booking, actorID)
	}

	return booking, nil
}

// ConfirmBooking moves a PENDING booking to CONFIRMED after payment capture.
// Any other source state is an illegal transition.
func (s *BookingService) ConfirmBooking(ctx context.Context, bookingID string) (*domain.Booking, error) {
	if bookingID == "" {
		return nil, ErrInvalidBookingID
	}

	storageCtx, cancel := s.ledgerContext(ctx)
	defer cancel()

	booking, err := s.bookingRepo.GetByID(storageCtx, bookingID)
	if err != nil {
		return nil, mapStorageErr(err)
	}

	if booking.Status != domain.BookingStatusPending {
		return nil, ErrBookingNotPending
	}

	if err := s.bookingRepo.UpdateStatus(storageCtx, bookingID, domain.BookingStatusConfirmed); err != nil {
		return nil, mapStorageErr(err)
	}

	booking.Status = domain.BookingStatusConfirmed

	if s.notificationService != nil {
		_ = s.notificationService.NotifyBookingConfirmed(ctx, booking)
	}

	return booking, nil
}

// GetBooking retrieves a booking visible to the actor (owner or admin).
func (s *BookingService) GetBooking(ctx context.Context, bookingID, actorID string, actorIsAdmin bool) (*domain.Booking, error) {
	if bookingID == "" {
		return nil, ErrInvalidBookingID
	}

	storageCtx, cancel := s.ledgerContext(ctx)
	defer cancel()

	booking, err := s.bookingRepo.GetByID(storageCtx, bookingID)
	if err != nil {
		return nil, mapStorageErr(err)
	}

	if booking.RenterID != actorID && !actorIsAdmin {
		return nil, ErrForbidden
	}

	return booking, nil
}

// ListBookings returns the actor's bookings, or every booking for admins.
func (s *BookingService) ListBookings(ctx context.Context, actorID string, actorIsAdmin bool) ([]*domain.Booking, error) {
	storageCtx, cancel := s.ledgerContext(ctx)
	defer cancel()

	if actorIsAdmin {
		bookings, err := s.bookingRepo.GetAll(storageCtx)
		return bookings, mapStorageErr(err)
	}

	bookings, err := s.bookingRepo.GetByRenter(storageCtx, actorID)
	return bookings, mapStorageErr(err)
}

// activeBookings fetches all PENDING and CONFIRMED bookings for a vehicle
// under the ledger deadline.
func (s *BookingService) activeBookings(ctx context.Context, vehicleID string) ([]*domain.Booking, error) {
	storageCtx, cancel := s.ledgerContext(ctx)
	defer cancel()

	bookings, err := s.bookingRepo.GetActiveByVehicle(storageCtx, vehicleID)
	if err != nil {
		return nil, mapStorageErr(err)
	}
	return bookings, nil
}

// ledgerContext bounds a ledger call so a stalled store surfaces as
// ErrStorageTimeout instead of a hang.
func (s *BookingService) ledgerContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.storageTimeout)
}

// mapStorageErr translates a ledger deadline expiry into the service error.
func mapStorageErr(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrStorageTimeout
	}
	return err
}

// validateBookingRange rejects inverted ranges and ranges starting or ending
// before the server's current date, compared at day granularity.
func validateBookingRange(start, end time.Time) error {
	if !start.Before(end) {
		return ErrInvalidRange
	}

	today := domain.NormalizeDate(time.Now())
	if start.Before(today) || end.Before(today) {
		return ErrInvalidRange
	}

	return nil
}
