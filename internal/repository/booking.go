package repository

import (
	"context"

	"github.com/AncyStar/vehicle-rental-backend/internal/domain"
)

// BookingRepository defines the persistence operations for bookings
// (the booking ledger).
type BookingRepository interface {
	// Create persists a new booking. Returns ErrConflict if the booking's
	// date range overlaps an active booking for the same vehicle — the
	// storage layer enforces the non-overlap invariant, not the caller.
	Create(ctx context.Context, booking *domain.Booking) error

	// GetByID retrieves a booking by ID.
	GetByID(ctx context.Context, id string) (*domain.Booking, error)

	// GetAll retrieves all bookings.
	GetAll(ctx context.Context) ([]*domain.Booking, error)

	// GetByRenter retrieves all bookings made by a renter.
	GetByRenter(ctx context.Context, renterID string) ([]*domain.Booking, error)

	// GetActiveByVehicle retrieves all PENDING and CONFIRMED bookings for a
	// vehicle, ordered by start date.
	GetActiveByVehicle(ctx context.Context, vehicleID string) ([]*domain.Booking, error)

	// UpdateStatus updates the status of a booking.
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error
}
