package tests

import (
	"context"
	"errors"
	"testing"

	"github.com/AncyStar/vehicle-rental-backend/internal/domain"
	"github.com/AncyStar/vehicle-rental-backend/internal/repository"
	"github.com/AncyStar/vehicle-rental-backend/internal/service"
)

// ──────────────────────────────────────────────
// 1. CANCELLATION
// ──────────────────────────────────────────────

func TestCancel_ByOwner_Succeeds(t *testing.T) {
	t.Parallel()

	f := newBookingFixture()
	f.addBooking("booking-1", "vehicle-1", "renter-1", 10, 15, domain.BookingStatusPending)

	booking, err := f.svc.CancelBooking(context.Background(), "booking-1", "renter-1", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if booking.Status != domain.BookingStatusCancelled {
		t.Errorf("expected status %s, got %s", domain.BookingStatusCancelled, booking.Status)
	}
	if booking.CancelledAt.IsZero() {
		t.Error("expected cancellation timestamp to be set")
	}

	stored := f.bookingRepo.GetBooking("booking-1")
	if stored.Status != domain.BookingStatusCancelled {
		t.Errorf("persisted status = %s, want %s", stored.Status, domain.BookingStatusCancelled)
	}
}

func TestCancel_ByAdmin_Succeeds(t *testing.T) {
	t.Parallel()

	f := newBookingFixture()
	f.addBooking("booking-1", "vehicle-1", "renter-1", 10, 15, domain.BookingStatusConfirmed)

	booking, err := f.svc.CancelBooking(context.Background(), "booking-1", "admin-1", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if booking.Status != domain.BookingStatusCancelled {
		t.Errorf("expected status %s, got %s", domain.BookingStatusCancelled, booking.Status)
	}
}

func TestCancel_ByStranger_Forbidden(t *testing.T) {
	t.Parallel()

	f := newBookingFixture()
	f.addBooking("booking-1", "vehicle-1", "renter-1", 10, 15, domain.BookingStatusPending)

	_, err := f.svc.CancelBooking(context.Background(), "booking-1", "renter-2", false)
	if !errors.Is(err, service.ErrForbidden) {
		t.Errorf("expected ErrForbidden, got: %v", err)
	}

	stored := f.bookingRepo.GetBooking("booking-1")
	if stored.Status != domain.BookingStatusPending {
		t.Errorf("booking must stay %s, got %s", domain.BookingStatusPending, stored.Status)
	}
}

func TestCancel_Twice_Rejected(t *testing.T) {
	t.Parallel()

	f := newBookingFixture()
	f.addBooking("booking-1", "vehicle-1", "renter-1", 10, 15, domain.BookingStatusPending)

	if _, err := f.svc.CancelBooking(context.Background(), "booking-1", "renter-1", false); err != nil {
		t.Fatalf("first cancel failed: %v", err)
	}

	_, err := f.svc.CancelBooking(context.Background(), "booking-1", "renter-1", false)
	if !errors.Is(err, service.ErrBookingAlreadyCancelled) {
		t.Errorf("expected ErrBookingAlreadyCancelled, got: %v", err)
	}
}

func TestCancel_UnknownBooking_NotFound(t *testing.T) {
	t.Parallel()

	f := newBookingFixture()

	_, err := f.svc.CancelBooking(context.Background(), "booking-missing", "renter-1", false)
	if !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got: %v", err)
	}
}

func TestCancel_FreesTheDateRange(t *testing.T) {
	t.Parallel()

	f := newBookingFixture()
	f.addVehicle("vehicle-1", 40)
	f.addBooking("booking-1", "vehicle-1", "renter-1", 10, 15, domain.BookingStatusConfirmed)

	if _, err := f.svc.CancelBooking(context.Background(), "booking-1", "renter-1", false); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}

	booking, err := f.svc.CreateBooking(context.Background(), service.CreateBookingRequest{
		VehicleID: "vehicle-1",
		RenterID:  "renter-2",
		StartDate: daysFromNow(10),
		EndDate:   daysFromNow(15),
	})
	if err != nil {
		t.Fatalf("expected range to be free after cancel, got: %v", err)
	}
	if booking.Status != domain.BookingStatusPending {
		t.Errorf("expected new booking to be %s, got %s", domain.BookingStatusPending, booking.Status)
	}
}

// ──────────────────────────────────────────────
// 2. CONFIRMATION STATE MACHINE
// ──────────────────────────────────────────────

func TestConfirm_PendingBooking_Succeeds(t *testing.T) {
	t.Parallel()

	f := newBookingFixture()
	f.addBooking("booking-1", "vehicle-1", "renter-1", 10, 15, domain.BookingStatusPending)

	booking, err := f.svc.ConfirmBooking(context.Background(), "booking-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if booking.Status != domain.BookingStatusConfirmed {
		t.Errorf("expected status %s, got %s", domain.BookingStatusConfirmed, booking.Status)
	}
	stored := f.bookingRepo.GetBooking("booking-1")
	if stored.Status != domain.BookingStatusConfirmed {
		t.Errorf("persisted status = %s, want %s", stored.Status, domain.BookingStatusConfirmed)
	}
}

func TestConfirm_NonPendingBooking_Rejected(t *testing.T) {
	t.Parallel()

	statuses := []domain.BookingStatus{domain.BookingStatusConfirmed, domain.BookingStatusCancelled}
	for _, status := range statuses {
		status := status
		t.Run(string(status), func(t *testing.T) {
			t.Parallel()

			f := newBookingFixture()
			f.addBooking("booking-1", "vehicle-1", "renter-1", 10, 15, status)

			_, err := f.svc.ConfirmBooking(context.Background(), "booking-1")
			if !errors.Is(err, service.ErrBookingNotPending) {
				t.Errorf("expected ErrBookingNotPending, got: %v", err)
			}

			stored := f.bookingRepo.GetBooking("booking-1")
			if stored.Status != status {
				t.Errorf("status must stay %s, got %s", status, stored.Status)
			}
		})
	}
}

// ──────────────────────────────────────────────
// 3. READS AND LISTINGS
// ──────────────────────────────────────────────

func TestGetBooking_OwnershipEnforced(t *testing.T) {
	t.Parallel()

	f := newBookingFixture()
	f.addBooking("booking-1", "vehicle-1", "renter-1", 10, 15, domain.BookingStatusPending)

	if _, err := f.svc.GetBooking(context.Background(), "booking-1", "renter-1", false); err != nil {
		t.Errorf("owner read failed: %v", err)
	}

	if _, err := f.svc.GetBooking(context.Background(), "booking-1", "admin-1", true); err != nil {
		t.Errorf("admin read failed: %v", err)
	}

	_, err := f.svc.GetBooking(context.Background(), "booking-1", "renter-2", false)
	if !errors.Is(err, service.ErrForbidden) {
		t.Errorf("expected ErrForbidden for stranger, got: %v", err)
	}
}

func TestListBookings_ScopedByActor(t *testing.T) {
	t.Parallel()

	f := newBookingFixture()
	f.addBooking("booking-1", "vehicle-1", "renter-1", 10, 15, domain.BookingStatusPending)
	f.addBooking("booking-2", "vehicle-2", "renter-1", 20, 25, domain.BookingStatusConfirmed)
	f.addBooking("booking-3", "vehicle-1", "renter-2", 20, 25, domain.BookingStatusPending)

	own, err := f.svc.ListBookings(context.Background(), "renter-1", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(own) != 2 {
		t.Errorf("expected renter-1 to see 2 bookings, got %d", len(own))
	}
	for _, b := range own {
		if b.RenterID != "renter-1" {
			t.Errorf("renter-1 must not see booking of %s", b.RenterID)
		}
	}

	all, err := f.svc.ListBookings(context.Background(), "admin-1", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("expected admin to see 3 bookings, got %d", len(all))
	}
}
