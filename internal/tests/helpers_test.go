package tests

import (
	"time"

	"github.com/AncyStar/vehicle-rental-backend/internal/domain"
	"github.com/AncyStar/vehicle-rental-backend/internal/service"
)

// daysFromNow returns today's date (midnight UTC) shifted by n days. Booking
// validation rejects past dates, so tests build ranges relative to the clock.
func daysFromNow(n int) time.Time {
	return domain.NormalizeDate(time.Now()).AddDate(0, 0, n)
}

// bookingFixture bundles the mocks behind a BookingService.
type bookingFixture struct {
	bookingRepo *MockBookingRepository
	vehicleRepo *MockVehicleRepository
	lockStore   *MockLockStore
	svc         *service.BookingService
}

func newBookingFixture() *bookingFixture {
	f := &bookingFixture{
		bookingRepo: NewMockBookingRepository(),
		vehicleRepo: NewMockVehicleRepository(),
		lockStore:   NewMockLockStore(),
	}
	f.svc = service.NewBookingService(f.bookingRepo, f.vehicleRepo, f.lockStore, nil, 0)
	return f
}

// addVehicle registers a vehicle with the given daily rate and returns it.
func (f *bookingFixture) addVehicle(id string, dailyRate float64) *domain.Vehicle {
	vehicle := &domain.Vehicle{
		ID:        id,
		Make:      "Toyota",
		Model:     "Corolla",
		Year:      2021,
		DailyRate: dailyRate,
		Available: true,
	}
	f.vehicleRepo.AddVehicle(vehicle)
	return vehicle
}

// addBooking seeds an existing booking directly into the ledger.
func (f *bookingFixture) addBooking(id, vehicleID, renterID string, startDay, endDay int, status domain.BookingStatus) *domain.Booking {
	booking := &domain.Booking{
		ID:        id,
		VehicleID: vehicleID,
		RenterID:  renterID,
		StartDate: daysFromNow(startDay),
		EndDate:   daysFromNow(endDay),
		Status:    status,
		CreatedAt: time.Now(),
	}
	f.bookingRepo.AddBooking(booking)
	return booking
}
