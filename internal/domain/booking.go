package domain

import "time"

// BookingStatus represents the current status of a booking.
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

// IsActive reports whether a booking in this status blocks the vehicle's
// calendar. Cancelled bookings are inert history.
func (s BookingStatus) IsActive() bool {
	return s == BookingStatusPending || s == BookingStatusConfirmed
}

// Booking represents a vehicle rental reservation.
// StartDate/EndDate form a half-open range [StartDate, EndDate): the end date
// is checkout day and does not block the vehicle. Dates and vehicle are
// immutable after creation; cancel-and-recreate is the only way to change them.
type Booking struct {
	ID          string
	VehicleID   string
	RenterID    string
	StartDate   time.Time
	EndDate     time.Time
	TotalPrice  float64 // Always server-computed from the vehicle's daily rate.
	Status      BookingStatus
	CreatedAt   time.Time
	CancelledAt time.Time
}

// Range returns the booking's date range.
func (b *Booking) Range() DateRange {
	return DateRange{Start: b.StartDate, End: b.EndDate}
}

// DateRange is a half-open calendar date range [Start, End).
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether two half-open ranges share at least one day.
// A range ending exactly when another starts does not overlap.
func (r DateRange) Overlaps(other DateRange) bool {
	return r.Start.Before(other.End) && other.Start.Before(r.End)
}

// Days returns the number of rental days, rounding partial days up.
func (r DateRange) Days() int {
	hours := r.End.Sub(r.Start).Hours()
	days := int(hours / 24)
	if float64(days*24) < hours {
		days++
	}
	return days
}

// NormalizeDate truncates a timestamp to midnight UTC. All booking date
// comparisons happen at day granularity.
func NormalizeDate(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
