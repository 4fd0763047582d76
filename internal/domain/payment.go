package domain

import "time"

// PaymentStatus represents the current status of a payment.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusCompleted PaymentStatus = "COMPLETED"
	PaymentStatusFailed    PaymentStatus = "FAILED"
)

// Payment represents a checkout attempt for a booking.
type Payment struct {
	ID        string
	BookingID string
	UserID    string
	Amount    float64 // Snapshot of the booking's total price at checkout.
	SessionID string  // Provider-side checkout session identifier.
	Status    PaymentStatus
	CreatedAt time.Time
}
