package repository

import (
	"context"

	"github.com/AncyStar/vehicle-rental-backend/internal/domain"
)

// PaymentRepository defines the persistence operations for payments.
type PaymentRepository interface {
	// Create persists a new payment.
	Create(ctx context.Context, payment *domain.Payment) error

	// GetByID retrieves a payment by ID.
	GetByID(ctx context.Context, id string) (*domain.Payment, error)

	// GetBySessionID retrieves a payment by its provider checkout session ID.
	// Returns nil if no payment exists for the given session.
	GetBySessionID(ctx context.Context, sessionID string) (*domain.Payment, error)

	// UpdateStatus updates the status of a payment.
	UpdateStatus(ctx context.Context, id string, status domain.PaymentStatus) error
}
