package repository

import (
	"context"

	"github.com/AncyStar/vehicle-rental-backend/internal/domain"
)

// VehicleFilter narrows vehicle catalog queries. Zero values mean "no filter".
type VehicleFilter struct {
	Make     string
	MinPrice float64
	MaxPrice float64
}

// VehicleRepository defines the persistence operations for the vehicle catalog.
type VehicleRepository interface {
	// Create persists a new vehicle.
	Create(ctx context.Context, vehicle *domain.Vehicle) error

	// GetByID retrieves a vehicle by ID.
	GetByID(ctx context.Context, id string) (*domain.Vehicle, error)

	// GetAll retrieves vehicles matching the filter.
	GetAll(ctx context.Context, filter VehicleFilter) ([]*domain.Vehicle, error)

	// Update updates an existing vehicle.
	Update(ctx context.Context, vehicle *domain.Vehicle) error

	// Delete removes a vehicle from the catalog.
	Delete(ctx context.Context, id string) error
}
