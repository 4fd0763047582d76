package service

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/AncyStar/vehicle-rental-backend/internal/domain"
	"github.com/AncyStar/vehicle-rental-backend/internal/redis"
	"github.com/AncyStar/vehicle-rental-backend/internal/repository"
)

// VehicleService handles vehicle catalog operations.
type VehicleService struct {
	vehicleRepo repository.VehicleRepository
	cacheStore  *redis.CacheStore
}

// NewVehicleService creates a new VehicleService.
func NewVehicleService(vehicleRepo repository.VehicleRepository, cacheStore *redis.CacheStore) *VehicleService {
	return &VehicleService{
		vehicleRepo: vehicleRepo,
		cacheStore:  cacheStore,
	}
}

// VehicleInput contains the parameters for creating or updating a vehicle.
type VehicleInput struct {
	Make        string
	Model       string
	Year        int
	DailyRate   float64
	Description string
	Images      []string
	Available   bool
}

func (in VehicleInput) validate() error {
	if in.Make == "" || in.Model == "" {
		return ErrInvalidVehicleData
	}
	if in.Year < 1900 {
		return ErrInvalidVehicleData
	}
	if in.DailyRate <= 0 || math.IsNaN(in.DailyRate) || math.IsInf(in.DailyRate, 0) {
		return ErrInvalidVehicleData
	}
	return nil
}

// CreateVehicle adds a new vehicle to the catalog.
func (s *VehicleService) CreateVehicle(ctx context.Context, in VehicleInput) (*domain.Vehicle, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	vehicle := &domain.Vehicle{
		ID:          uuid.New().String(),
		Make:        in.Make,
		Model:       in.Model,
		Year:        in.Year,
		DailyRate:   in.DailyRate,
		Description: in.Description,
		Images:      in.Images,
		Available:   in.Available,
		CreatedAt:   time.Now(),
	}

	if err := s.vehicleRepo.Create(ctx, vehicle); err != nil {
		return nil, err
	}

	return vehicle, nil
}

// GetVehicle retrieves a vehicle, serving from cache when possible.
func (s *VehicleService) GetVehicle(ctx context.Context, id string) (*domain.Vehicle, error) {
	if id == "" {
		return nil, ErrInvalidVehicleID
	}

	if s.cacheStore != nil {
		cached, err := s.cacheStore.GetVehicle(ctx, id)
		if err == nil && cached != nil {
			return cachedToVehicle(cached), nil
		}
	}

	vehicle, err := s.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cacheStore != nil {
		_ = s.cacheStore.SetVehicle(ctx, vehicleToCached(vehicle))
	}

	return vehicle, nil
}

// ListVehicles retrieves vehicles matching the filter.
func (s *VehicleService) ListVehicles(ctx context.Context, filter repository.VehicleFilter) ([]*domain.Vehicle, error) {
	return s.vehicleRepo.GetAll(ctx, filter)
}

// UpdateVehicle updates a catalog entry and invalidates its cache.
func (s *VehicleService) UpdateVehicle(ctx context.Context, id string, in VehicleInput) (*domain.Vehicle, error) {
	if id == "" {
		return nil, ErrInvalidVehicleID
	}
	if err := in.validate(); err != nil {
		return nil, err
	}

	vehicle, err := s.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	vehicle.Make = in.Make
	vehicle.Model = in.Model
	vehicle.Year = in.Year
	vehicle.DailyRate = in.DailyRate
	vehicle.Description = in.Description
	vehicle.Images = in.Images
	vehicle.Available = in.Available

	if err := s.vehicleRepo.Update(ctx, vehicle); err != nil {
		return nil, err
	}

	if s.cacheStore != nil {
		_ = s.cacheStore.InvalidateVehicle(ctx, id)
	}

	return vehicle, nil
}

// DeleteVehicle removes a vehicle from the catalog and invalidates its cache.
func (s *VehicleService) DeleteVehicle(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidVehicleID
	}

	if err := s.vehicleRepo.Delete(ctx, id); err != nil {
		return err
	}

	if s.cacheStore != nil {
		_ = s.cacheStore.InvalidateVehicle(ctx, id)
	}

	return nil
}

func cachedToVehicle(cached *redis.CachedVehicle) *domain.Vehicle {
	return &domain.Vehicle{
		ID:          cached.ID,
		Make:        cached.Make,
		Model:       cached.Model,
		Year:        cached.Year,
		DailyRate:   cached.DailyRate,
		Description: cached.Description,
		Images:      cached.Images,
		Available:   cached.Available,
	}
}

func vehicleToCached(vehicle *domain.Vehicle) *redis.CachedVehicle {
	return &redis.CachedVehicle{
		ID:          vehicle.ID,
		Make:        vehicle.Make,
		Model:       vehicle.Model,
		Year:        vehicle.Year,
		DailyRate:   vehicle.DailyRate,
		Description: vehicle.Description,
		Images:      vehicle.Images,
		Available:   vehicle.Available,
	}
}
