package service

import "errors"

var (
	// ErrInvalidRange is returned when a booking date range is malformed or
	// starts in the past.
	ErrInvalidRange = errors.New("invalid booking date range")

	// ErrInvalidPricing is returned when a vehicle's daily rate is not a
	// positive finite number.
	ErrInvalidPricing = errors.New("vehicle has invalid pricing")

	// ErrBookingConflict is returned when the requested range overlaps an
	// active booking for the same vehicle.
	ErrBookingConflict = errors.New("vehicle already booked for the selected dates")

	// ErrForbidden is returned when the actor lacks rights on the booking.
	ErrForbidden = errors.New("actor does not have access to this booking")

	// ErrBookingAlreadyCancelled is returned on a second cancel attempt.
	ErrBookingAlreadyCancelled = errors.New("booking already cancelled")

	// ErrBookingNotPending is returned when a status transition requires a
	// pending booking.
	ErrBookingNotPending = errors.New("booking is not pending")

	// ErrStorageTimeout is returned when a booking ledger call exceeds its
	// deadline.
	ErrStorageTimeout = errors.New("booking storage timed out")

	// ErrInvalidBookingID is returned when booking ID is empty.
	ErrInvalidBookingID = errors.New("invalid booking id")

	// ErrInvalidVehicleID is returned when vehicle ID is empty.
	ErrInvalidVehicleID = errors.New("invalid vehicle id")

	// ErrInvalidRenterID is returned when renter ID is empty.
	ErrInvalidRenterID = errors.New("invalid renter id")

	// ErrInvalidVehicleData is returned when a vehicle create/update request
	// is malformed.
	ErrInvalidVehicleData = errors.New("invalid vehicle data")

	// ErrInvalidCredentials is returned when login credentials do not match.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrEmailTaken is returned when registering with an existing email.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidUserData is returned when a registration request is malformed.
	ErrInvalidUserData = errors.New("invalid user data")

	// ErrInvalidPaymentID is returned when payment ID is empty.
	ErrInvalidPaymentID = errors.New("invalid payment id")

	// ErrInvalidSessionID is returned when a webhook carries no session ID.
	ErrInvalidSessionID = errors.New("invalid checkout session id")
)
