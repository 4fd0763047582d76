package tests

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/AncyStar/vehicle-rental-backend/internal/repository"
	"github.com/AncyStar/vehicle-rental-backend/internal/service"
)

// ──────────────────────────────────────────────
// 1. PRICE QUOTES
// ──────────────────────────────────────────────

func TestPriceQuote_ComputesDaysTimesRate(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		dailyRate float64
		startDay  int
		endDay    int
		wantDays  int
		wantTotal float64
	}{
		{name: "single day", dailyRate: 40, startDay: 1, endDay: 2, wantDays: 1, wantTotal: 40},
		{name: "three days", dailyRate: 40, startDay: 1, endDay: 4, wantDays: 3, wantTotal: 120},
		{name: "week at fractional rate", dailyRate: 55.5, startDay: 3, endDay: 10, wantDays: 7, wantTotal: 388.5},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			f := newBookingFixture()
			f.addVehicle("vehicle-1", tc.dailyRate)

			quote, err := f.svc.PriceQuote(context.Background(), "vehicle-1", daysFromNow(tc.startDay), daysFromNow(tc.endDay))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if quote.RentalDays != tc.wantDays {
				t.Errorf("rental days = %d, want %d", quote.RentalDays, tc.wantDays)
			}
			if quote.TotalPrice != tc.wantTotal {
				t.Errorf("total price = %v, want %v", quote.TotalPrice, tc.wantTotal)
			}
			if quote.DailyRate != tc.dailyRate {
				t.Errorf("daily rate = %v, want %v", quote.DailyRate, tc.dailyRate)
			}
		})
	}
}

func TestPriceQuote_Deterministic(t *testing.T) {
	t.Parallel()

	f := newBookingFixture()
	f.addVehicle("vehicle-1", 73.25)

	first, err := f.svc.PriceQuote(context.Background(), "vehicle-1", daysFromNow(2), daysFromNow(9))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := 0; i < 10; i++ {
		quote, err := f.svc.PriceQuote(context.Background(), "vehicle-1", daysFromNow(2), daysFromNow(9))
		if err != nil {
			t.Fatalf("call %d: unexpected error: %v", i, err)
		}
		if quote.TotalPrice != first.TotalPrice || quote.RentalDays != first.RentalDays {
			t.Fatalf("call %d: quote changed: got (%v, %d), want (%v, %d)",
				i, quote.TotalPrice, quote.RentalDays, first.TotalPrice, first.RentalDays)
		}
	}
}

func TestPriceQuote_BadRate_Rejected(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		rate float64
	}{
		{name: "zero rate", rate: 0},
		{name: "negative rate", rate: -10},
		{name: "NaN rate", rate: math.NaN()},
		{name: "infinite rate", rate: math.Inf(1)},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			f := newBookingFixture()
			f.addVehicle("vehicle-1", tc.rate)

			_, err := f.svc.PriceQuote(context.Background(), "vehicle-1", daysFromNow(1), daysFromNow(4))
			if !errors.Is(err, service.ErrInvalidPricing) {
				t.Errorf("expected ErrInvalidPricing, got: %v", err)
			}
		})
	}
}

func TestPriceQuote_UnknownVehicle_NotFound(t *testing.T) {
	t.Parallel()

	f := newBookingFixture()

	_, err := f.svc.PriceQuote(context.Background(), "vehicle-missing", daysFromNow(1), daysFromNow(4))
	if !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got: %v", err)
	}
}

func TestPriceQuote_InvalidRanges_Rejected(t *testing.T) {
	t.Parallel()

	f := newBookingFixture()
	f.addVehicle("vehicle-1", 40)

	testCases := []struct {
		name     string
		startDay int
		endDay   int
	}{
		{name: "end before start", startDay: 5, endDay: 2},
		{name: "zero-length range", startDay: 5, endDay: 5},
		{name: "start in the past", startDay: -2, endDay: 3},
		{name: "entirely in the past", startDay: -10, endDay: -5},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := f.svc.PriceQuote(context.Background(), "vehicle-1", daysFromNow(tc.startDay), daysFromNow(tc.endDay))
			if !errors.Is(err, service.ErrInvalidRange) {
				t.Errorf("expected ErrInvalidRange, got: %v", err)
			}
		})
	}
}
