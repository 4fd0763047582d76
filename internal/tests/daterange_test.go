package tests

import (
	"testing"
	"time"

	"github.com/AncyStar/vehicle-rental-backend/internal/domain"
)

// ──────────────────────────────────────────────
// 1. HALF-OPEN RANGE SEMANTICS
// ──────────────────────────────────────────────

func TestDateRange_Overlaps(t *testing.T) {
	t.Parallel()

	day := func(n int) time.Time {
		return time.Date(2030, time.June, n, 0, 0, 0, 0, time.UTC)
	}

	testCases := []struct {
		name string
		a, b domain.DateRange
		want bool
	}{
		{
			name: "identical ranges overlap",
			a:    domain.DateRange{Start: day(1), End: day(5)},
			b:    domain.DateRange{Start: day(1), End: day(5)},
			want: true,
		},
		{
			name: "shared single day overlaps",
			a:    domain.DateRange{Start: day(1), End: day(5)},
			b:    domain.DateRange{Start: day(4), End: day(8)},
			want: true,
		},
		{
			name: "end touching start does not overlap",
			a:    domain.DateRange{Start: day(1), End: day(5)},
			b:    domain.DateRange{Start: day(5), End: day(8)},
			want: false,
		},
		{
			name: "start touching end does not overlap",
			a:    domain.DateRange{Start: day(5), End: day(8)},
			b:    domain.DateRange{Start: day(1), End: day(5)},
			want: false,
		},
		{
			name: "containment overlaps",
			a:    domain.DateRange{Start: day(1), End: day(10)},
			b:    domain.DateRange{Start: day(3), End: day(5)},
			want: true,
		},
		{
			name: "disjoint ranges do not overlap",
			a:    domain.DateRange{Start: day(1), End: day(3)},
			b:    domain.DateRange{Start: day(10), End: day(12)},
			want: false,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := tc.a.Overlaps(tc.b); got != tc.want {
				t.Errorf("a.Overlaps(b) = %v, want %v", got, tc.want)
			}
			// Overlap is symmetric.
			if got := tc.b.Overlaps(tc.a); got != tc.want {
				t.Errorf("b.Overlaps(a) = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestDateRange_Days_RoundsPartialDaysUp(t *testing.T) {
	t.Parallel()

	base := time.Date(2030, time.June, 1, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name string
		end  time.Time
		want int
	}{
		{name: "exact single day", end: base.AddDate(0, 0, 1), want: 1},
		{name: "exact three days", end: base.AddDate(0, 0, 3), want: 3},
		{name: "one day plus an hour", end: base.AddDate(0, 0, 1).Add(time.Hour), want: 2},
		{name: "half a day", end: base.Add(12 * time.Hour), want: 1},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			r := domain.DateRange{Start: base, End: tc.end}
			if got := r.Days(); got != tc.want {
				t.Errorf("Days() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestNormalizeDate_TruncatesToMidnightUTC(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("UTC+5", 5*3600)
	in := time.Date(2030, time.June, 3, 14, 45, 12, 999, loc)

	got := domain.NormalizeDate(in)
	want := time.Date(2030, time.June, 3, 0, 0, 0, 0, time.UTC)

	if !got.Equal(want) {
		t.Errorf("NormalizeDate = %v, want %v", got, want)
	}
}
