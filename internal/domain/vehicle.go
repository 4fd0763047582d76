package domain

import "time"

// Vehicle represents a rentable vehicle in the catalog.
type Vehicle struct {
	ID          string
	Make        string
	Model       string
	Year        int
	DailyRate   float64
	Description string
	Images      []string
	Available   bool // Catalog-level listing flag, independent of bookings.
	CreatedAt   time.Time
}
