package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/AncyStar/vehicle-rental-backend/internal/domain"
	"github.com/AncyStar/vehicle-rental-backend/internal/middleware"
	"github.com/AncyStar/vehicle-rental-backend/internal/service"
)

const dateLayout = "2006-01-02"

// BookingHandler handles HTTP requests for bookings.
type BookingHandler struct {
	bookingService *service.BookingService
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(bookingService *service.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

// CreateBookingRequest is the HTTP request body for creating a booking.
// A total_price field sent by the client is ignored; the price is always
// computed server-side.
type CreateBookingRequest struct {
	VehicleID string `json:"vehicle_id"`
	StartDate string `json:"start_date"` // YYYY-MM-DD
	EndDate   string `json:"end_date"`   // YYYY-MM-DD
}

// BookingResponse is the HTTP response for booking operations.
type BookingResponse struct {
	ID          string  `json:"id"`
	VehicleID   string  `json:"vehicle_id"`
	RenterID    string  `json:"renter_id"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	TotalPrice  float64 `json:"total_price"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"created_at,omitempty"`
	CancelledAt string  `json:"cancelled_at,omitempty"`
}

func toBookingResponse(b *domain.Booking) BookingResponse {
	resp := BookingResponse{
		ID:         b.ID,
		VehicleID:  b.VehicleID,
		RenterID:   b.RenterID,
		StartDate:  b.StartDate.Format(dateLayout),
		EndDate:    b.EndDate.Format(dateLayout),
		TotalPrice: b.TotalPrice,
		Status:     string(b.Status),
	}
	if !b.CreatedAt.IsZero() {
		resp.CreatedAt = b.CreatedAt.Format(time.RFC3339)
	}
	if !b.CancelledAt.IsZero() {
		resp.CancelledAt = b.CancelledAt.Format(time.RFC3339)
	}
	return resp
}

// CreateBooking handles POST /v1/bookings
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	start, end, ok := parseDates(c, req.StartDate, req.EndDate)
	if !ok {
		return
	}

	booking, err := h.bookingService.CreateBooking(c.Request.Context(), service.CreateBookingRequest{
		VehicleID: req.VehicleID,
		RenterID:  middleware.UserID(c),
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, toBookingResponse(booking))
}

// GetBooking handles GET /v1/bookings/:id
func (h *BookingHandler) GetBooking(c *gin.Context) {
	booking, err := h.bookingService.GetBooking(c.Request.Context(), c.Param("id"), middleware.UserID(c), middleware.IsAdmin(c))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toBookingResponse(booking))
}

// GetAll handles GET /v1/bookings
func (h *BookingHandler) GetAll(c *gin.Context) {
	bookings, err := h.bookingService.ListBookings(c.Request.Context(), middleware.UserID(c), middleware.IsAdmin(c))
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		response = append(response, toBookingResponse(b))
	}

	c.JSON(http.StatusOK, response)
}

// CancelBooking handles POST /v1/bookings/:id/cancel
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	booking, err := h.bookingService.CancelBooking(c.Request.Context(), c.Param("id"), middleware.UserID(c), middleware.IsAdmin(c))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toBookingResponse(booking))
}

// QuoteRequest is the HTTP query for a price quote.
type QuoteResponse struct {
	VehicleID  string  `json:"vehicle_id"`
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`
	RentalDays int     `json:"rental_days"`
	DailyRate  float64 `json:"daily_rate"`
	TotalPrice float64 `json:"total_price"`
}

// Quote handles GET /v1/bookings/quote?vehicle_id=&start_date=&end_date=
func (h *BookingHandler) Quote(c *gin.Context) {
	start, end, ok := parseDates(c, c.Query("start_date"), c.Query("end_date"))
	if !ok {
		return
	}

	quote, err := h.bookingService.PriceQuote(c.Request.Context(), c.Query("vehicle_id"), start, end)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, QuoteResponse{
		VehicleID:  quote.VehicleID,
		StartDate:  quote.StartDate.Format(dateLayout),
		EndDate:    quote.EndDate.Format(dateLayout),
		RentalDays: quote.RentalDays,
		DailyRate:  quote.DailyRate,
		TotalPrice: quote.TotalPrice,
	})
}

// parseDates parses YYYY-MM-DD pairs, writing a 400 response on failure.
func parseDates(c *gin.Context, startStr, endStr string) (time.Time, time.Time, bool) {
	start, err := time.Parse(dateLayout, startStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "start_date must be YYYY-MM-DD"})
		return time.Time{}, time.Time{}, false
	}

	end, err := time.Parse(dateLayout, endStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "end_date must be YYYY-MM-DD"})
		return time.Time{}, time.Time{}, false
	}

	return start, end, true
}
