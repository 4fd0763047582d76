package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/AncyStar/vehicle-rental-backend/internal/domain"
	"github.com/AncyStar/vehicle-rental-backend/internal/repository"
	"github.com/AncyStar/vehicle-rental-backend/internal/service"
)

// VehicleHandler handles HTTP requests for the vehicle catalog.
type VehicleHandler struct {
	vehicleService *service.VehicleService
	bookingService *service.BookingService
}

// NewVehicleHandler creates a new VehicleHandler.
func NewVehicleHandler(vehicleService *service.VehicleService, bookingService *service.BookingService) *VehicleHandler {
	return &VehicleHandler{
		vehicleService: vehicleService,
		bookingService: bookingService,
	}
}

// VehicleRequest is the HTTP request body for creating/updating a vehicle.
type VehicleRequest struct {
	Make        string   `json:"make"`
	Model       string   `json:"model"`
	Year        int      `json:"year"`
	DailyRate   float64  `json:"daily_rate"`
	Description string   `json:"description,omitempty"`
	Images      []string `json:"images,omitempty"`
	Available   bool     `json:"available"`
}

// VehicleResponse is the HTTP response for vehicle data.
type VehicleResponse struct {
	ID          string   `json:"id"`
	Make        string   `json:"make"`
	Model       string   `json:"model"`
	Year        int      `json:"year"`
	DailyRate   float64  `json:"daily_rate"`
	Description string   `json:"description,omitempty"`
	Images      []string `json:"images,omitempty"`
	Available   bool     `json:"available"`
}

func toVehicleResponse(v *domain.Vehicle) VehicleResponse {
	return VehicleResponse{
		ID:          v.ID,
		Make:        v.Make,
		Model:       v.Model,
		Year:        v.Year,
		DailyRate:   v.DailyRate,
		Description: v.Description,
		Images:      v.Images,
		Available:   v.Available,
	}
}

// Create handles POST /v1/vehicles (admin only)
func (h *VehicleHandler) Create(c *gin.Context) {
	var req VehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	vehicle, err := h.vehicleService.CreateVehicle(c.Request.Context(), service.VehicleInput{
		Make:        req.Make,
		Model:       req.Model,
		Year:        req.Year,
		DailyRate:   req.DailyRate,
		Description: req.Description,
		Images:      req.Images,
		Available:   req.Available,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, toVehicleResponse(vehicle))
}

// Get handles GET /v1/vehicles/:id
func (h *VehicleHandler) Get(c *gin.Context) {
	vehicle, err := h.vehicleService.GetVehicle(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toVehicleResponse(vehicle))
}

// GetAll handles GET /v1/vehicles
func (h *VehicleHandler) GetAll(c *gin.Context) {
	filter := repository.VehicleFilter{Make: c.Query("make")}
	if v := c.Query("min_price"); v != "" {
		if price, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MinPrice = price
		}
	}
	if v := c.Query("max_price"); v != "" {
		if price, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MaxPrice = price
		}
	}

	vehicles, err := h.vehicleService.ListVehicles(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]VehicleResponse, 0, len(vehicles))
	for _, v := range vehicles {
		response = append(response, toVehicleResponse(v))
	}

	c.JSON(http.StatusOK, response)
}

// Update handles PUT /v1/vehicles/:id (admin only)
func (h *VehicleHandler) Update(c *gin.Context) {
	var req VehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	vehicle, err := h.vehicleService.UpdateVehicle(c.Request.Context(), c.Param("id"), service.VehicleInput{
		Make:        req.Make,
		Model:       req.Model,
		Year:        req.Year,
		DailyRate:   req.DailyRate,
		Description: req.Description,
		Images:      req.Images,
		Available:   req.Available,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toVehicleResponse(vehicle))
}

// Delete handles DELETE /v1/vehicles/:id (admin only)
func (h *VehicleHandler) Delete(c *gin.Context) {
	if err := h.vehicleService.DeleteVehicle(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, gin.H{"message": "vehicle deleted"})
}

// DateRangeResponse is a booked date range in availability responses.
type DateRangeResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// AvailabilityResponse lists the ranges blocked by active bookings.
type AvailabilityResponse struct {
	VehicleID        string              `json:"vehicle_id"`
	Available        *bool               `json:"available,omitempty"` // Set when a range was queried.
	UnavailableDates []DateRangeResponse `json:"unavailable_dates"`
}

// Availability handles GET /v1/vehicles/:id/availability
//
// Without query parameters it returns every actively booked range. With
// start_date and end_date it additionally reports whether that range is free
// and lists only the conflicting ranges.
func (h *VehicleHandler) Availability(c *gin.Context) {
	vehicleID := c.Param("id")

	startStr, endStr := c.Query("start_date"), c.Query("end_date")
	if startStr != "" || endStr != "" {
		start, end, ok := parseDates(c, startStr, endStr)
		if !ok {
			return
		}

		result, err := h.bookingService.CheckAvailability(c.Request.Context(), vehicleID, start, end)
		if err != nil {
			respondError(c, err)
			return
		}

		respondJSON(c, http.StatusOK, AvailabilityResponse{
			VehicleID:        vehicleID,
			Available:        &result.Available,
			UnavailableDates: toDateRangeResponses(result.Conflicts),
		})
		return
	}

	ranges, err := h.bookingService.UnavailableRanges(c.Request.Context(), vehicleID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, AvailabilityResponse{
		VehicleID:        vehicleID,
		UnavailableDates: toDateRangeResponses(ranges),
	})
}

func toDateRangeResponses(ranges []domain.DateRange) []DateRangeResponse {
	out := make([]DateRangeResponse, 0, len(ranges))
	for _, r := range ranges {
		out = append(out, DateRangeResponse{
			Start: r.Start.Format(dateLayout),
			End:   r.End.Format(dateLayout),
		})
	}
	return out
}
