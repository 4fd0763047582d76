package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/AncyStar/vehicle-rental-backend/internal/domain"
)

// NotificationType represents the type of notification.
type NotificationType string

const (
	NotificationBookingCreated   NotificationType = "BOOKING_CREATED"
	NotificationBookingConfirmed NotificationType = "BOOKING_CONFIRMED"
	NotificationBookingCancelled NotificationType = "BOOKING_CANCELLED"
	NotificationPaymentCompleted NotificationType = "PAYMENT_COMPLETED"
	NotificationPaymentFailed    NotificationType = "PAYMENT_FAILED"
)

// Notification represents a notification to be sent.
type Notification struct {
	Type        NotificationType
	RecipientID string
	Title       string
	Message     string
	Data        map[string]interface{}
	CreatedAt   time.Time
}

// NotificationService handles notification delivery.
type NotificationService struct {
	// In a real system, this would have an email client and push
	// notification connections.
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService() *NotificationService {
	return &NotificationService{}
}

// NotifyBookingCreated notifies the renter that a booking was placed.
func (s *NotificationService) NotifyBookingCreated(ctx context.Context, booking *domain.Booking) error {
	return s.send(ctx, Notification{
		Type:        NotificationBookingCreated,
		RecipientID: booking.RenterID,
		Title:       "Booking Placed",
		Message:     fmt.Sprintf("Your booking from %s to %s is pending payment. Total: $%.2f", booking.StartDate.Format("2006-01-02"), booking.EndDate.Format("2006-01-02"), booking.TotalPrice),
		Data: map[string]interface{}{
			"booking_id":  booking.ID,
			"vehicle_id":  booking.VehicleID,
			"total_price": booking.TotalPrice,
		},
		CreatedAt: time.Now(),
	})
}

// NotifyBookingConfirmed notifies the renter that payment was captured.
func (s *NotificationService) NotifyBookingConfirmed(ctx context.Context, booking *domain.Booking) error {
	return s.send(ctx, Notification{
		Type:        NotificationBookingConfirmed,
		RecipientID: booking.RenterID,
		Title:       "Booking Confirmed",
		Message:     fmt.Sprintf("Your booking from %s to %s is confirmed", booking.StartDate.Format("2006-01-02"), booking.EndDate.Format("2006-01-02")),
		Data: map[string]interface{}{
			"booking_id": booking.ID,
			"vehicle_id": booking.VehicleID,
		},
		CreatedAt: time.Now(),
	})
}

// NotifyBookingCancelled notifies the renter about a cancellation.
func (s *NotificationService) NotifyBookingCancelled(ctx context.Context, booking *domain.Booking, cancelledBy string) error {
	message := "Your booking has been cancelled"
	if cancelledBy != booking.RenterID {
		message = "Your booking was cancelled by an administrator"
	}

	return s.send(ctx, Notification{
		Type:        NotificationBookingCancelled,
		RecipientID: booking.RenterID,
		Title:       "Booking Cancelled",
		Message:     message,
		Data: map[string]interface{}{
			"booking_id":   booking.ID,
			"cancelled_by": cancelledBy,
		},
		CreatedAt: time.Now(),
	})
}

// send delivers a notification (mock implementation).
func (s *NotificationService) send(ctx context.Context, notification Notification) error {
	log.Printf("[NOTIFICATION] Type=%s, Recipient=%s, Title=%s, Message=%s",
		notification.Type, notification.RecipientID, notification.Title, notification.Message)

	return nil
}
