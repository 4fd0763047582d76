package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/AncyStar/vehicle-rental-backend/internal/domain"
	"github.com/AncyStar/vehicle-rental-backend/internal/repository"
)

// CheckoutProvider is the interface for a hosted-checkout payment processor.
type CheckoutProvider interface {
	CreateCheckoutSession(ctx context.Context, req CheckoutSessionRequest) (*CheckoutSession, error)
}

// CheckoutSessionRequest contains the parameters for a provider checkout session.
type CheckoutSessionRequest struct {
	BookingID   string
	Amount      float64
	Description string
	SuccessURL  string
	CancelURL   string
}

// CheckoutSession is a provider-hosted payment page.
type CheckoutSession struct {
	ID  string
	URL string
}

// MockCheckoutProvider is a mock implementation of CheckoutProvider for
// development and testing.
type MockCheckoutProvider struct{}

// NewMockCheckoutProvider creates a new mock checkout provider.
func NewMockCheckoutProvider() *MockCheckoutProvider {
	return &MockCheckoutProvider{}
}

// CreateCheckoutSession returns a fake hosted checkout session.
func (p *MockCheckoutProvider) CreateCheckoutSession(ctx context.Context, req CheckoutSessionRequest) (*CheckoutSession, error) {
	id := uuid.New().String()
	return &CheckoutSession{
		ID:  id,
		URL: fmt.Sprintf("https://checkout.example.com/session/%s", id),
	}, nil
}

// PaymentService handles checkout creation and capture callbacks. It performs
// no payment-protocol logic itself; the provider owns that.
type PaymentService struct {
	paymentRepo    repository.PaymentRepository
	bookingService *BookingService
	provider       CheckoutProvider
	successURL     string
	cancelURL      string
}

// NewPaymentService creates a new PaymentService.
func NewPaymentService(
	paymentRepo repository.PaymentRepository,
	bookingService *BookingService,
	provider CheckoutProvider,
	successURL, cancelURL string,
) *PaymentService {
	return &PaymentService{
		paymentRepo:    paymentRepo,
		bookingService: bookingService,
		provider:       provider,
		successURL:     successURL,
		cancelURL:      cancelURL,
	}
}

// CreateCheckout opens a provider checkout session for a pending booking owned
// by the actor. The charged amount is the booking's stored total price; the
// client cannot influence it.
func (s *PaymentService) CreateCheckout(ctx context.Context, bookingID, actorID string, actorIsAdmin bool) (*domain.Payment, string, error) {
	booking, err := s.bookingService.GetBooking(ctx, bookingID, actorID, actorIsAdmin)
	if err != nil {
		return nil, "", err
	}

	if booking.Status != domain.BookingStatusPending {
		return nil, "", ErrBookingNotPending
	}

	session, err := s.provider.CreateCheckoutSession(ctx, CheckoutSessionRequest{
		BookingID:   booking.ID,
		Amount:      booking.TotalPrice,
		Description: fmt.Sprintf("Vehicle rental %s to %s", booking.StartDate.Format("2006-01-02"), booking.EndDate.Format("2006-01-02")),
		SuccessURL:  s.successURL,
		CancelURL:   s.cancelURL,
	})
	if err != nil {
		return nil, "", err
	}

	payment := &domain.Payment{
		ID:        uuid.New().String(),
		BookingID: booking.ID,
		UserID:    booking.RenterID,
		Amount:    booking.TotalPrice,
		SessionID: session.ID,
		Status:    domain.PaymentStatusPending,
		CreatedAt: time.Now(),
	}

	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, "", err
	}

	return payment, session.URL, nil
}

// HandleCheckoutCompleted marks the session's payment as completed and
// confirms the booking. Providers redeliver webhooks, so a completed payment
// is returned as-is rather than re-processed.
func (s *PaymentService) HandleCheckoutCompleted(ctx context.Context, sessionID string) (*domain.Payment, error) {
	payment, err := s.lookupSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if payment.Status == domain.PaymentStatusCompleted {
		return payment, nil
	}

	if err := s.paymentRepo.UpdateStatus(ctx, payment.ID, domain.PaymentStatusCompleted); err != nil {
		return nil, err
	}
	payment.Status = domain.PaymentStatusCompleted

	// A duplicate capture for an already-confirmed booking is not an error.
	if _, err := s.bookingService.ConfirmBooking(ctx, payment.BookingID); err != nil && !errors.Is(err, ErrBookingNotPending) {
		return nil, err
	}

	return payment, nil
}

// HandleCheckoutFailed marks the session's payment as failed. The booking
// stays pending; the renter can retry checkout.
func (s *PaymentService) HandleCheckoutFailed(ctx context.Context, sessionID string) (*domain.Payment, error) {
	payment, err := s.lookupSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if err := s.paymentRepo.UpdateStatus(ctx, payment.ID, domain.PaymentStatusFailed); err != nil {
		return nil, err
	}
	payment.Status = domain.PaymentStatusFailed

	return payment, nil
}

// GetPayment retrieves a payment by ID. Only the paying user or an admin may
// read it.
func (s *PaymentService) GetPayment(ctx context.Context, paymentID, actorID string, actorIsAdmin bool) (*domain.Payment, error) {
	if paymentID == "" {
		return nil, ErrInvalidPaymentID
	}

	payment, err := s.paymentRepo.GetByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	if !actorIsAdmin && payment.UserID != actorID {
		return nil, ErrForbidden
	}

	return payment, nil
}

func (s *PaymentService) lookupSession(ctx context.Context, sessionID string) (*domain.Payment, error) {
	if sessionID == "" {
		return nil, ErrInvalidSessionID
	}

	payment, err := s.paymentRepo.GetBySessionID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, repository.ErrNotFound
	}
	return payment, nil
}
