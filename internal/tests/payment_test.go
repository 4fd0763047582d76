package tests

import (
	"context"
	"errors"
	"testing"

	"github.com/AncyStar/vehicle-rental-backend/internal/domain"
	"github.com/AncyStar/vehicle-rental-backend/internal/repository"
	"github.com/AncyStar/vehicle-rental-backend/internal/service"
)

// paymentFixture bundles a PaymentService with its booking fixture.
type paymentFixture struct {
	*bookingFixture
	paymentRepo *MockPaymentRepository
	provider    *MockCheckoutProviderForTest
	payments    *service.PaymentService
}

func newPaymentFixture() *paymentFixture {
	f := &paymentFixture{
		bookingFixture: newBookingFixture(),
		paymentRepo:    NewMockPaymentRepository(),
		provider:       NewMockCheckoutProviderForTest(),
	}
	f.payments = service.NewPaymentService(f.paymentRepo, f.svc, f.provider,
		"https://rental.test/success", "https://rental.test/cancel")
	return f
}

// ──────────────────────────────────────────────
// 1. CHECKOUT CREATION
// ──────────────────────────────────────────────

func TestCheckout_PendingBooking_OpensSession(t *testing.T) {
	t.Parallel()

	f := newPaymentFixture()
	booking := f.addBooking("booking-1", "vehicle-1", "renter-1", 10, 15, domain.BookingStatusPending)
	booking.TotalPrice = 200

	payment, url, err := f.payments.CreateCheckout(context.Background(), "booking-1", "renter-1", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if payment.Status != domain.PaymentStatusPending {
		t.Errorf("expected payment status %s, got %s", domain.PaymentStatusPending, payment.Status)
	}
	if payment.Amount != 200 {
		t.Errorf("amount must come from the stored booking price, got %v", payment.Amount)
	}
	if payment.SessionID == "" {
		t.Error("expected a provider session ID")
	}
	if url == "" {
		t.Error("expected a checkout URL")
	}
	if f.provider.SessionCallCount != 1 {
		t.Errorf("expected 1 provider session, got %d", f.provider.SessionCallCount)
	}
}

func TestCheckout_ByStranger_Forbidden(t *testing.T) {
	t.Parallel()

	f := newPaymentFixture()
	f.addBooking("booking-1", "vehicle-1", "renter-1", 10, 15, domain.BookingStatusPending)

	_, _, err := f.payments.CreateCheckout(context.Background(), "booking-1", "renter-2", false)
	if !errors.Is(err, service.ErrForbidden) {
		t.Errorf("expected ErrForbidden, got: %v", err)
	}
	if f.paymentRepo.CountPayments() != 0 {
		t.Error("forbidden checkout must not create a payment")
	}
}

func TestCheckout_NonPendingBooking_Rejected(t *testing.T) {
	t.Parallel()

	statuses := []domain.BookingStatus{domain.BookingStatusConfirmed, domain.BookingStatusCancelled}
	for _, status := range statuses {
		status := status
		t.Run(string(status), func(t *testing.T) {
			t.Parallel()

			f := newPaymentFixture()
			f.addBooking("booking-1", "vehicle-1", "renter-1", 10, 15, status)

			_, _, err := f.payments.CreateCheckout(context.Background(), "booking-1", "renter-1", false)
			if !errors.Is(err, service.ErrBookingNotPending) {
				t.Errorf("expected ErrBookingNotPending, got: %v", err)
			}
		})
	}
}

// ──────────────────────────────────────────────
// 2. WEBHOOK CAPTURE
// ──────────────────────────────────────────────

func TestWebhookCompleted_ConfirmsBooking(t *testing.T) {
	t.Parallel()

	f := newPaymentFixture()
	f.addBooking("booking-1", "vehicle-1", "renter-1", 10, 15, domain.BookingStatusPending)

	payment, _, err := f.payments.CreateCheckout(context.Background(), "booking-1", "renter-1", false)
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}

	captured, err := f.payments.HandleCheckoutCompleted(context.Background(), payment.SessionID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if captured.Status != domain.PaymentStatusCompleted {
		t.Errorf("expected payment status %s, got %s", domain.PaymentStatusCompleted, captured.Status)
	}
	if got := f.bookingRepo.GetBooking("booking-1").Status; got != domain.BookingStatusConfirmed {
		t.Errorf("expected booking to be %s, got %s", domain.BookingStatusConfirmed, got)
	}
}

func TestWebhookCompleted_Redelivery_Idempotent(t *testing.T) {
	t.Parallel()

	f := newPaymentFixture()
	f.addBooking("booking-1", "vehicle-1", "renter-1", 10, 15, domain.BookingStatusPending)

	payment, _, err := f.payments.CreateCheckout(context.Background(), "booking-1", "renter-1", false)
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}

	for i := 0; i < 3; i++ {
		captured, err := f.payments.HandleCheckoutCompleted(context.Background(), payment.SessionID)
		if err != nil {
			t.Fatalf("delivery %d failed: %v", i, err)
		}
		if captured.Status != domain.PaymentStatusCompleted {
			t.Errorf("delivery %d: payment status = %s", i, captured.Status)
		}
	}

	if got := f.bookingRepo.GetBooking("booking-1").Status; got != domain.BookingStatusConfirmed {
		t.Errorf("expected booking to stay %s, got %s", domain.BookingStatusConfirmed, got)
	}
	// The status write must only happen on the first delivery.
	if f.paymentRepo.UpdateStatusCallCount != 1 {
		t.Errorf("expected 1 payment status write, got %d", f.paymentRepo.UpdateStatusCallCount)
	}
}

func TestWebhookFailed_BookingStaysPending(t *testing.T) {
	t.Parallel()

	f := newPaymentFixture()
	f.addBooking("booking-1", "vehicle-1", "renter-1", 10, 15, domain.BookingStatusPending)

	payment, _, err := f.payments.CreateCheckout(context.Background(), "booking-1", "renter-1", false)
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}

	failed, err := f.payments.HandleCheckoutFailed(context.Background(), payment.SessionID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if failed.Status != domain.PaymentStatusFailed {
		t.Errorf("expected payment status %s, got %s", domain.PaymentStatusFailed, failed.Status)
	}
	// The renter keeps the reservation and can retry checkout.
	if got := f.bookingRepo.GetBooking("booking-1").Status; got != domain.BookingStatusPending {
		t.Errorf("expected booking to stay %s, got %s", domain.BookingStatusPending, got)
	}
}

func TestWebhook_UnknownSession_NotFound(t *testing.T) {
	t.Parallel()

	f := newPaymentFixture()

	_, err := f.payments.HandleCheckoutCompleted(context.Background(), "sess-unknown")
	if !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got: %v", err)
	}
}

// ──────────────────────────────────────────────
// 3. PAYMENT READS
// ──────────────────────────────────────────────

func TestGetPayment_OwnershipEnforced(t *testing.T) {
	t.Parallel()

	f := newPaymentFixture()
	f.addBooking("booking-1", "vehicle-1", "renter-1", 10, 15, domain.BookingStatusPending)

	payment, _, err := f.payments.CreateCheckout(context.Background(), "booking-1", "renter-1", false)
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}

	if _, err := f.payments.GetPayment(context.Background(), payment.ID, "renter-1", false); err != nil {
		t.Errorf("owner read failed: %v", err)
	}
	if _, err := f.payments.GetPayment(context.Background(), payment.ID, "admin-1", true); err != nil {
		t.Errorf("admin read failed: %v", err)
	}

	_, err = f.payments.GetPayment(context.Background(), payment.ID, "renter-2", false)
	if !errors.Is(err, service.ErrForbidden) {
		t.Errorf("expected ErrForbidden for stranger, got: %v", err)
	}
}
