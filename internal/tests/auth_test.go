package tests

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/AncyStar/vehicle-rental-backend/internal/domain"
	"github.com/AncyStar/vehicle-rental-backend/internal/service"
)

func newAuthService(userRepo *MockUserRepository) *service.AuthService {
	return service.NewAuthService(userRepo, "test-secret", time.Hour)
}

// ──────────────────────────────────────────────
// 1. REGISTRATION
// ──────────────────────────────────────────────

func TestRegister_ValidInput_ReturnsUserAndToken(t *testing.T) {
	t.Parallel()

	userRepo := NewMockUserRepository()
	auth := newAuthService(userRepo)

	user, token, err := auth.Register(context.Background(), service.RegisterRequest{
		Name:     "Alice",
		Email:    "Alice@Example.com",
		Password: "correct-horse",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if user.Email != "alice@example.com" {
		t.Errorf("expected lowercased email, got %s", user.Email)
	}
	if user.Role != domain.UserRoleUser {
		t.Errorf("expected role %s, got %s", domain.UserRoleUser, user.Role)
	}
	if user.PasswordHash == "correct-horse" {
		t.Error("password must be stored hashed")
	}
	if token == "" {
		t.Fatal("expected a signed token")
	}

	claims, err := auth.ParseToken(token)
	if err != nil {
		t.Fatalf("issued token failed to parse: %v", err)
	}
	if claims.Subject != user.ID {
		t.Errorf("token subject = %s, want %s", claims.Subject, user.ID)
	}
	if claims.IsAdmin() {
		t.Error("fresh registration must not grant admin")
	}
}

func TestRegister_DuplicateEmail_Rejected(t *testing.T) {
	t.Parallel()

	userRepo := NewMockUserRepository()
	auth := newAuthService(userRepo)

	req := service.RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "correct-horse"}
	if _, _, err := auth.Register(context.Background(), req); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}

	_, _, err := auth.Register(context.Background(), req)
	if !errors.Is(err, service.ErrEmailTaken) {
		t.Errorf("expected ErrEmailTaken, got: %v", err)
	}
}

func TestRegister_InvalidInput_Rejected(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		req  service.RegisterRequest
	}{
		{name: "missing name", req: service.RegisterRequest{Email: "a@b.com", Password: "longenough"}},
		{name: "missing email", req: service.RegisterRequest{Name: "Alice", Password: "longenough"}},
		{name: "short password", req: service.RegisterRequest{Name: "Alice", Email: "a@b.com", Password: "short"}},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			auth := newAuthService(NewMockUserRepository())
			_, _, err := auth.Register(context.Background(), tc.req)
			if !errors.Is(err, service.ErrInvalidUserData) {
				t.Errorf("expected ErrInvalidUserData, got: %v", err)
			}
		})
	}
}

// ──────────────────────────────────────────────
// 2. LOGIN AND TOKENS
// ──────────────────────────────────────────────

func TestLogin_CorrectCredentials_Succeeds(t *testing.T) {
	t.Parallel()

	userRepo := NewMockUserRepository()
	auth := newAuthService(userRepo)

	if _, _, err := auth.Register(context.Background(), service.RegisterRequest{
		Name: "Alice", Email: "alice@example.com", Password: "correct-horse",
	}); err != nil {
		t.Fatalf("registration failed: %v", err)
	}

	user, token, err := auth.Login(context.Background(), "ALICE@example.com", "correct-horse")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Email != "alice@example.com" {
		t.Errorf("unexpected user: %s", user.Email)
	}
	if token == "" {
		t.Error("expected a signed token")
	}
}

func TestLogin_BadCredentials_Rejected(t *testing.T) {
	t.Parallel()

	userRepo := NewMockUserRepository()
	auth := newAuthService(userRepo)

	if _, _, err := auth.Register(context.Background(), service.RegisterRequest{
		Name: "Alice", Email: "alice@example.com", Password: "correct-horse",
	}); err != nil {
		t.Fatalf("registration failed: %v", err)
	}

	testCases := []struct {
		name     string
		email    string
		password string
	}{
		{name: "wrong password", email: "alice@example.com", password: "wrong"},
		{name: "unknown email", email: "bob@example.com", password: "correct-horse"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, _, err := auth.Login(context.Background(), tc.email, tc.password)
			if !errors.Is(err, service.ErrInvalidCredentials) {
				t.Errorf("expected ErrInvalidCredentials, got: %v", err)
			}
		})
	}
}

func TestParseToken_TamperedToken_Rejected(t *testing.T) {
	t.Parallel()

	auth := newAuthService(NewMockUserRepository())
	other := service.NewAuthService(NewMockUserRepository(), "other-secret", time.Hour)

	_, token, err := other.Register(context.Background(), service.RegisterRequest{
		Name: "Mallory", Email: "mallory@example.com", Password: "correct-horse",
	})
	if err != nil {
		t.Fatalf("registration failed: %v", err)
	}

	// Token signed under a different secret must not verify.
	if _, err := auth.ParseToken(token); !errors.Is(err, service.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got: %v", err)
	}
}
