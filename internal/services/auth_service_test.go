package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/vokzo/api/internal/helpers"
	"github.com/vokzo/api/internal/models"
)

const testJWTSecret = "test-secret"

func signupRequest() *models.SignupRequest {
	return &models.SignupRequest{
		FullName:        "Asha Patel",
		Email:           "asha@example.com",
		Password:        "pass1234",
		ConfirmPassword: "pass1234",
		Role:            models.RoleCustomer,
	}
}

func TestSignup(t *testing.T) {
	store := newFakeStore()
	svc := NewAuthService(store, store, testJWTSecret)

	result, err := svc.Signup(context.Background(), signupRequest())
	if err != nil {
		t.Fatalf("Signup returned error: %v", err)
	}
	if result.Token == "" {
		t.Error("empty token")
	}
	if result.User.Email != "asha@example.com" {
		t.Errorf("user email = %q", result.User.Email)
	}
	if result.User.Role != models.RoleCustomer {
		t.Errorf("user role = %q", result.User.Role)
	}
	if result.ProviderID != "" {
		t.Errorf("customer signup got provider id %q", result.ProviderID)
	}
	if result.User.City != nil {
		t.Errorf("new customer city = %v, want nil", *result.User.City)
	}

	claims, err := helpers.ValidateToken(testJWTSecret, result.Token)
	if err != nil {
		t.Fatalf("issued token invalid: %v", err)
	}
	if claims.UserID != result.User.ID {
		t.Errorf("token user id = %q, want %q", claims.UserID, result.User.ID)
	}
	if claims.Role != models.RoleCustomer {
		t.Errorf("token role = %q", claims.Role)
	}

	stored, _ := store.GetUserByEmail(context.Background(), "asha@example.com")
	if stored == nil {
		t.Fatal("user not persisted")
	}
	if stored.Password == "pass1234" {
		t.Error("password stored as plaintext")
	}
	if !helpers.CheckPasswordHash("pass1234", stored.Password) {
		t.Error("stored hash does not verify the password")
	}
}

func TestSignupPasswordMismatch(t *testing.T) {
	store := newFakeStore()
	svc := NewAuthService(store, store, testJWTSecret)

	req := signupRequest()
	req.ConfirmPassword = "different"
	_, err := svc.Signup(context.Background(), req)
	wantAPIError(t, err, http.StatusBadRequest, "Passwords do not match")
}

func TestSignupDuplicateEmail(t *testing.T) {
	store := newFakeStore()
	svc := NewAuthService(store, store, testJWTSecret)

	if _, err := svc.Signup(context.Background(), signupRequest()); err != nil {
		t.Fatalf("first signup failed: %v", err)
	}
	_, err := svc.Signup(context.Background(), signupRequest())
	wantAPIError(t, err, http.StatusBadRequest, "Email already registered")
}

func TestSignupInvalidRole(t *testing.T) {
	store := newFakeStore()
	svc := NewAuthService(store, store, testJWTSecret)

	req := signupRequest()
	req.Role = models.RoleAdmin
	_, err := svc.Signup(context.Background(), req)
	wantAPIError(t, err, http.StatusBadRequest, "Invalid role")
}

func TestProviderSignup(t *testing.T) {
	store := newFakeStore()
	svc := NewAuthService(store, store, testJWTSecret)

	result, err := svc.ProviderSignup(context.Background(), &models.ProviderSignupRequest{
		FullName:        "Ravi Kumar",
		Email:           "ravi@example.com",
		Password:        "pass1234",
		ConfirmPassword: "pass1234",
		CategoryID:      "cat-1",
		SubServiceID:    "sub-1",
		Experience:      5,
		BasePrice:       500,
		City:            "Mumbai",
	})
	if err != nil {
		t.Fatalf("ProviderSignup returned error: %v", err)
	}
	if result.ProviderID == "" {
		t.Fatal("missing provider id")
	}
	if result.User.Role != models.RoleProvider {
		t.Errorf("user role = %q", result.User.Role)
	}

	provider, _ := store.GetProviderByID(context.Background(), result.ProviderID)
	if provider == nil {
		t.Fatal("provider profile not persisted")
	}
	if provider.IsApproved || provider.IsVerified || provider.IsOnline {
		t.Error("new provider must start unapproved, unverified and offline")
	}
	if provider.Rating != 0 || provider.TotalReviews != 0 {
		t.Error("new provider must start with zero rating and reviews")
	}
	if provider.BasePrice != 500 {
		t.Errorf("base price = %v", provider.BasePrice)
	}
	if provider.UserID != result.User.ID {
		t.Error("provider not linked to the user account")
	}
}

func TestLogin(t *testing.T) {
	store := newFakeStore()
	svc := NewAuthService(store, store, testJWTSecret)

	if _, err := svc.Signup(context.Background(), signupRequest()); err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	result, err := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "asha@example.com",
		Password: "pass1234",
	})
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if result.Token == "" {
		t.Error("empty token")
	}
	if result.User.Email != "asha@example.com" {
		t.Errorf("user email = %q", result.User.Email)
	}
}

func TestLoginGenericError(t *testing.T) {
	store := newFakeStore()
	svc := NewAuthService(store, store, testJWTSecret)

	if _, err := svc.Signup(context.Background(), signupRequest()); err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	// Unknown email and wrong password must be indistinguishable.
	_, err := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "nobody@example.com",
		Password: "pass1234",
	})
	wantAPIError(t, err, http.StatusUnauthorized, "Invalid email or password")

	_, err = svc.Login(context.Background(), &models.LoginRequest{
		Email:    "asha@example.com",
		Password: "wrong",
	})
	wantAPIError(t, err, http.StatusUnauthorized, "Invalid email or password")
}

func TestProfileIncludesProviderRecord(t *testing.T) {
	store := newFakeStore()
	svc := NewAuthService(store, store, testJWTSecret)

	result, err := svc.ProviderSignup(context.Background(), &models.ProviderSignupRequest{
		FullName:        "Ravi Kumar",
		Email:           "ravi@example.com",
		Password:        "pass1234",
		ConfirmPassword: "pass1234",
		CategoryID:      "cat-1",
		SubServiceID:    "sub-1",
		BasePrice:       500,
		City:            "Mumbai",
	})
	if err != nil {
		t.Fatalf("ProviderSignup failed: %v", err)
	}

	user, _ := store.GetUserByID(context.Background(), result.User.ID)
	profile, err := svc.Profile(context.Background(), user)
	if err != nil {
		t.Fatalf("Profile returned error: %v", err)
	}
	if profile.Provider == nil {
		t.Fatal("provider profile missing from provider's profile response")
	}
	if profile.Provider.ID != result.ProviderID {
		t.Errorf("profile provider id = %q, want %q", profile.Provider.ID, result.ProviderID)
	}
}

func TestUpdateCity(t *testing.T) {
	store := newFakeStore()
	svc := NewAuthService(store, store, testJWTSecret)

	result, err := svc.Signup(context.Background(), signupRequest())
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	if err := svc.UpdateCity(context.Background(), result.User.ID, "Surat"); err != nil {
		t.Fatalf("UpdateCity returned error: %v", err)
	}
	user, _ := store.GetUserByID(context.Background(), result.User.ID)
	if user.City == nil || *user.City != "Surat" {
		t.Errorf("city not updated, got %v", user.City)
	}

	err = svc.UpdateCity(context.Background(), result.User.ID, "   ")
	wantAPIError(t, err, http.StatusBadRequest, "City is required")
}
