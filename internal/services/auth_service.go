package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/vokzo/api/internal/errs"
	"github.com/vokzo/api/internal/helpers"
	"github.com/vokzo/api/internal/models"
)

type AuthService struct {
	userRepo     models.UserRepo
	providerRepo models.ProviderRepo
	jwtSecret    string
}

func NewAuthService(userRepo models.UserRepo, providerRepo models.ProviderRepo, jwtSecret string) *AuthService {
	return &AuthService{
		userRepo:     userRepo,
		providerRepo: providerRepo,
		jwtSecret:    jwtSecret,
	}
}

// AuthResult is the signup/login response: a session token plus the
// public user fields, and the provider profile id for provider signups.
type AuthResult struct {
	Token      string            `json:"token"`
	User       models.PublicUser `json:"user"`
	ProviderID string            `json:"provider_id,omitempty"`
}

func (as *AuthService) Signup(ctx context.Context, req *models.SignupRequest) (*AuthResult, error) {
	if req.Password != req.ConfirmPassword {
		return nil, errs.Validation("Passwords do not match")
	}

	existing, err := as.userRepo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errs.Conflict("Email already registered")
	}

	if req.Role != models.RoleCustomer && req.Role != models.RoleProvider {
		return nil, errs.Validation("Invalid role")
	}

	hash, err := helpers.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:        uuid.New().String(),
		FullName:  req.FullName,
		Email:     req.Email,
		Password:  hash,
		Role:      req.Role,
		CreatedAt: time.Now().UTC(),
	}
	if err := as.userRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	token, err := helpers.GenerateToken(as.jwtSecret, user.ID, user.Role)
	if err != nil {
		return nil, err
	}

	public := user.Public()
	public.City = nil
	return &AuthResult{Token: token, User: public}, nil
}

// ProviderSignup creates a user with role provider together with its
// unapproved, offline provider profile.
func (as *AuthService) ProviderSignup(ctx context.Context, req *models.ProviderSignupRequest) (*AuthResult, error) {
	if req.Password != req.ConfirmPassword {
		return nil, errs.Validation("Passwords do not match")
	}

	existing, err := as.userRepo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errs.Conflict("Email already registered")
	}

	hash, err := helpers.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	city := req.City
	user := &models.User{
		ID:        uuid.New().String(),
		FullName:  req.FullName,
		Email:     req.Email,
		Password:  hash,
		Role:      models.RoleProvider,
		City:      &city,
		CreatedAt: now,
	}
	provider := &models.Provider{
		ID:           uuid.New().String(),
		UserID:       user.ID,
		FullName:     req.FullName,
		Email:        req.Email,
		CategoryID:   req.CategoryID,
		SubServiceID: req.SubServiceID,
		Experience:   req.Experience,
		BasePrice:    req.BasePrice,
		Rating:       0,
		TotalReviews: 0,
		IsVerified:   false,
		IsApproved:   false,
		IsOnline:     false,
		City:         req.City,
		CreatedAt:    now,
	}

	if err := as.userRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	if err := as.providerRepo.CreateProvider(ctx, provider); err != nil {
		return nil, err
	}

	token, err := helpers.GenerateToken(as.jwtSecret, user.ID, user.Role)
	if err != nil {
		return nil, err
	}

	public := user.Public()
	public.City = nil
	return &AuthResult{Token: token, User: public, ProviderID: provider.ID}, nil
}

// Login never reveals whether the email or the password was wrong.
func (as *AuthService) Login(ctx context.Context, req *models.LoginRequest) (*AuthResult, error) {
	user, err := as.userRepo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || !helpers.CheckPasswordHash(req.Password, user.Password) {
		return nil, errs.Auth("Invalid email or password")
	}

	token, err := helpers.GenerateToken(as.jwtSecret, user.ID, user.Role)
	if err != nil {
		return nil, err
	}

	return &AuthResult{Token: token, User: user.Public()}, nil
}

// GetUserByID resolves the token's user id to a live record. Used by the
// auth middleware so deleted accounts lose access immediately.
func (as *AuthService) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	return as.userRepo.GetUserByID(ctx, id)
}

// Profile is the public user projection plus, for providers, the linked
// provider profile.
type Profile struct {
	models.PublicUser
	Provider *models.Provider `json:"provider,omitempty"`
}

func (as *AuthService) Profile(ctx context.Context, user *models.User) (*Profile, error) {
	profile := &Profile{PublicUser: user.Public()}
	if user.Role == models.RoleProvider {
		provider, err := as.providerRepo.GetProviderByUserID(ctx, user.ID)
		if err != nil {
			return nil, err
		}
		profile.Provider = provider
	}
	return profile, nil
}

func (as *AuthService) UpdateCity(ctx context.Context, userID, city string) error {
	if helpers.StringTrim(city) == "" {
		return errs.Validation("City is required")
	}
	return as.userRepo.UpdateCity(ctx, userID, city)
}
