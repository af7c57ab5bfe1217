package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/gcbs/appointment-system/internal/core/domain"
	"github.com/gcbs/appointment-system/internal/core/ports"
)

// AuthService implements registration, login, and profile self-service.
type AuthService struct {
	profiles  ports.ProfileRepository
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthService(profiles ports.ProfileRepository, jwtSecret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{profiles: profiles, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.UserProfile, error) {
	if input.Name == "" || input.Email == "" || input.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if !domain.ValidRole(input.Role) {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	profile := &domain.UserProfile{
		ID:           uuid.NewString(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         input.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	switch input.Role {
	case domain.RoleStudent:
		profile.Program = input.Program
		profile.Year = input.Year
	case domain.RoleLecturer:
		profile.Department = input.Department
	}

	return s.profiles.Create(ctx, profile)
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.UserProfile, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	profile, err := s.profiles.FindByEmail(ctx, email)
	if errors.Is(err, domain.ErrUserNotFound) {
		// Do not reveal whether the account exists.
		return "", nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(profile)
	if err != nil {
		return "", nil, err
	}
	return token, profile, nil
}

func (s *AuthService) Profile(ctx context.Context, userID string) (*domain.UserProfile, error) {
	return s.profiles.FindByID(ctx, userID)
}

func (s *AuthService) UpdateProfile(ctx context.Context, userID string, upd domain.ProfileUpdate) (*domain.UserProfile, error) {
	return s.profiles.Update(ctx, userID, upd)
}

func (s *AuthService) Lecturers(ctx context.Context) ([]*domain.UserProfile, error) {
	return s.profiles.ListByRole(ctx, domain.RoleLecturer)
}

func (s *AuthService) generateToken(p *domain.UserProfile) (string, error) {
	claims := jwt.MapClaims{
		"uid":  p.ID,
		"name": p.Name,
		"role": p.Role,
		"exp":  time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
