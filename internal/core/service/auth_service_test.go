package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/gcbs/appointment-system/internal/core/domain"
	"github.com/gcbs/appointment-system/internal/core/ports"
)

func registerInput(role string) ports.RegisterInput {
	in := ports.RegisterInput{
		Name:     "Ama Mensah",
		Email:    "ama@example.edu",
		Password: "s3cret-pass",
		Role:     role,
	}
	switch role {
	case domain.RoleStudent:
		in.Program = "Computer Science"
		in.Year = 3
	case domain.RoleLecturer:
		in.Department = "Computer Science"
	}
	return in
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubProfileRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	profile, err := svc.Register(context.Background(), registerInput(domain.RoleStudent))
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if profile.ID == "" {
		t.Fatal("expected generated id")
	}
	if profile.PasswordHash == "s3cret-pass" {
		t.Fatal("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte("s3cret-pass")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if profile.Program != "Computer Science" || profile.Year != 3 {
		t.Errorf("student attributes not stored: %+v", profile)
	}
}

func TestAuthService_Register_LecturerAttributes(t *testing.T) {
	repo := newStubProfileRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	in := registerInput(domain.RoleLecturer)
	in.Program = "must be ignored"
	in.Year = 4

	profile, err := svc.Register(context.Background(), in)
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if profile.Department != "Computer Science" {
		t.Errorf("department not stored: %+v", profile)
	}
	if profile.Program != "" || profile.Year != 0 {
		t.Errorf("student attributes must be ignored for lecturers: %+v", profile)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	repo := newStubProfileRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	empty := registerInput(domain.RoleStudent)
	empty.Email = ""
	if _, err := svc.Register(context.Background(), empty); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}

	badRole := registerInput(domain.RoleStudent)
	badRole.Role = "admin"
	if _, err := svc.Register(context.Background(), badRole); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for bad role, got %v", err)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	repo := newStubProfileRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	_, _ = svc.Register(context.Background(), registerInput(domain.RoleStudent))
	if _, err := svc.Register(context.Background(), registerInput(domain.RoleStudent)); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubProfileRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	if _, err := svc.Register(context.Background(), registerInput(domain.RoleLecturer)); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, profile, err := svc.Login(context.Background(), "ama@example.edu", "s3cret-pass")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatal("expected token, got empty")
	}
	if profile == nil || profile.Name != "Ama Mensah" {
		t.Fatalf("unexpected profile: %+v", profile)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["role"] != domain.RoleLecturer {
		t.Fatalf("expected role %s, got %v", domain.RoleLecturer, claims["role"])
	}
	if claims["uid"] != profile.ID {
		t.Fatalf("expected uid %s, got %v", profile.ID, claims["uid"])
	}
}

func TestAuthService_Login_InvalidPassword(t *testing.T) {
	repo := newStubProfileRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	_, _ = svc.Register(context.Background(), registerInput(domain.RoleStudent))
	if _, _, err := svc.Login(context.Background(), "ama@example.edu", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	repo := newStubProfileRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	// Unknown accounts read as bad credentials, not as a 404.
	if _, _, err := svc.Login(context.Background(), "ghost@example.edu", "pass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_UpdateProfile_Merge(t *testing.T) {
	repo := newStubProfileRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	created, err := svc.Register(context.Background(), registerInput(domain.RoleStudent))
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	newProgram := "Information Systems"
	updated, err := svc.UpdateProfile(context.Background(), created.ID, domain.ProfileUpdate{Program: &newProgram})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Program != "Information Systems" {
		t.Errorf("program not updated: %+v", updated)
	}
	if updated.Name != created.Name || updated.Year != created.Year {
		t.Errorf("untouched fields must survive the merge: %+v", updated)
	}
}

func TestAuthService_Lecturers(t *testing.T) {
	repo := newStubProfileRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	lecturer := registerInput(domain.RoleLecturer)
	lecturer.Email = "osei@example.edu"
	_, _ = svc.Register(context.Background(), lecturer)
	_, _ = svc.Register(context.Background(), registerInput(domain.RoleStudent))

	list, err := svc.Lecturers(context.Background())
	if err != nil {
		t.Fatalf("lecturers failed: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 lecturer, got %d", len(list))
	}
	if list[0].Role != domain.RoleLecturer {
		t.Errorf("unexpected role %s", list[0].Role)
	}
}
