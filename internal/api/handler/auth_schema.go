package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type registerRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role"     validate:"required,oneof=student lecturer"`
	// Role-specific attributes.
	Program    string `json:"program,omitempty"`
	Year       int    `json:"year,omitempty"`
	Department string `json:"department,omitempty"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// profileResponse is the transport view of a profile; password hash never
// leaves the service.
type profileResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	Program    string    `json:"program,omitempty"`
	Year       int       `json:"year,omitempty"`
	Department string    `json:"department,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type authResponse struct {
	Token string           `json:"token,omitempty"`
	User  *profileResponse `json:"user,omitempty"`
}

// updateProfileRequest carries owner-editable fields; absent fields are left
// unchanged (merge semantics).
type updateProfileRequest struct {
	Name       *string `json:"name,omitempty"`
	Email      *string `json:"email,omitempty"      validate:"omitempty,email"`
	Program    *string `json:"program,omitempty"`
	Year       *int    `json:"year,omitempty"`
	Department *string `json:"department,omitempty"`
}

type lecturerResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department,omitempty"`
}
