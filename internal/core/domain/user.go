package domain

import "time"

const (
	RoleStudent  = "student"
	RoleLecturer = "lecturer"
)

// ValidRole reports whether role is one of the two roles the system knows.
func ValidRole(role string) bool {
	return role == RoleStudent || role == RoleLecturer
}

// UserProfile models an authenticated actor: a student or a lecturer.
// The profile is owned by its subject; identity and role are fixed at
// registration and only the owner may mutate the rest.
type UserProfile struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"`

	// Student-only attributes.
	Program string `json:"program,omitempty"`
	Year    int    `json:"year,omitempty"`

	// Lecturer-only attribute.
	Department string `json:"department,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProfileUpdate carries the owner-editable profile fields. Nil pointers mean
// "leave unchanged" (merge semantics on write).
type ProfileUpdate struct {
	Name       *string
	Email      *string
	Program    *string
	Year       *int
	Department *string
}
