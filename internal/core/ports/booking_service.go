package ports

import (
	"context"
	"time"

	"github.com/gcbs/appointment-system/internal/core/domain"
)

// RequestBookingInput carries all data needed to create a booking request.
type RequestBookingInput struct {
	StudentID  string
	LecturerID string
	Date       string
	Time       string
	Purpose    string
}

// TransitionInput identifies a lifecycle transition requested by one party.
// Role and ActorID come from the authenticated session, never the payload.
type TransitionInput struct {
	AppointmentID string
	Action        domain.AppointmentAction
	ActorID       string
	Role          string
}

// ListAppointmentsInput scopes a listing to the calling party.
type ListAppointmentsInput struct {
	ActorID string
	Role    string
	Date    string // optional
}

// AppointmentView is an appointment with the counterparty's display fields
// resolved from the profile store at read time.
type AppointmentView struct {
	ID           string                   `json:"id"`
	StudentID    string                   `json:"student_id"`
	StudentName  string                   `json:"student_name"`
	LecturerID   string                   `json:"lecturer_id"`
	LecturerName string                   `json:"lecturer_name"`
	Date         string                   `json:"date"`
	Time         string                   `json:"time"`
	Purpose      string                   `json:"purpose"`
	Status       domain.AppointmentStatus `json:"status"`
	CreatedAt    time.Time                `json:"created_at"`
	UpdatedAt    time.Time                `json:"updated_at"`
}

// BookingService validates and applies the booking lifecycle.
type BookingService interface {
	// RequestBooking creates a pending appointment. All validation happens
	// before any write. The check-then-write sequence is best-effort: two
	// students may still race past the free-slot check, in which case both
	// pendings are created and the lecturer resolves the conflict.
	RequestBooking(ctx context.Context, input RequestBookingInput) (*domain.Appointment, error)

	// Transition applies accept/decline/cancel per the state machine.
	Transition(ctx context.Context, input TransitionInput) (*domain.Appointment, error)

	// Delete removes a cancelled appointment; only the owning student may
	// call it and only from the cancelled state.
	Delete(ctx context.Context, appointmentID, studentID string) error

	// ListAppointments returns the caller's appointments with display
	// names resolved.
	ListAppointments(ctx context.Context, input ListAppointmentsInput) ([]AppointmentView, error)
}
