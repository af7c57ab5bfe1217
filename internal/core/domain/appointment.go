package domain

import (
	"errors"
	"time"
)

// AppointmentStatus represents the lifecycle state of a booking.
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusAccepted  AppointmentStatus = "accepted"
	StatusDeclined  AppointmentStatus = "declined"
	StatusCancelled AppointmentStatus = "cancelled"
)

// AppointmentAction is a lifecycle transition requested by one of the parties.
type AppointmentAction string

const (
	ActionAccept  AppointmentAction = "accept"
	ActionDecline AppointmentAction = "decline"
	ActionCancel  AppointmentAction = "cancel"
)

// validTransitions defines the allowed state machine transitions and which
// role may request each one. Declined and cancelled are terminal.
var validTransitions = map[AppointmentStatus]map[AppointmentAction]transition{
	StatusPending: {
		ActionAccept:  {to: StatusAccepted, actor: RoleLecturer},
		ActionDecline: {to: StatusDeclined, actor: RoleLecturer},
		ActionCancel:  {to: StatusCancelled, actor: RoleStudent},
	},
	StatusAccepted: {
		ActionCancel: {to: StatusCancelled, actor: RoleStudent},
	},
}

type transition struct {
	to    AppointmentStatus
	actor string
}

var (
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrUserExists           = errors.New("user already exists")
	ErrUserNotFound         = errors.New("user not found")
	ErrAppointmentNotFound  = errors.New("appointment not found")
	ErrAvailabilityNotFound = errors.New("availability not found")
	ErrInvalidDay           = errors.New("weekday required")
	ErrInvalidSlot          = errors.New("invalid time slot")
	ErrEmptyPurpose         = errors.New("purpose must not be empty")
	ErrSlotUnavailable      = errors.New("slot unavailable")
	ErrInvalidTransition    = errors.New("invalid status transition")
	ErrNotDeletable         = errors.New("appointment not deletable")
	ErrForbidden            = errors.New("access forbidden")
)

// Active reports whether the status still blocks its slot.
// Declined and cancelled appointments release the slot.
func (s AppointmentStatus) Active() bool {
	return s == StatusPending || s == StatusAccepted
}

// Apply resolves the action against the current status and the requesting
// role. It returns the next status, ErrInvalidTransition when the action is
// not listed for the current state, or ErrForbidden when it is listed but
// belongs to the other party.
func (s AppointmentStatus) Apply(action AppointmentAction, role string) (AppointmentStatus, error) {
	tr, ok := validTransitions[s][action]
	if !ok {
		return s, ErrInvalidTransition
	}
	if tr.actor != role {
		return s, ErrForbidden
	}
	return tr.to, nil
}

// Appointment is the core aggregate: one booking request tying a student, a
// lecturer, a date, and a slot.
type Appointment struct {
	ID         string            `json:"id" bson:"_id,omitempty"`
	StudentID  string            `json:"student_id" bson:"student_id"`
	LecturerID string            `json:"lecturer_id" bson:"lecturer_id"`
	Date       string            `json:"date" bson:"date"` // "2006-01-02"
	Time       string            `json:"time" bson:"time"` // slot label, e.g. "10:00"
	Purpose    string            `json:"purpose" bson:"purpose"`
	Status     AppointmentStatus `json:"status" bson:"status"`
	CreatedAt  time.Time         `json:"created_at" bson:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at" bson:"updated_at"`
}
