package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gcbs/appointment-system/internal/core/domain"
	"github.com/gcbs/appointment-system/internal/core/ports"
)

// SlotGuard abstracts the best-effort write-time hold on a slot (Redis).
// Claim returns false when another writer already holds the slot.
type SlotGuard interface {
	Claim(ctx context.Context, lecturerID, date, slot string) (bool, error)
	Release(ctx context.Context, lecturerID, date, slot string) error
}

// Recorder receives lifecycle events for the audit trail. Implementations
// must not block; delivery is fire-and-forget.
type Recorder interface {
	Record(event AppointmentEvent)
}

// AppointmentEvent is one audit entry describing a lifecycle change.
type AppointmentEvent struct {
	AppointmentID string
	LecturerID    string
	Action        string // "created", "accepted", "declined", "cancelled", "deleted"
	ActorID       string
	Timestamp     time.Time
}

type bookingService struct {
	appointments ports.AppointmentRepository
	availability ports.AvailabilityRepository
	profiles     ports.ProfileRepository
	guard        SlotGuard
	recorder     Recorder
	log          zerolog.Logger
}

// NewBookingService returns a BookingService implementation. guard and
// recorder may be nil; both are optional collaborators.
func NewBookingService(
	appointments ports.AppointmentRepository,
	availability ports.AvailabilityRepository,
	profiles ports.ProfileRepository,
	guard SlotGuard,
	recorder Recorder,
	log zerolog.Logger,
) ports.BookingService {
	return &bookingService{
		appointments: appointments,
		availability: availability,
		profiles:     profiles,
		guard:        guard,
		recorder:     recorder,
		log:          log,
	}
}

// RequestBooking validates and creates a pending appointment.
//
// The free-slot check and the insert are two separate store operations, so
// two students can still observe the same open slot and both create a
// pending appointment. That race is an accepted relaxation: the lecturer
// resolves it by accepting one and declining the other. The slot guard
// narrows the window when Redis is reachable; when it is not, the check is
// skipped with a warning and the relaxed contract applies unchanged.
func (s *bookingService) RequestBooking(ctx context.Context, in ports.RequestBookingInput) (*domain.Appointment, error) {
	// 1. Validate the payload before touching any store.
	purpose := strings.TrimSpace(in.Purpose)
	if purpose == "" {
		return nil, domain.ErrEmptyPurpose
	}
	if _, weekday, err := domain.ParseWeekday(in.Date); err != nil || !weekday {
		return nil, domain.ErrInvalidDay
	}
	if !domain.ValidSlot(in.Time) {
		return nil, domain.ErrInvalidSlot
	}

	// 2. The slot must be declared in the lecturer's availability.
	rec, err := s.availability.Get(ctx, in.LecturerID, in.Date)
	if errors.Is(err, domain.ErrAvailabilityNotFound) {
		return nil, domain.ErrInvalidSlot
	}
	if err != nil {
		return nil, fmt.Errorf("request booking: %w", err)
	}
	declared := false
	for _, t := range rec.Times {
		if t == in.Time {
			declared = true
			break
		}
	}
	if !declared {
		return nil, domain.ErrInvalidSlot
	}

	// 3. The slot must not be held by an active appointment.
	existing, err := s.appointments.List(ctx, ports.AppointmentFilter{LecturerID: in.LecturerID, Date: in.Date})
	if err != nil {
		return nil, fmt.Errorf("request booking: %w", err)
	}
	for _, a := range existing {
		if a.Time == in.Time && a.Status.Active() {
			return nil, domain.ErrSlotUnavailable
		}
	}

	// 4. Best-effort write-time hold.
	if s.guard != nil {
		ok, guardErr := s.guard.Claim(ctx, in.LecturerID, in.Date, in.Time)
		if guardErr != nil {
			s.log.Warn().Err(guardErr).Str("lecturer_id", in.LecturerID).Msg("slot guard unavailable, proceeding without hold")
		} else if !ok {
			return nil, domain.ErrSlotUnavailable
		}
	}

	now := time.Now().UTC()
	appt := &domain.Appointment{
		ID:         uuid.NewString(),
		StudentID:  in.StudentID,
		LecturerID: in.LecturerID,
		Date:       in.Date,
		Time:       in.Time,
		Purpose:    purpose,
		Status:     domain.StatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.appointments.Create(ctx, appt); err != nil {
		if s.guard != nil {
			_ = s.guard.Release(ctx, in.LecturerID, in.Date, in.Time)
		}
		s.log.Error().Err(err).Str("lecturer_id", in.LecturerID).Str("date", in.Date).Msg("failed to create appointment")
		return nil, err
	}

	s.record(AppointmentEvent{
		AppointmentID: appt.ID,
		LecturerID:    appt.LecturerID,
		Action:        "created",
		ActorID:       in.StudentID,
		Timestamp:     now,
	})

	s.log.Info().
		Str("appointment_id", appt.ID).
		Str("student_id", in.StudentID).
		Str("lecturer_id", in.LecturerID).
		Str("date", in.Date).
		Str("time", in.Time).
		Msg("booking requested")

	return appt, nil
}

// Transition applies accept/decline/cancel under the state machine. An
// invalid transition fails before any write, leaving the record (and its
// updated_at) untouched.
func (s *bookingService) Transition(ctx context.Context, in ports.TransitionInput) (*domain.Appointment, error) {
	appt, err := s.appointments.FindByID(ctx, in.AppointmentID)
	if err != nil {
		return nil, err
	}

	// A party may only transition its own appointments.
	if in.Role == domain.RoleStudent && appt.StudentID != in.ActorID {
		return nil, domain.ErrForbidden
	}
	if in.Role == domain.RoleLecturer && appt.LecturerID != in.ActorID {
		return nil, domain.ErrForbidden
	}

	next, err := appt.Status.Apply(in.Action, in.Role)
	if err != nil {
		return nil, fmt.Errorf("transition %s: %w (from %s)", in.Action, err, appt.Status)
	}

	now := time.Now().UTC()
	if err := s.appointments.UpdateStatus(ctx, appt.ID, next, now); err != nil {
		return nil, fmt.Errorf("transition %s: %w", in.Action, err)
	}

	// A released slot lets other students book it again; drop the hold.
	if s.guard != nil && !next.Active() {
		_ = s.guard.Release(ctx, appt.LecturerID, appt.Date, appt.Time)
	}

	appt.Status = next
	appt.UpdatedAt = now

	s.record(AppointmentEvent{
		AppointmentID: appt.ID,
		LecturerID:    appt.LecturerID,
		Action:        string(next),
		ActorID:       in.ActorID,
		Timestamp:     now,
	})

	s.log.Info().
		Str("appointment_id", appt.ID).
		Str("action", string(in.Action)).
		Str("status", string(next)).
		Msg("appointment transitioned")

	return appt, nil
}

// Delete permanently removes a cancelled appointment. Only the owning
// student may delete, and only from the cancelled state.
func (s *bookingService) Delete(ctx context.Context, appointmentID, studentID string) error {
	appt, err := s.appointments.FindByID(ctx, appointmentID)
	if err != nil {
		return err
	}
	if appt.StudentID != studentID {
		return domain.ErrForbidden
	}
	if appt.Status != domain.StatusCancelled {
		return domain.ErrNotDeletable
	}

	if err := s.appointments.Delete(ctx, appointmentID); err != nil {
		return fmt.Errorf("delete appointment: %w", err)
	}

	s.record(AppointmentEvent{
		AppointmentID: appt.ID,
		LecturerID:    appt.LecturerID,
		Action:        "deleted",
		ActorID:       studentID,
		Timestamp:     time.Now().UTC(),
	})

	s.log.Info().Str("appointment_id", appointmentID).Msg("appointment deleted")
	return nil
}

// ListAppointments returns the caller's appointments, newest first, with the
// counterparty's display name resolved from profiles at read time.
func (s *bookingService) ListAppointments(ctx context.Context, in ports.ListAppointmentsInput) ([]ports.AppointmentView, error) {
	filter := ports.AppointmentFilter{Date: in.Date}
	switch in.Role {
	case domain.RoleStudent:
		filter.StudentID = in.ActorID
	case domain.RoleLecturer:
		filter.LecturerID = in.ActorID
	default:
		return nil, domain.ErrForbidden
	}

	appts, err := s.appointments.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	names := make(map[string]string)
	views := make([]ports.AppointmentView, 0, len(appts))
	for _, a := range appts {
		views = append(views, ports.AppointmentView{
			ID:           a.ID,
			StudentID:    a.StudentID,
			StudentName:  s.displayName(ctx, names, a.StudentID),
			LecturerID:   a.LecturerID,
			LecturerName: s.displayName(ctx, names, a.LecturerID),
			Date:         a.Date,
			Time:         a.Time,
			Purpose:      a.Purpose,
			Status:       a.Status,
			CreatedAt:    a.CreatedAt,
			UpdatedAt:    a.UpdatedAt,
		})
	}
	return views, nil
}

// displayName resolves a profile name with a per-call cache. A missing
// profile renders as an empty name rather than failing the listing.
func (s *bookingService) displayName(ctx context.Context, cache map[string]string, id string) string {
	if name, ok := cache[id]; ok {
		return name
	}
	p, err := s.profiles.FindByID(ctx, id)
	if err != nil {
		s.log.Warn().Err(err).Str("user_id", id).Msg("failed to resolve profile name")
		cache[id] = ""
		return ""
	}
	cache[id] = p.Name
	return p.Name
}

func (s *bookingService) record(e AppointmentEvent) {
	if s.recorder != nil {
		s.recorder.Record(e)
	}
}
