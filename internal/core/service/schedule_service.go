package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/gcbs/appointment-system/internal/core/domain"
	"github.com/gcbs/appointment-system/internal/core/ports"
)

// ScheduleService manages declared availability and derives bookable slots.
type ScheduleService struct {
	availability ports.AvailabilityRepository
	appointments ports.AppointmentRepository
	logger       zerolog.Logger
}

func NewScheduleService(
	availability ports.AvailabilityRepository,
	appointments ports.AppointmentRepository,
	logger zerolog.Logger,
) *ScheduleService {
	return &ScheduleService{availability: availability, appointments: appointments, logger: logger}
}

// SetAvailability replaces the (lecturerID, date) record wholesale. All
// validation happens before any write; an empty times set deletes the record
// so an empty set and an absent record stay equivalent states.
func (s *ScheduleService) SetAvailability(ctx context.Context, lecturerID, date string, times []string) (*domain.AvailabilityRecord, error) {
	if _, weekday, err := domain.ParseWeekday(date); err != nil || !weekday {
		return nil, domain.ErrInvalidDay
	}

	seen := make(map[string]bool, len(times))
	for _, t := range times {
		if !domain.ValidSlot(t) || seen[t] {
			return nil, domain.ErrInvalidSlot
		}
		seen[t] = true
	}

	if len(times) == 0 {
		if err := s.availability.Delete(ctx, lecturerID, date); err != nil && !errors.Is(err, domain.ErrAvailabilityNotFound) {
			return nil, err
		}
		s.logger.Info().Str("lecturer_id", lecturerID).Str("date", date).Msg("availability cleared")
		return &domain.AvailabilityRecord{LecturerID: lecturerID, Date: date, Times: []string{}}, nil
	}

	rec := &domain.AvailabilityRecord{
		LecturerID: lecturerID,
		Date:       date,
		Times:      sortedByCatalog(times),
		UpdatedAt:  time.Now().UTC(),
	}
	if err := s.availability.Put(ctx, rec); err != nil {
		s.logger.Error().Err(err).Str("lecturer_id", lecturerID).Str("date", date).Msg("failed to save availability")
		return nil, err
	}

	s.logger.Info().Str("lecturer_id", lecturerID).Str("date", date).Int("slots", len(rec.Times)).Msg("availability saved")
	return rec, nil
}

// GetAvailability returns the declared slots; an absent weekday record reads
// as an empty one.
func (s *ScheduleService) GetAvailability(ctx context.Context, lecturerID, date string) (*domain.AvailabilityRecord, error) {
	if _, weekday, err := domain.ParseWeekday(date); err != nil || !weekday {
		return nil, domain.ErrInvalidDay
	}

	rec, err := s.availability.Get(ctx, lecturerID, date)
	if errors.Is(err, domain.ErrAvailabilityNotFound) {
		return &domain.AvailabilityRecord{LecturerID: lecturerID, Date: date, Times: []string{}}, nil
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// BookableSlots derives the student-facing list for (lecturerID, date) from
// fresh store snapshots. Weekends fail with ErrInvalidDay before any read:
// the writer-side invariant means no real record can exist there, and an
// empty-but-valid list would misreport the day as merely fully booked.
func (s *ScheduleService) BookableSlots(ctx context.Context, lecturerID, date string) ([]domain.BookableSlot, error) {
	if _, weekday, err := domain.ParseWeekday(date); err != nil || !weekday {
		return nil, domain.ErrInvalidDay
	}

	rec, err := s.GetAvailability(ctx, lecturerID, date)
	if err != nil {
		return nil, err
	}

	appts, err := s.appointments.List(ctx, ports.AppointmentFilter{LecturerID: lecturerID, Date: date})
	if err != nil {
		return nil, err
	}

	return domain.ComputeBookableSlots(*rec, appts), nil
}

// sortedByCatalog returns times ordered by their catalog position. Input is
// already validated to be a unique subset of the catalog.
func sortedByCatalog(times []string) []string {
	member := make(map[string]bool, len(times))
	for _, t := range times {
		member[t] = true
	}
	out := make([]string, 0, len(times))
	for _, t := range domain.SlotCatalog {
		if member[t] {
			out = append(out, t)
		}
	}
	return out
}
