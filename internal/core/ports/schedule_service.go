package ports

import (
	"context"

	"github.com/gcbs/appointment-system/internal/core/domain"
)

// ScheduleService manages a lecturer's declared availability and derives the
// student-facing bookable-slot list.
type ScheduleService interface {
	// SetAvailability replaces the lecturer's slot set for date wholesale.
	// An empty times set deletes the record. Fails with ErrInvalidDay on a
	// weekend date and ErrInvalidSlot on unknown or duplicated labels; no
	// write happens on a validation failure.
	SetAvailability(ctx context.Context, lecturerID, date string, times []string) (*domain.AvailabilityRecord, error)

	// GetAvailability returns the declared slots for (lecturerID, date).
	// An absent record reads as an empty one on a weekday; weekend dates
	// fail with ErrInvalidDay.
	GetAvailability(ctx context.Context, lecturerID, date string) (*domain.AvailabilityRecord, error)

	// BookableSlots derives which declared slots a student may still book.
	// Weekend dates fail with ErrInvalidDay rather than returning an empty
	// list, since no availability record can exist there.
	BookableSlots(ctx context.Context, lecturerID, date string) ([]domain.BookableSlot, error)
}
