package ports

import (
	"context"

	"github.com/gcbs/appointment-system/internal/core/domain"
)

// AvailabilityRepository defines persistence for availability records.
// Writes are wholesale replacements of the (lecturerID, date) document.
type AvailabilityRepository interface {
	Put(ctx context.Context, rec *domain.AvailabilityRecord) error
	Get(ctx context.Context, lecturerID, date string) (*domain.AvailabilityRecord, error)
	Delete(ctx context.Context, lecturerID, date string) error
}
