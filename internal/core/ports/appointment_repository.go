package ports

import (
	"context"
	"time"

	"github.com/gcbs/appointment-system/internal/core/domain"
)

// AppointmentFilter narrows List queries. Zero-valued fields are not applied.
// The service layer always sets StudentID or LecturerID so a caller only ever
// sees appointments it is a party to.
type AppointmentFilter struct {
	StudentID  string
	LecturerID string
	Date       string
}

// AppointmentRepository defines persistence for appointments.
type AppointmentRepository interface {
	Create(ctx context.Context, a *domain.Appointment) error
	FindByID(ctx context.Context, id string) (*domain.Appointment, error)
	List(ctx context.Context, filter AppointmentFilter) ([]domain.Appointment, error)
	// UpdateStatus sets the new status and updated_at on the document.
	UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus, updatedAt time.Time) error
	Delete(ctx context.Context, id string) error
}
