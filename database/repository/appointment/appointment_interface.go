package appointmentRepo

import (
	"context"

	"lojinha/models"
)

// AppointmentRepository defines methods for appointment data access.
type AppointmentRepository interface {
	// FindConflicting returns appointments on the given date whose time
	// falls inside the inclusive [from, to] window. Bounds are
	// normalized "15:04:05" strings.
	FindConflicting(ctx context.Context, date, from, to string) ([]models.Appointment, error)
	// Insert persists a new appointment record.
	Insert(ctx context.Context, appt *models.Appointment) error
	// ListByDate retrieves all appointments for an exact date.
	ListByDate(ctx context.Context, date string) ([]models.Appointment, error)
}
