package scheduling

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	appointmentRepo "lojinha/database/repository/appointment"
	"lojinha/models"
	"lojinha/utils"

	"go.uber.org/zap"
)

// Business hours, inclusive on both ends.
const (
	openingMinute = 8 * 60
	closingMinute = 20 * 60
)

// Two appointments on the same date must be more than 44 minutes apart.
// The conflict window around a requested time is inclusive on both ends.
const minSpacing = 44 * time.Minute

var (
	// ErrOutOfHours is returned for times outside 08:00–20:00.
	ErrOutOfHours = errors.New("Horário fora do expediente.")
	// ErrSlotConflict is returned when another appointment exists within
	// the spacing window on the same date.
	ErrSlotConflict = errors.New("Esse horário já está ocupado.")
)

// Validation error kinds.
const (
	KindMissingField = "missing_field"
	KindBadFormat    = "bad_format"
)

// ValidationError reports a missing or malformed request field.
type ValidationError struct {
	Field   string
	Kind    string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// BookRequest carries the raw booking input.
type BookRequest struct {
	CustomerName string `json:"customer_name"`
	Date         string `json:"date"`
	Time         string `json:"time"`
}

// Service defines business logic for appointment scheduling.
type Service interface {
	// Book validates the request against business hours and the spacing
	// policy, persists the appointment and returns the created record.
	Book(ctx context.Context, req BookRequest) (*models.Appointment, error)
	// ListByDate retrieves all appointments for the given date.
	ListByDate(ctx context.Context, date string) ([]models.Appointment, error)
}

// DefaultSchedulingService is the production implementation.
type DefaultSchedulingService struct {
	Repo appointmentRepo.AppointmentRepository
}

// acceptedDateLayouts are tried in order when parsing the date field.
var acceptedDateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
}

func parseDate(value string) (string, error) {
	for _, layout := range acceptedDateLayouts {
		if d, err := time.Parse(layout, value); err == nil {
			return d.Format("2006-01-02"), nil
		}
	}
	return "", fmt.Errorf("unparseable date %q", value)
}

func validate(req BookRequest) (date string, t time.Time, err error) {
	if strings.TrimSpace(req.CustomerName) == "" {
		return "", time.Time{}, &ValidationError{
			Field: "customer_name", Kind: KindMissingField,
			Message: "O nome do cliente é obrigatório.",
		}
	}
	if req.Date == "" {
		return "", time.Time{}, &ValidationError{
			Field: "date", Kind: KindMissingField,
			Message: "A data é obrigatória.",
		}
	}
	date, parseErr := parseDate(req.Date)
	if parseErr != nil {
		return "", time.Time{}, &ValidationError{
			Field: "date", Kind: KindBadFormat,
			Message: "A data é inválida.",
		}
	}
	if req.Time == "" {
		return "", time.Time{}, &ValidationError{
			Field: "time", Kind: KindMissingField,
			Message: "O horário é obrigatório.",
		}
	}
	// time.Parse alone would accept unpadded input like "8:00".
	t, parseErr = time.Parse("15:04", req.Time)
	if parseErr != nil || len(req.Time) != 5 {
		return "", time.Time{}, &ValidationError{
			Field: "time", Kind: KindBadFormat,
			Message: "O horário deve estar no formato HH:MM.",
		}
	}
	return date, t, nil
}

// Book enforces, in order: field validation, business hours, slot
// spacing. The conflict check and the insert are two separate
// repository calls; the pair is not atomic.
func (s *DefaultSchedulingService) Book(ctx context.Context, req BookRequest) (*models.Appointment, error) {
	date, t, err := validate(req)
	if err != nil {
		return nil, err
	}

	minute := t.Hour()*60 + t.Minute()
	if minute < openingMinute || minute > closingMinute {
		return nil, ErrOutOfHours
	}

	from := t.Add(-minSpacing).Format("15:04:05")
	to := t.Add(minSpacing).Format("15:04:05")
	conflicts, err := s.Repo.FindConflicting(ctx, date, from, to)
	if err != nil {
		utils.GetLogger().Error("Conflict lookup failed", zap.String("date", date), zap.Error(err))
		return nil, err
	}
	if len(conflicts) > 0 {
		return nil, ErrSlotConflict
	}

	appt := &models.Appointment{
		CustomerName: req.CustomerName,
		Date:         date,
		Time:         t.Format("15:04:05"),
	}
	if err := s.Repo.Insert(ctx, appt); err != nil {
		utils.GetLogger().Error("Appointment insert failed", zap.String("date", date), zap.Error(err))
		return nil, err
	}
	return appt, nil
}

// ListByDate requires a date and returns an empty slice when nothing is
// booked on it.
func (s *DefaultSchedulingService) ListByDate(ctx context.Context, date string) ([]models.Appointment, error) {
	if date == "" {
		return nil, &ValidationError{
			Field: "date", Kind: KindMissingField,
			Message: "A data é obrigatória.",
		}
	}
	return s.Repo.ListByDate(ctx, date)
}
