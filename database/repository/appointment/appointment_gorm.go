package appointmentRepo

import (
	"context"
	"fmt"

	"lojinha/models"

	"gorm.io/gorm"
)

// GormAppointmentRepo implements AppointmentRepository on a relational store.
type GormAppointmentRepo struct {
	db *gorm.DB
}

func NewGormAppointmentRepo(db *gorm.DB) *GormAppointmentRepo {
	return &GormAppointmentRepo{db: db}
}

func (r *GormAppointmentRepo) FindConflicting(ctx context.Context, date, from, to string) ([]models.Appointment, error) {
	var appts []models.Appointment
	err := r.db.WithContext(ctx).
		Where("date = ? AND time BETWEEN ? AND ?", date, from, to).
		Find(&appts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query conflicting appointments: %w", err)
	}
	return appts, nil
}

func (r *GormAppointmentRepo) Insert(ctx context.Context, appt *models.Appointment) error {
	if err := r.db.WithContext(ctx).Create(appt).Error; err != nil {
		return fmt.Errorf("failed to insert appointment: %w", err)
	}
	return nil
}

func (r *GormAppointmentRepo) ListByDate(ctx context.Context, date string) ([]models.Appointment, error) {
	appts := []models.Appointment{}
	err := r.db.WithContext(ctx).Where("date = ?", date).Find(&appts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return appts, nil
}
