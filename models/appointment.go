// models/appointment.go
package models

import "time"

// Appointment is a scheduled booking. Date is stored as "2006-01-02"
// and Time as "15:04:05"; both columns are plain strings so that range
// queries compare lexicographically, which is correct for fixed-width
// date and time values.
type Appointment struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CustomerName string    `gorm:"size:255;not null" json:"customer_name"`
	Date         string    `gorm:"size:10;index;not null" json:"date"`
	Time         string    `gorm:"size:8;not null" json:"time"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
