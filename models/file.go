// models/file.go
package models

import "time"

// File is an uploaded file owned by a user. Path is the storage
// location (relative path on disk or remote URL, depending on backend).
type File struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	Filename  string    `gorm:"size:255;not null" json:"filename"`
	Path      string    `gorm:"not null" json:"path"`
	MimeType  string    `gorm:"size:100" json:"mime_type"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
