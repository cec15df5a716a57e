// models/user.go
package models

import "time"

// User represents a registered account.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Products this user has favorited (pivot table favorites).
	FavoriteProducts []Product `gorm:"many2many:favorites" json:"-"`
	Files            []File    `json:"-"`
}
