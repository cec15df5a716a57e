// models/product.go
package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// ImageList is a []string stored as a JSON column.
type ImageList []string

func (l ImageList) Value() (driver.Value, error) {
	if l == nil {
		l = ImageList{}
	}
	return json.Marshal(l)
}

func (l *ImageList) Scan(value interface{}) error {
	if value == nil {
		*l = ImageList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	}
	return errors.New("unsupported type for ImageList")
}

// Product is a catalog entry.
type Product struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Description string    `json:"description"`
	Price       float64   `gorm:"not null" json:"price"`
	MainImage   string    `json:"main_image"`
	Images      ImageList `gorm:"type:json" json:"images"`
	Stock       int       `gorm:"not null;default:0" json:"stock"`
	CategoryID  *uint     `json:"category_id"`
	Category    *Category `json:"category,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
