package database

import (
	"log"

	"lojinha/config"
	"lojinha/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// DB is the global database handle.
var DB *gorm.DB

// InitDB opens the database connection and runs migrations.
func InitDB() {
	var dialector gorm.Dialector
	switch config.AppConfig.DatabaseDriver {
	case "sqlite":
		dialector = sqlite.Open(config.AppConfig.DatabaseDSN)
	default:
		dialector = postgres.Open(config.AppConfig.DatabaseDSN)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := Migrate(db); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	DB = db
	log.Println("Connected to database successfully!")
}

// Migrate creates or updates the schema for all models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.File{},
		&models.Appointment{},
	)
}
