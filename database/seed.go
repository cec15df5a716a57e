package database

import (
	"log"

	"lojinha/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seed inserts demo categories, products and users when the tables are
// empty. Safe to call on every startup.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	categories := []models.Category{
		{Name: "Roupas"},
		{Name: "Acessórios"},
		{Name: "Eletrônicos"},
		{Name: "Calçados"},
	}
	if err := db.Create(&categories).Error; err != nil {
		return err
	}

	products := []models.Product{
		{
			Name:        "Camiseta básica",
			Description: "Camiseta de algodão, várias cores.",
			Price:       49.90,
			MainImage:   "https://example.com/camiseta.jpg",
			Images:      models.ImageList{"https://example.com/camiseta-1.jpg"},
			Stock:       120,
			CategoryID:  &categories[0].ID,
		},
		{
			Name:        "Fone de ouvido bluetooth",
			Description: "Fone sem fio com estojo de recarga.",
			Price:       199.99,
			MainImage:   "https://example.com/fone.jpg",
			Images:      models.ImageList{},
			Stock:       35,
			CategoryID:  &categories[2].ID,
		},
		{
			Name:        "Tênis de corrida",
			Description: "Tênis leve para treinos diários.",
			Price:       349.90,
			MainImage:   "https://example.com/tenis.jpg",
			Images:      models.ImageList{"https://example.com/tenis-1.jpg", "https://example.com/tenis-2.jpg"},
			Stock:       18,
			CategoryID:  &categories[3].ID,
		},
	}
	if err := db.Create(&products).Error; err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	users := []models.User{
		{Name: "Altamiro", Email: "altamiro@email.com", PasswordHash: string(hash)},
		{Name: "Ana", Email: "ana@email.com", PasswordHash: string(hash)},
	}
	if err := db.Create(&users).Error; err != nil {
		return err
	}

	log.Println("Seeded database with demo data")
	return nil
}
