package database

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"furnishfusion_back_end/internal/config"
	"furnishfusion_back_end/internal/models"
	"furnishfusion_back_end/internal/utils"
)

// Connect ouvre le store relationnel : Postgres si DATABASE_URL est défini,
// sinon un fichier SQLite local (dev).
func Connect(cfg *config.Config) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)
	if cfg.DatabaseURL != "" {
		db, err = gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
		if err != nil {
			return nil, fmt.Errorf("connexion Postgres: %w", err)
		}
		log.Println("✅ Connecté à Postgres")
	} else {
		db, err = gorm.Open(sqlite.Open(cfg.SQLitePath), &gorm.Config{})
		if err != nil {
			return nil, fmt.Errorf("connexion SQLite: %w", err)
		}
		log.Println("✅ Connecté à SQLite :", cfg.SQLitePath)
	}
	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Admin{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
		&models.ContactInfo{},
	)
}

// Seed crée l'admin par défaut, la ligne contact singleton et quelques
// produits d'exemple quand les tables sont vides.
func Seed(db *gorm.DB, cfg *config.Config) error {
	var adminCount int64
	if err := db.Model(&models.Admin{}).Count(&adminCount).Error; err != nil {
		return err
	}
	if adminCount == 0 {
		hashed, err := utils.HashPassword(cfg.AdminPassword)
		if err != nil {
			return fmt.Errorf("hash mot de passe admin: %w", err)
		}
		admin := models.Admin{
			Username: cfg.AdminUsername,
			Email:    cfg.AdminEmail,
			Password: hashed,
		}
		if err := db.Create(&admin).Error; err != nil {
			return err
		}
		log.Println("✅ Admin par défaut créé :", admin.Username)
	}

	var contactCount int64
	if err := db.Model(&models.ContactInfo{}).Count(&contactCount).Error; err != nil {
		return err
	}
	if contactCount == 0 {
		contact := models.ContactInfo{
			CompanyName: "FurnishFusion",
			Email:       "info@furnishfusion.com",
			Phone:       "+91 1234567890",
			Address:     "123 Furniture Street",
			City:        "Mumbai",
			State:       "Maharashtra",
			ZipCode:     "400001",
			Country:     "India",
			Website:     "https://www.furnishfusion.com",
		}
		if err := db.Create(&contact).Error; err != nil {
			return err
		}
	}

	var productCount int64
	if err := db.Model(&models.Product{}).Count(&productCount).Error; err != nil {
		return err
	}
	if productCount == 0 {
		samples := []models.Product{
			{Name: "Modern Sofa Set", Description: "Comfortable 3-seater sofa with matching cushions. Perfect for your living room.", Price: 45000.00, ImageURL: "https://images.unsplash.com/photo-1555041469-a586c61ea9bc?w=500"},
			{Name: "Wooden Dining Table", Description: "Elegant 6-seater dining table made from premium oak wood.", Price: 35000.00, ImageURL: "https://images.unsplash.com/photo-1586023492125-27b2c045efd7?w=500"},
			{Name: "Ergonomic Office Chair", Description: "Comfortable office chair with lumbar support and adjustable height.", Price: 12000.00, ImageURL: "https://images.unsplash.com/photo-1506439773649-6e0eb8cfb237?w=500"},
			{Name: "Queen Size Bed Frame", Description: "Sturdy metal bed frame with modern design. Includes headboard.", Price: 28000.00, ImageURL: "https://images.unsplash.com/photo-1631049307264-da0ec9d70304?w=500"},
			{Name: "Bookshelf Unit", Description: "5-tier bookshelf with adjustable shelves. Perfect for organizing your space.", Price: 15000.00, ImageURL: "https://images.unsplash.com/photo-1594620302200-9a762244a094?w=500"},
			{Name: "Coffee Table", Description: "Glass top coffee table with wooden legs. Modern and elegant design.", Price: 18000.00, ImageURL: "https://images.unsplash.com/photo-1532372320572-cda25653a26d?w=500"},
			{Name: "Wardrobe Cabinet", Description: "Spacious 3-door wardrobe with mirror. Ample storage space.", Price: 42000.00, ImageURL: "https://images.unsplash.com/photo-1586023492125-27b2c045efd7?w=500"},
			{Name: "Study Desk", Description: "Compact study desk with drawers. Perfect for home office.", Price: 22000.00, ImageURL: "https://images.unsplash.com/photo-1586023492125-27b2c045efd7?w=500"},
		}
		if err := db.Create(&samples).Error; err != nil {
			return err
		}
		log.Printf("✅ %d produits d'exemple insérés", len(samples))
	}

	return nil
}
