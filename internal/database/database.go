package database

import (
	"fmt"

	"comenta-app/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func Initialize(databaseURL string) (*gorm.DB, error) {
	config := &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true, // map driver errors to gorm.ErrDuplicatedKey etc.
	}

	db, err := gorm.Open(postgres.Open(databaseURL), config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	logrus.Info("Database connected and migrated successfully")
	return db, nil
}

func migrate(db *gorm.DB) error {
	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\"").Error; err != nil {
		logrus.Warnf("Could not create uuid-ossp extension: %v", err)
	}

	return db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Complaint{},
		&models.ComplaintMedia{},
		&models.Like{},
		&models.Comment{},
	)
}

// SeedCategories inserts the fixed category set on first startup. The seed
// is skipped entirely when any category already exists.
func SeedCategories(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Category{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count categories: %w", err)
	}
	if count > 0 {
		return nil
	}

	categories := []models.Category{
		{Name: "Buraco na via", IconName: "construction", Color: "#EF4444"},
		{Name: "Iluminação pública", IconName: "lightbulb", Color: "#F59E0B"},
		{Name: "Lixo e limpeza", IconName: "trash-2", Color: "#10B981"},
		{Name: "Saneamento", IconName: "droplet", Color: "#3B82F6"},
		{Name: "Transporte público", IconName: "bus", Color: "#8B5CF6"},
		{Name: "Segurança", IconName: "shield", Color: "#EC4899"},
		{Name: "Outros", IconName: "alert-circle", Color: "#6B7280"},
	}

	if err := db.Create(&categories).Error; err != nil {
		return fmt.Errorf("failed to seed categories: %w", err)
	}

	logrus.Infof("Seeded %d categories", len(categories))
	return nil
}
