package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"recruitportal/internal/config"
	"recruitportal/internal/models"
)

var gormDB *gorm.DB

// ConnectGorm инициализирует GORM с DSN из конфигурации
func ConnectGorm() (*gorm.DB, error) {
	if gormDB != nil {
		return gormDB, nil
	}

	cfg := config.GetConfig()

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to GORM: %w", err)
	}

	gormDB = db
	return db, nil
}

// AutoMigrate выполняет миграцию всех моделей портала.
// uuid_generate_v4 требует расширение uuid-ossp.
func AutoMigrate(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return fmt.Errorf("failed to create uuid-ossp extension: %w", err)
	}

	return db.AutoMigrate(
		&models.User{},
		&models.JobPosting{},
		&models.Application{},
		&models.Ticket{},
		&models.TranscriptRequest{},
		&models.SkillChallenge{},
		&models.ChallengeSubmission{},
		&models.Badge{},
		&models.Notification{},
		&models.AuditLog{},
	)
}
