package app

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"recruitportal/internal/config"
	"recruitportal/internal/logger"
	"recruitportal/internal/models"
)

// seedFirstAdmin создает первого админа из конфигурации.
// Публичная регистрация роль admin не выдает, поэтому без сида
// модерация была бы недостижима.
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminEmail := cfg.Seed.AdminEmail
	adminPassword := cfg.Seed.AdminPassword

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("SEED_ADMIN_EMAIL or SEED_ADMIN_PASSWORD is not set. Skipping admin seeding.")
		return nil
	}

	var existing models.User
	result := db.Where("email = ?", adminEmail).First(&existing)
	if result.Error == nil {
		logger.Info("Admin user already exists. Skipping creation.", "email", adminEmail)
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", result.Error)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := &models.User{
		Name:         "Portal Administrator",
		Email:        adminEmail,
		PasswordHash: string(hashedPassword),
		Role:         models.UserRoleAdmin,
	}

	if err := db.Create(admin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	logger.Info("First admin user created", "email", adminEmail)
	return nil
}
