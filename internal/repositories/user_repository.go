package repositories

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"recruitportal/internal/models"
)

type UserRepository interface {
	Create(user *models.User) error
	FindByID(id string) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	ListByRole(role models.UserRole) ([]models.User, error)
	CountByRole() (map[models.UserRole]int64, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *models.User) error {
	err := r.db.Create(user).Error
	if err != nil {
		// gorm не дает типизированную ошибку уникальности для postgres
		if strings.Contains(err.Error(), "duplicate key") || errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrUserAlreadyExists
		}
		return err
	}
	return nil
}

func (r *userRepository) FindByID(id string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) ListByRole(role models.UserRole) ([]models.User, error) {
	var users []models.User
	err := r.db.Where("role = ?", role).Order("created_at DESC").Find(&users).Error
	return users, err
}

func (r *userRepository) CountByRole() (map[models.UserRole]int64, error) {
	type row struct {
		Role  models.UserRole
		Count int64
	}
	var rows []row
	err := r.db.Model(&models.User{}).
		Select("role, count(*) as count").
		Group("role").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	result := make(map[models.UserRole]int64, len(rows))
	for _, r := range rows {
		result[r.Role] = r.Count
	}
	return result, nil
}
