package services

import (
	"recruitportal/internal/auth"
	"recruitportal/internal/models"
	"recruitportal/internal/repositories"
	"recruitportal/internal/services/dto"
	"recruitportal/pkg/apperrors"
)

type AuthService interface {
	Register(req *dto.RegisterRequest) error
	Login(req *dto.LoginRequest) (*dto.LoginResponse, error)
	Me(userID string) (*dto.UserResponse, error)
}

type authService struct {
	userRepo repositories.UserRepository
}

func NewAuthService(userRepo repositories.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

// Register - регистрация нового пользователя.
// Роль admin через публичную регистрацию не выдается (только сид).
func (s *authService) Register(req *dto.RegisterRequest) error {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return apperrors.ErrWeakPassword
	}

	if req.Role != models.UserRoleStudent && req.Role != models.UserRoleEmployer {
		return apperrors.ErrInvalidUserRole
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return apperrors.InternalError(err)
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         req.Role,
	}

	if err := s.userRepo.Create(user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return apperrors.ErrEmailAlreadyExists
		}
		return apperrors.InternalError(err)
	}

	return nil
}

// Login - аутентификация пользователя.
// Единый ответ ErrInvalidCredentials для "нет пользователя" и
// "неверный пароль": ошибка не раскрывает, какое поле неверно.
func (s *authService) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	accessToken, err := auth.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResponse{
		AccessToken: accessToken,
		User:        buildUserResponse(user),
	}, nil
}

// Me возвращает профиль текущей сессии
func (s *authService) Me(userID string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return buildUserResponse(user), nil
}

func buildUserResponse(user *models.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		AvatarURL: user.AvatarURL,
	}
}
