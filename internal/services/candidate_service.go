package services

import (
	"recruitportal/internal/models"
	"recruitportal/internal/repositories"
	"recruitportal/internal/services/dto"
	"recruitportal/pkg/apperrors"
)

type CandidateService interface {
	List() ([]dto.UserResponse, error)
}

type candidateService struct {
	userRepo repositories.UserRepository
}

func NewCandidateService(userRepo repositories.UserRepository) CandidateService {
	return &candidateService{userRepo: userRepo}
}

// List - каталог кандидатов для работодателя.
// Возвращаются только студенты, без хэшей паролей и прочих полей модели.
func (s *candidateService) List() ([]dto.UserResponse, error) {
	students, err := s.userRepo.ListByRole(models.UserRoleStudent)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	candidates := make([]dto.UserResponse, 0, len(students))
	for i := range students {
		candidates = append(candidates, *buildUserResponse(&students[i]))
	}
	return candidates, nil
}
