package repositories

import (
	"errors"

	"gorm.io/gorm"

	"recruitportal/internal/models"
)

type ChallengeRepository interface {
	CreateChallenge(ch *models.SkillChallenge) error
	FindChallengeByID(id string) (*models.SkillChallenge, error)
	ListActiveChallenges() ([]models.SkillChallenge, error)

	CreateSubmission(sub *models.ChallengeSubmission) error
	FindSubmissionByID(id string) (*models.ChallengeSubmission, error)
	UpdateSubmission(sub *models.ChallengeSubmission) error
	ListSubmissionsByStudent(studentID string) ([]models.ChallengeSubmission, error)
	ListSubmissionsByStatus(status models.SubmissionStatus) ([]models.ChallengeSubmission, error)
}

type challengeRepository struct {
	db *gorm.DB
}

func NewChallengeRepository(db *gorm.DB) ChallengeRepository {
	return &challengeRepository{db: db}
}

func (r *challengeRepository) CreateChallenge(ch *models.SkillChallenge) error {
	return r.db.Create(ch).Error
}

func (r *challengeRepository) FindChallengeByID(id string) (*models.SkillChallenge, error) {
	var ch models.SkillChallenge
	if err := r.db.First(&ch, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChallengeNotFound
		}
		return nil, err
	}
	return &ch, nil
}

func (r *challengeRepository) ListActiveChallenges() ([]models.SkillChallenge, error) {
	var chs []models.SkillChallenge
	err := r.db.Where("active = ?", true).Order("created_at DESC").Find(&chs).Error
	return chs, err
}

func (r *challengeRepository) CreateSubmission(sub *models.ChallengeSubmission) error {
	return r.db.Create(sub).Error
}

func (r *challengeRepository) FindSubmissionByID(id string) (*models.ChallengeSubmission, error) {
	var sub models.ChallengeSubmission
	if err := r.db.First(&sub, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubmissionNotFound
		}
		return nil, err
	}
	return &sub, nil
}

func (r *challengeRepository) UpdateSubmission(sub *models.ChallengeSubmission) error {
	return r.db.Save(sub).Error
}

func (r *challengeRepository) ListSubmissionsByStudent(studentID string) ([]models.ChallengeSubmission, error) {
	var subs []models.ChallengeSubmission
	err := r.db.Where("student_id = ?", studentID).Order("created_at DESC").Find(&subs).Error
	return subs, err
}

func (r *challengeRepository) ListSubmissionsByStatus(status models.SubmissionStatus) ([]models.ChallengeSubmission, error) {
	var subs []models.ChallengeSubmission
	err := r.db.Where("status = ?", status).Order("created_at DESC").Find(&subs).Error
	return subs, err
}
