package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"recruitportal/internal/models"
)

type JobPostingRepository interface {
	Create(posting *models.JobPosting) error
	FindByID(id string) (*models.JobPosting, error)
	Update(posting *models.JobPosting) error
	ListByEmployer(employerID string) ([]models.JobPosting, error)
	ListByStatus(status models.JobPostingStatus) ([]models.JobPosting, error)
	ListApproved() ([]models.JobPosting, error)
	CountByStatus() (map[models.JobPostingStatus]int64, error)
	CloseExpired(now time.Time) (int64, error)
}

type jobPostingRepository struct {
	db *gorm.DB
}

func NewJobPostingRepository(db *gorm.DB) JobPostingRepository {
	return &jobPostingRepository{db: db}
}

func (r *jobPostingRepository) Create(posting *models.JobPosting) error {
	return r.db.Create(posting).Error
}

func (r *jobPostingRepository) FindByID(id string) (*models.JobPosting, error) {
	var posting models.JobPosting
	if err := r.db.First(&posting, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobPostingNotFound
		}
		return nil, err
	}
	return &posting, nil
}

func (r *jobPostingRepository) Update(posting *models.JobPosting) error {
	return r.db.Save(posting).Error
}

func (r *jobPostingRepository) ListByEmployer(employerID string) ([]models.JobPosting, error) {
	var postings []models.JobPosting
	err := r.db.Where("employer_id = ?", employerID).Order("created_at DESC").Find(&postings).Error
	return postings, err
}

func (r *jobPostingRepository) ListByStatus(status models.JobPostingStatus) ([]models.JobPosting, error) {
	var postings []models.JobPosting
	err := r.db.Where("status = ?", status).Order("created_at DESC").Find(&postings).Error
	return postings, err
}

// ListApproved - публичная лента вакансий для студентов
func (r *jobPostingRepository) ListApproved() ([]models.JobPosting, error) {
	return r.ListByStatus(models.JobPostingStatusApproved)
}

func (r *jobPostingRepository) CountByStatus() (map[models.JobPostingStatus]int64, error) {
	type row struct {
		Status models.JobPostingStatus
		Count  int64
	}
	var rows []row
	err := r.db.Model(&models.JobPosting{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	result := make(map[models.JobPostingStatus]int64, len(rows))
	for _, r := range rows {
		result[r.Status] = r.Count
	}
	return result, nil
}

// CloseExpired закрывает одобренные вакансии с истекшим дедлайном.
// Вызывается maintenance-воркером.
func (r *jobPostingRepository) CloseExpired(now time.Time) (int64, error) {
	result := r.db.Model(&models.JobPosting{}).
		Where("status = ? AND deadline IS NOT NULL AND deadline < ?", models.JobPostingStatusApproved, now).
		Updates(map[string]interface{}{"status": models.JobPostingStatusClosed})
	return result.RowsAffected, result.Error
}
