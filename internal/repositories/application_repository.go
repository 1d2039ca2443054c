package repositories

import (
	"errors"

	"gorm.io/gorm"

	"recruitportal/internal/models"
)

type ApplicationRepository interface {
	Create(app *models.Application) error
	FindByID(id string) (*models.Application, error)
	Update(app *models.Application) error
	ListByApplicant(applicantID string) ([]models.Application, error)
	ListByPosting(jobPostingID string) ([]models.Application, error)
	ListByStatus(status models.ApplicationStatus) ([]models.Application, error)
	ExistsForApplicant(jobPostingID, applicantID string) (bool, error)
	CountByStatus() (map[models.ApplicationStatus]int64, error)
}

type applicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) Create(app *models.Application) error {
	return r.db.Create(app).Error
}

func (r *applicationRepository) FindByID(id string) (*models.Application, error) {
	var app models.Application
	if err := r.db.First(&app, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *applicationRepository) Update(app *models.Application) error {
	return r.db.Save(app).Error
}

func (r *applicationRepository) ListByApplicant(applicantID string) ([]models.Application, error) {
	var apps []models.Application
	err := r.db.Where("applicant_id = ?", applicantID).Order("created_at DESC").Find(&apps).Error
	return apps, err
}

func (r *applicationRepository) ListByPosting(jobPostingID string) ([]models.Application, error) {
	var apps []models.Application
	err := r.db.Where("job_posting_id = ?", jobPostingID).Order("created_at DESC").Find(&apps).Error
	return apps, err
}

// ListByStatus используется админским надзором за интервью
func (r *applicationRepository) ListByStatus(status models.ApplicationStatus) ([]models.Application, error) {
	var apps []models.Application
	err := r.db.Where("status = ?", status).Order("created_at DESC").Find(&apps).Error
	return apps, err
}

func (r *applicationRepository) ExistsForApplicant(jobPostingID, applicantID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Application{}).
		Where("job_posting_id = ? AND applicant_id = ?", jobPostingID, applicantID).
		Count(&count).Error
	return count > 0, err
}

func (r *applicationRepository) CountByStatus() (map[models.ApplicationStatus]int64, error) {
	type row struct {
		Status models.ApplicationStatus
		Count  int64
	}
	var rows []row
	err := r.db.Model(&models.Application{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	result := make(map[models.ApplicationStatus]int64, len(rows))
	for _, r := range rows {
		result[r.Status] = r.Count
	}
	return result, nil
}
