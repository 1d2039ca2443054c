package repositories

import (
	"errors"

	"gorm.io/gorm"

	"recruitportal/internal/models"
)

type TranscriptRequestRepository interface {
	Create(req *models.TranscriptRequest) error
	FindByID(id string) (*models.TranscriptRequest, error)
	Update(req *models.TranscriptRequest) error
	// FindLiveByApplicant ищет живой (pending или approved) запрос по кандидату.
	// Возвращает ErrTranscriptNotFound если живого запроса нет.
	FindLiveByApplicant(applicantID string) (*models.TranscriptRequest, error)
	List() ([]models.TranscriptRequest, error)
	ListByStatus(status models.TranscriptRequestStatus) ([]models.TranscriptRequest, error)
}

type transcriptRequestRepository struct {
	db *gorm.DB
}

func NewTranscriptRequestRepository(db *gorm.DB) TranscriptRequestRepository {
	return &transcriptRequestRepository{db: db}
}

func (r *transcriptRequestRepository) Create(req *models.TranscriptRequest) error {
	return r.db.Create(req).Error
}

func (r *transcriptRequestRepository) FindByID(id string) (*models.TranscriptRequest, error) {
	var req models.TranscriptRequest
	if err := r.db.First(&req, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTranscriptNotFound
		}
		return nil, err
	}
	return &req, nil
}

func (r *transcriptRequestRepository) Update(req *models.TranscriptRequest) error {
	return r.db.Save(req).Error
}

func (r *transcriptRequestRepository) FindLiveByApplicant(applicantID string) (*models.TranscriptRequest, error) {
	var req models.TranscriptRequest
	err := r.db.
		Where("applicant_id = ? AND status IN ?", applicantID, []models.TranscriptRequestStatus{
			models.TranscriptRequestStatusPending,
			models.TranscriptRequestStatusApproved,
		}).
		Order("created_at DESC").
		First(&req).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTranscriptNotFound
		}
		return nil, err
	}
	return &req, nil
}

func (r *transcriptRequestRepository) List() ([]models.TranscriptRequest, error) {
	var reqs []models.TranscriptRequest
	err := r.db.Order("created_at DESC").Find(&reqs).Error
	return reqs, err
}

func (r *transcriptRequestRepository) ListByStatus(status models.TranscriptRequestStatus) ([]models.TranscriptRequest, error) {
	var reqs []models.TranscriptRequest
	err := r.db.Where("status = ?", status).Order("created_at DESC").Find(&reqs).Error
	return reqs, err
}
