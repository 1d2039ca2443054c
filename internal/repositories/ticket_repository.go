package repositories

import (
	"errors"

	"gorm.io/gorm"

	"recruitportal/internal/models"
)

type TicketRepository interface {
	Create(ticket *models.Ticket) error
	FindByID(id string) (*models.Ticket, error)
	Update(ticket *models.Ticket) error
	List() ([]models.Ticket, error)
	ListByStatus(status models.TicketStatus) ([]models.Ticket, error)
	ListByEmail(email string) ([]models.Ticket, error)
	CountOpen() (int64, error)
}

type ticketRepository struct {
	db *gorm.DB
}

func NewTicketRepository(db *gorm.DB) TicketRepository {
	return &ticketRepository{db: db}
}

func (r *ticketRepository) Create(ticket *models.Ticket) error {
	return r.db.Create(ticket).Error
}

func (r *ticketRepository) FindByID(id string) (*models.Ticket, error) {
	var ticket models.Ticket
	if err := r.db.First(&ticket, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTicketNotFound
		}
		return nil, err
	}
	return &ticket, nil
}

func (r *ticketRepository) Update(ticket *models.Ticket) error {
	return r.db.Save(ticket).Error
}

func (r *ticketRepository) List() ([]models.Ticket, error) {
	var tickets []models.Ticket
	err := r.db.Order("created_at DESC").Find(&tickets).Error
	return tickets, err
}

func (r *ticketRepository) ListByStatus(status models.TicketStatus) ([]models.Ticket, error) {
	var tickets []models.Ticket
	err := r.db.Where("status = ?", status).Order("created_at DESC").Find(&tickets).Error
	return tickets, err
}

func (r *ticketRepository) ListByEmail(email string) ([]models.Ticket, error) {
	var tickets []models.Ticket
	err := r.db.Where("user_email = ?", email).Order("created_at DESC").Find(&tickets).Error
	return tickets, err
}

func (r *ticketRepository) CountOpen() (int64, error) {
	var count int64
	err := r.db.Model(&models.Ticket{}).Where("status = ?", models.TicketStatusOpen).Count(&count).Error
	return count, err
}
