package repository

import (
	"time"

	"contacts-backend/internal/contact/domain"
	"contacts-backend/internal/shared"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormContactRepository implements ContactRepository using GORM
type gormContactRepository struct {
	db *gorm.DB
}

// NewGormContactRepository creates a new GORM-based ContactRepository
func NewGormContactRepository(db *gorm.DB) ContactRepository {
	return &gormContactRepository{db: db}
}

func (r *gormContactRepository) Create(contact *domain.Contact) error {
	if contact.ID == "" {
		contact.ID = uuid.New().String()
	}
	if contact.CreateDate.IsZero() {
		contact.CreateDate = time.Now()
	}
	contact.UpdateDate = time.Now()
	return r.db.Create(contact).Error
}

func (r *gormContactRepository) FindByUserID(userID string) ([]*domain.Contact, error) {
	contacts := []*domain.Contact{}
	err := r.db.Where("user_id = ?", userID).Find(&contacts).Error
	return contacts, err
}

func (r *gormContactRepository) DeleteByID(id string) error {
	res := r.db.Delete(&domain.Contact{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
