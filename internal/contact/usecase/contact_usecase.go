package usecase

import (
	"contacts-backend/internal/contact/domain"
	"contacts-backend/internal/contact/repository"
)

// contactUsecase implements ContactUsecase interface
type contactUsecase struct {
	contactRepo repository.ContactRepository
}

// NewContactUsecase creates a new instance of contactUsecase
func NewContactUsecase(contactRepo repository.ContactRepository) ContactUsecase {
	return &contactUsecase{
		contactRepo: contactRepo,
	}
}

func (u *contactUsecase) CreateContact(userID, name, phone, email string) (*domain.Contact, error) {
	contact := &domain.Contact{
		Name:   name,
		Phone:  phone,
		Email:  email,
		UserID: userID,
	}

	if err := u.contactRepo.Create(contact); err != nil {
		return nil, err
	}

	return contact, nil
}

func (u *contactUsecase) GetUserContacts(userID string) ([]*domain.Contact, error) {
	return u.contactRepo.FindByUserID(userID)
}

func (u *contactUsecase) DeleteContact(id string) error {
	return u.contactRepo.DeleteByID(id)
}
