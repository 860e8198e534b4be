package usecase

import "contacts-backend/internal/contact/domain"

// ContactUsecase defines the interface for contact business logic
type ContactUsecase interface {
	// CreateContact creates a contact owned by userID
	CreateContact(userID, name, phone, email string) (*domain.Contact, error)

	// GetUserContacts returns the caller's contacts
	GetUserContacts(userID string) ([]*domain.Contact, error)

	// DeleteContact deletes a contact by id; a missing id is a benign
	// shared.ErrNotFound. No ownership check is performed.
	DeleteContact(id string) error
}
