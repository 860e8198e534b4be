package repository

import "contacts-backend/internal/contact/domain"

// ContactRepository defines the interface for contact data access
type ContactRepository interface {
	// Create persists a new contact, assigning id and timestamps
	Create(contact *domain.Contact) error

	// FindByUserID returns all contacts owned by userID; an empty slice,
	// not an error, when there are none
	FindByUserID(userID string) ([]*domain.Contact, error)

	// DeleteByID deletes a contact by id; a missing id returns
	// shared.ErrNotFound
	DeleteByID(id string) error
}
