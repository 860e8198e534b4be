package repository

import "contacts-backend/internal/auth/domain"

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create persists a new user; duplicate usernames surface as
	// shared.ErrUserExists
	Create(user *domain.User) error

	// FindByID finds a user by id; returns nil, nil when absent
	FindByID(id string) (*domain.User, error)

	// FindByUsername finds a user by case-folded username; returns nil, nil
	// when absent
	FindByUsername(username string) (*domain.User, error)
}
