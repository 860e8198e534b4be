package usecase

import "contacts-backend/internal/auth/domain"

// AuthUsecase defines the interface for authentication business logic
type AuthUsecase interface {
	// Register creates a new user with a case-folded unique username;
	// duplicates return shared.ErrUserExists
	Register(username, password string) (*domain.User, error)

	// Authenticate resolves an identity from a credential pair: the
	// identifier is tried as a bearer token first, then as a username with
	// the secret as its password. All failures collapse to
	// shared.ErrUnauthorized
	Authenticate(identifier, secret string) (*domain.User, error)

	// GetByID fetches a user by id; returns nil, nil when absent
	GetByID(id string) (*domain.User, error)
}
