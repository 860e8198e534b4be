package usecase

import (
	"strings"

	authdomain "contacts-backend/internal/auth/domain"
	"contacts-backend/internal/auth/hash"
	"contacts-backend/internal/auth/repository"
	"contacts-backend/internal/auth/token"
	"contacts-backend/internal/shared"
)

// authUsecase implements AuthUsecase interface
type authUsecase struct {
	userRepo repository.UserRepository
	tokens   *token.Service
}

// NewAuthUsecase creates a new instance of authUsecase
func NewAuthUsecase(userRepo repository.UserRepository, tokens *token.Service) AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

func (u *authUsecase) Register(username, password string) (*authdomain.User, error) {
	username = strings.ToLower(username)

	existing, err := u.userRepo.FindByUsername(username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, shared.ErrUserExists
	}

	passwordHash, err := hash.Password(password)
	if err != nil {
		return nil, err
	}

	user := &authdomain.User{
		Username:     username,
		PasswordHash: passwordHash,
	}

	if err := u.userRepo.Create(user); err != nil {
		return nil, err
	}

	return user, nil
}

// Authenticate tries the token path first: on a valid token the secret is
// ignored. Otherwise the identifier is treated as a username and the secret
// as its password. The caller never learns which factor failed.
func (u *authUsecase) Authenticate(identifier, secret string) (*authdomain.User, error) {
	if userID, err := u.tokens.Validate(identifier); err == nil {
		user, err := u.userRepo.FindByID(userID)
		if err != nil {
			return nil, err
		}
		if user != nil {
			return user, nil
		}
	}

	user, err := u.userRepo.FindByUsername(strings.ToLower(identifier))
	if err != nil {
		return nil, err
	}
	if user == nil || !hash.Check(secret, user.PasswordHash) {
		return nil, shared.ErrUnauthorized
	}

	return user, nil
}

func (u *authUsecase) GetByID(id string) (*authdomain.User, error) {
	return u.userRepo.FindByID(id)
}
