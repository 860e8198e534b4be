package token

import (
	"errors"
	"time"

	"contacts-backend/internal/shared"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the standard registered claims plus the authenticated
// user's id. Nothing else goes into the token.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
}

// Service issues and validates signed bearer tokens. The signing secret and
// validity duration are fixed at construction; there is no revocation, a
// token stays valid until its encoded expiry.
type Service struct {
	secret []byte
	ttl    time.Duration
}

func NewService(secret string, ttl time.Duration) *Service {
	return &Service{secret: []byte(secret), ttl: ttl}
}

// TTL returns the validity duration applied to issued tokens.
func (s *Service) TTL() time.Duration {
	return s.ttl
}

// Issue produces an HS256-signed token binding userID to an absolute expiry.
func (s *Service) Issue(userID string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
		UserID: userID,
	})

	return token.SignedString(s.secret)
}

// Validate checks signature integrity, then expiry. It returns the embedded
// user id on success, shared.ErrTokenExpired for an elapsed token and
// shared.ErrTokenInvalid for anything else.
func (s *Service) Validate(tokenString string) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", shared.ErrTokenExpired
		}
		return "", shared.ErrTokenInvalid
	}

	if !token.Valid {
		return "", shared.ErrTokenInvalid
	}

	return claims.UserID, nil
}
