package token

import (
	"errors"
	"testing"
	"time"

	"contacts-backend/internal/shared"
)

func TestIssueAndValidate_Success(t *testing.T) {
	t.Parallel()

	svc := NewService("super-secret", time.Hour)
	userID := "user-123"

	tok, err := svc.Issue(userID)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	gotUserID, err := svc.Validate(tok)
	if err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	if gotUserID != userID {
		t.Fatalf("userID mismatch: got %q want %q", gotUserID, userID)
	}
}

func TestValidate_Expired(t *testing.T) {
	t.Parallel()

	svc := NewService("secret", -1*time.Second)

	tok, err := svc.Issue("u1")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = svc.Validate(tok)
	if !errors.Is(err, shared.ErrTokenExpired) {
		t.Fatalf("expected shared.ErrTokenExpired, got %v", err)
	}
}

func TestValidate_WrongSecret(t *testing.T) {
	t.Parallel()

	issuer := NewService("right-secret", time.Hour)
	tok, err := issuer.Issue("u2")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	verifier := NewService("wrong-secret", time.Hour)
	_, err = verifier.Validate(tok)
	if !errors.Is(err, shared.ErrTokenInvalid) {
		t.Fatalf("expected shared.ErrTokenInvalid, got %v", err)
	}
}

func TestValidate_Tampered(t *testing.T) {
	t.Parallel()

	svc := NewService("secret", time.Hour)
	tok, err := svc.Issue("u3")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	// flip one byte in the payload section
	b := []byte(tok)
	b[len(b)/2] ^= 0x01

	_, err = svc.Validate(string(b))
	if !errors.Is(err, shared.ErrTokenInvalid) {
		t.Fatalf("expected shared.ErrTokenInvalid, got %v", err)
	}
}

func TestValidate_MalformedString(t *testing.T) {
	t.Parallel()

	svc := NewService("k", time.Hour)
	_, err := svc.Validate("not.a.jwt")
	if !errors.Is(err, shared.ErrTokenInvalid) {
		t.Fatalf("expected shared.ErrTokenInvalid, got %v", err)
	}
}
