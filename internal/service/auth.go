package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

var ErrWrongPassword = errors.New("wrong password")

// AuthService verifies login attempts against a single shared secret
// configured at startup. The plaintext secret is hashed once during
// construction so only the bcrypt hash stays in memory.
type AuthService struct {
	passwordHash []byte
}

func NewAuthService(loginPassword string) (*AuthService, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(loginPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("bcrypt.GenerateFromPassword -> %w", err)
	}

	return &AuthService{
		passwordHash: hash,
	}, nil
}

func (s *AuthService) Login(_ context.Context, _ string, password string) error {
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		return ErrWrongPassword
	}

	return nil
}
