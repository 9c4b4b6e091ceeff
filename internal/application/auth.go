package application

import (
	"github.com/quickhire/quickhire-api/internal/config"
	"golang.org/x/crypto/bcrypt"
)

// AuthService checks the configured admin principal. End-user identity is
// handled by an external provider and never reaches this layer.
type AuthService struct{}

func NewAuthService() *AuthService {
	return &AuthService{}
}

func (s *AuthService) VerifyAdmin(username, password string) error {
	if username != config.AdminUsername {
		return ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(config.AdminPasswordHash), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}
