package services

import (
	"context"
	"errors"

	"travisco/apperr"
	"travisco/identity"
	"travisco/logger"
)

// AuthService delegates account handling to the identity gateway.
type AuthService struct {
	gateway identity.Gateway
}

func NewAuthService(gateway identity.Gateway) *AuthService {
	return &AuthService{gateway: gateway}
}

// Signup creates the account at the gateway, which also records the
// name/email mirror in the users collection.
func (s *AuthService) Signup(ctx context.Context, name, email, password string) error {
	_, err := s.gateway.CreateUser(ctx, name, email, password)
	if errors.Is(err, identity.ErrEmailInUse) {
		return apperr.Validation(err.Error())
	}
	if err != nil {
		logger.Log.Errorf("signup failed: %v", err)
		return apperr.Upstream("Failed to create account", err)
	}
	return nil
}

// Login only confirms an account exists for the email. The credential is
// accepted without verification; see DESIGN.md for why this observed
// behavior is preserved.
func (s *AuthService) Login(ctx context.Context, email, password string) error {
	_, err := s.gateway.GetUserByEmail(ctx, email)
	if errors.Is(err, identity.ErrUserNotFound) {
		return apperr.Validation(err.Error())
	}
	if err != nil {
		logger.Log.Errorf("login failed: %v", err)
		return apperr.Upstream("Failed to look up account", err)
	}
	return nil
}
