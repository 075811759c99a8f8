package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"sms-admin/internal/core/domain"
	"sms-admin/internal/pkg/session"
)

// Auth errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMissingToken       = errors.New("login response carried no token")
)

// AuthService exchanges credentials for a backend session token
type AuthService struct {
	api Requester
}

// NewAuthService creates a new auth service
func NewAuthService(api Requester) *AuthService {
	return &AuthService{api: api}
}

// LoginInput represents login input
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// loginReply covers both token field names the backend has used
type loginReply struct {
	AccessToken string `json:"access_token"`
	Token       string `json:"token"`
}

// Login posts the credentials and returns the bearer token
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (string, error) {
	input.Email = strings.TrimSpace(input.Email)
	if input.Email == "" || input.Password == "" {
		return "", NewValidationError("email", "Email & Password required")
	}
	if err := check(input); err != nil {
		return "", err
	}

	var reply loginReply
	if err := s.api.Post(ctx, "/auth/login", input, &reply); err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return "", fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
		}
		return "", err
	}

	token := reply.AccessToken
	if token == "" {
		token = reply.Token
	}
	if token == "" {
		return "", fmt.Errorf("%w: %w", domain.ErrBackend, ErrMissingToken)
	}

	log.Printf("✅ Admin logged in: %s (session %s)", input.Email, session.Fingerprint(token))
	return token, nil
}
