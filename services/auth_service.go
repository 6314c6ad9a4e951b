package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/lin-avraham/Pizza2/models"
	"github.com/lin-avraham/Pizza2/repository"
	"github.com/lin-avraham/Pizza2/utils"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	users  repository.UserRepository
	tokens *utils.SessionTokens
}

func NewAuthService(users repository.UserRepository, tokens *utils.SessionTokens) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Login verifies the credentials and returns the principal plus a signed
// session token. Unknown user and wrong password both yield
// ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, username, password string) (*models.Principal, string, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("lookup user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, string(user.Role))
	if err != nil {
		return nil, "", fmt.Errorf("issue session: %w", err)
	}

	utils.InfoLogger.WithField("username", user.Username).WithField("role", user.Role).Info("Login successful")
	return &models.Principal{UserID: user.ID, Role: user.Role}, token, nil
}

// Resolve turns a session token back into a principal, using the role
// stored on the user row.
func (s *AuthService) Resolve(ctx context.Context, token string) (*models.Principal, error) {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return nil, ErrUnauthorized
	}

	user, err := s.users.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, ErrUnauthorized
	}

	role, err := models.ParseRole(string(user.Role))
	if err != nil {
		return nil, ErrUnauthorized
	}
	return &models.Principal{UserID: user.ID, Role: role}, nil
}

func (s *AuthService) Logout(token string) {
	s.tokens.Revoke(token)
}
