package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"home_cleaning/internal/domain/entities"
	"home_cleaning/internal/usecase/interfaces"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

// LoginResult is what a successful login hands back to the transport layer.
type LoginResult struct {
	Token      string
	ExpiresAt  time.Time
	Role       entities.Role
	CustomerID string
	Username   string
}

// IAuthUseCase resolves a login identifier + secret to a signed session token.
type IAuthUseCase interface {
	Login(ctx context.Context, username, secret string) (LoginResult, error)
}

type AuthUseCase struct {
	credRepo interfaces.ICredentialRepository
	tokens   interfaces.ITokenManager
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(credRepo interfaces.ICredentialRepository, tokens interfaces.ITokenManager) *AuthUseCase {
	return &AuthUseCase{credRepo: credRepo, tokens: tokens}
}

func (u *AuthUseCase) Login(ctx context.Context, username, secret string) (LoginResult, error) {
	username = strings.TrimSpace(strings.ToLower(username))
	if username == "" || secret == "" {
		return LoginResult{}, ErrInvalidCredentials
	}

	cred, err := u.credRepo.GetByUsername(ctx, username)
	if err != nil {
		return LoginResult{}, err
	}
	if cred.ID == "" {
		return LoginResult{}, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(cred.SecretHash), []byte(secret)); err != nil {
		return LoginResult{}, ErrInvalidCredentials
	}

	token, expiresAt, err := u.tokens.Issue(interfaces.TokenClaims{
		CredentialID: cred.ID,
		Username:     cred.Username,
		Role:         cred.Role,
		CustomerID:   cred.CustomerID,
	})
	if err != nil {
		return LoginResult{}, err
	}

	return LoginResult{
		Token:      token,
		ExpiresAt:  expiresAt,
		Role:       cred.Role,
		CustomerID: cred.CustomerID,
		Username:   cred.Username,
	}, nil
}
