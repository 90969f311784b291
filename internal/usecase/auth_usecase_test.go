package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"home_cleaning/internal/domain/entities"
	"home_cleaning/internal/usecase/interfaces"
	mock_interfaces "home_cleaning/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthUseCase_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2hunter2"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}

	t.Run("empty username", func(t *testing.T) {
		uc := NewAuthUseCase(nil, nil)
		_, err := uc.Login(context.Background(), "   ", "secret")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("unknown username", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		credRepo := mock_interfaces.NewMockICredentialRepository(ctrl)
		uc := NewAuthUseCase(credRepo, nil)

		credRepo.EXPECT().GetByUsername(gomock.Any(), "ana@example.com").Return(entities.Credential{}, nil)

		_, err := uc.Login(context.Background(), "ana@example.com", "secret")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		credRepo := mock_interfaces.NewMockICredentialRepository(ctrl)
		uc := NewAuthUseCase(credRepo, nil)

		credRepo.EXPECT().GetByUsername(gomock.Any(), "ana@example.com").Return(entities.Credential{ID: "cred-1", SecretHash: string(hash)}, nil)

		_, err := uc.Login(context.Background(), "ana@example.com", "not-the-password")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		credRepo := mock_interfaces.NewMockICredentialRepository(ctrl)
		uc := NewAuthUseCase(credRepo, nil)

		credRepo.EXPECT().GetByUsername(gomock.Any(), "ana@example.com").Return(entities.Credential{}, errors.New("db"))

		_, err := uc.Login(context.Background(), "ana@example.com", "secret")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("success lowercases username and issues token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		credRepo := mock_interfaces.NewMockICredentialRepository(ctrl)
		tokens := mock_interfaces.NewMockITokenManager(ctrl)
		uc := NewAuthUseCase(credRepo, tokens)

		cred := entities.Credential{
			ID:         "cred-1",
			Username:   "ana@example.com",
			SecretHash: string(hash),
			Role:       entities.RoleCustomer,
			CustomerID: "cust-1",
		}
		expiresAt := time.Now().UTC().Add(24 * time.Hour)

		credRepo.EXPECT().GetByUsername(gomock.Any(), "ana@example.com").Return(cred, nil)
		tokens.EXPECT().Issue(interfaces.TokenClaims{
			CredentialID: "cred-1",
			Username:     "ana@example.com",
			Role:         entities.RoleCustomer,
			CustomerID:   "cust-1",
		}).Return("signed-token", expiresAt, nil)

		res, err := uc.Login(context.Background(), " ANA@example.com ", "hunter2hunter2")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Token != "signed-token" || res.Role != entities.RoleCustomer || res.CustomerID != "cust-1" {
			t.Fatalf("unexpected result: %+v", res)
		}
		if !res.ExpiresAt.Equal(expiresAt) {
			t.Fatalf("unexpected expiry: %v", res.ExpiresAt)
		}
	})
}
