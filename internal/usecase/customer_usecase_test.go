package usecase

import (
	"context"
	"errors"
	"testing"

	"home_cleaning/internal/domain/entities"
	mock_interfaces "home_cleaning/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func TestCustomerUseCase_Register(t *testing.T) {
	t.Run("missing required fields", func(t *testing.T) {
		uc := NewCustomerUseCase(nil, nil)
		_, err := uc.Register(context.Background(), RegisterCustomerInput{Name: "Ana", Email: ""})
		if !errors.Is(err, ErrInvalidCustomerInput) {
			t.Fatalf("expected ErrInvalidCustomerInput, got %v", err)
		}
	})

	t.Run("email already taken", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo, nil)

		repo.EXPECT().GetByEmail(gomock.Any(), "ana@example.com").Return(entities.Customer{ID: "existing"}, nil)

		_, err := uc.Register(context.Background(), RegisterCustomerInput{Name: "Ana", Email: "ANA@Example.com", Secret: "hunter2hunter2"})
		if !errors.Is(err, ErrEmailAlreadyTaken) {
			t.Fatalf("expected ErrEmailAlreadyTaken, got %v", err)
		}
	})

	t.Run("success creates customer and credential", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		credRepo := mock_interfaces.NewMockICredentialRepository(ctrl)
		uc := NewCustomerUseCase(repo, credRepo)

		repo.EXPECT().GetByEmail(gomock.Any(), "ana@example.com").Return(entities.Customer{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Customer{})).DoAndReturn(
			func(_ context.Context, c entities.Customer) (entities.Customer, error) {
				if c.ID == "" || c.Name != "Ana" || c.Email != "ana@example.com" {
					t.Fatalf("unexpected customer: %+v", c)
				}
				if c.CreatedAt.IsZero() {
					t.Fatalf("expected creation timestamp")
				}
				return c, nil
			},
		)
		credRepo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Credential{})).DoAndReturn(
			func(_ context.Context, cred entities.Credential) (entities.Credential, error) {
				if cred.Username != "ana@example.com" || cred.Role != entities.RoleCustomer {
					t.Fatalf("unexpected credential: %+v", cred)
				}
				if cred.CustomerID == "" {
					t.Fatalf("expected customer link")
				}
				if err := bcrypt.CompareHashAndPassword([]byte(cred.SecretHash), []byte("hunter2hunter2")); err != nil {
					t.Fatalf("secret hash does not verify: %v", err)
				}
				return cred, nil
			},
		)

		res, err := uc.Register(context.Background(), RegisterCustomerInput{
			Name:   " Ana ",
			Email:  " ANA@Example.com ",
			Secret: "hunter2hunter2",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID == "" {
			t.Fatalf("expected generated id")
		}
	})
}

func TestCustomerUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewCustomerUseCase(nil, nil)
		_, err := uc.GetByID(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidCustomerID) {
			t.Fatalf("expected ErrInvalidCustomerID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "cust-1").Return(entities.Customer{}, nil)

		_, err := uc.GetByID(context.Background(), "cust-1")
		if !errors.Is(err, ErrCustomerNotFound) {
			t.Fatalf("expected ErrCustomerNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "cust-1").Return(entities.Customer{ID: "cust-1"}, nil)

		res, err := uc.GetByID(context.Background(), " cust-1 ")
		if err != nil || res.ID != "cust-1" {
			t.Fatalf("unexpected result: %+v %v", res, err)
		}
	})
}
