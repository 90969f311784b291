package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"home_cleaning/internal/domain/entities"
	"home_cleaning/internal/usecase/interfaces"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrCustomerNotFound     = errors.New("customer not found")
	ErrEmailAlreadyTaken    = errors.New("email already registered")
	ErrInvalidCustomerID    = errors.New("invalid customer id")
	ErrInvalidCustomerInput = errors.New("invalid customer input")
)

// RegisterCustomerInput carries everything collected on the registration form.
type RegisterCustomerInput struct {
	Name      string
	Address   string
	Phone     string
	Email     string
	CardLast4 string
	CardToken string
	Secret    string
}

// ICustomerUseCase exposes customer registration and lookups.
//
// Registration creates the Customer and its CUSTOMER credential in one call;
// the email doubles as the login identifier.
type ICustomerUseCase interface {
	Register(ctx context.Context, in RegisterCustomerInput) (entities.Customer, error)
	GetByID(ctx context.Context, id string) (entities.Customer, error)
}

type CustomerUseCase struct {
	repo     interfaces.ICustomerRepository
	credRepo interfaces.ICredentialRepository
}

var _ ICustomerUseCase = (*CustomerUseCase)(nil)

func NewCustomerUseCase(repo interfaces.ICustomerRepository, credRepo interfaces.ICredentialRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo, credRepo: credRepo}
}

func (u *CustomerUseCase) Register(ctx context.Context, in RegisterCustomerInput) (entities.Customer, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(strings.ToLower(in.Email))
	if in.Name == "" || in.Email == "" || in.Secret == "" {
		return entities.Customer{}, ErrInvalidCustomerInput
	}

	if existing, err := u.repo.GetByEmail(ctx, in.Email); err != nil {
		return entities.Customer{}, err
	} else if existing.ID != "" {
		return entities.Customer{}, ErrEmailAlreadyTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Secret), bcrypt.DefaultCost)
	if err != nil {
		return entities.Customer{}, err
	}

	now := time.Now().UTC()
	c := entities.Customer{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Address:   strings.TrimSpace(in.Address),
		Phone:     strings.TrimSpace(in.Phone),
		Email:     in.Email,
		CardLast4: strings.TrimSpace(in.CardLast4),
		CardToken: in.CardToken,
		CreatedAt: now,
	}
	created, err := u.repo.Create(ctx, c)
	if err != nil {
		return entities.Customer{}, err
	}

	cred := entities.Credential{
		ID:         uuid.NewString(),
		Username:   in.Email,
		SecretHash: string(hash),
		Role:       entities.RoleCustomer,
		CustomerID: created.ID,
		CreatedAt:  now,
	}
	if _, err := u.credRepo.Create(ctx, cred); err != nil {
		return entities.Customer{}, err
	}
	return created, nil
}

func (u *CustomerUseCase) GetByID(ctx context.Context, id string) (entities.Customer, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Customer{}, ErrInvalidCustomerID
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Customer{}, err
	}
	if c.ID == "" {
		return entities.Customer{}, ErrCustomerNotFound
	}
	return c, nil
}
