package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"home_cleaning/internal/domain/entities"
	"home_cleaning/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrRequestNotFound     = errors.New("service request not found")
	ErrInvalidRequestID    = errors.New("invalid request id")
	ErrInvalidRequestInput = errors.New("invalid service request input")
	ErrInvalidPhotoURL     = errors.New("invalid photo url")
)

// SubmitRequestInput carries a new service request.
type SubmitRequestInput struct {
	CustomerID     string
	Address        string
	CleaningType   string
	Rooms          int
	PreferredTime  *time.Time
	ProposedBudget float64
	Notes          string
}

// IServiceRequestUseCase exposes service request intake.
//
// Submit validates the owning customer exists before inserting; orphaned
// requests are rejected with ErrCustomerNotFound.
type IServiceRequestUseCase interface {
	Submit(ctx context.Context, in SubmitRequestInput) (entities.ServiceRequest, error)
	AttachPhoto(ctx context.Context, requestID, photoURL string) (entities.ServiceRequest, error)
	GetByID(ctx context.Context, id string) (entities.ServiceRequest, error)
	ListByCustomer(ctx context.Context, customerID string) ([]entities.ServiceRequest, error)
	ListAll(ctx context.Context) ([]entities.ServiceRequest, error)
}

type ServiceRequestUseCase struct {
	repo         interfaces.IServiceRequestRepository
	customerRepo interfaces.ICustomerRepository
}

var _ IServiceRequestUseCase = (*ServiceRequestUseCase)(nil)

func NewServiceRequestUseCase(repo interfaces.IServiceRequestRepository, customerRepo interfaces.ICustomerRepository) *ServiceRequestUseCase {
	return &ServiceRequestUseCase{repo: repo, customerRepo: customerRepo}
}

func (u *ServiceRequestUseCase) Submit(ctx context.Context, in SubmitRequestInput) (entities.ServiceRequest, error) {
	in.CustomerID = strings.TrimSpace(in.CustomerID)
	in.Address = strings.TrimSpace(in.Address)
	in.CleaningType = strings.TrimSpace(in.CleaningType)
	if in.CustomerID == "" {
		return entities.ServiceRequest{}, ErrInvalidCustomerID
	}
	if in.Address == "" || in.CleaningType == "" || in.Rooms <= 0 {
		return entities.ServiceRequest{}, ErrInvalidRequestInput
	}
	if in.ProposedBudget < 0 {
		return entities.ServiceRequest{}, ErrInvalidRequestInput
	}

	owner, err := u.customerRepo.GetByID(ctx, in.CustomerID)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if owner.ID == "" {
		return entities.ServiceRequest{}, ErrCustomerNotFound
	}

	r := entities.ServiceRequest{
		ID:             uuid.NewString(),
		CustomerID:     in.CustomerID,
		Address:        in.Address,
		CleaningType:   in.CleaningType,
		Rooms:          in.Rooms,
		PreferredTime:  in.PreferredTime,
		ProposedBudget: in.ProposedBudget,
		Notes:          strings.TrimSpace(in.Notes),
		Photos:         []string{},
		CreatedAt:      time.Now().UTC(),
	}
	return u.repo.Create(ctx, r)
}

func (u *ServiceRequestUseCase) AttachPhoto(ctx context.Context, requestID, photoURL string) (entities.ServiceRequest, error) {
	requestID = strings.TrimSpace(requestID)
	photoURL = strings.TrimSpace(photoURL)
	if requestID == "" {
		return entities.ServiceRequest{}, ErrInvalidRequestID
	}
	if photoURL == "" {
		return entities.ServiceRequest{}, ErrInvalidPhotoURL
	}

	updated, err := u.repo.AppendPhoto(ctx, requestID, photoURL)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if updated.ID == "" {
		return entities.ServiceRequest{}, ErrRequestNotFound
	}
	return updated, nil
}

func (u *ServiceRequestUseCase) GetByID(ctx context.Context, id string) (entities.ServiceRequest, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServiceRequest{}, ErrInvalidRequestID
	}

	r, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if r.ID == "" {
		return entities.ServiceRequest{}, ErrRequestNotFound
	}
	return r, nil
}

func (u *ServiceRequestUseCase) ListByCustomer(ctx context.Context, customerID string) ([]entities.ServiceRequest, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return nil, ErrInvalidCustomerID
	}
	return u.repo.ListByCustomerID(ctx, customerID)
}

func (u *ServiceRequestUseCase) ListAll(ctx context.Context) ([]entities.ServiceRequest, error) {
	return u.repo.ListAll(ctx)
}
