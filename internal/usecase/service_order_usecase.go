package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"home_cleaning/internal/domain/entities"
	"home_cleaning/internal/usecase/interfaces"
)

var (
	ErrOrderNotFound    = errors.New("service order not found")
	ErrInvalidOrderID   = errors.New("invalid order id")
	ErrOrderNotAccepted = errors.New("service order is not in accepted state")
)

// IServiceOrderUseCase exposes order completion and lookups.
type IServiceOrderUseCase interface {
	Complete(ctx context.Context, orderID string) (entities.ServiceOrder, error)
	GetByID(ctx context.Context, id string) (entities.ServiceOrder, error)
	ListAll(ctx context.Context) ([]entities.ServiceOrder, error)
}

type ServiceOrderUseCase struct {
	repo interfaces.IServiceOrderRepository
}

var _ IServiceOrderUseCase = (*ServiceOrderUseCase)(nil)

func NewServiceOrderUseCase(repo interfaces.IServiceOrderRepository) *ServiceOrderUseCase {
	return &ServiceOrderUseCase{repo: repo}
}

// Complete is deliberately not idempotent: a second call on the same order is
// a caller bug and fails with ErrOrderNotAccepted instead of silently
// succeeding.
func (u *ServiceOrderUseCase) Complete(ctx context.Context, orderID string) (entities.ServiceOrder, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.ServiceOrder{}, ErrInvalidOrderID
	}

	order, err := u.repo.GetByID(ctx, orderID)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if order.ID == "" {
		return entities.ServiceOrder{}, ErrOrderNotFound
	}
	if order.Status != entities.OrderStatusAccepted {
		return entities.ServiceOrder{}, ErrOrderNotAccepted
	}

	completed, err := u.repo.CompleteIfAccepted(ctx, orderID, time.Now().UTC())
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if completed.ID == "" {
		return entities.ServiceOrder{}, ErrOrderNotAccepted
	}
	return completed, nil
}

func (u *ServiceOrderUseCase) GetByID(ctx context.Context, id string) (entities.ServiceOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServiceOrder{}, ErrInvalidOrderID
	}

	order, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if order.ID == "" {
		return entities.ServiceOrder{}, ErrOrderNotFound
	}
	return order, nil
}

func (u *ServiceOrderUseCase) ListAll(ctx context.Context) ([]entities.ServiceOrder, error) {
	return u.repo.ListAll(ctx)
}
