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
	ErrBillNotFound      = errors.New("bill not found")
	ErrInvalidBillID     = errors.New("invalid bill id")
	ErrInvalidBillAmount = errors.New("invalid bill amount")
	ErrBillNotUnpaid     = errors.New("bill is not unpaid")
	ErrOrderNotCompleted = errors.New("service order is not completed")
	ErrEmptyDisputeNote  = errors.New("dispute note is required")
)

// IBillUseCase exposes billing: creation after completion, payment, dispute.
//
// Billing requires the order to be COMPLETED. The paid amount is recorded at
// face value and not reconciled against the billed amount.
type IBillUseCase interface {
	Create(ctx context.Context, orderID string, amount float64, note string) (entities.Bill, error)
	Pay(ctx context.Context, billID string, amount float64) (entities.Bill, error)
	Dispute(ctx context.Context, billID, note string) (entities.Bill, error)
	GetByID(ctx context.Context, id string) (entities.Bill, error)
	ListAll(ctx context.Context) ([]entities.Bill, error)
}

type BillUseCase struct {
	repo      interfaces.IBillRepository
	orderRepo interfaces.IServiceOrderRepository
}

var _ IBillUseCase = (*BillUseCase)(nil)

func NewBillUseCase(repo interfaces.IBillRepository, orderRepo interfaces.IServiceOrderRepository) *BillUseCase {
	return &BillUseCase{repo: repo, orderRepo: orderRepo}
}

func (u *BillUseCase) Create(ctx context.Context, orderID string, amount float64, note string) (entities.Bill, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Bill{}, ErrInvalidOrderID
	}
	if amount <= 0 {
		return entities.Bill{}, ErrInvalidBillAmount
	}

	order, err := u.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return entities.Bill{}, err
	}
	if order.ID == "" {
		return entities.Bill{}, ErrOrderNotFound
	}
	if order.Status != entities.OrderStatusCompleted {
		return entities.Bill{}, ErrOrderNotCompleted
	}

	now := time.Now().UTC()
	b := entities.Bill{
		ID:        uuid.NewString(),
		OrderID:   order.ID,
		Amount:    amount,
		Status:    entities.BillStatusUnpaid,
		Note:      strings.TrimSpace(note),
		CreatedAt: now,
		DueDate:   now.Add(entities.PaymentTerm),
	}
	return u.repo.Create(ctx, b)
}

func (u *BillUseCase) Pay(ctx context.Context, billID string, amount float64) (entities.Bill, error) {
	billID = strings.TrimSpace(billID)
	if billID == "" {
		return entities.Bill{}, ErrInvalidBillID
	}
	if amount <= 0 {
		return entities.Bill{}, ErrInvalidBillAmount
	}

	if _, err := u.mustGetUnpaid(ctx, billID); err != nil {
		return entities.Bill{}, err
	}

	paid, err := u.repo.PayIfUnpaid(ctx, billID, time.Now().UTC())
	if err != nil {
		return entities.Bill{}, err
	}
	if paid.ID == "" {
		return entities.Bill{}, ErrBillNotUnpaid
	}
	return paid, nil
}

func (u *BillUseCase) Dispute(ctx context.Context, billID, note string) (entities.Bill, error) {
	billID = strings.TrimSpace(billID)
	note = strings.TrimSpace(note)
	if billID == "" {
		return entities.Bill{}, ErrInvalidBillID
	}
	if note == "" {
		return entities.Bill{}, ErrEmptyDisputeNote
	}

	if _, err := u.mustGetUnpaid(ctx, billID); err != nil {
		return entities.Bill{}, err
	}

	disputed, err := u.repo.DisputeIfUnpaid(ctx, billID, note)
	if err != nil {
		return entities.Bill{}, err
	}
	if disputed.ID == "" {
		return entities.Bill{}, ErrBillNotUnpaid
	}
	return disputed, nil
}

func (u *BillUseCase) mustGetUnpaid(ctx context.Context, billID string) (entities.Bill, error) {
	b, err := u.repo.GetByID(ctx, billID)
	if err != nil {
		return entities.Bill{}, err
	}
	if b.ID == "" {
		return entities.Bill{}, ErrBillNotFound
	}
	if b.Status != entities.BillStatusUnpaid {
		return entities.Bill{}, ErrBillNotUnpaid
	}
	return b, nil
}

func (u *BillUseCase) GetByID(ctx context.Context, id string) (entities.Bill, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Bill{}, ErrInvalidBillID
	}

	b, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Bill{}, err
	}
	if b.ID == "" {
		return entities.Bill{}, ErrBillNotFound
	}
	return b, nil
}

func (u *BillUseCase) ListAll(ctx context.Context) ([]entities.Bill, error) {
	return u.repo.ListAll(ctx)
}
