package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"home_cleaning/internal/domain/entities"
	"home_cleaning/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrQuoteNotFound       = errors.New("quote not found")
	ErrInvalidQuoteID      = errors.New("invalid quote id")
	ErrInvalidQuotePrice   = errors.New("invalid quote price")
	ErrInvalidQuoteWindow  = errors.New("invalid quote time window")
	ErrQuoteNotPending     = errors.New("quote is not pending")
	ErrQuoteAcceptConflict = errors.New("quote accepted concurrently")
)

// IssueQuoteInput carries a new quote offered against a service request.
type IssueQuoteInput struct {
	RequestID       string
	Price           float64
	TimeWindowStart time.Time
	TimeWindowEnd   time.Time
	Note            string
}

// IQuoteUseCase drives the quote state machine.
//
// PENDING is the only state a quote can leave. Renegotiation closes the
// record as RENEGOTIATING; the business answers with a fresh Issue for the
// same request rather than reopening the old quote, so pricing history is
// never rewritten. A RENEGOTIATING quote can not be accepted directly — the
// customer waits for the counter-offer.
type IQuoteUseCase interface {
	Issue(ctx context.Context, in IssueQuoteInput) (entities.Quote, error)
	Renegotiate(ctx context.Context, quoteID, clientNote string) (entities.Quote, error)
	Accept(ctx context.Context, quoteID string) (entities.ServiceOrder, error)
	Reject(ctx context.Context, quoteID string) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	ListByRequest(ctx context.Context, requestID string) ([]entities.Quote, error)
	ListByCustomer(ctx context.Context, customerID string) ([]entities.Quote, error)
	ListAll(ctx context.Context) ([]entities.Quote, error)
}

type QuoteUseCase struct {
	repo        interfaces.IQuoteRepository
	requestRepo interfaces.IServiceRequestRepository
	acceptTx    interfaces.IQuoteAcceptanceTx
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IQuoteRepository, requestRepo interfaces.IServiceRequestRepository, acceptTx interfaces.IQuoteAcceptanceTx) *QuoteUseCase {
	return &QuoteUseCase{repo: repo, requestRepo: requestRepo, acceptTx: acceptTx}
}

func (u *QuoteUseCase) Issue(ctx context.Context, in IssueQuoteInput) (entities.Quote, error) {
	in.RequestID = strings.TrimSpace(in.RequestID)
	if in.RequestID == "" {
		return entities.Quote{}, ErrInvalidRequestID
	}
	if in.Price <= 0 {
		return entities.Quote{}, ErrInvalidQuotePrice
	}
	if !in.TimeWindowEnd.IsZero() && in.TimeWindowEnd.Before(in.TimeWindowStart) {
		return entities.Quote{}, ErrInvalidQuoteWindow
	}

	req, err := u.requestRepo.GetByID(ctx, in.RequestID)
	if err != nil {
		return entities.Quote{}, err
	}
	if req.ID == "" {
		return entities.Quote{}, ErrRequestNotFound
	}

	now := time.Now().UTC()
	q := entities.Quote{
		ID:              uuid.NewString(),
		RequestID:       req.ID,
		CustomerID:      req.CustomerID,
		Price:           in.Price,
		TimeWindowStart: in.TimeWindowStart,
		TimeWindowEnd:   in.TimeWindowEnd,
		Note:            strings.TrimSpace(in.Note),
		Status:          entities.QuoteStatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	return u.repo.Create(ctx, q)
}

func (u *QuoteUseCase) Renegotiate(ctx context.Context, quoteID, clientNote string) (entities.Quote, error) {
	return u.transitionFromPending(ctx, quoteID, entities.QuoteStatusRenegotiating, strings.TrimSpace(clientNote))
}

func (u *QuoteUseCase) Reject(ctx context.Context, quoteID string) (entities.Quote, error) {
	return u.transitionFromPending(ctx, quoteID, entities.QuoteStatusRejected, "")
}

func (u *QuoteUseCase) transitionFromPending(ctx context.Context, quoteID string, status entities.QuoteStatus, clientNote string) (entities.Quote, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	q, err := u.repo.GetByID(ctx, quoteID)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	if q.Status != entities.QuoteStatusPending {
		return entities.Quote{}, ErrQuoteNotPending
	}

	updated, err := u.repo.UpdateStatusIfPending(ctx, quoteID, status, clientNote)
	if err != nil {
		return entities.Quote{}, err
	}
	if updated.ID == "" {
		// Lost the race against another transition after the read above.
		return entities.Quote{}, ErrQuoteNotPending
	}
	return updated, nil
}

// Accept flips the quote to ACCEPTED and creates its service order in one
// atomic transaction. The PENDING condition inside the transaction guarantees
// at most one order per quote even under concurrent duplicate accepts.
func (u *QuoteUseCase) Accept(ctx context.Context, quoteID string) (entities.ServiceOrder, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.ServiceOrder{}, ErrInvalidQuoteID
	}

	q, err := u.repo.GetByID(ctx, quoteID)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if q.ID == "" {
		return entities.ServiceOrder{}, ErrQuoteNotFound
	}
	if q.Status != entities.QuoteStatusPending {
		return entities.ServiceOrder{}, ErrQuoteNotPending
	}

	order := entities.ServiceOrder{
		ID:         uuid.NewString(),
		RequestID:  q.RequestID,
		CustomerID: q.CustomerID,
		Status:     entities.OrderStatusAccepted,
		CreatedAt:  time.Now().UTC(),
	}
	created, err := u.acceptTx.AcceptQuote(ctx, quoteID, order)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if created.ID == "" {
		// The quote was PENDING moments ago, so the condition can only have
		// failed because a concurrent call transitioned it first.
		log.Printf("[quote][usecase] accept lost race quote_id=%s", quoteID)
		return entities.ServiceOrder{}, ErrQuoteAcceptConflict
	}
	log.Printf("[quote][usecase] accepted quote_id=%s order_id=%s", quoteID, created.ID)
	return created, nil
}

func (u *QuoteUseCase) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *QuoteUseCase) ListByRequest(ctx context.Context, requestID string) ([]entities.Quote, error) {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return nil, ErrInvalidRequestID
	}
	return u.repo.ListByRequestID(ctx, requestID)
}

func (u *QuoteUseCase) ListByCustomer(ctx context.Context, customerID string) ([]entities.Quote, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return nil, ErrInvalidCustomerID
	}
	return u.repo.ListByCustomerID(ctx, customerID)
}

func (u *QuoteUseCase) ListAll(ctx context.Context) ([]entities.Quote, error) {
	return u.repo.ListAll(ctx)
}
