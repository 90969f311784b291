package interfaces

import (
	"context"

	"home_cleaning/internal/domain/entities"
)

// IQuoteRepository abstracts DynamoDB persistence for Quote.
//
// UpdateStatusIfPending is the compare-and-swap primitive behind the quote
// state machine: it transitions the quote only when its current status is
// still PENDING and returns the zero value when the condition fails, so a
// plain read-then-write can never regress a terminal quote.
type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	UpdateStatusIfPending(ctx context.Context, id string, status entities.QuoteStatus, clientNote string) (entities.Quote, error)
	ListByRequestID(ctx context.Context, requestID string) ([]entities.Quote, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]entities.Quote, error)
	ListAll(ctx context.Context) ([]entities.Quote, error)
}
