package interfaces

import (
	"context"

	"home_cleaning/internal/domain/entities"
)

// IQuoteAcceptanceTx is the cross-table write behind quote acceptance.
//
// AcceptQuote flips the quote to ACCEPTED (only if still PENDING) and creates
// the service order in one atomic transaction: either both writes land or
// neither is visible. When the status condition fails — the quote moved to a
// terminal state or a concurrent accept won — it returns the zero-value order
// and a nil error; no order is created.
type IQuoteAcceptanceTx interface {
	AcceptQuote(ctx context.Context, quoteID string, order entities.ServiceOrder) (entities.ServiceOrder, error)
}
