package interfaces

import (
	"context"
	"time"

	"home_cleaning/internal/domain/entities"
)

// IServiceOrderRepository abstracts DynamoDB persistence for ServiceOrder.
//
// Orders are only ever created through IQuoteAcceptanceTx, so there is no
// Create here. CompleteIfAccepted transitions ACCEPTED -> COMPLETED with a
// conditional update and returns the zero value when the order is missing or
// already completed.
type IServiceOrderRepository interface {
	GetByID(ctx context.Context, id string) (entities.ServiceOrder, error)
	CompleteIfAccepted(ctx context.Context, id string, completedAt time.Time) (entities.ServiceOrder, error)
	ListAll(ctx context.Context) ([]entities.ServiceOrder, error)
}
