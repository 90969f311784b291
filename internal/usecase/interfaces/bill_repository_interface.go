package interfaces

import (
	"context"
	"time"

	"home_cleaning/internal/domain/entities"
)

// IBillRepository abstracts DynamoDB persistence for Bill.
//
// PayIfUnpaid and DisputeIfUnpaid are conditional updates legal from UNPAID
// only; both return the zero value when the bill is missing or no longer
// unpaid.
type IBillRepository interface {
	Create(ctx context.Context, b entities.Bill) (entities.Bill, error)
	GetByID(ctx context.Context, id string) (entities.Bill, error)
	PayIfUnpaid(ctx context.Context, id string, paidAt time.Time) (entities.Bill, error)
	DisputeIfUnpaid(ctx context.Context, id, note string) (entities.Bill, error)
	ListAll(ctx context.Context) ([]entities.Bill, error)
}
