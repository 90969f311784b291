package interfaces

import (
	"context"

	"home_cleaning/internal/domain/entities"
)

// ICustomerRepository abstracts DynamoDB persistence for Customer.
//
// Lookups return the zero value when nothing matches; the use case layer maps
// that to its not-found sentinel.
type ICustomerRepository interface {
	Create(ctx context.Context, c entities.Customer) (entities.Customer, error)
	GetByID(ctx context.Context, id string) (entities.Customer, error)
	GetByEmail(ctx context.Context, email string) (entities.Customer, error)
	ListAll(ctx context.Context) ([]entities.Customer, error)
}
