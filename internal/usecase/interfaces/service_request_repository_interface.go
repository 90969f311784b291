package interfaces

import (
	"context"

	"home_cleaning/internal/domain/entities"
)

// IServiceRequestRepository abstracts DynamoDB persistence for ServiceRequest.
//
// AppendPhoto must be a single conditional update so concurrent appends never
// drop entries; it returns the zero value when the request does not exist.
type IServiceRequestRepository interface {
	Create(ctx context.Context, r entities.ServiceRequest) (entities.ServiceRequest, error)
	GetByID(ctx context.Context, id string) (entities.ServiceRequest, error)
	AppendPhoto(ctx context.Context, id, photoURL string) (entities.ServiceRequest, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]entities.ServiceRequest, error)
	ListAll(ctx context.Context) ([]entities.ServiceRequest, error)
}
