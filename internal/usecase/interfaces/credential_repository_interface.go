package interfaces

import (
	"context"

	"home_cleaning/internal/domain/entities"
)

// ICredentialRepository abstracts DynamoDB persistence for Credential.
type ICredentialRepository interface {
	Create(ctx context.Context, c entities.Credential) (entities.Credential, error)
	GetByUsername(ctx context.Context, username string) (entities.Credential, error)
}
