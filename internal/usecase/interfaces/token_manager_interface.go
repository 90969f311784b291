package interfaces

import (
	"time"

	"home_cleaning/internal/domain/entities"
)

// TokenClaims is the resolved identity carried by an issued token.
type TokenClaims struct {
	CredentialID string
	Username     string
	Role         entities.Role
	CustomerID   string
}

// ITokenManager abstracts session token issuance and verification (JWT).
//
// The core trusts verified claims and never re-checks credentials.
type ITokenManager interface {
	Issue(claims TokenClaims) (token string, expiresAt time.Time, err error)
	Verify(token string) (TokenClaims, error)
}
