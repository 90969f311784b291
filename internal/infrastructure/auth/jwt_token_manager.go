package auth

import (
	"errors"
	"log"
	"os"
	"time"

	"home_cleaning/internal/domain/entities"
	"home_cleaning/internal/usecase/interfaces"

	"github.com/golang-jwt/jwt/v5"
)

const defaultTokenTTL = 24 * time.Hour

var (
	ErrMissingJWTSecret = errors.New("missing JWT_SECRET")
	ErrInvalidToken     = errors.New("invalid token")
)

type sessionClaims struct {
	Username   string `json:"username"`
	Role       string `json:"role"`
	CustomerID string `json:"customer_id,omitempty"`
	jwt.RegisteredClaims
}

// JWTTokenManager signs and verifies session tokens with HMAC-SHA256.
//
// Env vars:
//   - JWT_SECRET (required)
//   - JWT_TTL (optional, Go duration; default 24h)
type JWTTokenManager struct {
	secret []byte
	ttl    time.Duration
}

var _ interfaces.ITokenManager = (*JWTTokenManager)(nil)

func NewJWTTokenManagerFromEnv() (*JWTTokenManager, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, ErrMissingJWTSecret
	}

	ttl := defaultTokenTTL
	if raw := os.Getenv("JWT_TTL"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			log.Printf("[auth][jwt] invalid JWT_TTL=%q, using default", raw)
		} else {
			ttl = parsed
		}
	}
	return NewJWTTokenManager([]byte(secret), ttl), nil
}

func NewJWTTokenManager(secret []byte, ttl time.Duration) *JWTTokenManager {
	return &JWTTokenManager{secret: secret, ttl: ttl}
}

func (m *JWTTokenManager) Issue(claims interfaces.TokenClaims) (string, time.Time, error) {
	now := time.Now().UTC()
	expiresAt := now.Add(m.ttl)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		Username:   claims.Username,
		Role:       string(claims.Role),
		CustomerID: claims.CustomerID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   claims.CredentialID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	})
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

func (m *JWTTokenManager) Verify(tokenString string) (interfaces.TokenClaims, error) {
	var claims sessionClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return interfaces.TokenClaims{}, ErrInvalidToken
	}

	return interfaces.TokenClaims{
		CredentialID: claims.Subject,
		Username:     claims.Username,
		Role:         entities.Role(claims.Role),
		CustomerID:   claims.CustomerID,
	}, nil
}
