// Package token mints and verifies the signed download tokens that gate
// file delivery. A token is a self-contained HS256 JWT binding one model to
// one paid transaction; it expires 24 hours after issuance and carries the
// download count as of issuance time.
package token

import (
	"errors"
	"fmt"
	"time"

	"antique-models-store/internal/apperr"
	"antique-models-store/internal/validate"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
)

// Payload is the application claim set supplied by the fulfillment step.
type Payload struct {
	ModelID       string
	PurchaseID    string // stripe payment intent id
	CustomerEmail string
	DownloadCount int32
}

// Claims is the full signed claim set. ExpiresAtUnix duplicates the
// registered exp claim so delivery can enforce expiry independently of the
// signing library.
type Claims struct {
	jwt.RegisteredClaims
	ModelID       string `json:"modelId" validate:"required,slug"`
	PurchaseID    string `json:"purchaseId" validate:"required,startswith=pi_"`
	CustomerEmail string `json:"customerEmail" validate:"required,email"`
	DownloadCount int32  `json:"downloadCount" validate:"gte=0,lte=10"`
	ExpiresAtUnix int64  `json:"expiresAt" validate:"required,gt=0"`
}

type Issuer struct {
	secret   []byte
	ttl      time.Duration
	validate *validator.Validate

	now func() time.Time
}

func NewIssuer(secret string, ttl time.Duration) *Issuer {
	return &Issuer{
		secret:   []byte(secret),
		ttl:      ttl,
		validate: validate.New(),
		now:      time.Now,
	}
}

// Issue signs the payload with a fresh iat/exp pair. A payload that fails
// schema validation means upstream verification is broken, so it surfaces
// as apperr.ErrInvariant rather than a user error.
func (i *Issuer) Issue(p Payload) (string, error) {
	now := i.now()
	expiresAt := now.Add(i.ttl)

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		ModelID:       p.ModelID,
		PurchaseID:    p.PurchaseID,
		CustomerEmail: p.CustomerEmail,
		DownloadCount: p.DownloadCount,
		ExpiresAtUnix: expiresAt.Unix(),
	}

	if err := i.validate.Struct(&claims); err != nil {
		return "", fmt.Errorf("%w: token payload: %v", apperr.ErrInvariant, err)
	}

	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("sign download token: %w", err)
	}

	return tokenString, nil
}

// Verify parses and validates a bearer token. Expired tokens map to
// apperr.ErrTokenExpired, everything else that fails signature or schema
// checks to apperr.ErrInvalidToken.
func (i *Issuer) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}

	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return i.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperr.ErrTokenExpired
		}
		return nil, apperr.ErrInvalidToken
	}
	if !parsed.Valid {
		return nil, apperr.ErrInvalidToken
	}

	if err := i.validate.Struct(claims); err != nil {
		return nil, apperr.ErrInvalidToken
	}

	return claims, nil
}

// TTL returns the validity window tokens are issued with.
func (i *Issuer) TTL() time.Duration {
	return i.ttl
}

// Expired reports whether the claim-level expiry has passed. Checked at
// delivery time in addition to the library's own exp enforcement.
func (i *Issuer) Expired(c *Claims) bool {
	return i.now().Unix() > c.ExpiresAtUnix
}
