// Package apperr defines the sentinel errors shared across the store's
// services and handlers. Callers should use errors.Is to match these values.
package apperr

import "errors"

var (
	// Boundary / input errors.
	ErrInvalidRequest = errors.New("invalid request")
	ErrNotFound       = errors.New("not found")

	// Credential errors.
	ErrUnauthenticated  = errors.New("missing credential")
	ErrInvalidSignature = errors.New("invalid signature")

	// Download-token lifecycle errors.
	ErrInvalidToken  = errors.New("invalid token")
	ErrTokenExpired  = errors.New("token expired")
	ErrLimitExceeded = errors.New("download limit exceeded")
	ErrModelMismatch = errors.New("model mismatch")

	// Payment-processor call failed.
	ErrUpstream = errors.New("upstream error")

	// Internal schema violation, should be unreachable when upstream
	// validated correctly.
	ErrInvariant = errors.New("invariant violation")
)
