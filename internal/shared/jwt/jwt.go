package jwt

import (
	"context"
	"fmt"
	"time"
)

// Strategy defines which signing algorithm family to use.
type Strategy string

const (
	StrategyHMAC Strategy = "hmac"
)

// Options configures the token manager.
type Options struct {
	// Strategy selects the signing algorithm family.
	Strategy Strategy

	// Secret is the shared key for HMAC-based strategies.
	// Must be at least 32 bytes. Required when Strategy is StrategyHMAC.
	Secret []byte

	// Algorithm specifies the exact signing algorithm within the strategy.
	// HMAC: "HS256" (default), "HS384", "HS512".
	Algorithm string

	// Issuer sets the default "iss" claim on generated tokens.
	Issuer string

	// TTL is the token time-to-live. Determines the "exp" claim.
	// Zero means tokens do not expire (not recommended for production).
	TTL time.Duration
}

// Claims represents the standard JWT registered claims (RFC 7519 §4.1).
type Claims struct {
	// Subject identifies the principal (e.g., user ID).
	Subject string

	// Issuer identifies who issued the token.
	// Defaults to Options.Issuer if empty during signing.
	Issuer string

	// ExpiresAt is the expiration time.
	// Defaults to now + Options.TTL if zero during signing.
	ExpiresAt time.Time

	// IssuedAt is when the token was issued. Defaults to now during signing.
	IssuedAt time.Time

	// ID is a unique token identifier.
	ID string
}

// TokenManager signs and verifies tokens.
// Implementations must be safe for concurrent use.
type TokenManager interface {
	// Sign creates a signed token string from the claims.
	Sign(ctx context.Context, claims Claims) (string, error)

	// Verify validates the token string and returns its claims.
	Verify(ctx context.Context, token string) (*Claims, error)
}

// New creates a TokenManager based on the provided options.
func New(opts Options) (TokenManager, error) {
	switch opts.Strategy {
	case StrategyHMAC:
		return NewHMAC(opts)
	default:
		return nil, fmt.Errorf("jwt: unknown strategy %q", opts.Strategy)
	}
}
