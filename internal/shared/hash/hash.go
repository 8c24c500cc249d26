package hash

import (
	"context"
	"fmt"
)

// Strategy defines which hashing algorithm to use.
type Strategy string

const (
	StrategyBcrypt Strategy = "bcrypt"
)

// Options configures the hasher.
type Options struct {
	// Strategy selects the hashing algorithm.
	Strategy Strategy

	// Cost is the work factor (bcrypt only). Zero uses the library default.
	Cost int
}

// Hasher hashes and compares secrets.
// Implementations must be safe for concurrent use.
type Hasher interface {
	// Hash returns the hashed form of the plaintext.
	Hash(ctx context.Context, plaintext string) (string, error)

	// Compare returns nil if the plaintext matches the hash.
	Compare(ctx context.Context, hashed, plaintext string) error
}

// New creates a Hasher based on the provided options.
func New(opts Options) (Hasher, error) {
	switch opts.Strategy {
	case StrategyBcrypt:
		return NewBcrypt(opts.Cost)
	default:
		return nil, fmt.Errorf("hash: unknown strategy %q", opts.Strategy)
	}
}
