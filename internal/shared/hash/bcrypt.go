package hash

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

var _ Hasher = (*bcryptHasher)(nil)

type bcryptHasher struct {
	cost int
}

// NewBcrypt creates a bcrypt-based Hasher.
func NewBcrypt(cost int) (Hasher, error) {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("hash: bcrypt cost %d out of range", cost)
	}
	return &bcryptHasher{cost: cost}, nil
}

func (h *bcryptHasher) Hash(_ context.Context, plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash: failed to hash secret: %w", err)
	}
	return string(hashed), nil
}

func (h *bcryptHasher) Compare(_ context.Context, hashed, plaintext string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plaintext))
}
