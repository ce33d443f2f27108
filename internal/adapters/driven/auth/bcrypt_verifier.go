package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/custodia-labs/marks-cli/internal/core/domain"
	"github.com/custodia-labs/marks-cli/internal/core/ports/driven"
)

// Ensure BcryptVerifier implements the interface.
var _ driven.SecretVerifier = (*BcryptVerifier)(nil)

// BcryptVerifier checks secrets against bcrypt hashes.
type BcryptVerifier struct {
	cost int
}

// NewBcryptVerifier creates a bcrypt verifier hashing at cost.
// A cost of zero selects bcrypt.DefaultCost.
func NewBcryptVerifier(cost int) *BcryptVerifier {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &BcryptVerifier{cost: cost}
}

// Scheme returns "bcrypt".
func (v *BcryptVerifier) Scheme() string {
	return domain.SecretSchemeBcrypt.String()
}

// Verify compares given with the stored hash.
func (v *BcryptVerifier) Verify(stored, given string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(given)); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrAuthInvalid, err)
	}
	return nil
}

// Hash returns the bcrypt hash of secret.
func (v *BcryptVerifier) Hash(secret string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), v.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
