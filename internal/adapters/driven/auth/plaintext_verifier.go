package auth

import (
	"crypto/subtle"

	"github.com/custodia-labs/marks-cli/internal/core/domain"
	"github.com/custodia-labs/marks-cli/internal/core/ports/driven"
)

// Ensure PlaintextVerifier implements the interface.
var _ driven.SecretVerifier = (*PlaintextVerifier)(nil)

// PlaintextVerifier compares secrets byte for byte.
type PlaintextVerifier struct{}

// NewPlaintextVerifier creates a plaintext verifier.
func NewPlaintextVerifier() *PlaintextVerifier {
	return &PlaintextVerifier{}
}

// Scheme returns "plaintext".
func (v *PlaintextVerifier) Scheme() string {
	return domain.SecretSchemePlaintext.String()
}

// Verify returns domain.ErrAuthInvalid unless given equals stored.
func (v *PlaintextVerifier) Verify(stored, given string) error {
	if subtle.ConstantTimeCompare([]byte(stored), []byte(given)) != 1 {
		return domain.ErrAuthInvalid
	}
	return nil
}
