package auth

import (
	"fmt"

	"github.com/custodia-labs/marks-cli/internal/core/domain"
	"github.com/custodia-labs/marks-cli/internal/core/ports/driven"
)

// NewVerifier returns the verifier for scheme and the credential table it
// expects. Plaintext tables are hashed when the bcrypt scheme is chosen.
func NewVerifier(
	scheme domain.SecretScheme, table domain.CredentialTable,
) (driven.SecretVerifier, domain.CredentialTable, error) {
	switch scheme {
	case domain.SecretSchemePlaintext, "":
		return NewPlaintextVerifier(), table, nil
	case domain.SecretSchemeBcrypt:
		v := NewBcryptVerifier(0)
		hashed, err := HashCredentials(table, v)
		if err != nil {
			return nil, nil, err
		}
		return v, hashed, nil
	default:
		return nil, nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedScheme, scheme)
	}
}

// HashCredentials returns a copy of table with every secret bcrypt-hashed.
func HashCredentials(table domain.CredentialTable, v *BcryptVerifier) (domain.CredentialTable, error) {
	hashed := make(domain.CredentialTable, len(table))
	for username, cred := range table {
		hash, err := v.Hash(cred.Secret)
		if err != nil {
			return nil, fmt.Errorf("hash secret for %s: %w", username, err)
		}
		cred.Secret = hash
		hashed[username] = cred
	}
	return hashed, nil
}
