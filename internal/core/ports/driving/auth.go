package driving

import (
	"context"

	"github.com/custodia-labs/marks-cli/internal/core/domain"
)

// AuthService authenticates teachers against the credential table.
type AuthService interface {
	// Login verifies the username/secret pair and, on success, records the
	// teacher on the session and returns the teacher's subject.
	// Returns domain.ErrAuthInvalid on mismatch; the session is left untouched.
	Login(ctx context.Context, sess *domain.Session, username, secret string) (string, error)

	// Logout ends the teacher session.
	Logout(ctx context.Context, sess *domain.Session)
}
