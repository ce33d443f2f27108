package services

import (
	"context"
	"time"

	"github.com/custodia-labs/marks-cli/internal/core/domain"
	"github.com/custodia-labs/marks-cli/internal/core/ports/driven"
	"github.com/custodia-labs/marks-cli/internal/core/ports/driving"
	"github.com/custodia-labs/marks-cli/internal/logger"
)

// Ensure AuthService implements the interface.
var _ driving.AuthService = (*AuthService)(nil)

// AuthService authenticates teachers against an injected credential table.
type AuthService struct {
	table    domain.CredentialTable
	verifier driven.SecretVerifier
	now      func() time.Time
}

// NewAuthService creates a new auth service.
func NewAuthService(table domain.CredentialTable, verifier driven.SecretVerifier) *AuthService {
	return &AuthService{
		table:    table,
		verifier: verifier,
		now:      time.Now,
	}
}

// Login verifies the username/secret pair and records the teacher on sess.
func (s *AuthService) Login(_ context.Context, sess *domain.Session, username, secret string) (string, error) {
	cred, ok := s.table.Lookup(username)
	if !ok {
		logger.Debug("Login rejected: unknown user %q", username)
		return "", domain.ErrAuthInvalid
	}
	if err := s.verifier.Verify(cred.Secret, secret); err != nil {
		logger.Debug("Login rejected for %q (%s): %v", username, s.verifier.Scheme(), err)
		return "", domain.ErrAuthInvalid
	}

	sess.Teacher = &domain.TeacherSession{
		Username: cred.Username,
		Subject:  cred.Subject,
		Since:    s.now(),
	}
	logger.Info("Session %s: %s logged in (%s)", sess.ID, cred.Username, cred.Subject)
	return cred.Subject, nil
}

// Logout ends the teacher session.
func (s *AuthService) Logout(_ context.Context, sess *domain.Session) {
	if !sess.LoggedIn() {
		return
	}
	logger.Info("Session %s: %s logged out", sess.ID, sess.Teacher.Username)
	sess.Logout()
}
