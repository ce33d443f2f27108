package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/marks-cli/internal/adapters/driven/auth"
	"github.com/custodia-labs/marks-cli/internal/core/domain"
)

func newAuthService() *AuthService {
	return NewAuthService(domain.DefaultCredentials(), auth.NewPlaintextVerifier())
}

func TestAuthService_Login_Success(t *testing.T) {
	tests := []struct {
		username string
		password string
		subject  string
	}{
		{"math_teacher", "math123", "math"},
		{"physics_teacher", "physics123", "physics"},
		{"chemistry_teacher", "chemistry123", "chemistry"},
	}

	for _, tt := range tests {
		t.Run(tt.username, func(t *testing.T) {
			svc := newAuthService()
			now := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
			svc.now = fixedClock(now)
			sess := domain.NewSession("s", domain.NewDocument(now))

			subject, err := svc.Login(context.Background(), sess, tt.username, tt.password)

			require.NoError(t, err)
			assert.Equal(t, tt.subject, subject)
			require.True(t, sess.LoggedIn())
			assert.Equal(t, tt.username, sess.Teacher.Username)
			assert.Equal(t, tt.subject, sess.Teacher.Subject)
			assert.Equal(t, now, sess.Teacher.Since)
		})
	}
}

func TestAuthService_Login_Failure(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
	}{
		{"wrong password", "math_teacher", "wrong"},
		{"unknown user", "biology_teacher", "biology123"},
		{"password of another teacher", "math_teacher", "physics123"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newAuthService()
			sess := domain.NewSession("s", domain.NewDocument(time.Now()))

			subject, err := svc.Login(context.Background(), sess, tt.username, tt.password)

			assert.ErrorIs(t, err, domain.ErrAuthInvalid)
			assert.Empty(t, subject)
			assert.False(t, sess.LoggedIn())
		})
	}
}

func TestAuthService_Login_Bcrypt(t *testing.T) {
	table := domain.CredentialTable{
		"math_teacher": {Username: "math_teacher", Secret: "math123", Subject: "math"},
	}
	verifier, hashed, err := auth.NewVerifier(domain.SecretSchemeBcrypt, table)
	require.NoError(t, err)
	svc := NewAuthService(hashed, verifier)
	sess := domain.NewSession("s", domain.NewDocument(time.Now()))

	_, err = svc.Login(context.Background(), sess, "math_teacher", "nope")
	assert.ErrorIs(t, err, domain.ErrAuthInvalid)

	subject, err := svc.Login(context.Background(), sess, "math_teacher", "math123")
	require.NoError(t, err)
	assert.Equal(t, "math", subject)
}

func TestAuthService_Logout(t *testing.T) {
	svc := newAuthService()
	sess := domain.NewSession("s", domain.NewDocument(time.Now()))

	// Logging out with no teacher is a no-op
	svc.Logout(context.Background(), sess)
	assert.False(t, sess.LoggedIn())

	_, err := svc.Login(context.Background(), sess, "math_teacher", "math123")
	require.NoError(t, err)

	svc.Logout(context.Background(), sess)
	assert.False(t, sess.LoggedIn())
}
