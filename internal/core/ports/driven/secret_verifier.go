package driven

// SecretVerifier compares a stored teacher secret with a login attempt.
type SecretVerifier interface {
	// Scheme names the verifier (e.g., "plaintext", "bcrypt").
	Scheme() string

	// Verify returns nil when given matches stored.
	Verify(stored, given string) error
}
