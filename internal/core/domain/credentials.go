package domain

import "sort"

// Credential is a teacher login entry.
// Secret holds whatever the configured verifier expects: the plaintext
// password for the built-in table, or a hash once the table is hashed.
type Credential struct {
	// Username is the login name and the table key.
	Username string

	// Secret is the stored password or password hash.
	Secret string

	// Subject is the only subject this teacher may edit.
	Subject string
}

// CredentialTable maps usernames to credentials.
type CredentialTable map[string]Credential

// Lookup returns the credential for username.
func (t CredentialTable) Lookup(username string) (Credential, bool) {
	c, ok := t[username]
	return c, ok
}

// Usernames returns the table's usernames in sorted order.
func (t CredentialTable) Usernames() []string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultCredentials returns the built-in teacher table.
//
//nolint:gosec // G101: fixed demo credentials, compared by the plaintext verifier.
func DefaultCredentials() CredentialTable {
	return CredentialTable{
		"math_teacher":      {Username: "math_teacher", Secret: "math123", Subject: "math"},
		"physics_teacher":   {Username: "physics_teacher", Secret: "physics123", Subject: "physics"},
		"chemistry_teacher": {Username: "chemistry_teacher", Secret: "chemistry123", Subject: "chemistry"},
	}
}
