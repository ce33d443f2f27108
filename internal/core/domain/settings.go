package domain

const unknownDescription = "Unknown"

// DefaultDatabaseFile is the document path used when none is configured.
const DefaultDatabaseFile = "database.json"

// SecretScheme defines how stored teacher secrets are compared.
type SecretScheme string

// Available secret schemes.
const (
	// SecretSchemePlaintext compares secrets verbatim.
	SecretSchemePlaintext SecretScheme = "plaintext"

	// SecretSchemeBcrypt stores bcrypt hashes of the secrets.
	SecretSchemeBcrypt SecretScheme = "bcrypt"
)

// IsValid returns true if the scheme is recognised.
func (s SecretScheme) IsValid() bool {
	switch s {
	case SecretSchemePlaintext, SecretSchemeBcrypt:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (s SecretScheme) String() string {
	return string(s)
}

// Description returns a human-readable description of the scheme.
func (s SecretScheme) Description() string {
	switch s {
	case SecretSchemePlaintext:
		return "Plaintext (built-in table)"
	case SecretSchemeBcrypt:
		return "Bcrypt (hashed at startup)"
	default:
		return unknownDescription
	}
}

// AllSecretSchemes returns all available schemes.
func AllSecretSchemes() []SecretScheme {
	return []SecretScheme{SecretSchemePlaintext, SecretSchemeBcrypt}
}

// AppSettings holds all application configuration.
type AppSettings struct {
	Database DatabaseSettings
	Auth     AuthSettings
}

// DatabaseSettings configures where the document lives.
type DatabaseSettings struct {
	// Path is the JSON document location.
	Path string
}

// AuthSettings configures teacher authentication.
type AuthSettings struct {
	// Scheme selects the secret verifier.
	Scheme SecretScheme
}

// DefaultAppSettings returns sensible defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Database: DatabaseSettings{Path: DefaultDatabaseFile},
		Auth:     AuthSettings{Scheme: SecretSchemePlaintext},
	}
}
