package driving

import "github.com/custodia-labs/marks-cli/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// SetDatabasePath updates where the document is stored.
	SetDatabasePath(path string) error

	// SetAuthScheme updates the secret verification scheme.
	SetAuthScheme(scheme domain.SecretScheme) error

	// ConfigPath returns the configuration file location.
	ConfigPath() string
}
