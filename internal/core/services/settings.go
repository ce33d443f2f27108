package services

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/marks-cli/internal/core/domain"
	"github.com/custodia-labs/marks-cli/internal/core/ports/driven"
	"github.com/custodia-labs/marks-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyDatabasePath = "database.path"
	keyAuthScheme   = "auth.scheme"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	return &domain.AppSettings{
		Database: domain.DatabaseSettings{
			Path: s.getString(keyDatabasePath, defaults.Database.Path),
		},
		Auth: domain.AuthSettings{
			Scheme: s.getScheme(defaults.Auth.Scheme),
		},
	}, nil
}

// SetDatabasePath updates where the document is stored.
func (s *SettingsService) SetDatabasePath(path string) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return fmt.Errorf("database path: %w", domain.ErrInvalidInput)
	}
	if err := s.configStore.Set(keyDatabasePath, path); err != nil {
		return fmt.Errorf("save database path: %w", err)
	}
	return nil
}

// SetAuthScheme updates the secret verification scheme.
func (s *SettingsService) SetAuthScheme(scheme domain.SecretScheme) error {
	if !scheme.IsValid() {
		return fmt.Errorf("%w: %s", domain.ErrUnsupportedScheme, scheme)
	}
	if err := s.configStore.Set(keyAuthScheme, scheme.String()); err != nil {
		return fmt.Errorf("save auth scheme: %w", err)
	}
	return nil
}

// ConfigPath returns the configuration file location.
func (s *SettingsService) ConfigPath() string {
	return s.configStore.Path()
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getScheme(defaultVal domain.SecretScheme) domain.SecretScheme {
	val := s.configStore.GetString(keyAuthScheme)
	if val == "" {
		return defaultVal
	}
	scheme := domain.SecretScheme(val)
	if !scheme.IsValid() {
		return defaultVal
	}
	return scheme
}
