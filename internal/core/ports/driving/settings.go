package driving

import "github.com/ivergara/skym/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// SetEngine updates the fuzzy engine.
	SetEngine(engine domain.Engine) error

	// SetLimit updates the default result limit.
	SetLimit(limit int) error

	// SetWorkers updates the number of ranking workers.
	SetWorkers(workers int) error

	// SetPrompt updates the picker prompt.
	SetPrompt(prompt string) error

	// Validate checks if current settings are usable.
	Validate() error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings
}
