package services

import (
	"fmt"

	"github.com/ivergara/skym/internal/core/domain"
	"github.com/ivergara/skym/internal/core/ports/driven"
	"github.com/ivergara/skym/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyMatchEngine  = "match.engine"
	keyMatchLimit   = "match.limit"
	keyMatchWorkers = "match.workers"
	keyUIPrompt     = "ui.prompt"
	keyUIAltScreen  = "ui.alt_screen"
)

// maxWorkers bounds the ranking worker count.
const maxWorkers = 256

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
// Missing or invalid values fall back to defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Match: domain.MatchSettings{
			Engine:  s.getEngine(defaults.Match.Engine),
			Limit:   s.getNonNegative(keyMatchLimit, defaults.Match.Limit),
			Workers: s.getWorkers(defaults.Match.Workers),
		},
		UI: domain.UISettings{
			Prompt:    s.getString(keyUIPrompt, defaults.UI.Prompt),
			AltScreen: s.getBool(keyUIAltScreen, defaults.UI.AltScreen),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := s.configStore.Set(keyMatchEngine, settings.Match.Engine.String()); err != nil {
		return fmt.Errorf("save match engine: %w", err)
	}
	if err := s.configStore.Set(keyMatchLimit, settings.Match.Limit); err != nil {
		return fmt.Errorf("save match limit: %w", err)
	}
	if err := s.configStore.Set(keyMatchWorkers, settings.Match.Workers); err != nil {
		return fmt.Errorf("save match workers: %w", err)
	}
	if err := s.configStore.Set(keyUIPrompt, settings.UI.Prompt); err != nil {
		return fmt.Errorf("save ui prompt: %w", err)
	}
	if err := s.configStore.Set(keyUIAltScreen, settings.UI.AltScreen); err != nil {
		return fmt.Errorf("save ui alt_screen: %w", err)
	}

	return nil
}

// SetEngine updates the fuzzy engine.
func (s *SettingsService) SetEngine(engine domain.Engine) error {
	if !engine.IsValid() {
		return fmt.Errorf("%w: %s", domain.ErrUnsupportedEngine, engine)
	}
	return s.update(func(settings *domain.AppSettings) {
		settings.Match.Engine = engine
	})
}

// SetLimit updates the default result limit. Zero means no limit.
func (s *SettingsService) SetLimit(limit int) error {
	if limit < 0 {
		return fmt.Errorf("%w: limit must not be negative", domain.ErrInvalidInput)
	}
	return s.update(func(settings *domain.AppSettings) {
		settings.Match.Limit = limit
	})
}

// SetWorkers updates the number of ranking workers.
func (s *SettingsService) SetWorkers(workers int) error {
	if workers < 1 || workers > maxWorkers {
		return fmt.Errorf("%w: workers must be between 1 and %d", domain.ErrInvalidInput, maxWorkers)
	}
	return s.update(func(settings *domain.AppSettings) {
		settings.Match.Workers = workers
	})
}

// SetPrompt updates the picker prompt.
func (s *SettingsService) SetPrompt(prompt string) error {
	if prompt == "" {
		return fmt.Errorf("%w: prompt must not be empty", domain.ErrInvalidInput)
	}
	return s.update(func(settings *domain.AppSettings) {
		settings.UI.Prompt = prompt
	})
}

// Validate checks the raw stored values, including ones Get would
// silently replace with defaults.
func (s *SettingsService) Validate() error {
	if val := s.configStore.GetString(keyMatchEngine); val != "" {
		if engine := domain.Engine(val); !engine.IsValid() {
			return fmt.Errorf("%w: %s", domain.ErrUnsupportedEngine, val)
		}
	}
	if s.configStore.GetInt(keyMatchLimit) < 0 {
		return fmt.Errorf("%w: %s must not be negative", domain.ErrInvalidInput, keyMatchLimit)
	}
	if _, exists := s.configStore.Get(keyMatchWorkers); exists {
		if w := s.configStore.GetInt(keyMatchWorkers); w < 1 || w > maxWorkers {
			return fmt.Errorf("%w: %s must be between 1 and %d", domain.ErrInvalidInput, keyMatchWorkers, maxWorkers)
		}
	}
	return nil
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

func (s *SettingsService) update(apply func(*domain.AppSettings)) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}
	apply(settings)
	return s.Save(settings)
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getNonNegative(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val < 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getWorkers(defaultVal int) int {
	val := s.configStore.GetInt(keyMatchWorkers)
	if val < 1 || val > maxWorkers {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

func (s *SettingsService) getEngine(defaultVal domain.Engine) domain.Engine {
	val := s.configStore.GetString(keyMatchEngine)
	if val == "" {
		return defaultVal
	}
	engine := domain.Engine(val)
	if !engine.IsValid() {
		return defaultVal
	}
	return engine
}
