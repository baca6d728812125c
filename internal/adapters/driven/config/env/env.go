package env

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"

	"github.com/ivergara/skym/internal/core/ports/driven"
)

// Prefix is prepended to every variable name.
const Prefix = "SKYM"

// Config holds the environment overrides. Nil fields are unset.
// Variable names are derived from field names, so only the prefixed form
// (SKYM_LIMIT, never LIMIT) is consulted.
type Config struct {
	// Engine overrides match.engine.
	Engine *string

	// Limit overrides match.limit.
	Limit *int

	// Workers overrides match.workers.
	Workers *int

	// Prompt overrides ui.prompt.
	Prompt *string

	// AltScreen overrides ui.alt_screen.
	AltScreen *bool `split_words:"true"`

	// Verbose enables verbose logging.
	Verbose bool `default:"false"`

	// Config replaces the default config file location.
	Config string
}

// Load reads the SKYM_* variables.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("read %s_* environment: %w", Prefix, err)
	}
	return cfg, nil
}

// Overrides returns the set variables as config store keys.
func (c Config) Overrides() map[string]any {
	out := make(map[string]any)
	if c.Engine != nil {
		out["match.engine"] = *c.Engine
	}
	if c.Limit != nil {
		out["match.limit"] = *c.Limit
	}
	if c.Workers != nil {
		out["match.workers"] = *c.Workers
	}
	if c.Prompt != nil {
		out["ui.prompt"] = *c.Prompt
	}
	if c.AltScreen != nil {
		out["ui.alt_screen"] = *c.AltScreen
	}
	return out
}

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// ConfigStore reads environment overrides first and falls back to base.
// Writes go to base; a key set in the environment keeps reading the
// environment value for the life of the process.
type ConfigStore struct {
	base      driven.ConfigStore
	overrides map[string]any
}

// NewConfigStore layers cfg over base.
func NewConfigStore(base driven.ConfigStore, cfg Config) *ConfigStore {
	return &ConfigStore{
		base:      base,
		overrides: cfg.Overrides(),
	}
}

// Overridden reports whether key comes from the environment.
func (s *ConfigStore) Overridden(key string) bool {
	_, ok := s.overrides[key]
	return ok
}

// Get retrieves a configuration value by key.
func (s *ConfigStore) Get(key string) (any, bool) {
	if v, ok := s.overrides[key]; ok {
		return v, true
	}
	return s.base.Get(key)
}

// GetString retrieves a string configuration value.
func (s *ConfigStore) GetString(key string) string {
	if v, ok := s.overrides[key]; ok {
		str, _ := v.(string)
		return str
	}
	return s.base.GetString(key)
}

// GetInt retrieves an integer configuration value.
func (s *ConfigStore) GetInt(key string) int {
	if v, ok := s.overrides[key]; ok {
		n, _ := v.(int)
		return n
	}
	return s.base.GetInt(key)
}

// GetBool retrieves a boolean configuration value.
func (s *ConfigStore) GetBool(key string) bool {
	if v, ok := s.overrides[key]; ok {
		b, _ := v.(bool)
		return b
	}
	return s.base.GetBool(key)
}

// Set stores a value in the base store.
func (s *ConfigStore) Set(key string, value any) error {
	return s.base.Set(key, value)
}

// Save persists the base store.
func (s *ConfigStore) Save() error {
	return s.base.Save()
}

// Load reloads the base store.
func (s *ConfigStore) Load() error {
	return s.base.Load()
}

// Path returns the base store path.
func (s *ConfigStore) Path() string {
	return s.base.Path()
}
