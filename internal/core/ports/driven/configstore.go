package driven

// ConfigStore holds flat, dot-separated settings keys such as
// "match.engine" or "ui.alt_screen". Typed getters return the zero value
// when a key is missing or holds another type, so callers fall back to
// their defaults instead of failing.
type ConfigStore interface {
	// Get returns the raw value and whether the key is set.
	Get(key string) (any, bool)

	// GetString returns a string value or "".
	GetString(key string) string

	// GetInt returns an integer value or 0.
	GetInt(key string) int

	// GetBool returns a boolean value or false.
	GetBool(key string) bool

	// Set stores a value and persists it.
	Set(key string, value any) error

	// Save persists the current values.
	Save() error

	// Load replaces the current values with what storage holds.
	Load() error

	// Path identifies the backing storage in messages and logs.
	Path() string
}
