package driven

// ConfigStore holds flat dot-notation settings ("fetch.retries").
// Typed getters return the zero value for missing keys and for values
// of another type.
type ConfigStore interface {
	// Get returns the raw value and whether the key exists.
	Get(key string) (any, bool)
	GetString(key string) string
	// GetInt accepts any integer or float representation.
	GetInt(key string) int

	// Set stores one value. File-backed stores persist it immediately.
	Set(key string, value any) error
	Save() error
	Load() error

	// Path is where the settings live, for display.
	Path() string
}
