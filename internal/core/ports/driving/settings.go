package driving

import "github.com/custodia-labs/arbeidssokere/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// Set updates a single setting by its config key.
	Set(key, value string) error

	// Keys returns every supported config key in display order.
	Keys() []string

	// Values returns the current value of every key in its string form.
	Values() (map[string]string, error)

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings

	// Validate checks the current settings can load a dataset.
	Validate() error
}
