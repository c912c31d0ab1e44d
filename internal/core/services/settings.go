package services

import (
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"

	"github.com/custodia-labs/arbeidssokere/internal/core/domain"
	"github.com/custodia-labs/arbeidssokere/internal/core/ports/driven"
	"github.com/custodia-labs/arbeidssokere/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyDatasetURL     = "dataset.url"
	keyColumnTime     = "dataset.columns.time_bucket"
	keyColumnCategory = "dataset.columns.category"
	keyColumnCount    = "dataset.columns.count"
	keyDisplayLocale  = "display.locale"
	keyFetchTimeout   = "fetch.timeout_seconds"
	keyFetchRetries   = "fetch.retries"
	keyServerAddr     = "server.addr"
)

const (
	maxFetchRetries   = 10
	maxTimeoutSeconds = 600
)

var settingKeys = []string{
	keyDatasetURL,
	keyColumnTime,
	keyColumnCategory,
	keyColumnCount,
	keyDisplayLocale,
	keyFetchTimeout,
	keyFetchRetries,
	keyServerAddr,
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
// Missing values fall back to domain.DefaultAppSettings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Dataset: domain.DatasetSettings{
			URL: s.getString(keyDatasetURL, defaults.Dataset.URL),
			Columns: domain.Columns{
				TimeBucket: s.getString(keyColumnTime, defaults.Dataset.Columns.TimeBucket),
				Category:   s.getString(keyColumnCategory, defaults.Dataset.Columns.Category),
				Count:      s.getString(keyColumnCount, defaults.Dataset.Columns.Count),
			},
		},
		Fetch: domain.FetchSettings{
			Timeout: s.getSeconds(keyFetchTimeout, defaults.Fetch.Timeout),
			Retries: s.getInt(keyFetchRetries, defaults.Fetch.Retries),
		},
		Display: domain.DisplaySettings{
			Locale: s.getString(keyDisplayLocale, defaults.Display.Locale),
		},
		Server: domain.ServerSettings{
			Addr: s.getString(keyServerAddr, defaults.Server.Addr),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	values := []struct {
		key   string
		value any
	}{
		{keyDatasetURL, settings.Dataset.URL},
		{keyColumnTime, settings.Dataset.Columns.TimeBucket},
		{keyColumnCategory, settings.Dataset.Columns.Category},
		{keyColumnCount, settings.Dataset.Columns.Count},
		{keyDisplayLocale, settings.Display.Locale},
		{keyFetchTimeout, int64(settings.Fetch.Timeout / time.Second)},
		{keyFetchRetries, int64(settings.Fetch.Retries)},
		{keyServerAddr, settings.Server.Addr},
	}

	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}

	return nil
}

// Set validates and stores a single key from its string form.
func (s *SettingsService) Set(key, value string) error {
	value = strings.TrimSpace(value)

	switch key {
	case keyDatasetURL:
		if !isHTTPURL(value) {
			return fmt.Errorf("%w: %s must be an http(s) URL", domain.ErrInvalidInput, key)
		}
		return s.configStore.Set(key, value)

	case keyColumnTime, keyColumnCategory, keyColumnCount, keyServerAddr:
		if value == "" {
			return fmt.Errorf("%w: %s cannot be empty", domain.ErrInvalidInput, key)
		}
		return s.configStore.Set(key, value)

	case keyDisplayLocale:
		if _, err := language.Parse(value); err != nil {
			return fmt.Errorf("%w: unknown locale %q", domain.ErrInvalidInput, value)
		}
		return s.configStore.Set(key, value)

	case keyFetchTimeout:
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 || n > maxTimeoutSeconds {
			return fmt.Errorf("%w: %s must be between 1 and %d", domain.ErrInvalidInput, key, maxTimeoutSeconds)
		}
		return s.configStore.Set(key, int64(n))

	case keyFetchRetries:
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 || n > maxFetchRetries {
			return fmt.Errorf("%w: %s must be between 0 and %d", domain.ErrInvalidInput, key, maxFetchRetries)
		}
		return s.configStore.Set(key, int64(n))

	default:
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}
}

// Keys lists every settable key in display order.
func (s *SettingsService) Keys() []string {
	return slices.Clone(settingKeys)
}

// Values returns every key with its current value as accepted by Set.
func (s *SettingsService) Values() (map[string]string, error) {
	settings, err := s.Get()
	if err != nil {
		return nil, err
	}
	return map[string]string{
		keyDatasetURL:     settings.Dataset.URL,
		keyColumnTime:     settings.Dataset.Columns.TimeBucket,
		keyColumnCategory: settings.Dataset.Columns.Category,
		keyColumnCount:    settings.Dataset.Columns.Count,
		keyDisplayLocale:  settings.Display.Locale,
		keyFetchTimeout:   strconv.Itoa(int(settings.Fetch.Timeout / time.Second)),
		keyFetchRetries:   strconv.Itoa(settings.Fetch.Retries),
		keyServerAddr:     settings.Server.Addr,
	}, nil
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Validate checks that the stored settings can drive a load.
func (s *SettingsService) Validate() error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	if !settings.Dataset.IsConfigured() {
		return fmt.Errorf("%w: dataset is not configured (url %q)", domain.ErrInvalidInput, settings.Dataset.URL)
	}
	if _, err := language.Parse(settings.Display.Locale); err != nil {
		return fmt.Errorf("%w: unknown locale %q", domain.ErrInvalidInput, settings.Display.Locale)
	}
	if settings.Fetch.Retries < 0 || settings.Fetch.Retries > maxFetchRetries {
		return fmt.Errorf("%w: fetch retries out of range: %d", domain.ErrInvalidInput, settings.Fetch.Retries)
	}

	return nil
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetInt(key)
}

func (s *SettingsService) getSeconds(key string, defaultVal time.Duration) time.Duration {
	val := s.configStore.GetInt(key)
	if val <= 0 {
		return defaultVal
	}
	return time.Duration(val) * time.Second
}

func isHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return false
	}
	return u.Scheme == "http" || u.Scheme == "https"
}
