package domain

import (
	"net/url"
	"time"
)

// DefaultDatasetURL is the published location of the NAV dataset.
const DefaultDatasetURL = "https://raw.githubusercontent.com/datahotellet/dataset-archive/main/datasets/nav/arbeidssokere-yrke/dataset.csv"

// DatasetSettings configures where the CSV lives and how to read it.
type DatasetSettings struct {
	// URL is the HTTP(S) location of the CSV resource.
	URL string

	// Columns maps the mapped fields to CSV header names.
	Columns Columns
}

// IsConfigured returns true if the dataset can be loaded.
func (d DatasetSettings) IsConfigured() bool {
	if d.URL == "" || d.Columns.Validate() != nil {
		return false
	}
	u, err := url.Parse(d.URL)
	if err != nil {
		return false
	}
	return u.Scheme == "http" || u.Scheme == "https"
}

// FetchSettings controls the HTTP fetch.
type FetchSettings struct {
	// Timeout bounds a single HTTP attempt.
	Timeout time.Duration

	// Retries is how many extra attempts a transport failure gets.
	// Zero keeps the single fetch-and-display path.
	Retries int
}

// DisplaySettings controls presentation.
type DisplaySettings struct {
	// Locale is the BCP 47 tag used for number formatting (e.g. "nb").
	Locale string
}

// ServerSettings controls the HTTP surface.
type ServerSettings struct {
	// Addr is the listen address (e.g. ":8080").
	Addr string
}

// AppSettings holds all application configuration.
type AppSettings struct {
	Dataset DatasetSettings
	Fetch   FetchSettings
	Display DisplaySettings
	Server  ServerSettings
}

// DefaultAppSettings returns the default application settings.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Dataset: DatasetSettings{
			URL:     DefaultDatasetURL,
			Columns: DefaultColumns(),
		},
		Fetch: FetchSettings{
			Timeout: 30 * time.Second,
			Retries: 0,
		},
		Display: DisplaySettings{
			Locale: "nb",
		},
		Server: ServerSettings{
			Addr: ":8080",
		},
	}
}
