// Command arbeidssokere explores NAV's job-seeker statistics per
// occupation group as charts and tables.
package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/custodia-labs/arbeidssokere/internal/adapters/driven/config/file"
	"github.com/custodia-labs/arbeidssokere/internal/adapters/driven/fetch/httpfetch"
	"github.com/custodia-labs/arbeidssokere/internal/adapters/driven/parser/csvrecords"
	"github.com/custodia-labs/arbeidssokere/internal/adapters/driven/presentation"
	"github.com/custodia-labs/arbeidssokere/internal/adapters/driving/cli"
	"github.com/custodia-labs/arbeidssokere/internal/core/domain"
	"github.com/custodia-labs/arbeidssokere/internal/core/ports/driven"
	"github.com/custodia-labs/arbeidssokere/internal/core/ports/driving"
	"github.com/custodia-labs/arbeidssokere/internal/core/services"
)

func main() {
	cli.SetFactory(newServices)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

// newServices wires adapters to the core from the stored settings.
func newServices(opts cli.Options) (*cli.Services, error) {
	store, err := file.NewConfigStore(opts.ConfigDir)
	if err != nil {
		return nil, fmt.Errorf("config store: %w", err)
	}
	settingsSvc := services.NewSettingsService(store)

	settings, err := settingsSvc.Get()
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	if opts.DatasetURL != "" {
		settings.Dataset.URL = opts.DatasetURL
		if !settings.Dataset.IsConfigured() {
			return nil, fmt.Errorf("%w: --url %q must be an http(s) URL", domain.ErrInvalidInput, opts.DatasetURL)
		}
	}

	return assemble(settingsSvc, settings, store.Path(), http.DefaultClient), nil
}

func assemble(settingsSvc driving.SettingsService, settings *domain.AppSettings, configPath string, client *http.Client) *cli.Services {
	fetcher := httpfetch.New(client, httpfetch.Config{
		Timeout:   settings.Fetch.Timeout,
		Retries:   settings.Fetch.Retries,
		RateLimit: httpfetch.DefaultRateLimit,
	})
	loader := services.NewLoader(fetcher, csvrecords.New(), settings.Dataset)
	presenter := presentation.NewPresenter(settings.Display.Locale)

	return &cli.Services{
		Settings: settingsSvc,
		NewView: func(renderer driven.Renderer) driving.ViewController {
			return services.NewViewController(loader, presenter, renderer)
		},
		FormatNumber: presenter.Numbers().Format,
		ServerAddr:   settings.Server.Addr,
		ConfigPath:   configPath,
	}
}
