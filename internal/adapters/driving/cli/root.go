// Package cli implements the arbeidssokere command line.
//
// Commands are package-level cobra commands registered in init. The
// composition root supplies a Factory that builds services once global
// flags are parsed.
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/arbeidssokere/internal/core/ports/driven"
	"github.com/custodia-labs/arbeidssokere/internal/core/ports/driving"
	"github.com/custodia-labs/arbeidssokere/internal/logger"
)

// version is set at build time with -ldflags.
var version = "dev"

// Global flag values.
var (
	verboseFlag   bool
	configDirFlag string
	urlFlag       string
)

// Options carries global flags to the Factory.
type Options struct {
	ConfigDir  string
	DatasetURL string
	Verbose    bool
}

// Services are the driving ports commands work with.
type Services struct {
	Settings driving.SettingsService
	// NewView builds a controller that pushes frames to renderer.
	// The renderer may be nil.
	NewView func(renderer driven.Renderer) driving.ViewController
	// FormatNumber renders counts for the configured locale.
	FormatNumber func(int) string
	// ServerAddr is the configured listen address for serve.
	ServerAddr string
	// ConfigPath is the settings file location.
	ConfigPath string
}

// Factory builds services from global options.
type Factory func(opts Options) (*Services, error)

var (
	factory  Factory
	services *Services
)

// SetFactory installs the service factory used before each command runs.
func SetFactory(f Factory) {
	factory = f
}

// SetServices installs ready-made services, bypassing the factory.
func SetServices(s *Services) {
	services = s
}

var errNotConfigured = errors.New("services not configured")

var rootCmd = &cobra.Command{
	Use:   "arbeidssokere",
	Short: "Explore NAV job-seeker statistics by occupation group",
	Long: `arbeidssokere loads NAV's registered job seekers per occupation group
and year from a CSV dataset and shows it as charts and tables.

Run it as an interactive terminal UI, as a small web server, or print and
export single views from the command line.`,
	SilenceUsage:      true,
	PersistentPreRunE: initServices,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configDirFlag, "config-dir", "", "config directory (default ~/.arbeidssokere)")
	rootCmd.PersistentFlags().StringVar(&urlFlag, "url", "", "dataset URL, overrides dataset.url")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func initServices(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verboseFlag)

	if services != nil {
		return nil
	}
	if factory == nil {
		return errNotConfigured
	}

	built, err := factory(Options{
		ConfigDir:  configDirFlag,
		DatasetURL: urlFlag,
		Verbose:    verboseFlag,
	})
	if err != nil {
		return fmt.Errorf("initialise: %w", err)
	}
	services = built
	return nil
}

func requireServices() (*Services, error) {
	if services == nil {
		return nil, errNotConfigured
	}
	return services, nil
}

func formatNumber(n int) string {
	if services != nil && services.FormatNumber != nil {
		return services.FormatNumber(n)
	}
	return fmt.Sprintf("%d", n)
}
