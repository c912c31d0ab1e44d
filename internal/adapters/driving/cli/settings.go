package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/arbeidssokere/internal/core/ports/driving"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change the dataset source, column names, locale, fetch
behaviour and server address stored in the config file.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	Args:  cobra.NoArgs,
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set KEY VALUE",
	Short: "Change one setting",
	Long: `Change one setting and save it to the config file.

Keys:
  dataset.url                  CSV dataset URL (http or https)
  dataset.columns.time_bucket  column holding the year
  dataset.columns.category     column holding the occupation group
  dataset.columns.count        column holding the job-seeker count
  display.locale               locale for number formatting (e.g. nb, en)
  fetch.timeout_seconds        download timeout
  fetch.retries                retries after network errors, 5xx and 429
  server.addr                  listen address for serve`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Args:  cobra.NoArgs,
	RunE:  runSettingsPath,
}

var settingsWizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Interactive setup wizard",
	Long:  `Prompt for every setting in turn. Press Enter to keep the current value.`,
	Args:  cobra.NoArgs,
	RunE:  runSettingsWizard,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsPathCmd)
	settingsCmd.AddCommand(settingsWizardCmd)
	rootCmd.AddCommand(settingsCmd)
}

func settingsService() (driving.SettingsService, error) {
	svc, err := requireServices()
	if err != nil {
		return nil, err
	}
	if svc.Settings == nil {
		return nil, fmt.Errorf("settings service: %w", errNotConfigured)
	}
	return svc.Settings, nil
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	svc, err := settingsService()
	if err != nil {
		return err
	}

	settings, err := svc.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Dataset]")
	cmd.Printf("  URL: %s\n", settings.Dataset.URL)
	cmd.Printf("  Time bucket column: %s\n", settings.Dataset.Columns.TimeBucket)
	cmd.Printf("  Category column: %s\n", settings.Dataset.Columns.Category)
	cmd.Printf("  Count column: %s\n", settings.Dataset.Columns.Count)
	cmd.Println()

	cmd.Println("[Fetch]")
	cmd.Printf("  Timeout: %s\n", settings.Fetch.Timeout)
	cmd.Printf("  Retries: %d\n", settings.Fetch.Retries)
	cmd.Println()

	cmd.Println("[Display]")
	cmd.Printf("  Locale: %s\n", settings.Display.Locale)
	cmd.Println()

	cmd.Println("[Server]")
	cmd.Printf("  Address: %s\n", settings.Server.Addr)
	cmd.Println()

	if err := svc.Validate(); err != nil {
		cmd.Printf("Configuration warning: %v\n", err)
	} else {
		cmd.Println("Configuration is valid.")
	}
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	svc, err := settingsService()
	if err != nil {
		return err
	}

	key, value := args[0], args[1]
	if err := svc.Set(key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	cmd.Printf("Set %s = %s\n", key, value)
	return nil
}

func runSettingsPath(cmd *cobra.Command, _ []string) error {
	svc, err := requireServices()
	if err != nil {
		return err
	}
	cmd.Println(svc.ConfigPath)
	return nil
}

func runSettingsWizard(cmd *cobra.Command, _ []string) error {
	svc, err := settingsService()
	if err != nil {
		return err
	}

	current, err := svc.Values()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Settings Wizard")
	cmd.Println("===============")
	cmd.Println()

	reader := bufio.NewReader(cmd.InOrStdin())
	for _, key := range svc.Keys() {
		cmd.Printf("%s [%s]: ", key, current[key])
		input := readLine(reader)
		if input == "" || input == current[key] {
			continue
		}
		if err := svc.Set(key, input); err != nil {
			cmd.Printf("  skipped: %v\n", err)
			continue
		}
		cmd.Printf("  saved\n")
	}

	cmd.Println()
	cmd.Println("Done.")
	return nil
}

//nolint:errcheck // CLI helper, error ignored for UX
func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}
