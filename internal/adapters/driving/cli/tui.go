package cli

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/arbeidssokere/internal/adapters/driving/tui"
	"github.com/custodia-labs/arbeidssokere/internal/logger"
)

// runProgram starts the bubbletea program. Tests replace it.
var runProgram = func(app *tui.App) error {
	return app.Run()
}

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface.

The dataset is loaded once at start. Switch chart kind and filters with
the keyboard; the table under the chart follows the selection.

Controls:
  tab/shift+tab  Next / previous chart kind
  1-5            Jump to chart kind
  ←/→, h/l       Previous / next occupation group or year
  t              Toggle table
  r              Reload dataset
  s              Settings
  ?              Toggle help
  q              Quit`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			err = fmt.Errorf("TUI panic: %v", r)
		}
	}()

	svc, err := requireServices()
	if err != nil {
		return err
	}

	// Log lines would tear the alternate screen.
	if !logger.IsVerbose() {
		prev := logger.Output()
		logger.SetOutput(io.Discard)
		defer logger.SetOutput(prev)
	}

	frames := tui.NewFrames()
	ports := tui.NewPorts(svc.NewView(frames), frames)
	ports.Settings = svc.Settings
	ports.FormatNumber = svc.FormatNumber

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(cmd.Context())

	if err := runProgram(app); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
