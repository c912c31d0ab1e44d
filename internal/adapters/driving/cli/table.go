package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/arbeidssokere/internal/core/domain"
)

var (
	tableSelection selectionFlags
	tableJSON      bool
)

// isTerminal reports whether w is an interactive terminal.
var isTerminal = func(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Print the table for one view",
	Long: `Load the dataset and print the accessible table behind a chart.

Series kinds (line, bar, stacked_area, horizontal_bar) show one row per
occupation group and one column per year. The pie kind shows one year.`,
	Args: cobra.NoArgs,
	RunE: runTable,
}

func init() {
	tableSelection.register(tableCmd)
	tableCmd.Flags().BoolVar(&tableJSON, "json", false, "output the view state as JSON")
	rootCmd.AddCommand(tableCmd)
}

func runTable(cmd *cobra.Command, _ []string) error {
	sel, err := tableSelection.selection()
	if err != nil {
		return err
	}

	_, state, err := loadView(cmd, nil, sel)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if tableJSON {
		data, err := json.MarshalIndent(state, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal view: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	if state.Table == nil || len(state.Table.Rows) == 0 {
		fmt.Fprintln(out, "Ingen data for valgt utvalg.")
		return nil
	}

	if isTerminal(out) {
		fmt.Fprintln(out, styledTable(state.Table))
	} else {
		fmt.Fprint(out, plainTable(state.Table))
	}
	return nil
}

// styledTable renders a bordered table for terminals.
func styledTable(t *domain.Table) string {
	border := lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	caption := lipgloss.NewStyle().Bold(true).Render(t.Caption)

	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(border).
		Headers(t.Headers...).
		Rows(t.Rows...)

	return caption + "\n" + tbl.String()
}

// plainTable renders tab-separated rows for pipes and files.
func plainTable(t *domain.Table) string {
	var b strings.Builder
	b.WriteString(strings.Join(t.Headers, "\t"))
	b.WriteByte('\n')
	for _, row := range t.Rows {
		b.WriteString(strings.Join(row, "\t"))
		b.WriteByte('\n')
	}
	return b.String()
}
