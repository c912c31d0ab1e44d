package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/arbeidssokere/internal/adapters/driven/render/chartimg"
)

var (
	exportSelection selectionFlags
	exportFormat    string
	exportOut       string
	exportWidth     int
	exportHeight    int
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export one chart as SVG or PNG",
	Long: `Load the dataset, build one view and write its chart as an image.

Examples:
  arbeidssokere export --kind pie --year 2021 --format png --out pie.png
  arbeidssokere export --kind line --category Ledere > ledere.svg`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportSelection.register(exportCmd)
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", string(chartimg.FormatSVG), "image format: svg or png")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file (default stdout)")
	exportCmd.Flags().IntVar(&exportWidth, "width", chartimg.DefaultWidth, "image width in pixels")
	exportCmd.Flags().IntVar(&exportHeight, "height", chartimg.DefaultHeight, "image height in pixels")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	format, err := chartimg.ParseFormat(exportFormat)
	if err != nil {
		return err
	}
	sel, err := exportSelection.selection()
	if err != nil {
		return err
	}

	renderer := chartimg.NewRenderer(chartimg.Options{
		Format:       format,
		Width:        exportWidth,
		Height:       exportHeight,
		FormatNumber: formatNumber,
	})

	view, _, err := loadView(cmd, renderer, sel)
	if view != nil {
		defer renderer.Destroy()
	}
	if err != nil {
		if errors.Is(err, chartimg.ErrNothingToDraw) {
			return fmt.Errorf("nothing to export for %s/%s: %w", sel.Kind, sel.Category, err)
		}
		return err
	}

	image := renderer.Image()
	if len(image) == 0 {
		return chartimg.ErrNothingToDraw
	}

	if exportOut == "" {
		_, err := cmd.OutOrStdout().Write(image)
		return err
	}
	if err := os.WriteFile(exportOut, image, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", exportOut, err)
	}
	cmd.PrintErrf("Wrote %s (%d bytes)\n", exportOut, len(image))
	return nil
}
