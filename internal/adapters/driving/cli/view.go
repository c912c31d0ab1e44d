package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/arbeidssokere/internal/core/domain"
	"github.com/custodia-labs/arbeidssokere/internal/core/ports/driven"
	"github.com/custodia-labs/arbeidssokere/internal/core/ports/driving"
)

// selectionFlags are shared by table and export.
type selectionFlags struct {
	kind     string
	category string
	year     string
}

func (f *selectionFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.kind, "kind", "k", string(domain.ChartLine),
		"chart kind: line, bar, stacked_area, horizontal_bar, pie")
	cmd.Flags().StringVarP(&f.category, "category", "c", domain.CategoryAll, "occupation group, or \"all\"")
	cmd.Flags().StringVarP(&f.year, "year", "y", "", "year for pie charts (default latest)")
}

func (f *selectionFlags) selection() (domain.Selection, error) {
	kind, err := domain.ParseChartKind(f.kind)
	if err != nil {
		return domain.Selection{}, fmt.Errorf("--kind %q: %w", f.kind, err)
	}
	return domain.Selection{Kind: kind, Category: f.category, Year: f.year}, nil
}

// loadTimeout bounds one-shot commands when the context has no deadline.
const loadTimeout = 2 * time.Minute

// loadView builds a controller, loads the dataset and applies sel.
func loadView(cmd *cobra.Command, renderer driven.Renderer, sel domain.Selection) (driving.ViewController, domain.ViewState, error) {
	svc, err := requireServices()
	if err != nil {
		return nil, domain.ViewState{}, err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, loadTimeout)
		defer cancel()
	}

	view := svc.NewView(renderer)
	if err := view.Load(ctx); err != nil {
		if domain.IsLoadError(err) {
			err = fmt.Errorf("%s: %w", domain.LoadErrorMessage, err)
		}
		return view, view.State(), err
	}

	state, err := view.SetSelection(sel)
	if err != nil {
		return view, state, err
	}
	return view, state, nil
}
