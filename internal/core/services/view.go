package services

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/custodia-labs/arbeidssokere/internal/core/domain"
	"github.com/custodia-labs/arbeidssokere/internal/core/ports/driven"
	"github.com/custodia-labs/arbeidssokere/internal/core/ports/driving"
	"github.com/custodia-labs/arbeidssokere/internal/logger"
)

// Ensure ViewController implements the interface.
var _ driving.ViewController = (*ViewController)(nil)

// RecordSource produces the record set for a controller.
// *Loader is the production implementation.
type RecordSource interface {
	Load(ctx context.Context) ([]domain.Record, error)
}

// ViewController owns the loaded record set and the current selection.
// Every selection change recomputes the aggregation, asks the presenter
// for a fresh chart and table and hands the result to the renderer.
//
// A failed load is terminal: later selection calls return
// domain.ErrTerminal and nothing is recomputed.
type ViewController struct {
	mu        sync.RWMutex
	source    RecordSource
	presenter driven.Presenter
	renderer  driven.Renderer

	records    []domain.Record
	categories []string
	years      []string
	loaded     bool

	state domain.ViewState
}

// NewViewController creates an idle controller.
// The renderer is optional (can be nil).
func NewViewController(source RecordSource, presenter driven.Presenter, renderer driven.Renderer) *ViewController {
	sel := domain.DefaultSelection()
	return &ViewController{
		source:    source,
		presenter: presenter,
		renderer:  renderer,
		state: domain.ViewState{
			Status:                  domain.StatusIdle,
			Selection:               sel,
			Mode:                    sel.Mode(),
			Categories:              []string{},
			Years:                   []string{},
			CategorySelectorVisible: true,
		},
	}
}

// SetRenderer replaces the renderer. The previous one is destroyed.
func (c *ViewController) SetRenderer(r driven.Renderer) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.renderer != nil {
		c.renderer.Destroy()
	}
	c.renderer = r
}

// Load fetches and normalises the dataset, then renders the default
// selection. On failure the controller enters the terminal error state
// and the returned error wraps domain.ErrTransport or domain.ErrParse.
func (c *ViewController) Load(ctx context.Context) error {
	c.mu.Lock()
	if c.state.Status == domain.StatusError {
		c.mu.Unlock()
		return domain.ErrTerminal
	}
	c.state.Status = domain.StatusLoading
	c.state.Chart = nil
	c.state.Table = nil
	c.replace()
	c.mu.Unlock()

	records, err := c.source.Load(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		logger.Error("Dataset load failed: %v", err)
		c.state = domain.ViewState{
			Status:     domain.StatusError,
			Selection:  c.state.Selection,
			Mode:       c.state.Mode,
			Categories: []string{},
			Years:      []string{},
			Err:        err,
		}
		c.replace()
		return err
	}

	c.records = records
	c.categories = UniqueCategories(records)
	c.years = UniqueTimeBuckets(records)
	c.loaded = true

	state, err := c.compute(domain.DefaultSelection())
	if err != nil {
		return err
	}
	c.state = state
	return c.replace()
}

// SetChartKind switches chart kind, and with it possibly the view mode.
func (c *ViewController) SetChartKind(kind domain.ChartKind) (domain.ViewState, error) {
	if !kind.IsValid() {
		return c.State(), fmt.Errorf("%w: chart kind %q", domain.ErrInvalidInput, kind)
	}
	return c.update(func(sel *domain.Selection) { sel.Kind = kind })
}

// SetCategory changes the category filter used by series views.
func (c *ViewController) SetCategory(category string) (domain.ViewState, error) {
	if category == "" {
		return c.State(), fmt.Errorf("%w: empty category", domain.ErrInvalidInput)
	}
	return c.update(func(sel *domain.Selection) { sel.Category = category })
}

// SetYear changes the time bucket used by the distribution view.
// An empty year selects the latest bucket.
func (c *ViewController) SetYear(year string) (domain.ViewState, error) {
	return c.update(func(sel *domain.Selection) { sel.Year = year })
}

// SetSelection replaces the whole selection.
func (c *ViewController) SetSelection(sel domain.Selection) (domain.ViewState, error) {
	sel = sel.Normalised()
	if err := sel.Validate(); err != nil {
		return c.State(), fmt.Errorf("selection: %w", err)
	}
	return c.update(func(cur *domain.Selection) { *cur = sel })
}

// State returns a snapshot of the current view state.
func (c *ViewController) State() domain.ViewState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// Compute returns the view a selection would produce without changing
// the controller or calling the renderer. Safe for concurrent use.
func (c *ViewController) Compute(sel domain.Selection) (domain.ViewState, error) {
	sel = sel.Normalised()
	if err := sel.Validate(); err != nil {
		return domain.ViewState{}, fmt.Errorf("selection: %w", err)
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	if err := c.checkUsable(); err != nil {
		return c.state, err
	}
	return c.compute(sel)
}

// Close destroys the current renderer.
func (c *ViewController) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.renderer != nil {
		c.renderer.Destroy()
		c.renderer = nil
	}
}

func (c *ViewController) update(mutate func(sel *domain.Selection)) (domain.ViewState, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.checkUsable(); err != nil {
		return c.state, err
	}

	sel := c.state.Selection
	mutate(&sel)

	state, err := c.compute(sel)
	if err != nil {
		return c.state, err
	}
	c.state = state

	if err := c.replace(); err != nil {
		return c.state, err
	}
	return c.state, nil
}

// checkUsable must be called with the lock held.
func (c *ViewController) checkUsable() error {
	if c.state.Status == domain.StatusError {
		return domain.ErrTerminal
	}
	if !c.loaded {
		return domain.ErrNotLoaded
	}
	return nil
}

// compute builds the view state for sel from the loaded records.
// It reads only immutable fields and must be called with a lock held.
func (c *ViewController) compute(sel domain.Selection) (domain.ViewState, error) {
	if !sel.Kind.IsValid() {
		return domain.ViewState{}, fmt.Errorf("%w: chart kind %q", domain.ErrInvalidInput, sel.Kind)
	}

	mode := sel.Mode()
	var (
		chart *domain.Chart
		table *domain.Table
	)

	switch mode {
	case domain.ModeDistribution:
		if sel.Year == "" || !slices.Contains(c.years, sel.Year) {
			sel.Year = LatestTimeBucket(c.records)
		}
		dist := AggregateForTimeBucket(c.records, sel.Year)
		chart, table = c.presenter.DistributionView(dist)
		logger.Debug("Distribution view: year=%s categories=%d", sel.Year, len(dist.Categories))
	default:
		agg := AggregateByCategoryAndTime(FilterByCategory(c.records, sel.Category))
		chart, table = c.presenter.SeriesView(sel.Kind, agg)
		logger.Debug("Series view: kind=%s category=%s series=%d", sel.Kind, sel.Category, agg.Len())
	}

	return domain.ViewState{
		Status:                  domain.StatusReady,
		Selection:               sel,
		Mode:                    mode,
		Categories:              c.categories,
		Years:                   c.years,
		CategorySelectorVisible: mode == domain.ModeSeries,
		YearSelectorVisible:     mode == domain.ModeDistribution,
		Chart:                   chart,
		Table:                   table,
		RecordCount:             len(c.records),
	}, nil
}

// replace pushes the current state to the renderer (lock held).
func (c *ViewController) replace() error {
	if c.renderer == nil {
		return nil
	}
	if err := c.renderer.Replace(c.state); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}
