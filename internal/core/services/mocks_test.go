package services

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/custodia-labs/arbeidssokere/internal/core/domain"
)

// mockFetcher implements driven.Fetcher for testing.
type mockFetcher struct {
	body      []byte
	err       error
	calledURL string
}

func (m *mockFetcher) Fetch(_ context.Context, url string) ([]byte, error) {
	m.calledURL = url
	if m.err != nil {
		return nil, m.err
	}
	return m.body, nil
}

// mockParser implements driven.RecordParser for testing.
type mockParser struct {
	ParseFunc func(data []byte) ([]domain.RawRecord, error)
}

func (m *mockParser) Parse(data []byte) ([]domain.RawRecord, error) {
	if m.ParseFunc != nil {
		return m.ParseFunc(data)
	}
	return []domain.RawRecord{}, nil
}

// mockSource implements RecordSource for testing.
type mockSource struct {
	records []domain.Record
	err     error
	calls   int
}

func (m *mockSource) Load(_ context.Context) ([]domain.Record, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.records, nil
}

// stubPresenter implements driven.Presenter with predictable output.
// Each call yields a new chart ID so recomputes can be told apart.
type stubPresenter struct {
	mu    sync.Mutex
	calls int
}

func (p *stubPresenter) nextID() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++
	return fmt.Sprintf("chart-%d", p.calls)
}

func (p *stubPresenter) SeriesView(kind domain.ChartKind, agg domain.SeriesAggregation) (*domain.Chart, *domain.Table) {
	chart := &domain.Chart{ID: p.nextID(), Kind: kind, Labels: agg.TimeBuckets}
	table := &domain.Table{Headers: append([]string{"Yrkesgruppe"}, agg.TimeBuckets...)}
	for _, c := range agg.Categories {
		chart.Datasets = append(chart.Datasets, domain.Dataset{Label: c, Data: agg.Series[c]})
		row := []string{c}
		for _, v := range agg.Series[c] {
			row = append(row, strconv.Itoa(v))
		}
		table.Rows = append(table.Rows, row)
	}
	return chart, table
}

func (p *stubPresenter) DistributionView(dist domain.Distribution) (*domain.Chart, *domain.Table) {
	chart := &domain.Chart{
		ID:       p.nextID(),
		Kind:     domain.ChartPie,
		Labels:   dist.Categories,
		Datasets: []domain.Dataset{{Label: dist.TimeBucket, Data: dist.Values}},
	}
	table := &domain.Table{Headers: []string{"Yrkesgruppe", "Antall arbeidssøkere"}}
	for i, c := range dist.Categories {
		table.Rows = append(table.Rows, []string{c, strconv.Itoa(dist.Values[i])})
	}
	return chart, table
}

// recordingRenderer implements driven.Renderer and keeps every frame.
type recordingRenderer struct {
	frames    []domain.ViewState
	destroyed int
	err       error
}

func (r *recordingRenderer) Replace(state domain.ViewState) error {
	if r.err != nil {
		return r.err
	}
	r.frames = append(r.frames, state)
	return nil
}

func (r *recordingRenderer) Destroy() {
	r.destroyed++
}

func (r *recordingRenderer) last() domain.ViewState {
	if len(r.frames) == 0 {
		return domain.ViewState{}
	}
	return r.frames[len(r.frames)-1]
}
