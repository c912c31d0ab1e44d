package tui

import (
	"context"

	"github.com/custodia-labs/arbeidssokere/internal/adapters/driven/presentation"
	"github.com/custodia-labs/arbeidssokere/internal/core/domain"
	"github.com/custodia-labs/arbeidssokere/internal/core/services"
)

type sourceFunc func(ctx context.Context) ([]domain.Record, error)

func (f sourceFunc) Load(ctx context.Context) ([]domain.Record, error) {
	return f(ctx)
}

func testRecords() []domain.Record {
	return []domain.Record{
		{TimeBucket: "2020", Category: "Ledere", Count: 100},
		{TimeBucket: "2020", Category: "Ingeniører", Count: 50},
		{TimeBucket: "2021", Category: "Ledere", Count: 150},
	}
}

// newTestPorts wires a real controller to an in-memory source.
func newTestPorts(loadErr error) *Ports {
	src := sourceFunc(func(context.Context) ([]domain.Record, error) {
		if loadErr != nil {
			return nil, loadErr
		}
		return testRecords(), nil
	})
	frames := NewFrames()
	view := services.NewViewController(src, presentation.NewPresenter("nb"), frames)
	return NewPorts(view, frames)
}

// MockSettingsService implements driving.SettingsService for tests.
type MockSettingsService struct {
	values map[string]string
	SetErr error
}

func NewMockSettingsService() *MockSettingsService {
	return &MockSettingsService{values: map[string]string{
		"dataset.url":    domain.DefaultDatasetURL,
		"display.locale": "nb",
	}}
}

func (m *MockSettingsService) Get() (*domain.AppSettings, error) {
	s := domain.DefaultAppSettings()
	return &s, nil
}

func (m *MockSettingsService) Save(*domain.AppSettings) error { return nil }

func (m *MockSettingsService) Set(key, value string) error {
	if m.SetErr != nil {
		return m.SetErr
	}
	m.values[key] = value
	return nil
}

func (m *MockSettingsService) Keys() []string {
	return []string{"dataset.url", "display.locale"}
}

func (m *MockSettingsService) Values() (map[string]string, error) {
	out := make(map[string]string, len(m.values))
	for k, v := range m.values {
		out[k] = v
	}
	return out, nil
}

func (m *MockSettingsService) GetDefaults() domain.AppSettings { return domain.DefaultAppSettings() }

func (m *MockSettingsService) Validate() error { return nil }
