package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/custodia-labs/arbeidssokere/internal/adapters/driven/presentation"
	"github.com/custodia-labs/arbeidssokere/internal/adapters/driven/render/chartimg"
	"github.com/custodia-labs/arbeidssokere/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/arbeidssokere/internal/core/domain"
	"github.com/custodia-labs/arbeidssokere/internal/core/ports/driven"
	"github.com/custodia-labs/arbeidssokere/internal/core/ports/driving"
	coresvc "github.com/custodia-labs/arbeidssokere/internal/core/services"
)

type sourceFunc func(ctx context.Context) ([]domain.Record, error)

func (f sourceFunc) Load(ctx context.Context) ([]domain.Record, error) {
	return f(ctx)
}

func testRecords() []domain.Record {
	return []domain.Record{
		{TimeBucket: "2020", Category: "Ledere", Count: 100},
		{TimeBucket: "2020", Category: "Ingeniører", Count: 50},
		{TimeBucket: "2021", Category: "Ledere", Count: 1500},
	}
}

// newTestServices wires real services over an in-memory source and
// config store.
func newTestServices(loadErr error) *Services {
	src := sourceFunc(func(context.Context) ([]domain.Record, error) {
		if loadErr != nil {
			return nil, loadErr
		}
		return testRecords(), nil
	})
	presenter := presentation.NewPresenter("en")

	return &Services{
		Settings: coresvc.NewSettingsService(memory.NewConfigStore()),
		NewView: func(r driven.Renderer) driving.ViewController {
			return coresvc.NewViewController(src, presenter, r)
		},
		FormatNumber: presenter.Numbers().Format,
		ServerAddr:   "127.0.0.1:0",
		ConfigPath:   "/home/test/.arbeidssokere/config.toml",
	}
}

// resetFlags restores package flag variables between runs.
func resetFlags() {
	verboseFlag = false
	configDirFlag = ""
	urlFlag = ""
	tableSelection = selectionFlags{kind: string(domain.ChartLine), category: domain.CategoryAll}
	tableJSON = false
	exportSelection = selectionFlags{kind: string(domain.ChartLine), category: domain.CategoryAll}
	exportFormat = string(chartimg.FormatSVG)
	exportOut = ""
	exportWidth = chartimg.DefaultWidth
	exportHeight = chartimg.DefaultHeight
	serveAddr = ""
	serveOrigins = nil
}

// execute runs the root command with svc installed and returns stdout
// and stderr combined.
func execute(t *testing.T, svc *Services, args ...string) (string, error) {
	t.Helper()
	return executeContext(t, context.Background(), svc, "", args...)
}

func executeContext(t *testing.T, ctx context.Context, svc *Services, input string, args ...string) (string, error) {
	t.Helper()

	prevServices, prevFactory := services, factory
	t.Cleanup(func() {
		services, factory = prevServices, prevFactory
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		resetFlags()
	})

	SetServices(svc)

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetIn(strings.NewReader(input))
	rootCmd.SetArgs(args)

	err := rootCmd.ExecuteContext(ctx)
	return buf.String(), err
}

