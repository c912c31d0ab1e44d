package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/arbeidssokere/internal/core/domain"
	"github.com/custodia-labs/arbeidssokere/internal/core/ports/driven"
	"github.com/custodia-labs/arbeidssokere/internal/logger"
)

// Loader fetches the dataset, parses it and normalises every row.
type Loader struct {
	fetcher driven.Fetcher
	parser  driven.RecordParser
	url     string
	columns domain.Columns
}

// NewLoader creates a loader for one dataset.
func NewLoader(fetcher driven.Fetcher, parser driven.RecordParser, dataset domain.DatasetSettings) *Loader {
	return &Loader{
		fetcher: fetcher,
		parser:  parser,
		url:     dataset.URL,
		columns: dataset.Columns,
	}
}

// Load returns the normalised record set.
// Fetch failures wrap domain.ErrTransport and parse failures wrap
// domain.ErrParse, even when the adapter returned a bare error.
func (l *Loader) Load(ctx context.Context) ([]domain.Record, error) {
	logger.Section("Dataset Load")
	logger.Debug("URL: %s", l.url)

	if err := l.columns.Validate(); err != nil {
		return nil, fmt.Errorf("columns: %w", err)
	}

	body, err := l.fetcher.Fetch(ctx, l.url)
	if err != nil {
		return nil, ensureClass(err, domain.ErrTransport, "fetch dataset")
	}
	logger.Debug("Fetched %d bytes", len(body))

	raws, err := l.parser.Parse(body)
	if err != nil {
		return nil, ensureClass(err, domain.ErrParse, "parse dataset")
	}

	records := NormaliseRecords(raws, l.columns)
	logger.Info("Loaded %d records", len(records))
	return records, nil
}

func ensureClass(err, class error, op string) error {
	if domain.IsLoadError(err) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%s: %w: %w", op, class, err)
}
