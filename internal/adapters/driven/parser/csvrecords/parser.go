// Package csvrecords implements driven.RecordParser for header-based CSV.
package csvrecords

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/custodia-labs/arbeidssokere/internal/core/domain"
	"github.com/custodia-labs/arbeidssokere/internal/core/ports/driven"
)

// Ensure Parser implements the interface.
var _ driven.RecordParser = (*Parser)(nil)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Parser reads a CSV document whose first row names the columns.
// Blank lines are skipped. Short rows leave the missing columns out of
// the raw record; extra trailing fields are dropped.
type Parser struct {
	delimiter rune
}

// Option configures a Parser.
type Option func(*Parser)

// WithDelimiter fixes the field delimiter. Without it the delimiter is
// detected from the header row (comma or semicolon).
func WithDelimiter(r rune) Option {
	return func(p *Parser) {
		p.delimiter = r
	}
}

// New creates a CSV parser.
func New(opts ...Option) *Parser {
	p := &Parser{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse converts data into raw records in row order.
// Malformed CSV returns an error wrapping domain.ErrParse.
func (p *Parser) Parse(data []byte) ([]domain.RawRecord, error) {
	data = bytes.TrimPrefix(data, utf8BOM)

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = p.delimiter
	if reader.Comma == 0 {
		reader.Comma = detectDelimiter(data)
	}
	reader.FieldsPerRecord = -1
	reader.ReuseRecord = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return []domain.RawRecord{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read header: %w", domain.ErrParse, err)
	}

	columns := make([]string, len(header))
	for i, h := range header {
		columns[i] = strings.TrimSpace(h)
	}
	if err := checkHeader(columns); err != nil {
		return nil, err
	}

	records := make([]domain.RawRecord, 0)
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrParse, err)
		}

		raw := make(domain.RawRecord, len(columns))
		for i, value := range row {
			if i >= len(columns) {
				break
			}
			raw[columns[i]] = value
		}
		records = append(records, raw)
	}

	return records, nil
}

func checkHeader(columns []string) error {
	seen := make(map[string]struct{}, len(columns))
	for _, c := range columns {
		if c == "" {
			continue
		}
		if _, dup := seen[c]; dup {
			return fmt.Errorf("%w: duplicate column %q", domain.ErrParse, c)
		}
		seen[c] = struct{}{}
	}
	return nil
}

// detectDelimiter picks ';' when the first line has more semicolons than
// commas outside quotes.
func detectDelimiter(data []byte) rune {
	line := data
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		line = data[:i]
	}

	var commas, semicolons int
	inQuotes := false
	for _, b := range line {
		switch b {
		case '"':
			inQuotes = !inQuotes
		case ',':
			if !inQuotes {
				commas++
			}
		case ';':
			if !inQuotes {
				semicolons++
			}
		}
	}

	if semicolons > commas {
		return ';'
	}
	return ','
}
