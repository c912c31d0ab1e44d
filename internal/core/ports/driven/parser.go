package driven

import "github.com/custodia-labs/arbeidssokere/internal/core/domain"

// RecordParser converts CSV content into header-keyed rows.
// The first row is the header. Blank lines are skipped.
// Malformed content returns an error wrapping domain.ErrParse.
type RecordParser interface {
	// Parse returns one raw record per data row, in file order.
	Parse(data []byte) ([]domain.RawRecord, error)
}
