package services

import (
	"strconv"
	"strings"

	"github.com/custodia-labs/arbeidssokere/internal/core/domain"
)

// NormaliseRecord converts one raw CSV row into a typed record.
// The count column is read as the leading base-10 digits after optional
// whitespace and sign, so "150.0" is 150 and "12abc" is 12. Values
// without leading digits, negative values and overflow become 0. Every source field is
// copied through unchanged.
func NormaliseRecord(raw domain.RawRecord, cols domain.Columns) domain.Record {
	fields := make(map[string]string, len(raw))
	for k, v := range raw {
		fields[k] = v
	}

	return domain.Record{
		Category:   raw[cols.Category],
		TimeBucket: raw[cols.TimeBucket],
		Count:      parseCount(raw[cols.Count]),
		Fields:     fields,
	}
}

// NormaliseRecords normalises rows in order.
func NormaliseRecords(raws []domain.RawRecord, cols domain.Columns) []domain.Record {
	records := make([]domain.Record, 0, len(raws))
	for _, raw := range raws {
		records = append(records, NormaliseRecord(raw, cols))
	}
	return records
}

func parseCount(s string) int {
	s = strings.TrimLeft(s, " \t\r\n")
	negative := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		negative = s[0] == '-'
		s = s[1:]
	}

	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 || negative {
		return 0
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}
