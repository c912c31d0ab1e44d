package domain

// RawRecord is one parsed CSV data row keyed by header column name.
// It only exists between parsing and normalisation.
type RawRecord map[string]string

// Columns names the dataset columns that carry the three mapped fields.
type Columns struct {
	// TimeBucket is the year column (e.g. "aar").
	TimeBucket string

	// Category is the occupation group column (e.g. "yrke_grovgruppe").
	Category string

	// Count is the job seeker count column (e.g. "antall_arbeidssokere").
	Count string
}

// DefaultColumns returns the column names of the NAV dataset.
func DefaultColumns() Columns {
	return Columns{
		TimeBucket: "aar",
		Category:   "yrke_grovgruppe",
		Count:      "antall_arbeidssokere",
	}
}

// Validate returns ErrInvalidInput if any column name is empty.
func (c Columns) Validate() error {
	if c.TimeBucket == "" || c.Category == "" || c.Count == "" {
		return ErrInvalidInput
	}
	return nil
}

// Record is a normalised dataset row.
// Count is never negative; unparseable source values become 0.
type Record struct {
	// Category is the occupation group.
	Category string

	// TimeBucket is the year the row belongs to.
	TimeBucket string

	// Count is the number of job seekers.
	Count int

	// Fields holds every source column unchanged, keyed by column name.
	Fields map[string]string
}

// Field returns a pass-through source field, or "" if absent.
func (r Record) Field(name string) string {
	if r.Fields == nil {
		return ""
	}
	return r.Fields[name]
}
