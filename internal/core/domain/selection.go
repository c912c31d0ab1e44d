package domain

// CategoryAll is the category selector value that disables filtering.
const CategoryAll = "all"

// Selection is the user's current choice of chart kind and filters.
type Selection struct {
	// Kind is the chart kind.
	Kind ChartKind `json:"kind"`

	// Category is CategoryAll or one category. Used in ModeSeries only.
	Category string `json:"category"`

	// Year is the selected time bucket, or "" for the most recent one.
	// Used in ModeDistribution only.
	Year string `json:"year,omitempty"`
}

// DefaultSelection returns the selection a freshly loaded view starts with.
func DefaultSelection() Selection {
	return Selection{
		Kind:     ChartLine,
		Category: CategoryAll,
	}
}

// Mode returns the visual mode implied by the chart kind.
func (s Selection) Mode() ViewMode {
	return s.Kind.Mode()
}

// Validate checks the selection is usable.
func (s Selection) Validate() error {
	if !s.Kind.IsValid() {
		return ErrInvalidInput
	}
	if s.Category == "" {
		return ErrInvalidInput
	}
	return nil
}

// Normalised fills empty fields with their defaults.
func (s Selection) Normalised() Selection {
	if s.Kind == "" {
		s.Kind = ChartLine
	}
	if s.Category == "" {
		s.Category = CategoryAll
	}
	return s
}
