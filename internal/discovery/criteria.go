package discovery

import (
	"math"
	"strings"
)

// Wildcard is the single-select value that imposes no constraint.
const Wildcard = "All"

// PriceRange is an inclusive [Min, Max] price window.
type PriceRange struct {
	Min float64
	Max float64
}

// Criteria is the combined set of active filter dimensions. The zero value
// of every dimension means "no constraint"; DefaultCriteria returns a value
// that matches the whole catalog.
type Criteria struct {
	Search   string
	Category string
	Style    string
	Season   string
	Occasion string
	Colors   []string
	Price    PriceRange

	// Quiz-derived narrowing, ANDed with the rest only when QuizActive is
	// set. Active-with-empty-sets imposes no constraint; this is distinct
	// from inactive-with-populated-sets, which also imposes none. Each set
	// narrows its own dimension independently.
	QuizActive     bool
	QuizCategories map[string]struct{}
	QuizColors     map[string]struct{}
	QuizStyles     map[string]struct{}
	QuizSeasons    map[string]struct{}
	QuizOccasions  map[string]struct{}
}

// DefaultCriteria returns criteria with every dimension unconstrained:
// filtering with it yields the full catalog in original order.
func DefaultCriteria() Criteria {
	return Criteria{
		Category: Wildcard,
		Style:    Wildcard,
		Season:   Wildcard,
		Occasion: Wildcard,
		Price:    PriceRange{Min: 0, Max: math.MaxFloat64},
	}
}

// norm is the single normalization point for case-insensitive matching.
// Both catalog fields and criteria fields pass through it at the comparison
// boundary, so no component can drift.
func norm(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// matchesSelect reports whether a single-select criterion admits the value.
func matchesSelect(criterion, value string) bool {
	return criterion == "" || strings.EqualFold(criterion, Wildcard) || norm(criterion) == norm(value)
}
