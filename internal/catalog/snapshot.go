package catalog

import (
	"github.com/stylediscover/server/internal/catalog/domain"
)

// Snapshot is the immutable in-memory catalog, built once at startup.
// Runtime reads never touch the database and callers must not mutate the
// returned slices.
type Snapshot struct {
	outfits []domain.Outfit
	byID    map[uint]int
}

// NewSnapshot builds a snapshot preserving the given order.
func NewSnapshot(outfits []domain.Outfit) *Snapshot {
	byID := make(map[uint]int, len(outfits))
	for i, o := range outfits {
		byID[o.ID] = i
	}
	return &Snapshot{outfits: outfits, byID: byID}
}

// Outfits returns the full catalog in load order.
func (s *Snapshot) Outfits() []domain.Outfit {
	return s.outfits
}

// ByID looks up one outfit.
func (s *Snapshot) ByID(id uint) (*domain.Outfit, bool) {
	i, ok := s.byID[id]
	if !ok {
		return nil, false
	}
	return &s.outfits[i], true
}

// Len returns the catalog size.
func (s *Snapshot) Len() int {
	return len(s.outfits)
}

// CategoryCounts returns outfit counts per category.
func (s *Snapshot) CategoryCounts() map[string]int {
	counts := make(map[string]int)
	for _, o := range s.outfits {
		counts[o.Category]++
	}
	return counts
}
