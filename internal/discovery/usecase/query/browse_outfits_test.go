package query

import (
	"context"
	"sync"
	"testing"

	"github.com/lib/pq"

	"github.com/stylediscover/server/internal/catalog"
	"github.com/stylediscover/server/internal/catalog/domain"
	"github.com/stylediscover/server/internal/prefs"
)

type memoryKV struct {
	mu   sync.Mutex
	data map[string]string
}

func newMemoryKV() *memoryKV {
	return &memoryKV{data: make(map[string]string)}
}

func (m *memoryKV) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memoryKV) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func browseCatalog() *catalog.Snapshot {
	return catalog.NewSnapshot([]domain.Outfit{
		{
			ID:       1,
			Name:     "Summer Breeze Dress",
			Category: "Casual",
			Style:    "Bohemian",
			Season:   "Summer",
			Occasion: "Weekend",
			Colors:   pq.StringArray{"White"},
			Price:    89.99,
		},
		{
			ID:       2,
			Name:     "Executive Blazer Set",
			Category: "Business",
			Style:    "Classic",
			Season:   "All Season",
			Occasion: "Work",
			Colors:   pq.StringArray{"Navy"},
			Price:    249.00,
		},
		{
			ID:       3,
			Name:     "Street Graphic Hoodie",
			Category: "Street",
			Style:    "Trendy",
			Season:   "Fall",
			Occasion: "Weekend",
			Colors:   pq.StringArray{"Black"},
			Price:    64.99,
		},
	})
}

func browseIDs(t *testing.T, h *BrowseOutfitsHandler, q BrowseOutfitsQuery) []uint {
	t.Helper()
	outfits, err := h.Handle(context.Background(), q)
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	out := make([]uint, len(outfits))
	for i, o := range outfits {
		out[i] = o.ID
	}
	return out
}

func TestBrowseAppliesStoredSelectionsAcrossAllDimensions(t *testing.T) {
	store := prefs.NewStore(newMemoryKV())
	handler := NewBrowseOutfitsHandler(browseCatalog(), store)

	store.CommitQuiz(context.Background(), 7, prefs.QuizSelections{
		Categories: []string{"Casual", "Street"},
		Colors:     []string{"Black"},
		Styles:     []string{"Trendy"},
		Seasons:    []string{"Fall"},
		Occasions:  []string{"Weekend"},
	})

	got := browseIDs(t, handler, BrowseOutfitsQuery{Quiz: true, UserID: 7})
	if len(got) != 1 || got[0] != 3 {
		t.Fatalf("got ids %v, want [3]", got)
	}
}

func TestBrowseStyleSelectionAloneNarrows(t *testing.T) {
	store := prefs.NewStore(newMemoryKV())
	handler := NewBrowseOutfitsHandler(browseCatalog(), store)

	store.CommitQuiz(context.Background(), 7, prefs.QuizSelections{
		Styles: []string{"Classic"},
	})

	got := browseIDs(t, handler, BrowseOutfitsQuery{Quiz: true, UserID: 7})
	if len(got) != 1 || got[0] != 2 {
		t.Fatalf("got ids %v, want [2]", got)
	}
}

func TestBrowseSeasonSelectionExcludesAllSeasonOutfits(t *testing.T) {
	store := prefs.NewStore(newMemoryKV())
	handler := NewBrowseOutfitsHandler(browseCatalog(), store)

	store.CommitQuiz(context.Background(), 7, prefs.QuizSelections{
		Seasons: []string{"Summer"},
	})

	// Quiz narrowing has no season-agnostic sentinel: the blazer tagged
	// "All Season" is excluded when the shopper selected Summer.
	got := browseIDs(t, handler, BrowseOutfitsQuery{Quiz: true, UserID: 7})
	if len(got) != 1 || got[0] != 1 {
		t.Fatalf("got ids %v, want [1]", got)
	}
}

func TestBrowseIgnoresSelectionsWithoutQuizFlag(t *testing.T) {
	store := prefs.NewStore(newMemoryKV())
	handler := NewBrowseOutfitsHandler(browseCatalog(), store)

	store.CommitQuiz(context.Background(), 7, prefs.QuizSelections{
		Occasions: []string{"Work"},
	})

	got := browseIDs(t, handler, BrowseOutfitsQuery{UserID: 7})
	if len(got) != 3 {
		t.Fatalf("got ids %v, want the full catalog", got)
	}
}
