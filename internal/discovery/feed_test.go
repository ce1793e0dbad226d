package discovery

import (
	"testing"

	"github.com/stylediscover/server/internal/catalog/domain"
)

func outfit(id uint, category string) domain.Outfit {
	return domain.Outfit{ID: id, Category: category}
}

func TestInterleaveRoundRobinAcrossCategories(t *testing.T) {
	items := []domain.Outfit{
		outfit(1, "Casual"),
		outfit(2, "Casual"),
		outfit(3, "Business"),
		outfit(4, "Street"),
		outfit(5, "Street"),
		outfit(6, "Street"),
	}

	// Round one takes the head of each group in first-seen order, round two
	// the next of each group that still has one, and so on.
	assertIDs(t, Interleave(items), 1, 3, 4, 2, 5, 6)
}

func TestInterleaveGroupsCategoriesCaseInsensitively(t *testing.T) {
	items := []domain.Outfit{
		outfit(1, "Casual"),
		outfit(2, "casual"),
		outfit(3, "CASUAL"),
	}

	// All three share one group, so input order is preserved.
	assertIDs(t, Interleave(items), 1, 2, 3)
}

func TestInterleaveSingleCategoryPreservesOrder(t *testing.T) {
	items := []domain.Outfit{
		outfit(7, "Evening"),
		outfit(8, "Evening"),
		outfit(9, "Evening"),
	}
	assertIDs(t, Interleave(items), 7, 8, 9)
}

func TestInterleaveEmptyInput(t *testing.T) {
	got := Interleave(nil)
	if got == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(got) != 0 {
		t.Fatalf("expected empty slice, got %d items", len(got))
	}
}

func TestInterleaveIsAPermutation(t *testing.T) {
	items := []domain.Outfit{
		outfit(1, "A"), outfit(2, "B"), outfit(3, "A"), outfit(4, "C"),
		outfit(5, "B"), outfit(6, "A"), outfit(7, "C"), outfit(8, "D"),
	}

	got := Interleave(items)
	if len(got) != len(items) {
		t.Fatalf("length changed: got %d, want %d", len(got), len(items))
	}

	seen := make(map[uint]int)
	for _, o := range got {
		seen[o.ID]++
	}
	for _, o := range items {
		if seen[o.ID] != 1 {
			t.Fatalf("outfit %d appears %d times", o.ID, seen[o.ID])
		}
	}
}

func TestInterleaveDeterministic(t *testing.T) {
	items := []domain.Outfit{
		outfit(1, "A"), outfit(2, "B"), outfit(3, "B"), outfit(4, "A"),
	}

	first := ids(Interleave(items))
	second := ids(Interleave(items))
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("non-deterministic output: %v vs %v", first, second)
		}
	}
}
