package catalog

import (
	"testing"

	"github.com/stylediscover/server/internal/catalog/domain"
	"github.com/stylediscover/server/internal/catalog/repository"
)

func TestSnapshotLookup(t *testing.T) {
	outfits := []domain.Outfit{
		{ID: 1, Category: "Casual"},
		{ID: 5, Category: "Business"},
		{ID: 9, Category: "Casual"},
	}
	snapshot := NewSnapshot(outfits)

	if snapshot.Len() != 3 {
		t.Fatalf("got len %d, want 3", snapshot.Len())
	}

	got, ok := snapshot.ByID(5)
	if !ok || got.ID != 5 {
		t.Fatalf("lookup of 5 failed: %v, %v", got, ok)
	}

	if _, ok := snapshot.ByID(999); ok {
		t.Fatal("expected lookup miss for unknown id")
	}
}

func TestSnapshotCategoryCounts(t *testing.T) {
	outfits := []domain.Outfit{
		{ID: 1, Category: "Casual"},
		{ID: 2, Category: "Business"},
		{ID: 3, Category: "Casual"},
	}
	counts := NewSnapshot(outfits).CategoryCounts()

	if counts["Casual"] != 2 || counts["Business"] != 1 {
		t.Fatalf("unexpected counts: %v", counts)
	}
}

func TestSeedDatasetIsWellFormed(t *testing.T) {
	outfits := repository.SeedOutfits()
	if len(outfits) == 0 {
		t.Fatal("seed dataset is empty")
	}

	seen := make(map[uint]bool, len(outfits))
	skus := make(map[string]bool, len(outfits))
	for _, o := range outfits {
		if seen[o.ID] {
			t.Fatalf("duplicate outfit id %d", o.ID)
		}
		seen[o.ID] = true

		if skus[o.SKU] {
			t.Fatalf("duplicate SKU %q", o.SKU)
		}
		skus[o.SKU] = true

		if o.Name == "" || o.Category == "" || o.Season == "" {
			t.Fatalf("outfit %d missing required fields: %+v", o.ID, o)
		}
		if o.Price <= 0 {
			t.Fatalf("outfit %d has non-positive price %f", o.ID, o.Price)
		}
		if len(o.Gallery()) == 0 {
			t.Fatalf("outfit %d has no images", o.ID)
		}
	}

	snapshot := NewSnapshot(outfits)
	total := 0
	for _, n := range snapshot.CategoryCounts() {
		total += n
	}
	if total != snapshot.Len() {
		t.Fatalf("category counts sum %d, want %d", total, snapshot.Len())
	}
}
