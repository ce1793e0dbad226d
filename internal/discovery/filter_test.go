package discovery

import (
	"testing"

	"github.com/lib/pq"

	"github.com/stylediscover/server/internal/catalog/domain"
)

func sampleCatalog() []domain.Outfit {
	return []domain.Outfit{
		{
			ID:          1,
			Name:        "Summer Breeze Dress",
			Description: "Light floral dress perfect for warm days",
			Category:    "Casual",
			Style:       "Bohemian",
			Season:      "Summer",
			Occasion:    "Weekend",
			Colors:      pq.StringArray{"White", "Floral Pink"},
			Tags:        pq.StringArray{"dress", "floral", "lightweight"},
			Price:       89.99,
		},
		{
			ID:          2,
			Name:        "Executive Blazer Set",
			Description: "Tailored blazer with matching trousers",
			Category:    "Business",
			Style:       "Classic",
			Season:      "All Season",
			Occasion:    "Work",
			Colors:      pq.StringArray{"Navy", "Charcoal Gray"},
			Tags:        pq.StringArray{"blazer", "tailored", "professional"},
			Price:       249.00,
		},
		{
			ID:          3,
			Name:        "Winter Wool Coat",
			Description: "Heavy wool coat for cold weather",
			Category:    "Seasonal",
			Style:       "Classic",
			Season:      "Winter",
			Occasion:    "Everyday",
			Colors:      pq.StringArray{"Camel"},
			Tags:        pq.StringArray{"coat", "wool", "warm"},
			Price:       320.50,
		},
		{
			ID:          4,
			Name:        "Street Graphic Hoodie",
			Description: "Oversized hoodie with bold print",
			Category:    "Street",
			Style:       "Trendy",
			Season:      "Fall",
			Occasion:    "Weekend",
			Colors:      pq.StringArray{"Black", "Neon Green"},
			Tags:        pq.StringArray{"hoodie", "oversized", "graphic"},
			Price:       64.99,
		},
	}
}

func ids(outfits []domain.Outfit) []uint {
	out := make([]uint, len(outfits))
	for i, o := range outfits {
		out[i] = o.ID
	}
	return out
}

func assertIDs(t *testing.T, got []domain.Outfit, want ...uint) {
	t.Helper()
	gotIDs := ids(got)
	if len(gotIDs) != len(want) {
		t.Fatalf("got ids %v, want %v", gotIDs, want)
	}
	for i := range want {
		if gotIDs[i] != want[i] {
			t.Fatalf("got ids %v, want %v", gotIDs, want)
		}
	}
}

func TestFilterDefaultCriteriaReturnsWholeCatalog(t *testing.T) {
	catalog := sampleCatalog()
	got := Filter(catalog, DefaultCriteria())
	assertIDs(t, got, 1, 2, 3, 4)
}

func TestFilterCategoryIsCaseInsensitive(t *testing.T) {
	catalog := sampleCatalog()

	c := DefaultCriteria()
	c.Category = "bUsInEsS"
	assertIDs(t, Filter(catalog, c), 2)

	c.Category = Wildcard
	assertIDs(t, Filter(catalog, c), 1, 2, 3, 4)
}

func TestFilterSeasonAdmitsAllSeasonOutfits(t *testing.T) {
	catalog := sampleCatalog()

	c := DefaultCriteria()
	c.Season = "Winter"
	// The blazer is tagged "All Season" and passes any season filter.
	assertIDs(t, Filter(catalog, c), 2, 3)
}

func TestFilterPriceBoundsAreInclusive(t *testing.T) {
	catalog := sampleCatalog()

	c := DefaultCriteria()
	c.Price = PriceRange{Min: 89.99, Max: 249.00}
	assertIDs(t, Filter(catalog, c), 1, 2)
}

func TestFilterInvertedPriceRangeMatchesNothing(t *testing.T) {
	catalog := sampleCatalog()

	c := DefaultCriteria()
	c.Price = PriceRange{Min: 100, Max: 50}
	if got := Filter(catalog, c); len(got) != 0 {
		t.Fatalf("expected no matches, got %v", ids(got))
	}
}

func TestFilterColorsMatchAnyBySubstring(t *testing.T) {
	catalog := sampleCatalog()

	c := DefaultCriteria()
	c.Colors = []string{"gray", "pink"}
	// "Charcoal Gray" contains "gray", "Floral Pink" contains "pink".
	assertIDs(t, Filter(catalog, c), 1, 2)
}

func TestFilterSearchCoversNameDescriptionAndTags(t *testing.T) {
	catalog := sampleCatalog()

	cases := []struct {
		term string
		want []uint
	}{
		{"breeze", []uint{1}},       // name
		{"cold weather", []uint{3}}, // description
		{"oversized", []uint{4}},    // tag
		{"WOOL", []uint{3}},         // case-insensitive
		{"nonexistent", []uint{}},   // no match
	}

	for _, tc := range cases {
		c := DefaultCriteria()
		c.Search = tc.term
		assertIDs(t, Filter(catalog, c), tc.want...)
	}
}

func TestFilterDimensionsAreConjunctive(t *testing.T) {
	catalog := sampleCatalog()

	c := DefaultCriteria()
	c.Occasion = "Weekend"
	c.Style = "Trendy"
	assertIDs(t, Filter(catalog, c), 4)
}

func TestFilterQuizNarrowingRequiresActiveFlag(t *testing.T) {
	catalog := sampleCatalog()

	c := DefaultCriteria()
	c.QuizCategories = map[string]struct{}{"street": {}}
	c.QuizColors = map[string]struct{}{"black": {}}

	// Populated sets are ignored while the switch is off.
	assertIDs(t, Filter(catalog, c), 1, 2, 3, 4)

	c.QuizActive = true
	assertIDs(t, Filter(catalog, c), 4)
}

func TestFilterQuizActiveWithEmptySetsImposesNoConstraint(t *testing.T) {
	catalog := sampleCatalog()

	c := DefaultCriteria()
	c.QuizActive = true
	c.QuizCategories = map[string]struct{}{}
	c.QuizColors = map[string]struct{}{}
	assertIDs(t, Filter(catalog, c), 1, 2, 3, 4)
}

func TestFilterQuizStyleNarrowsByMembership(t *testing.T) {
	catalog := sampleCatalog()

	c := DefaultCriteria()
	c.QuizActive = true
	c.QuizStyles = map[string]struct{}{"classic": {}}
	assertIDs(t, Filter(catalog, c), 2, 3)
}

func TestFilterQuizSeasonHasNoAllSeasonSentinel(t *testing.T) {
	catalog := sampleCatalog()

	c := DefaultCriteria()
	c.QuizActive = true
	c.QuizSeasons = map[string]struct{}{"winter": {}}
	// The "All Season" blazer passes the browse season filter but not a
	// quiz season selection: only outfits tagged with the chosen season.
	assertIDs(t, Filter(catalog, c), 3)
}

func TestFilterQuizOccasionNarrowsByMembership(t *testing.T) {
	catalog := sampleCatalog()

	c := DefaultCriteria()
	c.QuizActive = true
	c.QuizOccasions = map[string]struct{}{"weekend": {}}
	assertIDs(t, Filter(catalog, c), 1, 4)
}

func TestFilterQuizSetsAreConjunctive(t *testing.T) {
	catalog := sampleCatalog()

	c := DefaultCriteria()
	c.QuizActive = true
	c.QuizStyles = map[string]struct{}{"bohemian": {}, "trendy": {}}
	c.QuizOccasions = map[string]struct{}{"weekend": {}}
	c.QuizSeasons = map[string]struct{}{"fall": {}}
	assertIDs(t, Filter(catalog, c), 4)
}

func TestFilterQuizColorMatchesExactLowercasedEntry(t *testing.T) {
	catalog := sampleCatalog()

	c := DefaultCriteria()
	c.QuizActive = true
	c.QuizColors = map[string]struct{}{"camel": {}, "navy": {}}
	assertIDs(t, Filter(catalog, c), 2, 3)
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	catalog := sampleCatalog()
	before := ids(catalog)

	c := DefaultCriteria()
	c.Category = "Street"
	Filter(catalog, c)

	after := ids(catalog)
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("catalog order changed: %v -> %v", before, after)
		}
	}
}
