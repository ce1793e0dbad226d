package query

import (
	"context"

	"github.com/stylediscover/server/internal/catalog"
	catalogdomain "github.com/stylediscover/server/internal/catalog/domain"
	"github.com/stylediscover/server/internal/discovery"
	"github.com/stylediscover/server/internal/prefs"
)

// BrowseOutfitsQuery represents the query for the filtered grid view.
// Zero-valued dimensions impose no constraint.
type BrowseOutfitsQuery struct {
	Search   string
	Category string
	Style    string
	Season   string
	Occasion string
	Colors   []string
	MinPrice *float64
	MaxPrice *float64

	// Quiz activates quiz-derived narrowing from the shopper's stored
	// selections. It is an explicit switch: stored selections are ignored
	// while it is off, even when non-empty.
	Quiz   bool
	UserID uint
}

// BrowseOutfitsHandler handles catalog browsing
type BrowseOutfitsHandler struct {
	catalog *catalog.Snapshot
	store   *prefs.Store
}

// NewBrowseOutfitsHandler creates a new browse outfits handler
func NewBrowseOutfitsHandler(snapshot *catalog.Snapshot, store *prefs.Store) *BrowseOutfitsHandler {
	return &BrowseOutfitsHandler{catalog: snapshot, store: store}
}

// Handle executes the browse query against the catalog snapshot
func (h *BrowseOutfitsHandler) Handle(ctx context.Context, q BrowseOutfitsQuery) ([]catalogdomain.Outfit, error) {
	return discovery.Filter(h.catalog.Outfits(), h.criteria(ctx, q)), nil
}

func (h *BrowseOutfitsHandler) criteria(ctx context.Context, q BrowseOutfitsQuery) discovery.Criteria {
	c := discovery.DefaultCriteria()
	c.Search = q.Search
	if q.Category != "" {
		c.Category = q.Category
	}
	if q.Style != "" {
		c.Style = q.Style
	}
	if q.Season != "" {
		c.Season = q.Season
	}
	if q.Occasion != "" {
		c.Occasion = q.Occasion
	}
	c.Colors = q.Colors
	if q.MinPrice != nil {
		c.Price.Min = *q.MinPrice
	}
	if q.MaxPrice != nil {
		c.Price.Max = *q.MaxPrice
	}

	if q.Quiz {
		state := h.store.Get(ctx, q.UserID)
		c.QuizActive = true
		c.QuizCategories = state.QuizCategories
		c.QuizColors = state.QuizColors
		c.QuizStyles = state.QuizStyles
		c.QuizSeasons = state.QuizSeasons
		c.QuizOccasions = state.QuizOccasions
	}
	return c
}
