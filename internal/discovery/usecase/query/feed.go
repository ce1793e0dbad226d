package query

import (
	"context"

	catalogdomain "github.com/stylediscover/server/internal/catalog/domain"
	"github.com/stylediscover/server/internal/discovery"
)

// FeedQuery represents the query for the single-item discovery feed
type FeedQuery struct {
	BrowseOutfitsQuery
}

// FeedHandler handles the interleaved feed view
type FeedHandler struct {
	browse *BrowseOutfitsHandler
}

// NewFeedHandler creates a new feed handler
func NewFeedHandler(browse *BrowseOutfitsHandler) *FeedHandler {
	return &FeedHandler{browse: browse}
}

// Handle filters the catalog, then interleaves the result round-robin
// across categories so the feed varies item to item.
func (h *FeedHandler) Handle(ctx context.Context, q FeedQuery) ([]catalogdomain.Outfit, error) {
	filtered, err := h.browse.Handle(ctx, q.BrowseOutfitsQuery)
	if err != nil {
		return nil, err
	}
	return discovery.Interleave(filtered), nil
}
