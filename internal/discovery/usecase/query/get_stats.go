package query

import (
	"context"

	"github.com/stylediscover/server/internal/catalog"
)

// GetStatsQuery represents the query for catalog statistics
type GetStatsQuery struct{}

// CatalogStats summarizes the loaded snapshot
type CatalogStats struct {
	TotalOutfits int            `json:"total_outfits"`
	ByCategory   map[string]int `json:"by_category"`
}

// GetStatsHandler handles catalog statistics
type GetStatsHandler struct {
	catalog *catalog.Snapshot
}

// NewGetStatsHandler creates a new get stats handler
func NewGetStatsHandler(snapshot *catalog.Snapshot) *GetStatsHandler {
	return &GetStatsHandler{catalog: snapshot}
}

// Handle executes the stats query
func (h *GetStatsHandler) Handle(ctx context.Context, q GetStatsQuery) (*CatalogStats, error) {
	return &CatalogStats{
		TotalOutfits: h.catalog.Len(),
		ByCategory:   h.catalog.CategoryCounts(),
	}, nil
}
