package query

import (
	"context"
	"fmt"

	"github.com/stylediscover/server/internal/catalog"
	catalogdomain "github.com/stylediscover/server/internal/catalog/domain"
)

// GetOutfitQuery represents the query for one outfit
type GetOutfitQuery struct {
	ID uint
}

// GetOutfitHandler handles single outfit lookups
type GetOutfitHandler struct {
	catalog *catalog.Snapshot
}

// NewGetOutfitHandler creates a new get outfit handler
func NewGetOutfitHandler(snapshot *catalog.Snapshot) *GetOutfitHandler {
	return &GetOutfitHandler{catalog: snapshot}
}

// Handle executes the get outfit query
func (h *GetOutfitHandler) Handle(ctx context.Context, q GetOutfitQuery) (*catalogdomain.Outfit, error) {
	outfit, ok := h.catalog.ByID(q.ID)
	if !ok {
		return nil, fmt.Errorf("outfit %d not found", q.ID)
	}
	return outfit, nil
}
