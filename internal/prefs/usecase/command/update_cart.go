package command

import (
	"context"
	"fmt"

	"github.com/stylediscover/server/internal/catalog"
	"github.com/stylediscover/server/internal/prefs"
	prefsdomain "github.com/stylediscover/server/internal/prefs/domain"
)

// AddToCartCommand represents the command to add one unit of an outfit
type AddToCartCommand struct {
	UserID   uint
	OutfitID uint
}

// AddToCartHandler handles cart additions
type AddToCartHandler struct {
	store   *prefs.Store
	catalog *catalog.Snapshot
}

// NewAddToCartHandler creates a new add to cart handler
func NewAddToCartHandler(store *prefs.Store, snapshot *catalog.Snapshot) *AddToCartHandler {
	return &AddToCartHandler{store: store, catalog: snapshot}
}

// Handle executes the add to cart command
func (h *AddToCartHandler) Handle(ctx context.Context, cmd AddToCartCommand) (prefsdomain.PreferenceState, error) {
	if _, ok := h.catalog.ByID(cmd.OutfitID); !ok {
		return prefsdomain.PreferenceState{}, fmt.Errorf("outfit %d not found", cmd.OutfitID)
	}
	return h.store.AddToCart(ctx, cmd.UserID, cmd.OutfitID), nil
}

// RemoveFromCartCommand represents the command to remove one unit
type RemoveFromCartCommand struct {
	UserID   uint
	OutfitID uint
}

// RemoveFromCartHandler handles cart removals
type RemoveFromCartHandler struct {
	store *prefs.Store
}

// NewRemoveFromCartHandler creates a new remove from cart handler
func NewRemoveFromCartHandler(store *prefs.Store) *RemoveFromCartHandler {
	return &RemoveFromCartHandler{store: store}
}

// Handle executes the remove from cart command. Removing an id that is not
// in the cart is a no-op, not an error.
func (h *RemoveFromCartHandler) Handle(ctx context.Context, cmd RemoveFromCartCommand) (prefsdomain.PreferenceState, error) {
	return h.store.RemoveFromCart(ctx, cmd.UserID, cmd.OutfitID), nil
}
