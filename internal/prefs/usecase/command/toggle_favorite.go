package command

import (
	"context"
	"fmt"

	"github.com/stylediscover/server/internal/catalog"
	"github.com/stylediscover/server/internal/prefs"
	prefsdomain "github.com/stylediscover/server/internal/prefs/domain"
	"github.com/stylediscover/server/kafka"
	"github.com/stylediscover/server/pkg/logger"
)

// ToggleFavoriteCommand represents the command to flip a favorite
type ToggleFavoriteCommand struct {
	UserID   uint
	OutfitID uint
}

// ToggleFavoriteHandler handles favorite toggling
type ToggleFavoriteHandler struct {
	store     *prefs.Store
	catalog   *catalog.Snapshot
	publisher *kafka.Publisher
}

// NewToggleFavoriteHandler creates a new toggle favorite handler
func NewToggleFavoriteHandler(store *prefs.Store, snapshot *catalog.Snapshot, publisher *kafka.Publisher) *ToggleFavoriteHandler {
	return &ToggleFavoriteHandler{store: store, catalog: snapshot, publisher: publisher}
}

// Handle executes the toggle favorite command
func (h *ToggleFavoriteHandler) Handle(ctx context.Context, cmd ToggleFavoriteCommand) (prefsdomain.PreferenceState, error) {
	outfit, ok := h.catalog.ByID(cmd.OutfitID)
	if !ok {
		return prefsdomain.PreferenceState{}, fmt.Errorf("outfit %d not found", cmd.OutfitID)
	}

	state := h.store.ToggleFavorite(ctx, cmd.UserID, cmd.OutfitID)
	_, favorited := state.Favorites[cmd.OutfitID]

	// Best-effort event; never fails the request.
	go func() {
		err := h.publisher.PublishOutfitFavorited(context.Background(), kafka.OutfitFavoritedEvent{
			UserID:    cmd.UserID,
			OutfitID:  cmd.OutfitID,
			Category:  outfit.Category,
			Favorited: favorited,
		})
		if err != nil {
			logger.Logger.Debug().Err(err).Uint("outfit_id", cmd.OutfitID).Msg("Favorite event not published")
		}
	}()

	return state, nil
}
