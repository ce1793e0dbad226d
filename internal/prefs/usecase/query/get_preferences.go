package query

import (
	"context"
	"sort"

	"github.com/stylediscover/server/internal/prefs"
)

// GetPreferencesQuery represents the query for a shopper's state
type GetPreferencesQuery struct {
	UserID uint
}

// Preferences is the read model returned to the rendering layer
type Preferences struct {
	Favorites      []uint         `json:"favorites"`
	Cart           map[uint]int   `json:"cart"`
	QuizCategories []string       `json:"quiz_categories"`
	QuizColors     []string       `json:"quiz_colors"`
	QuizStyles     []string       `json:"quiz_styles"`
	QuizSeasons    []string       `json:"quiz_seasons"`
	QuizOccasions  []string       `json:"quiz_occasions"`
	QuizCompleted  bool           `json:"quiz_completed"`
}

// GetPreferencesHandler handles preference reads
type GetPreferencesHandler struct {
	store *prefs.Store
}

// NewGetPreferencesHandler creates a new get preferences handler
func NewGetPreferencesHandler(store *prefs.Store) *GetPreferencesHandler {
	return &GetPreferencesHandler{store: store}
}

// Handle executes the query, returning a stable (sorted) read model
func (h *GetPreferencesHandler) Handle(ctx context.Context, q GetPreferencesQuery) (*Preferences, error) {
	state := h.store.Get(ctx, q.UserID)

	favorites := make([]uint, 0, len(state.Favorites))
	for id := range state.Favorites {
		favorites = append(favorites, id)
	}
	sort.Slice(favorites, func(i, j int) bool { return favorites[i] < favorites[j] })

	cart := make(map[uint]int, len(state.Cart))
	for id, qty := range state.Cart {
		cart[id] = qty
	}

	return &Preferences{
		Favorites:      favorites,
		Cart:           cart,
		QuizCategories: sortedSlice(state.QuizCategories),
		QuizColors:     sortedSlice(state.QuizColors),
		QuizStyles:     sortedSlice(state.QuizStyles),
		QuizSeasons:    sortedSlice(state.QuizSeasons),
		QuizOccasions:  sortedSlice(state.QuizOccasions),
		QuizCompleted:  state.QuizCompleted,
	}, nil
}

func sortedSlice(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
