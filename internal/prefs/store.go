package prefs

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/stylediscover/server/internal/prefs/domain"
	"github.com/stylediscover/server/pkg/logger"
)

// Storage keys, one per tracked field. Each field is its own unit of
// persistence; there is no transactional grouping across fields.
const (
	keyFavorites      = "favorites"
	keyCart           = "cart"
	keyQuizCategories = "quiz_categories"
	keyQuizColors     = "quiz_colors"
	keyQuizStyles     = "quiz_styles"
	keyQuizSeasons    = "quiz_seasons"
	keyQuizOccasions  = "quiz_occasions"
	keyQuizCompleted  = "quiz_completed"
)

// QuizSelections carries the lowercase-normalized output of a finalized
// quiz into the store.
type QuizSelections struct {
	Categories []string
	Colors     []string
	Styles     []string
	Seasons    []string
	Occasions  []string
}

// Store owns per-shopper preference state. In-memory state is
// authoritative for the session; the KV store is a best-effort durable
// cache. Rehydration happens once per shopper on first access, and every
// mutation writes its field back asynchronously without blocking the
// caller. Writes per key are issued in mutation order, but nothing waits
// for completion: last-write-wins is acceptable.
type Store struct {
	kv domain.KVStore

	mu     sync.RWMutex
	states map[uint]domain.PreferenceState
}

func NewStore(kv domain.KVStore) *Store {
	return &Store{
		kv:     kv,
		states: make(map[uint]domain.PreferenceState),
	}
}

func storageKey(userID uint, field string) string {
	return fmt.Sprintf("sd:%d:%s", userID, field)
}

// Get returns the shopper's current state, rehydrating it from the KV
// store on first access.
func (s *Store) Get(ctx context.Context, userID uint) domain.PreferenceState {
	s.mu.RLock()
	state, ok := s.states[userID]
	s.mu.RUnlock()
	if ok {
		return state
	}

	state = s.rehydrate(ctx, userID)

	s.mu.Lock()
	// Another request may have rehydrated concurrently; keep the first.
	if existing, ok := s.states[userID]; ok {
		state = existing
	} else {
		s.states[userID] = state
	}
	s.mu.Unlock()
	return state
}

// ToggleFavorite flips membership and persists the favorites field.
func (s *Store) ToggleFavorite(ctx context.Context, userID, outfitID uint) domain.PreferenceState {
	state := s.Get(ctx, userID)

	s.mu.Lock()
	state = s.states[userID]
	state.Favorites = domain.ToggleFavorite(state.Favorites, outfitID)
	s.states[userID] = state
	s.mu.Unlock()

	s.persist(userID, keyFavorites, favoritesToIDs(state.Favorites))
	return state
}

// AddToCart increments quantity and persists the cart field.
func (s *Store) AddToCart(ctx context.Context, userID, outfitID uint) domain.PreferenceState {
	state := s.Get(ctx, userID)

	s.mu.Lock()
	state = s.states[userID]
	state.Cart = domain.AddToCart(state.Cart, outfitID)
	s.states[userID] = state
	s.mu.Unlock()

	s.persist(userID, keyCart, state.Cart)
	return state
}

// RemoveFromCart decrements quantity and persists the cart field.
func (s *Store) RemoveFromCart(ctx context.Context, userID, outfitID uint) domain.PreferenceState {
	state := s.Get(ctx, userID)

	s.mu.Lock()
	state = s.states[userID]
	state.Cart = domain.RemoveFromCart(state.Cart, outfitID)
	s.states[userID] = state
	s.mu.Unlock()

	s.persist(userID, keyCart, state.Cart)
	return state
}

// CommitQuiz replaces the quiz-derived selections, marks the quiz
// completed, and persists each affected field independently.
func (s *Store) CommitQuiz(ctx context.Context, userID uint, sel QuizSelections) domain.PreferenceState {
	state := s.Get(ctx, userID)

	s.mu.Lock()
	state = s.states[userID]
	state.QuizCategories = toSet(sel.Categories)
	state.QuizColors = toSet(sel.Colors)
	state.QuizStyles = toSet(sel.Styles)
	state.QuizSeasons = toSet(sel.Seasons)
	state.QuizOccasions = toSet(sel.Occasions)
	state.QuizCompleted = true
	s.states[userID] = state
	s.mu.Unlock()

	s.persist(userID, keyQuizCategories, setToSlice(state.QuizCategories))
	s.persist(userID, keyQuizColors, setToSlice(state.QuizColors))
	s.persist(userID, keyQuizStyles, setToSlice(state.QuizStyles))
	s.persist(userID, keyQuizSeasons, setToSlice(state.QuizSeasons))
	s.persist(userID, keyQuizOccasions, setToSlice(state.QuizOccasions))
	s.persist(userID, keyQuizCompleted, true)
	return state
}

// persist writes one field back, fire-and-forget. Failures are swallowed:
// the KV store is a best-effort cache, never a correctness dependency
// within a session. The write is serialized before the goroutine starts so
// it captures the state as of this mutation.
func (s *Store) persist(userID uint, field string, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		logger.Logger.Debug().Err(err).Str("field", field).Msg("Failed to encode preference field")
		return
	}
	key := storageKey(userID, field)
	go func() {
		if err := s.kv.Set(context.Background(), key, string(data)); err != nil {
			logger.Logger.Debug().Err(err).Str("key", key).Msg("Preference write failed")
		}
	}()
}

// rehydrate loads every tracked field, substituting the default for any
// key that is absent, unreadable, or unparseable.
func (s *Store) rehydrate(ctx context.Context, userID uint) domain.PreferenceState {
	state := domain.NewPreferenceState()

	var ids []uint
	if s.load(ctx, userID, keyFavorites, &ids) {
		for _, id := range ids {
			state.Favorites[id] = struct{}{}
		}
	}

	var cart domain.Cart
	if s.load(ctx, userID, keyCart, &cart) && cart != nil {
		// Drop any non-positive quantities a stale writer may have left.
		for id, q := range cart {
			if q > 0 {
				state.Cart[id] = q
			}
		}
	}

	state.QuizCategories = s.loadSet(ctx, userID, keyQuizCategories)
	state.QuizColors = s.loadSet(ctx, userID, keyQuizColors)
	state.QuizStyles = s.loadSet(ctx, userID, keyQuizStyles)
	state.QuizSeasons = s.loadSet(ctx, userID, keyQuizSeasons)
	state.QuizOccasions = s.loadSet(ctx, userID, keyQuizOccasions)

	var completed bool
	if s.load(ctx, userID, keyQuizCompleted, &completed) {
		state.QuizCompleted = completed
	}

	return state
}

// load reads and decodes one field; false means "use the default".
func (s *Store) load(ctx context.Context, userID uint, field string, out interface{}) bool {
	key := storageKey(userID, field)
	raw, found, err := s.kv.Get(ctx, key)
	if err != nil {
		logger.Logger.Debug().Err(err).Str("key", key).Msg("Preference read failed")
		return false
	}
	if !found {
		return false
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		logger.Logger.Debug().Err(err).Str("key", key).Msg("Discarding malformed preference value")
		return false
	}
	return true
}

func (s *Store) loadSet(ctx context.Context, userID uint, field string) domain.StringSet {
	var values []string
	if !s.load(ctx, userID, field, &values) {
		return domain.StringSet{}
	}
	return toSet(values)
}

func toSet(values []string) domain.StringSet {
	set := make(domain.StringSet, len(values))
	for _, v := range values {
		set[strings.ToLower(strings.TrimSpace(v))] = struct{}{}
	}
	return set
}

func setToSlice(set domain.StringSet) []string {
	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	return out
}

func favoritesToIDs(favorites domain.Favorites) []uint {
	out := make([]uint, 0, len(favorites))
	for id := range favorites {
		out = append(out, id)
	}
	return out
}
