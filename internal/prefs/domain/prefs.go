package domain

import "context"

// Cart maps outfit id to quantity. Invariant: quantities are always
// positive; an entry that would drop to zero is deleted instead.
type Cart map[uint]int

// Favorites is a membership set of outfit ids.
type Favorites map[uint]struct{}

// StringSet holds lowercased quiz selections for one dimension.
type StringSet map[string]struct{}

// PreferenceState is one shopper's session state. It is rehydrated from the
// KV store on first access and mutated through copy-on-write transforms so
// readers holding a snapshot never observe a partial update.
type PreferenceState struct {
	Favorites      Favorites
	Cart           Cart
	QuizCategories StringSet
	QuizColors     StringSet
	QuizStyles     StringSet
	QuizSeasons    StringSet
	QuizOccasions  StringSet
	QuizCompleted  bool
}

// NewPreferenceState returns the default (empty) state.
func NewPreferenceState() PreferenceState {
	return PreferenceState{
		Favorites:      Favorites{},
		Cart:           Cart{},
		QuizCategories: StringSet{},
		QuizColors:     StringSet{},
		QuizStyles:     StringSet{},
		QuizSeasons:    StringSet{},
		QuizOccasions:  StringSet{},
	}
}

// KVStore is the durable storage collaborator. Both operations are
// best-effort: callers treat failures as non-fatal and keep the in-memory
// state authoritative for the session.
type KVStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}
