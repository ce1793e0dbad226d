package prefs

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

// fakeKV is an in-memory KVStore with optional fault injection.
type fakeKV struct {
	mu     sync.Mutex
	data   map[string]string
	failed bool
}

func newFakeKV() *fakeKV {
	return &fakeKV{data: make(map[string]string)}
}

func (f *fakeKV) Get(ctx context.Context, key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failed {
		return "", false, errors.New("kv unavailable")
	}
	v, ok := f.data[key]
	return v, ok, nil
}

func (f *fakeKV) Set(ctx context.Context, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failed {
		return errors.New("kv unavailable")
	}
	f.data[key] = value
	return nil
}

func (f *fakeKV) get(key string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.data[key]
	return v, ok
}

// waitForKey polls until the asynchronous write lands or the deadline passes.
func waitForKey(t *testing.T, kv *fakeKV, key string) string {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if v, ok := kv.get(key); ok {
			return v
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("key %q never written", key)
	return ""
}

func TestGetReturnsDefaultsForNewShopper(t *testing.T) {
	store := NewStore(newFakeKV())

	state := store.Get(context.Background(), 1)
	if len(state.Favorites) != 0 || len(state.Cart) != 0 {
		t.Fatalf("expected empty state, got %+v", state)
	}
	if state.QuizCompleted {
		t.Fatal("expected quiz incomplete for new shopper")
	}
}

func TestStoreRehydratesFromKV(t *testing.T) {
	kv := newFakeKV()
	kv.data["sd:7:favorites"] = "[10,20]"
	kv.data["sd:7:cart"] = `{"30":2}`
	kv.data["sd:7:quiz_categories"] = `["Street","Casual"]`
	kv.data["sd:7:quiz_completed"] = "true"

	store := NewStore(kv)
	state := store.Get(context.Background(), 7)

	if _, ok := state.Favorites[10]; !ok {
		t.Fatal("favorite 10 not rehydrated")
	}
	if _, ok := state.Favorites[20]; !ok {
		t.Fatal("favorite 20 not rehydrated")
	}
	if state.Cart[30] != 2 {
		t.Fatalf("cart quantity not rehydrated: %v", state.Cart)
	}
	// Selections are lowercased on load.
	if _, ok := state.QuizCategories["street"]; !ok {
		t.Fatalf("quiz categories not rehydrated: %v", state.QuizCategories)
	}
	if !state.QuizCompleted {
		t.Fatal("quiz completion flag not rehydrated")
	}
}

func TestStoreSubstitutesDefaultsForMalformedValues(t *testing.T) {
	kv := newFakeKV()
	kv.data["sd:3:favorites"] = "{not json"
	kv.data["sd:3:cart"] = `["wrong","shape"]`
	kv.data["sd:3:quiz_completed"] = "maybe"

	store := NewStore(kv)
	state := store.Get(context.Background(), 3)

	if len(state.Favorites) != 0 || len(state.Cart) != 0 || state.QuizCompleted {
		t.Fatalf("expected defaults for malformed fields, got %+v", state)
	}
}

func TestStoreDropsNonPositiveCartQuantitiesOnLoad(t *testing.T) {
	kv := newFakeKV()
	kv.data["sd:4:cart"] = `{"1":0,"2":-3,"3":2}`

	store := NewStore(kv)
	state := store.Get(context.Background(), 4)

	if len(state.Cart) != 1 || state.Cart[3] != 2 {
		t.Fatalf("expected only positive quantities, got %v", state.Cart)
	}
}

func TestToggleFavoritePersistsAsynchronously(t *testing.T) {
	kv := newFakeKV()
	store := NewStore(kv)

	state := store.ToggleFavorite(context.Background(), 9, 42)
	if _, ok := state.Favorites[42]; !ok {
		t.Fatal("favorite not recorded in memory")
	}

	if got := waitForKey(t, kv, "sd:9:favorites"); got != "[42]" {
		t.Fatalf("persisted %q, want %q", got, "[42]")
	}
}

func TestMutationsSurviveKVFailure(t *testing.T) {
	kv := newFakeKV()
	kv.failed = true
	store := NewStore(kv)
	ctx := context.Background()

	state := store.AddToCart(ctx, 5, 100)
	if state.Cart[100] != 1 {
		t.Fatalf("in-memory cart not updated: %v", state.Cart)
	}

	state = store.ToggleFavorite(ctx, 5, 100)
	if _, ok := state.Favorites[100]; !ok {
		t.Fatal("in-memory favorites not updated")
	}

	// Later reads in the same session see the mutations.
	state = store.Get(ctx, 5)
	if state.Cart[100] != 1 {
		t.Fatalf("session state lost after failed writes: %v", state.Cart)
	}
}

func TestCommitQuizStoresLowercasedSelections(t *testing.T) {
	kv := newFakeKV()
	store := NewStore(kv)

	state := store.CommitQuiz(context.Background(), 2, QuizSelections{
		Categories: []string{"Street", "Evening"},
		Colors:     []string{"Black", "Jewel Tones"},
	})

	if !state.QuizCompleted {
		t.Fatal("expected quiz marked complete")
	}
	if _, ok := state.QuizCategories["street"]; !ok {
		t.Fatalf("categories not lowercased: %v", state.QuizCategories)
	}
	if _, ok := state.QuizColors["jewel tones"]; !ok {
		t.Fatalf("colors not lowercased: %v", state.QuizColors)
	}

	if got := waitForKey(t, kv, "sd:2:quiz_completed"); got != "true" {
		t.Fatalf("persisted %q, want %q", got, "true")
	}
}

func TestCommitQuizReplacesPriorSelections(t *testing.T) {
	kv := newFakeKV()
	store := NewStore(kv)
	ctx := context.Background()

	store.CommitQuiz(ctx, 6, QuizSelections{Categories: []string{"Casual"}})
	state := store.CommitQuiz(ctx, 6, QuizSelections{Categories: []string{"Business"}})

	if _, ok := state.QuizCategories["casual"]; ok {
		t.Fatalf("stale selection survived: %v", state.QuizCategories)
	}
	if _, ok := state.QuizCategories["business"]; !ok {
		t.Fatalf("new selection missing: %v", state.QuizCategories)
	}
}
