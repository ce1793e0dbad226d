package command

import (
	"context"
	"sync"
	"testing"

	"github.com/stylediscover/server/internal/prefs"
)

type stubKV struct {
	mu   sync.Mutex
	data map[string]string
}

func newStubKV() *stubKV {
	return &stubKV{data: make(map[string]string)}
}

func (s *stubKV) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *stubKV) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return nil
}

func TestSaveQuizSelectionsStoresAllFiveDimensions(t *testing.T) {
	store := prefs.NewStore(newStubKV())
	handler := NewSaveQuizSelectionsHandler(store)

	state, err := handler.Handle(context.Background(), SaveQuizSelectionsCommand{
		UserID:     3,
		Categories: []string{"Casual"},
		Colors:     []string{"Black", "White"},
		Styles:     []string{"Trendy"},
		Seasons:    []string{"Fall"},
		Occasions:  []string{"Weekend"},
	})
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}

	if !state.QuizCompleted {
		t.Fatalf("expected quiz marked completed")
	}
	for set, want := range map[string]struct {
		got  map[string]struct{}
		keys []string
	}{
		"categories": {state.QuizCategories, []string{"casual"}},
		"colors":     {state.QuizColors, []string{"black", "white"}},
		"styles":     {state.QuizStyles, []string{"trendy"}},
		"seasons":    {state.QuizSeasons, []string{"fall"}},
		"occasions":  {state.QuizOccasions, []string{"weekend"}},
	} {
		if len(want.got) != len(want.keys) {
			t.Fatalf("%s: got %d entries, want %d", set, len(want.got), len(want.keys))
		}
		for _, k := range want.keys {
			if _, ok := want.got[k]; !ok {
				t.Fatalf("%s: missing lowercased entry %q", set, k)
			}
		}
	}
}

func TestSaveQuizSelectionsReplacesPriorSelections(t *testing.T) {
	store := prefs.NewStore(newStubKV())
	handler := NewSaveQuizSelectionsHandler(store)

	ctx := context.Background()
	if _, err := handler.Handle(ctx, SaveQuizSelectionsCommand{
		UserID: 3,
		Styles: []string{"Classic", "Bohemian"},
	}); err != nil {
		t.Fatalf("Handle: %v", err)
	}

	state, err := handler.Handle(ctx, SaveQuizSelectionsCommand{
		UserID:  3,
		Styles:  []string{"Trendy"},
		Seasons: []string{"Winter"},
	})
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}

	// Whole-field replacement: earlier styles are gone, and the omitted
	// dimensions are cleared rather than carried over.
	if len(state.QuizStyles) != 1 {
		t.Fatalf("got %d styles, want 1", len(state.QuizStyles))
	}
	if _, ok := state.QuizStyles["trendy"]; !ok {
		t.Fatalf("expected styles replaced with trendy, got %v", state.QuizStyles)
	}
	if len(state.QuizCategories) != 0 {
		t.Fatalf("expected categories cleared, got %v", state.QuizCategories)
	}
}
