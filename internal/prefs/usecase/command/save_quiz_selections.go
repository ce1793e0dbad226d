package command

import (
	"context"

	"github.com/stylediscover/server/internal/prefs"
	prefsdomain "github.com/stylediscover/server/internal/prefs/domain"
)

// SaveQuizSelectionsCommand represents the command to set the quiz-derived
// narrowing sets directly, one slice per dimension. The mobile client uses
// this for its picker flow, where shoppers choose selections themselves
// instead of having a scored profile derive them.
type SaveQuizSelectionsCommand struct {
	UserID     uint
	Categories []string
	Colors     []string
	Styles     []string
	Seasons    []string
	Occasions  []string
}

// SaveQuizSelectionsHandler handles direct selection updates
type SaveQuizSelectionsHandler struct {
	store *prefs.Store
}

// NewSaveQuizSelectionsHandler creates a new save quiz selections handler
func NewSaveQuizSelectionsHandler(store *prefs.Store) *SaveQuizSelectionsHandler {
	return &SaveQuizSelectionsHandler{store: store}
}

// Handle replaces all five selection sets and marks the quiz completed.
// Empty slices are valid: they clear their dimension, leaving it
// unconstrained.
func (h *SaveQuizSelectionsHandler) Handle(ctx context.Context, cmd SaveQuizSelectionsCommand) (prefsdomain.PreferenceState, error) {
	return h.store.CommitQuiz(ctx, cmd.UserID, prefs.QuizSelections{
		Categories: cmd.Categories,
		Colors:     cmd.Colors,
		Styles:     cmd.Styles,
		Seasons:    cmd.Seasons,
		Occasions:  cmd.Occasions,
	}), nil
}
