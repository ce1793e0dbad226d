package command

import (
	"context"
	"fmt"

	"github.com/stylediscover/server/internal/prefs"
	prefsdomain "github.com/stylediscover/server/internal/prefs/domain"
	"github.com/stylediscover/server/internal/quiz"
	"github.com/stylediscover/server/kafka"
	"github.com/stylediscover/server/pkg/logger"
)

// SubmitQuizCommand represents the command to finalize the style quiz
type SubmitQuizCommand struct {
	UserID  uint
	Answers []int
}

// SubmitQuizResult pairs the winning profile with the committed state
type SubmitQuizResult struct {
	Profile quiz.StyleProfile
	State   prefsdomain.PreferenceState
}

// SubmitQuizHandler handles quiz finalization
type SubmitQuizHandler struct {
	store     *prefs.Store
	publisher *kafka.Publisher
}

// NewSubmitQuizHandler creates a new submit quiz handler
func NewSubmitQuizHandler(store *prefs.Store, publisher *kafka.Publisher) *SubmitQuizHandler {
	return &SubmitQuizHandler{store: store, publisher: publisher}
}

// Handle scores the answers, commits the quiz-derived selections, and
// marks the quiz completed. The profile's outfit types and colors become
// the quiz narrowing sets, lowercased by the store.
func (h *SubmitQuizHandler) Handle(ctx context.Context, cmd SubmitQuizCommand) (*SubmitQuizResult, error) {
	profile, err := quiz.Score(cmd.Answers)
	if err != nil {
		return nil, fmt.Errorf("invalid quiz submission: %w", err)
	}

	state := h.store.CommitQuiz(ctx, cmd.UserID, prefs.QuizSelections{
		Categories: profile.OutfitTypes,
		Colors:     profile.Colors,
	})

	go func() {
		err := h.publisher.PublishQuizCompleted(context.Background(), kafka.QuizCompletedEvent{
			UserID:      cmd.UserID,
			StyleType:   profile.Type,
			OutfitTypes: profile.OutfitTypes,
			Colors:      profile.Colors,
		})
		if err != nil {
			logger.Logger.Debug().Err(err).Uint("user_id", cmd.UserID).Msg("Quiz event not published")
		}
	}()

	return &SubmitQuizResult{Profile: profile, State: state}, nil
}
