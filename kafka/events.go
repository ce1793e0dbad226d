package kafka

import "time"

// QuizCompletedEvent is emitted when a shopper finalizes the style quiz
type QuizCompletedEvent struct {
	EventID     string    `json:"event_id"`
	EventType   string    `json:"event_type"`
	UserID      uint      `json:"user_id"`
	StyleType   string    `json:"style_type"`
	OutfitTypes []string  `json:"outfit_types"`
	Colors      []string  `json:"colors"`
	Timestamp   time.Time `json:"timestamp"`
}

// OutfitFavoritedEvent is emitted when a shopper toggles a favorite
type OutfitFavoritedEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	UserID    uint      `json:"user_id"`
	OutfitID  uint      `json:"outfit_id"`
	Category  string    `json:"category"`
	Favorited bool      `json:"favorited"`
	Timestamp time.Time `json:"timestamp"`
}

// Event types
const (
	EventTypeQuizCompleted   = "quiz.completed"
	EventTypeOutfitFavorited = "outfit.favorited"
)

// Kafka topics
const (
	TopicQuizCompleted   = "quiz-completed"
	TopicOutfitFavorited = "outfit-favorited"
)
