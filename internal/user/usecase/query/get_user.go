package query

import (
	"github.com/stylediscover/server/internal/user/domain"
)

// GetUserQuery represents the query for a single shopper
type GetUserQuery struct {
	ID uint
}

// GetUserHandler handles user profile lookups
type GetUserHandler struct {
	repo domain.UserRepository
}

// NewGetUserHandler creates a new get user handler
func NewGetUserHandler(repo domain.UserRepository) *GetUserHandler {
	return &GetUserHandler{repo: repo}
}

// Handle executes the get user query
func (h *GetUserHandler) Handle(q GetUserQuery) (*domain.User, error) {
	return h.repo.FindByID(q.ID)
}
