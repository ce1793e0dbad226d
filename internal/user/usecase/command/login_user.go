package command

import (
	"fmt"

	"github.com/stylediscover/server/internal/user/domain"
	"github.com/stylediscover/server/pkg/auth"
)

// LoginUserCommand represents the command to authenticate a shopper
type LoginUserCommand struct {
	Username string
	Password string
}

// LoginUserResult contains the authentication result
type LoginUserResult struct {
	Token string
	User  *domain.User
}

// LoginUserHandler handles shopper login
type LoginUserHandler struct {
	repo domain.UserRepository
}

// NewLoginUserHandler creates a new login user handler
func NewLoginUserHandler(repo domain.UserRepository) *LoginUserHandler {
	return &LoginUserHandler{repo: repo}
}

// Handle executes the login command
func (h *LoginUserHandler) Handle(cmd LoginUserCommand) (*LoginUserResult, error) {
	if cmd.Username == "" || cmd.Password == "" {
		return nil, fmt.Errorf("username and password are required")
	}

	user, err := h.repo.FindByUsername(cmd.Username)
	if err != nil {
		return nil, fmt.Errorf("invalid credentials")
	}

	if !user.IsActive {
		return nil, fmt.Errorf("account is deactivated")
	}

	if !auth.CheckPassword(user.Password, cmd.Password) {
		return nil, fmt.Errorf("invalid credentials")
	}

	token, err := auth.GenerateToken(user.ID, user.Username, "user")
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &LoginUserResult{Token: token, User: user}, nil
}
