package command

import (
	"fmt"
	"time"

	"github.com/stylediscover/server/internal/user/domain"
	"github.com/stylediscover/server/pkg/auth"
)

// RegisterUserCommand represents the command to register a new shopper
type RegisterUserCommand struct {
	Username    string
	Email       string
	Password    string
	DisplayName string
}

// RegisterUserHandler handles shopper registration
type RegisterUserHandler struct {
	repo domain.UserRepository
}

// NewRegisterUserHandler creates a new register user handler
func NewRegisterUserHandler(repo domain.UserRepository) *RegisterUserHandler {
	return &RegisterUserHandler{repo: repo}
}

// Handle executes the register user command
func (h *RegisterUserHandler) Handle(cmd RegisterUserCommand) (*domain.User, error) {
	if cmd.Username == "" {
		return nil, fmt.Errorf("username is required")
	}
	if cmd.Email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if cmd.Password == "" {
		return nil, fmt.Errorf("password is required")
	}
	if len(cmd.Password) < 6 {
		return nil, fmt.Errorf("password must be at least 6 characters")
	}

	// Check if user already exists
	if existingUser, _ := h.repo.FindByUsername(cmd.Username); existingUser != nil {
		return nil, fmt.Errorf("username already exists")
	}
	if existingUser, _ := h.repo.FindByEmail(cmd.Email); existingUser != nil {
		return nil, fmt.Errorf("email already exists")
	}

	hashedPassword, err := auth.HashPassword(cmd.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	displayName := cmd.DisplayName
	if displayName == "" {
		displayName = cmd.Username
	}

	user := &domain.User{
		Username:    cmd.Username,
		Email:       cmd.Email,
		Password:    hashedPassword,
		DisplayName: displayName,
		IsActive:    true,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := h.repo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}
