//go:build wireinject
// +build wireinject

package user

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/stylediscover/server/internal/user/delivery/http"
	"github.com/stylediscover/server/internal/user/domain"
	"github.com/stylediscover/server/internal/user/repository"
	"github.com/stylediscover/server/internal/user/usecase/command"
	"github.com/stylediscover/server/internal/user/usecase/query"
)

// ProvideUserRepository provides the user repository
func ProvideUserRepository(db *gorm.DB) (domain.UserRepository, error) {
	return repository.NewGormUserRepository(db)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideUserRepository,
)

var UsecaseSet = wire.NewSet(
	command.NewRegisterUserHandler,
	command.NewLoginUserHandler,
	query.NewGetUserHandler,
)

// InitializeHTTPHandler initializes HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB) (*http.UserHandler, error) {
	wire.Build(
		RepositorySet,
		UsecaseSet,
		http.NewUserHandler,
	)
	return nil, nil
}
