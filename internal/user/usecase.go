package user

import (
	"context"

	"github.com/fekuna/omnipos-scm-service/internal/model"
)

type UseCase interface {
	// ValidateUser returns the user for valid credentials or
	// model.ErrInvalidCredentials.
	ValidateUser(ctx context.Context, username, password string) (*model.User, error)
	// CreateUser registers a self-service account with the User role.
	CreateUser(ctx context.Context, username, password string) (*model.User, error)
}
