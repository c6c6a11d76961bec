package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/fekuna/omnipos-scm-service/internal/auth"
	"github.com/fekuna/omnipos-scm-service/internal/logger"
	"github.com/fekuna/omnipos-scm-service/internal/model"
	"github.com/fekuna/omnipos-scm-service/internal/user"
	"go.uber.org/zap"
)

const minPasswordLength = 8

var (
	errUsernameRequired = fmt.Errorf("%w: username is required", model.ErrValidation)
	errPasswordTooShort = fmt.Errorf("%w: password must be at least %d characters", model.ErrValidation, minPasswordLength)
)

type userUseCase struct {
	repo   user.Repository
	logger logger.ZapLogger
}

func NewUserUseCase(repo user.Repository, log logger.ZapLogger) user.UseCase {
	return &userUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *userUseCase) ValidateUser(ctx context.Context, username, password string) (*model.User, error) {
	u, err := uc.repo.FindByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return nil, err
	}
	if u == nil || !auth.CheckPassword(u.Password, password) {
		return nil, model.ErrInvalidCredentials
	}
	return u, nil
}

func (uc *userUseCase) CreateUser(ctx context.Context, username, password string) (*model.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, errUsernameRequired
	}
	if len(password) < minPasswordLength {
		return nil, errPasswordTooShort
	}

	existing, err := uc.repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, model.ErrUsernameTaken
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}
	u := &model.User{Username: username, Password: hash, Role: model.RoleUser}
	if err := uc.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	uc.logger.Info("user registered", zap.Int64("user_id", u.ID), zap.String("username", u.Username))
	return u, nil
}
