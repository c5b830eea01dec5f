package usecase

import (
	"context"
	"errors"
	"strings"

	"app/internal/apperr"
	"app/internal/domain/model"
	repo "app/internal/repository"

	"go.uber.org/zap"
)

const (
	defaultUserListLimit = 100
	maxUserListLimit     = 1000
)

type UserUsecase struct {
	users  repo.UserRepository
	logger *zap.Logger
}

func NewUserUsecase(users repo.UserRepository, logger *zap.Logger) *UserUsecase {
	return &UserUsecase{users: users, logger: logger}
}

type CreateUserInput struct {
	Username  string
	Email     string
	FirstName *string
	LastName  *string
}

type CreateUserOutput struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func (u *UserUsecase) CreateUser(ctx context.Context, in CreateUserInput) (CreateUserOutput, error) {
	username := strings.TrimSpace(in.Username)
	email := strings.TrimSpace(in.Email)
	if username == "" || email == "" {
		return CreateUserOutput{}, apperr.New(apperr.KindValidation, "username and email are required")
	}

	user := model.User{
		Username:  username,
		Email:     email,
		FirstName: in.FirstName,
		LastName:  in.LastName,
	}

	err := u.users.Create(ctx, &user)
	if errors.Is(err, repo.ErrConflict) {
		return CreateUserOutput{}, apperr.New(apperr.KindConflict, "username or email already exists")
	}
	if err != nil {
		u.logger.Error("create user failed", zap.Error(err))
		return CreateUserOutput{}, apperr.Wrap(apperr.KindInfrastructure, "db error", err)
	}

	return CreateUserOutput{
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
	}, nil
}

func (u *UserUsecase) GetUser(ctx context.Context, userID int64) (model.User, error) {
	if userID <= 0 {
		return model.User{}, apperr.New(apperr.KindValidation, "invalid user id")
	}

	user, err := u.users.FindByID(ctx, userID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.User{}, apperr.New(apperr.KindNotFound, "user not found")
	}
	if err != nil {
		u.logger.Error("find user failed", zap.Error(err))
		return model.User{}, apperr.Wrap(apperr.KindInfrastructure, "db error", err)
	}
	return user, nil
}

// ListUsers は作成順のページング。limit/offsetが不正ならデフォルトに倒す。
func (u *UserUsecase) ListUsers(ctx context.Context, limit int, offset int) ([]model.User, error) {
	if limit <= 0 {
		limit = defaultUserListLimit
	}
	if limit > maxUserListLimit {
		limit = maxUserListLimit
	}
	if offset < 0 {
		offset = 0
	}

	users, err := u.users.List(ctx, limit, offset)
	if err != nil {
		u.logger.Error("list users failed", zap.Error(err))
		return []model.User{}, apperr.Wrap(apperr.KindInfrastructure, "db error", err)
	}
	return users, nil
}
