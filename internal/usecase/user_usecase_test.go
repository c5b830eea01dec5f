package usecase

import (
	"context"
	"testing"

	"app/internal/apperr"
	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type UserRepoMock struct{ mock.Mock }

func (m *UserRepoMock) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	if args.Error(0) == nil {
		user.ID = 1
	}
	return args.Error(0)
}

func (m *UserRepoMock) FindByID(ctx context.Context, userID int64) (model.User, error) {
	args := m.Called(ctx, userID)
	u, _ := args.Get(0).(model.User)
	return u, args.Error(1)
}

func (m *UserRepoMock) List(ctx context.Context, limit int, offset int) ([]model.User, error) {
	args := m.Called(ctx, limit, offset)
	users, _ := args.Get(0).([]model.User)
	return users, args.Error(1)
}

func TestCreateUser_RequiresUsernameAndEmail(t *testing.T) {
	users := &UserRepoMock{}
	uc := NewUserUsecase(users, zap.NewNop())

	for _, in := range []CreateUserInput{
		{},
		{Username: "bob"},
		{Email: "bob@example.com"},
		{Username: "   ", Email: "bob@example.com"},
	} {
		_, err := uc.CreateUser(context.Background(), in)
		require.Error(t, err)
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	}

	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateUser_DuplicateIsConflict(t *testing.T) {
	users := &UserRepoMock{}
	uc := NewUserUsecase(users, zap.NewNop())

	users.On("Create", mock.Anything, mock.Anything).Return(repo.ErrConflict)

	_, err := uc.CreateUser(context.Background(), CreateUserInput{
		Username: "bob",
		Email:    "bob@example.com",
	})
	require.Error(t, err)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
}

func TestCreateUser_ReturnsGeneratedID(t *testing.T) {
	users := &UserRepoMock{}
	uc := NewUserUsecase(users, zap.NewNop())

	users.On("Create", mock.Anything, mock.Anything).Return(nil)

	out, err := uc.CreateUser(context.Background(), CreateUserInput{
		Username: "bob",
		Email:    "bob@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), out.UserID)
	assert.Equal(t, "bob", out.Username)
}

func TestListUsers_Defaults(t *testing.T) {
	cases := []struct {
		name       string
		limit      int
		offset     int
		wantLimit  int
		wantOffset int
	}{
		{"both unset", 0, 0, 100, 0},
		{"negative", -5, -3, 100, 0},
		{"capped", 5000, 0, 1000, 0},
		{"as given", 2, 1, 2, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			users := &UserRepoMock{}
			uc := NewUserUsecase(users, zap.NewNop())

			users.On("List", mock.Anything, tc.wantLimit, tc.wantOffset).
				Return([]model.User{}, nil)

			_, err := uc.ListUsers(context.Background(), tc.limit, tc.offset)
			require.NoError(t, err)
			users.AssertExpectations(t)
		})
	}
}

func TestGetUser_NotFound(t *testing.T) {
	users := &UserRepoMock{}
	uc := NewUserUsecase(users, zap.NewNop())

	users.On("FindByID", mock.Anything, int64(404)).Return(model.User{}, repo.ErrNotFound)

	_, err := uc.GetUser(context.Background(), 404)
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}
