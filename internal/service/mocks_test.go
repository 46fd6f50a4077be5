package service_test

import (
	"context"

	"StockKeeper/internal/model"
	"StockKeeper/internal/repo"

	"github.com/stretchr/testify/mock"
)

// Minimal mocks

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.UserRepository = (*mockUserRepo)(nil)

type mockSessionRepo struct{ mock.Mock }

func (m *mockSessionRepo) Create(ctx context.Context, s *model.Session) error {
	return m.Called(ctx, s).Error(0)
}

func (m *mockSessionRepo) GetByToken(ctx context.Context, token string) (*model.Session, error) {
	args := m.Called(ctx, token)
	if s, ok := args.Get(0).(*model.Session); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSessionRepo) Delete(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

var _ repo.SessionRepository = (*mockSessionRepo)(nil)

type mockItemRepo struct{ mock.Mock }

func (m *mockItemRepo) Create(ctx context.Context, it *model.Item) error {
	return m.Called(ctx, it).Error(0)
}

func (m *mockItemRepo) GetByID(ctx context.Context, userID, id int64) (*model.Item, error) {
	args := m.Called(ctx, userID, id)
	if it, ok := args.Get(0).(*model.Item); ok {
		return it, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockItemRepo) Save(ctx context.Context, it *model.Item) error {
	return m.Called(ctx, it).Error(0)
}

func (m *mockItemRepo) Delete(ctx context.Context, userID, id int64) (int64, error) {
	args := m.Called(ctx, userID, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockItemRepo) List(ctx context.Context, userID int64, f repo.ItemFilter, limit, offset int) ([]model.Item, int64, error) {
	args := m.Called(ctx, userID, f, limit, offset)
	var items []model.Item
	if v, ok := args.Get(0).([]model.Item); ok {
		items = v
	}
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *mockItemRepo) ExistsByName(ctx context.Context, name string, excludeID int64) (bool, error) {
	args := m.Called(ctx, name, excludeID)
	return args.Bool(0), args.Error(1)
}

var _ repo.ItemRepository = (*mockItemRepo)(nil)
