package handlers_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"StockKeeper/internal/config"
	"StockKeeper/internal/handlers"
	"StockKeeper/internal/middleware"
	"StockKeeper/internal/model"
	"StockKeeper/internal/repo"
	"StockKeeper/internal/service"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// Local light mocks

type hMockUserRepo struct{ mock.Mock }

func (m *hMockUserRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *hMockUserRepo) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.UserRepository = (*hMockUserRepo)(nil)

type hMockSessionRepo struct{ mock.Mock }

func (m *hMockSessionRepo) Create(ctx context.Context, s *model.Session) error {
	return m.Called(ctx, s).Error(0)
}

func (m *hMockSessionRepo) GetByToken(ctx context.Context, token string) (*model.Session, error) {
	args := m.Called(ctx, token)
	if s, ok := args.Get(0).(*model.Session); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *hMockSessionRepo) Delete(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

var _ repo.SessionRepository = (*hMockSessionRepo)(nil)

type hMockItemRepo struct{ mock.Mock }

func (m *hMockItemRepo) Create(ctx context.Context, it *model.Item) error {
	return m.Called(ctx, it).Error(0)
}

func (m *hMockItemRepo) GetByID(ctx context.Context, userID, id int64) (*model.Item, error) {
	args := m.Called(ctx, userID, id)
	if it, ok := args.Get(0).(*model.Item); ok {
		return it, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *hMockItemRepo) Save(ctx context.Context, it *model.Item) error {
	return m.Called(ctx, it).Error(0)
}

func (m *hMockItemRepo) Delete(ctx context.Context, userID, id int64) (int64, error) {
	args := m.Called(ctx, userID, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *hMockItemRepo) List(ctx context.Context, userID int64, f repo.ItemFilter, limit, offset int) ([]model.Item, int64, error) {
	args := m.Called(ctx, userID, f, limit, offset)
	var items []model.Item
	if v, ok := args.Get(0).([]model.Item); ok {
		items = v
	}
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *hMockItemRepo) ExistsByName(ctx context.Context, name string, excludeID int64) (bool, error) {
	args := m.Called(ctx, name, excludeID)
	return args.Bool(0), args.Error(1)
}

var _ repo.ItemRepository = (*hMockItemRepo)(nil)

// --- Helpers ---

type testEnv struct {
	router   http.Handler
	users    *hMockUserRepo
	sessions *hMockSessionRepo
	items    *hMockItemRepo
}

func newTestRouter(t *testing.T) *testEnv {
	t.Helper()
	cfg := &config.Config{PageSize: 10, MaxPageSize: 1000}
	logger := zap.NewNop().Sugar()
	ur := &hMockUserRepo{}
	sr := &hMockSessionRepo{}
	ir := &hMockItemRepo{}

	userSvc := service.NewUserService(ur, sr, 24*time.Hour)
	itemSvc := service.NewItemService(ir)
	h := handlers.NewHandler(userSvc, itemSvc, logger, cfg)
	return &testEnv{router: h.Router, users: ur, sessions: sr, items: ir}
}

const testToken = "test-session-token"

// expectSession разрешает testToken в сессию пользователя userID.
func (e *testEnv) expectSession(userID int64) {
	e.sessions.On("GetByToken", mock.Anything, testToken).
		Return(&model.Session{Token: testToken, UserID: userID, ExpiresAt: time.Now().Add(time.Hour)}, nil)
}

func addSessionCookie(req *http.Request) {
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: testToken})
}
