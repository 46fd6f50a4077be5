package service

import (
	"context"
	"errors"
	"time"

	"StockKeeper/internal/model"
	"StockKeeper/internal/repo"
	"StockKeeper/internal/serializer"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Ошибки уровня сервиса.
var (
	// ErrInvalidCredentials — неверные логин или пароль. Намеренно не
	// различаем, что именно неверно.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNotFound — запись не существует или принадлежит другому пользователю.
	ErrNotFound = errors.New("not found")
)

// UserService инкапсулирует регистрацию, вход и серверные сессии.
type UserService struct {
	users    repo.UserRepository
	sessions repo.SessionRepository
	ttl      time.Duration
}

func NewUserService(users repo.UserRepository, sessions repo.SessionRepository, ttl time.Duration) *UserService {
	return &UserService{users: users, sessions: sessions, ttl: ttl}
}

// SessionTTL — абсолютное время жизни выдаваемых сессий.
func (s *UserService) SessionTTL() time.Duration {
	return s.ttl
}

// SignUp валидирует вход, хеширует пароль и создаёт пользователя.
// Ошибки валидации возвращаются полевой картой, а не error.
func (s *UserService) SignUp(ctx context.Context, in serializer.SignupInput) (*model.User, serializer.FieldErrors, error) {
	errs := in.Validate()

	if in.Username != nil && *in.Username != "" {
		existing, err := s.users.GetUserByUsername(ctx, *in.Username)
		if err != nil {
			return nil, nil, err
		}
		if existing != nil {
			errs.Add("username", "A user with that username already exists.")
		}
	}
	if len(errs) > 0 {
		return nil, errs, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, err
	}

	u, err := s.users.CreateUser(ctx, &model.User{
		Username: *in.Username,
		Email:    *in.Email,
		Password: string(hash),
	})
	if err != nil {
		return nil, nil, err
	}
	return u, nil, nil
}

// Login сверяет пароль с bcrypt-хешем. Любая причина отказа — ErrInvalidCredentials.
func (s *UserService) Login(ctx context.Context, username, password string) (*model.User, error) {
	u, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// IssueSession создаёт сессию с непрозрачным токеном и абсолютным сроком жизни.
func (s *UserService) IssueSession(ctx context.Context, userID int64) (*model.Session, error) {
	sess := &model.Session{
		Token:     uuid.NewString(),
		UserID:    userID,
		ExpiresAt: time.Now().Add(s.ttl),
	}
	if err := s.sessions.Create(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// Authenticate возвращает владельца действующей сессии.
// Просроченная или неизвестная сессия — это просто (0, false), не ошибка.
func (s *UserService) Authenticate(ctx context.Context, token string) (int64, bool, error) {
	sess, err := s.sessions.GetByToken(ctx, token)
	if err != nil {
		return 0, false, err
	}
	if sess == nil || sess.Expired(time.Now()) {
		return 0, false, nil
	}
	return sess.UserID, true, nil
}

// Logout уничтожает сессию. Отсутствующий токен не является ошибкой.
func (s *UserService) Logout(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}
