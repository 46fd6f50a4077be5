package repo

import (
	"context"
	"errors"

	"StockKeeper/internal/model"

	"gorm.io/gorm"
)

// SessionRepository — контракт доступа к серверным сессиям.
type SessionRepository interface {
	// Create сохраняет новую сессию.
	Create(ctx context.Context, s *model.Session) error

	// GetByToken возвращает сессию по токену или (nil, nil), если её нет.
	GetByToken(ctx context.Context, token string) (*model.Session, error)

	// Delete удаляет сессию. Отсутствующий токен не является ошибкой.
	Delete(ctx context.Context, token string) error
}

type sessionRepo struct {
	db *gorm.DB
}

// NewSessionRepository создаёт реализацию репозитория для Session.
func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepo{db: db}
}

func (r *sessionRepo) Create(ctx context.Context, s *model.Session) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *sessionRepo) GetByToken(ctx context.Context, token string) (*model.Session, error) {
	var s model.Session
	err := r.db.WithContext(ctx).Where("token = ?", token).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *sessionRepo) Delete(ctx context.Context, token string) error {
	return r.db.WithContext(ctx).Where("token = ?", token).Delete(&model.Session{}).Error
}
