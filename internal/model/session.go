package model

import "time"

// Session — серверная сессия. Token — непрозрачный идентификатор из cookie.
type Session struct {
	Token  string `gorm:"primaryKey"`
	UserID int64  `gorm:"not null;index"`

	// Связи
	User *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`

	ExpiresAt time.Time `gorm:"not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// Expired сообщает, истекла ли сессия к моменту now.
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
