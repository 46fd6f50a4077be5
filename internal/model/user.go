package model

// User — учётная запись. Password хранит bcrypt-хеш и наружу не отдаётся.
type User struct {
	ID       int64  `gorm:"primaryKey"`
	Username string `gorm:"not null;uniqueIndex"`
	Email    string `gorm:"not null"`
	Password string `gorm:"not null"`
}
