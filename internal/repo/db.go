package repo

import (
	"strings"

	"StockKeeper/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	gormsqlite "gorm.io/driver/sqlite"
	_ "modernc.org/sqlite"
)

// InitDB открывает соединение и прогоняет миграции моделей.
// postgres:// DSN — боевой вариант, всё остальное трактуем как путь к
// sqlite-файлу (драйвер modernc, без CGO).
func InitDB(dsn string) (*gorm.DB, error) {
	var dial gorm.Dialector
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		dial = postgres.Open(dsn)
	} else {
		dial = gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}
	}

	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&model.User{}, &model.Item{}, &model.Session{}); err != nil {
		return nil, err
	}
	return db, nil
}
