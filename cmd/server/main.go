package main

import (
	"net/http"
	"time"

	"StockKeeper/internal/config"
	"StockKeeper/internal/handlers"
	"StockKeeper/internal/middleware"
	"StockKeeper/internal/repo"
	"StockKeeper/internal/service"

	"go.uber.org/zap"
)

func main() {
	cfg := config.NewConfig()

	// создаём предустановленный регистратор zap
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	gormDB, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}

	userRepo := repo.NewUserRepository(gormDB)
	sessionRepo := repo.NewSessionRepository(gormDB)
	itemRepo := repo.NewItemRepository(gormDB)

	userService := service.NewUserService(userRepo, sessionRepo, time.Duration(cfg.SessionTTLHours)*time.Hour)
	itemService := service.NewItemService(itemRepo)

	h := handlers.NewHandler(userService, itemService, sugar, cfg)

	addr := cfg.BaseURL

	sugar.Infow(
		"Starting server",
		"addr", addr,
	)

	sugar.Infow("Config",
		"BaseURL", cfg.BaseURL,
		"EnableHTTPS", cfg.EnableHTTPS,
		"DatabaseDSN", cfg.DatabaseDSN,
		"SessionTTLHours", cfg.SessionTTLHours,
	)

	if err := http.ListenAndServe(addr, h.Router); err != nil {
		sugar.Fatalw("Server failed", "error", err)
	}
}
