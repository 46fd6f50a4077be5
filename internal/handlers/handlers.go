package handlers

import (
	"StockKeeper/internal/config"
	"StockKeeper/internal/middleware"
	"StockKeeper/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	userService *service.UserService,
	itemService *service.ItemService,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithSession(userService))

	// Handlers
	userHandler := NewUserHandler(userService, logger)
	itemHandler := NewItemHandler(itemService, logger, config)

	// Account routes
	r.Post("/signup/", userHandler.Signup)
	r.Post("/login/", userHandler.Login)
	r.Post("/logout/", userHandler.Logout)

	// Item routes
	r.Get("/item/", itemHandler.List)
	r.Post("/item/", itemHandler.Create)
	r.Put("/item/", itemHandler.Update)
	r.Delete("/item/", itemHandler.Delete)

	return &Handler{Router: r}
}
