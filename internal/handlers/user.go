package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"StockKeeper/internal/middleware"
	"StockKeeper/internal/serializer"
	"StockKeeper/internal/service"

	"go.uber.org/zap"
)

// UserHandler обрабатывает регистрацию, вход и выход.
type UserHandler struct {
	UserService *service.UserService
	Logger      *zap.SugaredLogger
}

func NewUserHandler(userService *service.UserService, logger *zap.SugaredLogger) *UserHandler {
	return &UserHandler{UserService: userService, Logger: logger}
}

// Signup регистрирует пользователя и сразу открывает сессию.
func (h *UserHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var in serializer.SignupInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		h.Logger.Warnw("Signup: invalid request body", "error", err)
		writeDetail(w, http.StatusBadRequest, msgMalformedBody)
		return
	}

	u, fieldErrs, err := h.UserService.SignUp(r.Context(), in)
	if err != nil {
		h.Logger.Errorw("Signup: service error", "error", err)
		writeDetail(w, http.StatusInternalServerError, msgInternal)
		return
	}
	if len(fieldErrs) > 0 {
		writeJSON(w, http.StatusBadRequest, fieldErrs)
		return
	}

	if err := h.openSession(w, r, u.ID); err != nil {
		h.Logger.Errorw("Signup: failed to open session", "user_id", u.ID, "error", err)
		writeDetail(w, http.StatusInternalServerError, msgInternal)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"user":    serializer.NewUserDTO(u),
		"message": "Signup successful",
	})
}

// Login проверяет учётные данные и открывает сессию на фиксированный срок.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var in serializer.LoginInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		h.Logger.Warnw("Login: invalid request body", "error", err)
		writeDetail(w, http.StatusBadRequest, msgMalformedBody)
		return
	}

	if fieldErrs := in.Validate(); len(fieldErrs) > 0 {
		writeJSON(w, http.StatusBadRequest, fieldErrs)
		return
	}

	u, err := h.UserService.Login(r.Context(), *in.Username, *in.Password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		// не раскрываем, что именно неверно — логин или пароль
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid credentials"})
		return
	}
	if err != nil {
		h.Logger.Errorw("Login: service error", "error", err)
		writeDetail(w, http.StatusInternalServerError, msgInternal)
		return
	}

	if err := h.openSession(w, r, u.ID); err != nil {
		h.Logger.Errorw("Login: failed to open session", "user_id", u.ID, "error", err)
		writeDetail(w, http.StatusInternalServerError, msgInternal)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"user":    serializer.NewUserDTO(u),
		"message": "Login successful",
	})
}

// Logout уничтожает сессию на сервере и стирает cookie у клиента.
func (h *UserHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(middleware.SessionCookieName); err == nil && c.Value != "" {
		if err := h.UserService.Logout(r.Context(), c.Value); err != nil {
			h.Logger.Errorw("Logout: failed to destroy session", "error", err)
			writeDetail(w, http.StatusInternalServerError, msgInternal)
			return
		}
	}
	middleware.ClearSessionCookie(w)
	writeJSON(w, http.StatusOK, map[string]string{"message": "Logged out successfully"})
}

func (h *UserHandler) openSession(w http.ResponseWriter, r *http.Request, userID int64) error {
	sess, err := h.UserService.IssueSession(r.Context(), userID)
	if err != nil {
		return err
	}
	middleware.SetSessionCookie(w, sess.Token, h.UserService.SessionTTL())
	return nil
}
