package middleware

import (
	"context"
	"net/http"
	"time"
)

// SessionCookieName — имя cookie с непрозрачным токеном сессии.
const SessionCookieName = "session_token"

type contextKey string

const userIDKey contextKey = "user_id"

// Authenticator разрешает токен сессии во владельца. Реализуется сервисом
// пользователей поверх хранилища сессий.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (userID int64, ok bool, err error)
}

// WithSession кладёт user_id действующей сессии в контекст запроса.
// Запрос без cookie или с мёртвой сессией проходит дальше анонимным —
// отказ решают хендлеры защищённых маршрутов.
func WithSession(auth Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if c, err := r.Cookie(SessionCookieName); err == nil && c.Value != "" {
				uid, ok, aerr := auth.Authenticate(r.Context(), c.Value)
				if aerr != nil {
					if sugar != nil {
						sugar.Errorw("session lookup failed", "error", aerr)
					}
				} else if ok {
					r = r.WithContext(context.WithValue(r.Context(), userIDKey, uid))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// GetUserIDFromContext возвращает user_id аутентифицированного запроса.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	uid, ok := ctx.Value(userIDKey).(int64)
	return uid, ok
}

// SetSessionCookie выставляет cookie сессии с абсолютным сроком жизни.
func SetSessionCookie(w http.ResponseWriter, token string, ttl time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		MaxAge:   int(ttl.Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie стирает cookie сессии у клиента.
func ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
		SameSite: http.SameSiteLaxMode,
	})
}
