package middleware

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/chefhub-in/ChefHub-BookingService/internal/api/handlers"
	"github.com/chefhub-in/ChefHub-BookingService/internal/infra/storage/session"
)

// HeaderSessionToken заголовок с токеном сессии
const HeaderSessionToken = "X-Session-Token"

const msgMissingToken = "missing or invalid session token"

type contextKey string

const (
	phoneKey contextKey = "userPhone"
	tokenKey contextKey = "sessionToken"
)

// SessionStore интерфейс хранилища сессий для middleware
type SessionStore interface {
	Get(token string) (*session.Session, error)
}

// Auth проверяет токен сессии и кладет телефон пользователя в контекст
// Запросы без живой сессии дальше middleware не проходят
func Auth(sessions SessionStore) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get(HeaderSessionToken)
			if token == "" {
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			sess, err := sessions.Get(token)
			if err != nil {
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			ctx := context.WithValue(r.Context(), phoneKey, sess.Phone)
			ctx = context.WithValue(ctx, tokenKey, sess.Token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetPhone возвращает телефон пользователя из контекста
func GetPhone(ctx context.Context) (string, bool) {
	phone, ok := ctx.Value(phoneKey).(string)
	return phone, ok
}

// GetToken возвращает токен сессии из контекста
func GetToken(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenKey).(string)
	return token, ok
}
