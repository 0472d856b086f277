package middleware

import (
	"context"
	"net/http"

	"github.com/jspark-dev/JSM-ReservationService/internal/api/handlers"
)

type contextKey string

const adminIDKey contextKey = "adminID"

const headerAdminID = "X-Admin-ID"

// Auth проверяет наличие заголовка X-Admin-ID и кладет его в контекст
// Проверка подлинности выполняется на API gateway, сюда приходит
// уже аутентифицированный идентификатор администратора
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		adminID := r.Header.Get(headerAdminID)
		if adminID == "" {
			handlers.RespondUnauthorized(w, "관리자 인증이 필요합니다")
			return
		}

		ctx := context.WithValue(r.Context(), adminIDKey, adminID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetAdminID возвращает идентификатор администратора из контекста
func GetAdminID(ctx context.Context) (string, bool) {
	adminID, ok := ctx.Value(adminIDKey).(string)
	return adminID, ok
}
