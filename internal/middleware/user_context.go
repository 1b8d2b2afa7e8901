package middleware

import (
	"context"
	"net/http"
	"strings"
)

type ctxKey string

const userIDKey ctxKey = "user_id"

// UserHeader identifica al usuario en el transporte HTTP. No hay autenticación:
// el header cumple el rol del user id que entrega Telegram.
const UserHeader = "X-User-ID"

// UserContext copia X-User-ID al contexto. Sin header el request sigue igual;
// los handlers deciden si exigen usuario.
func UserContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if uid := strings.TrimSpace(r.Header.Get(UserHeader)); uid != "" {
			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), uid)))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

func GetUserID(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(userIDKey).(string)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}
