package actor

import (
	"context"
	"net/http"
	"strconv"
)

// HeaderActorID проставляется API-шлюзом после аутентификации,
// сервис доверяет значению и только резолвит роль через profile-service.
const HeaderActorID = "X-Actor-ID"

type ctxKey struct{}

func Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := r.Header.Get(HeaderActorID)
			if raw == "" {
				http.Error(w, "missing "+HeaderActorID+" header", http.StatusUnauthorized)
				return
			}

			actorID, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || actorID <= 0 {
				http.Error(w, "invalid "+HeaderActorID+" header", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), ctxKey{}, actorID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// FromContext возвращает ID актора, проставленный Middleware.
func FromContext(ctx context.Context) (int64, bool) {
	actorID, ok := ctx.Value(ctxKey{}).(int64)
	return actorID, ok
}
