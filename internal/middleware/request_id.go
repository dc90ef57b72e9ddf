package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// RequestID кладёт идентификатор запроса в контекст и в заголовок ответа.
// Входящий X-Request-ID уважается, чтобы не рвать трассировку с фронта.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rid := r.Header.Get("X-Request-ID")
		if rid == "" {
			rid = uuid.New().String()
		}

		ctx := context.WithValue(r.Context(), ContextRequestID, rid)
		w.Header().Set("X-Request-ID", rid)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
