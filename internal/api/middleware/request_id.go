package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// RequestIDHeader заголовок с ID запроса
const RequestIDHeader = "X-Request-ID"

const maxRequestIDLength = 64

// RequestID берет X-Request-ID клиента или генерирует новый UUID,
// возвращает его в ответе и пишет строку access-лога
func RequestID(logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(RequestIDHeader)
			if id == "" || len(id) > maxRequestIDLength {
				id = uuid.NewString()
			}

			w.Header().Set(RequestIDHeader, id)
			ctx := context.WithValue(r.Context(), requestIDKey, id)

			start := time.Now()
			rw := newStatusRecorder(w)
			next.ServeHTTP(rw, r.WithContext(ctx))

			logger.Info("HTTP %s %s - status=%d duration=%s request_id=%s",
				r.Method, r.URL.Path, rw.status, time.Since(start), id)
		})
	}
}
