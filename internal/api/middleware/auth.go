package middleware

import (
	"net/http"
	"strings"

	"github.com/yash635644/barber-backend/internal/api/handlers"
)

const (
	msgMissingAuthHeader = "Authorization header missing"
	msgInvalidAuthHeader = "Invalid authorization header format"
	msgInvalidToken      = "Invalid or expired token"
)

// Auth пропускает только запросы с валидным admin-токеном в Authorization: Bearer <token>
func Auth(validator TokenValidator, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				logger.Warn("Auth: missing authorization header: %s %s", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgMissingAuthHeader)
				return
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
				logger.Warn("Auth: malformed authorization header: %s %s", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgInvalidAuthHeader)
				return
			}

			claims, err := validator.ValidateToken(strings.TrimSpace(parts[1]))
			if err != nil {
				logger.Warn("Auth: rejected token: %s %s: %v", r.Method, r.URL.Path, err)
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUsername(r.Context(), claims.Username)))
		})
	}
}
