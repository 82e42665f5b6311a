package middleware

import (
	"github.com/yash635644/barber-backend/internal/service/auth"
)

// TokenValidator проверка admin-токена
type TokenValidator interface {
	ValidateToken(token string) (*auth.Claims, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
