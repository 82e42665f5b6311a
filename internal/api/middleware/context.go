package middleware

import "context"

type ctxKey int

const (
	usernameKey ctxKey = iota
	requestIDKey
)

// GetUsername возвращает имя администратора, положенное Auth
func GetUsername(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(usernameKey).(string)
	return username, ok && username != ""
}

// GetRequestID возвращает ID запроса, положенный RequestID
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// WithUsername кладет имя администратора в контекст
func WithUsername(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, usernameKey, username)
}
