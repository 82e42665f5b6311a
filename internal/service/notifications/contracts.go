package notifications

import "context"

// Sender транспорт доставки сообщений (HTTP-шлюз или лог-заглушка)
type Sender interface {
	Send(ctx context.Context, to, body string) error
}

// OutcomeRecorder учет исходов отправки в метриках
type OutcomeRecorder interface {
	NotificationOutcome(outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
