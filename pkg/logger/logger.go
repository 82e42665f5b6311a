package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
)

// Level уровень логирования
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// ParseLevel преобразует строку из конфига в уровень логирования
// Неизвестные значения трактуются как info
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

// Logger логгер с уровнями, пишет в stdout и (опционально) в файл
type Logger struct {
	mu    sync.Mutex
	level Level
	out   *log.Logger
	file  *os.File
}

// New создает логгер. Если filePath пустой, логи пишутся только в stdout
func New(filePath string, level string) (*Logger, error) {
	var (
		writer io.Writer = os.Stdout
		file   *os.File
	)

	if filePath != "" {
		f, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("logger: failed to open log file %s: %w", filePath, err)
		}
		file = f
		writer = io.MultiWriter(os.Stdout, f)
	}

	return &Logger{
		level: ParseLevel(level),
		out:   log.New(writer, "", log.LstdFlags|log.Lmicroseconds),
		file:  file,
	}, nil
}

// NewWithWriter создает логгер поверх произвольного writer (используется в тестах)
func NewWithWriter(w io.Writer, level string) *Logger {
	return &Logger{
		level: ParseLevel(level),
		out:   log.New(w, "", 0),
	}
}

func (l *Logger) Debug(format string, v ...interface{}) {
	l.write(LevelDebug, format, v...)
}

func (l *Logger) Info(format string, v ...interface{}) {
	l.write(LevelInfo, format, v...)
}

func (l *Logger) Warn(format string, v ...interface{}) {
	l.write(LevelWarn, format, v...)
}

func (l *Logger) Error(format string, v ...interface{}) {
	l.write(LevelError, format, v...)
}

// Fatal пишет сообщение и завершает процесс
func (l *Logger) Fatal(format string, v ...interface{}) {
	l.write(LevelError, format, v...)
	l.Close()
	os.Exit(1)
}

// Close закрывает файл логов, если он был открыт
func (l *Logger) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file != nil {
		_ = l.file.Close()
		l.file = nil
	}
}

func (l *Logger) write(level Level, format string, v ...interface{}) {
	if level < l.level {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.out.Printf("[%s] %s", level, fmt.Sprintf(format, v...))
}
