package config

import (
	"errors"
	"fmt"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"

	"github.com/yash635644/barber-backend/internal/domain"
)

// ErrInvalidConfig возвращается, когда конфигурация не проходит валидацию
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server        ServerConfig        `toml:"server"`
	Database      DatabaseConfig      `toml:"database"`
	Logs          LogsConfig          `toml:"logs"`
	Metrics       MetricsConfig       `toml:"metrics"`
	Shop          ShopConfig          `toml:"shop"`
	Admin         AdminConfig         `toml:"admin"`
	Notifications NotificationsConfig `toml:"notifications"`
	Bookings      BookingsConfig      `toml:"bookings"`
	Cache         CacheConfig         `toml:"cache"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port" env:"HTTP_PORT"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

type DatabaseConfig struct {
	Host            string `toml:"host" env:"DB_HOST"`
	Port            int    `toml:"port" env:"DB_PORT"`
	User            string `toml:"user" env:"DB_USER"`
	Password        string `toml:"password" env:"DB_PASSWORD"`
	DBName          string `toml:"dbname" env:"DB_NAME"`
	SSLMode         string `toml:"sslmode" env:"DB_SSLMODE"`
	ConnectTimeout  int    `toml:"connect_timeout"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s connect_timeout=%d",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode, d.ConnectTimeout)
}

type LogsConfig struct {
	File  string `toml:"file" env:"LOG_FILE"`
	Level string `toml:"level" env:"LOG_LEVEL"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

type ShopConfig struct {
	ID         int64  `toml:"id"`
	Timezone   string `toml:"timezone" env:"SHOP_TIMEZONE"`
	OwnerPhone string `toml:"owner_phone" env:"OWNER_PHONE"`
	AdminURL   string `toml:"admin_url" env:"ADMIN_URL"`
}

// Location часовой пояс магазина; все "сегодня" считаются в нём
func (s ShopConfig) Location() (*time.Location, error) {
	if s.Timezone == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(s.Timezone)
}

type AdminConfig struct {
	Username      string `toml:"username" env:"ADMIN_USER"`
	Password      string `toml:"password" env:"ADMIN_PASS"`
	PasswordHash  string `toml:"password_hash" env:"ADMIN_PASS_HASH"`
	JWTSecret     string `toml:"jwt_secret" env:"JWT_SECRET"`
	TokenTTLHours int    `toml:"token_ttl_hours"`
}

type NotificationsConfig struct {
	Enabled    bool   `toml:"enabled" env:"NOTIFICATIONS_ENABLED"`
	GatewayURL string `toml:"gateway_url" env:"SMS_GATEWAY_URL"`
	APIKey     string `toml:"api_key" env:"SMS_GATEWAY_API_KEY"`
	Sender     string `toml:"sender" env:"SMS_SENDER"`
	Timeout    int    `toml:"timeout"`
	Async      bool   `toml:"async"`
	Workers    int    `toml:"workers"`
	QueueSize  int    `toml:"queue_size"`
}

type BookingsConfig struct {
	StrictTransitions bool `toml:"strict_transitions"`
}

type CacheConfig struct {
	ShopSize       int `toml:"shop_size"`
	ShopTTLSeconds int `toml:"shop_ttl_seconds"`
}

// Load читает TOML-файл, затем переопределяет секреты из окружения (.env подхватывается, если есть)
func Load(path string) (*Config, error) {
	cfg := defaults()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config: failed to load .env: %w", err)
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет обязательные поля
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("%w: server.http_port must be positive", ErrInvalidConfig)
	}
	if c.Admin.Username == "" {
		return fmt.Errorf("%w: admin.username is required", ErrInvalidConfig)
	}
	if c.Admin.Password == "" && c.Admin.PasswordHash == "" {
		return fmt.Errorf("%w: admin.password or admin.password_hash is required", ErrInvalidConfig)
	}
	if c.Admin.JWTSecret == "" {
		return fmt.Errorf("%w: admin.jwt_secret is required", ErrInvalidConfig)
	}
	if c.Notifications.Enabled && c.Notifications.GatewayURL == "" {
		return fmt.Errorf("%w: notifications.gateway_url is required when notifications are enabled", ErrInvalidConfig)
	}
	if _, err := c.Shop.Location(); err != nil {
		return fmt.Errorf("%w: shop.timezone: %v", ErrInvalidConfig, err)
	}
	return nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			ConnectTimeout:  10,
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "barber-backend",
		},
		Shop: ShopConfig{
			ID:       domain.DefaultShopID,
			Timezone: "UTC",
		},
		Admin: AdminConfig{
			TokenTTLHours: 12,
		},
		Notifications: NotificationsConfig{
			Timeout:   10,
			Async:     true,
			Workers:   2,
			QueueSize: 100,
		},
		Cache: CacheConfig{
			ShopSize:       1,
			ShopTTLSeconds: 300,
		},
	}
}
