package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Источники справочника пользователей
const (
	DirectoryStatic   = "static"
	DirectoryPostgres = "postgres"
	DirectoryHTTP     = "http"
)

// Config конфигурация сервиса (config.toml)
type Config struct {
	Server        ServerConfig        `toml:"server"`
	Logs          LogsConfig          `toml:"logs"`
	Metrics       MetricsConfig       `toml:"metrics"`
	Catalog       CatalogConfig       `toml:"catalog"`
	Booking       BookingConfig       `toml:"booking"`
	UserDirectory UserDirectoryConfig `toml:"user_directory"`
	Database      DatabaseConfig      `toml:"database"`
	UserService   UserServiceConfig   `toml:"user_service"`
	Cache         CacheConfig         `toml:"cache"`
	RateLimit     RateLimitConfig     `toml:"rate_limit"`
	CORS          CORSConfig          `toml:"cors"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port" validate:"min=1,max=65535"`
	ReadTimeout     int `toml:"read_timeout" validate:"min=0"`
	WriteTimeout    int `toml:"write_timeout" validate:"min=0"`
	IdleTimeout     int `toml:"idle_timeout" validate:"min=0"`
	ShutdownTimeout int `toml:"shutdown_timeout" validate:"min=0"`
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level" validate:"omitempty,oneof=debug info warn warning error"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path" validate:"omitempty,startswith=/"`
	ServiceName string `toml:"service_name" validate:"required_if=Enabled true"`
}

type CatalogConfig struct {
	File string `toml:"file" validate:"required"`
}

type BookingConfig struct {
	// RequireUserBinding: бронирование требует логин и сверяется с рабочим местом пользователя
	RequireUserBinding bool `toml:"require_user_binding"`
}

type UserDirectoryConfig struct {
	Source string `toml:"source" validate:"oneof=static postgres http"`
	File   string `toml:"file" validate:"required_if=Source static"`
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port" validate:"min=0,max=65535"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns" validate:"min=0"`
	MaxIdleConns    int    `toml:"max_idle_conns" validate:"min=0"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime" validate:"min=0"`
}

// DSN возвращает строку подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type UserServiceConfig struct {
	URL     string `toml:"url" validate:"omitempty,url"`
	Timeout int    `toml:"timeout" validate:"min=0"`
}

type CacheConfig struct {
	Enabled    bool   `toml:"enabled"`
	Addr       string `toml:"addr" validate:"required_if=Enabled true"`
	Password   string `toml:"password"`
	DB         int    `toml:"db" validate:"min=0,max=15"`
	TTLSeconds int    `toml:"ttl_seconds" validate:"min=0"`
}

type RateLimitConfig struct {
	Enabled           bool    `toml:"enabled"`
	RequestsPerSecond float64 `toml:"requests_per_second" validate:"min=0"`
	Burst             int     `toml:"burst" validate:"min=0"`
}

type CORSConfig struct {
	AllowedOrigins []string `toml:"allowed_origins"`
}

// Default возвращает конфигурацию по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        3000,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{Level: "info"},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "smc_meeting_room_service",
		},
		Catalog:       CatalogConfig{File: "catalog.toml"},
		Booking:       BookingConfig{RequireUserBinding: true},
		UserDirectory: UserDirectoryConfig{Source: DirectoryStatic, File: "users.toml"},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		UserService: UserServiceConfig{Timeout: 5},
		Cache:       CacheConfig{TTLSeconds: 300},
		RateLimit:   RateLimitConfig{RequestsPerSecond: 10, Burst: 20},
		CORS:        CORSConfig{AllowedOrigins: []string{"*"}},
	}
}

// Load читает конфигурацию из TOML файла поверх значений по умолчанию,
// затем применяет переменные окружения (включая .env, если он есть)
// и валидирует результат
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
	}

	// .env не обязателен
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет значения конфигурации
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.Metrics.Enabled && c.Metrics.Path == "" {
		return errors.New("invalid config: metrics.path is required when metrics are enabled")
	}
	if c.UserDirectory.Source == DirectoryHTTP && c.UserService.URL == "" {
		return errors.New("invalid config: user_service.url is required for http user directory")
	}
	if c.UserDirectory.Source == DirectoryPostgres && c.Database.DBName == "" {
		return errors.New("invalid config: database.dbname is required for postgres user directory")
	}
	return nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("SERVER_HTTP_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid SERVER_HTTP_PORT %q: %w", v, err)
		}
		cfg.Server.HTTPPort = port
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.Cache.Password = v
	}
	if v := os.Getenv("USER_SERVICE_URL"); v != "" {
		cfg.UserService.URL = v
	}
	return nil
}
