package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	App      ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
}

type ServerConfig struct {
	Port             string        `env:"APP_PORT" envDefault:"8080"`
	Mode             string        `env:"GIN_MODE" envDefault:"release"`
	SessionCookie    string        `env:"SESSION_COOKIE" envDefault:"fyyur_session"`
	CORSAllowOrigins []string      `env:"CORS_ALLOW_ORIGINS" envSeparator:","`
	FlashBackend     string        `env:"FLASH_BACKEND" envDefault:"redis"`
	FlashTTL         time.Duration `env:"FLASH_TTL" envDefault:"10m"`
}

type DatabaseConfig struct {
	Host        string `env:"DB_HOST" envDefault:"localhost"`
	Port        string `env:"DB_PORT" envDefault:"5432"`
	User        string `env:"DB_USER" envDefault:"postgres"`
	Password    string `env:"DB_PASSWORD" envDefault:"postgres"`
	DBName      string `env:"DB_NAME" envDefault:"fyyur"`
	SSLMode     string `env:"DB_SSL_MODE" envDefault:"disable"`
	AutoMigrate bool   `env:"DB_AUTO_MIGRATE" envDefault:"false"`
}

type RedisConfig struct {
	Host     string `env:"REDIS_HOST" envDefault:"localhost"`
	Port     string `env:"REDIS_PORT" envDefault:"6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

var AppConfig *Config

// LoadConfig reads the process environment into AppConfig.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	AppConfig = &cfg

	return AppConfig, nil
}

func LoadTestConfig() *Config {
	testConfig := &DatabaseConfig{
		Host:     "localhost",
		Port:     "5433", // 測試 DB 用 5433 port
		User:     "postgres",
		Password: "postgres",
		DBName:   "test_db",
		SSLMode:  "disable",
	}

	testRedisConfig := RedisConfig{
		Host:     "localhost",
		Port:     "6380", // 測試 Redis 用 6380 port
		Password: "",
		DB:       1,
	}

	return &Config{
		App: ServerConfig{
			Port:          "8080",
			Mode:          "test",
			SessionCookie: "fyyur_session",
			FlashBackend:  "memory",
			FlashTTL:      time.Minute,
		},
		Database: *testConfig,
		Redis:    testRedisConfig,
	}
}

// Addr returns the listen address for the HTTP server.
func (c ServerConfig) Addr() string {
	return ":" + c.Port
}
