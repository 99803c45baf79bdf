// Package config loads process settings from .env and the environment.
package config

import (
	"fmt"
	"strings"
	"time"

	"iakwe-hr/internal/shared/connection"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Kafka    KafkaConfig    `mapstructure:"kafka"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	HTTP     HTTPConfig     `mapstructure:"http"`
	Leave    LeaveConfig    `mapstructure:"leave"`
}

type AppConfig struct {
	Port     string `mapstructure:"port"`
	Env      string `mapstructure:"env"`
	LogLevel string `mapstructure:"log_level"`
}

func (a AppConfig) IsProduction() bool {
	return strings.EqualFold(a.Env, "production")
}

type DatabaseConfig struct {
	Host       string `mapstructure:"host"`
	Port       string `mapstructure:"port"`
	User       string `mapstructure:"user"`
	Password   string `mapstructure:"password"`
	Name       string `mapstructure:"name"`
	SSLMode    string `mapstructure:"sslmode"`
	MaxRetries int    `mapstructure:"max_retries"`
}

type RedisConfig struct {
	Addr string `mapstructure:"addr"`
}

type KafkaConfig struct {
	Broker  string `mapstructure:"broker"`
	GroupID string `mapstructure:"group_id"`
}

type JWTConfig struct {
	Secret string `mapstructure:"secret"`
}

type HTTPConfig struct {
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
}

type LeaveConfig struct {
	// ListCacheTTL bounds how long a list snapshot can back degraded reads.
	ListCacheTTL time.Duration `mapstructure:"list_cache_ttl"`
}

// env names kept from the existing deployment manifests.
var envBindings = map[string]string{
	"app.port":             "PORT",
	"app.env":              "APP_ENV",
	"app.log_level":        "LOG_LEVEL",
	"database.host":        "DB_HOST",
	"database.port":        "DB_PORT",
	"database.user":        "DB_USER",
	"database.password":    "DB_PASSWORD",
	"database.name":        "DB_NAME",
	"database.sslmode":     "DB_SSLMODE",
	"database.max_retries": "DB_MAX_RETRIES",
	"redis.addr":           "REDIS_ADDR",
	"kafka.broker":         "KAFKA_BROKER",
	"kafka.group_id":       "KAFKA_GROUP_ID",
	"jwt.secret":           "JWT_SECRET",
	"http.read_timeout":    "HTTP_READ_TIMEOUT",
	"http.write_timeout":   "HTTP_WRITE_TIMEOUT",
	"http.idle_timeout":    "HTTP_IDLE_TIMEOUT",
	"leave.list_cache_ttl": "LEAVE_LIST_CACHE_TTL",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.port", "3000")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.log_level", "info")

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_retries", 5)

	v.SetDefault("redis.addr", "localhost:6379")

	v.SetDefault("kafka.group_id", "iakwe-hr-notifications")

	v.SetDefault("http.read_timeout", 5*time.Second)
	v.SetDefault("http.write_timeout", 10*time.Second)
	v.SetDefault("http.idle_timeout", 60*time.Second)

	v.SetDefault("leave.list_cache_ttl", 24*time.Hour)
}

// Load reads .env when present, then the process environment.
func Load(envFiles ...string) (*Config, error) {
	_ = godotenv.Load(envFiles...)

	v := viper.New()
	setDefaults(v)
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind %s: %w", env, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.App.Port == "" {
		return fmt.Errorf("PORT must not be empty")
	}
	if c.Database.MaxRetries < 1 {
		return fmt.Errorf("DB_MAX_RETRIES must be at least 1, got %d", c.Database.MaxRetries)
	}
	if c.Leave.ListCacheTTL < 0 {
		return fmt.Errorf("LEAVE_LIST_CACHE_TTL must not be negative")
	}
	if c.App.IsProduction() && c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET is required in production")
	}
	return nil
}

func (d DatabaseConfig) DSN() string {
	return connection.PostgresDSN(d.Host, d.User, d.Password, d.Name, d.Port, d.SSLMode)
}
