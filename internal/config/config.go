package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

var (
	ErrReadConfig    = errors.New("config: failed to read config file")
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config конфигурация сервиса
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Database  DatabaseConfig  `toml:"database"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Redis     RedisConfig     `toml:"redis"`
	Kafka     KafkaConfig     `toml:"kafka"`
	Stripe    StripeConfig    `toml:"stripe"`
	Places    PlacesConfig    `toml:"places"`
	Pricing   PricingConfig   `toml:"pricing"`
	Auth      AuthConfig      `toml:"auth"`
	CORS      CORSConfig      `toml:"cors"`
	RateLimit RateLimitConfig `toml:"rate_limit"`
	App       AppConfig       `toml:"app"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`  // секунды
	WriteTimeout    int `toml:"write_timeout"` // секунды
	IdleTimeout     int `toml:"idle_timeout"`  // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN строка подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

type RedisConfig struct {
	Enabled    bool   `toml:"enabled"`
	Addr       string `toml:"addr"`
	Password   string `toml:"password"`
	DB         int    `toml:"db"`
	KeyPrefix  string `toml:"key_prefix"`
	SessionTTL int    `toml:"session_ttl"` // секунды, время жизни данных сессии
	HoursTTL   int    `toml:"hours_ttl"`   // секунды, кеш расписания вендора
}

type KafkaConfig struct {
	Enabled bool     `toml:"enabled"`
	Brokers []string `toml:"brokers"`
	Topic   string   `toml:"topic"`
}

type StripeConfig struct {
	SecretKey      string `toml:"secret_key"`
	PublishableKey string `toml:"publishable_key"`
}

type PlacesConfig struct {
	URL     string `toml:"url"`
	APIKey  string `toml:"api_key"`
	Timeout int    `toml:"timeout"` // секунды
}

type PricingConfig struct {
	PlatformFeePercent float64 `toml:"platform_fee_percent"`
	DefaultProvince    string  `toml:"default_province"`
	Currency           string  `toml:"currency"`
}

type AuthConfig struct {
	JWTSecret string `toml:"jwt_secret"`
}

type CORSConfig struct {
	AllowedOrigins []string `toml:"allowed_origins"`
}

type RateLimitConfig struct {
	Enabled           bool    `toml:"enabled"`
	RequestsPerSecond float64 `toml:"requests_per_second"`
	Burst             int     `toml:"burst"`
	// Адреса и подсети обратных прокси; X-Forwarded-For от остальных игнорируется
	TrustedProxies []string `toml:"trusted_proxies"`
}

type AppConfig struct {
	PublicURL string `toml:"public_url"` // базовый URL SPA для ссылок на профиль вендора
}

// Load читает конфигурацию из TOML файла и применяет переменные окружения
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadConfig, path, err)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default конфигурация по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "planbeau_booking",
		},
		Redis: RedisConfig{
			Addr:       "localhost:6379",
			KeyPrefix:  "planbeau:",
			SessionTTL: 30 * 24 * 3600,
			HoursTTL:   300,
		},
		Kafka: KafkaConfig{
			Topic: "planbeau.events",
		},
		Places: PlacesConfig{
			URL:     "https://maps.googleapis.com/maps/api/place",
			Timeout: 5,
		},
		Pricing: PricingConfig{
			PlatformFeePercent: 5.0,
			DefaultProvince:    "ON",
			Currency:           "cad",
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 10,
			Burst:             20,
		},
	}
}

// applyEnv переопределяет секреты из окружения
func (c *Config) applyEnv() {
	overrides := map[string]*string{
		"PLANBEAU_DB_PASSWORD":    &c.Database.Password,
		"PLANBEAU_REDIS_PASSWORD": &c.Redis.Password,
		"PLANBEAU_JWT_SECRET":     &c.Auth.JWTSecret,
		"PLANBEAU_PLACES_API_KEY": &c.Places.APIKey,
		"STRIPE_SECRET_KEY":       &c.Stripe.SecretKey,
		"STRIPE_PUBLISHABLE_KEY":  &c.Stripe.PublishableKey,
	}
	for env, target := range overrides {
		if v, ok := os.LookupEnv(env); ok && v != "" {
			*target = v
		}
	}
	if v, ok := os.LookupEnv("PLANBEAU_KAFKA_BROKERS"); ok && v != "" {
		c.Kafka.Brokers = strings.Split(v, ",")
	}
}

// Validate проверяет обязательные параметры
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be in 1..65535", ErrInvalidConfig)
	}
	if c.Pricing.PlatformFeePercent < 0 || c.Pricing.PlatformFeePercent > 100 {
		return fmt.Errorf("%w: pricing.platform_fee_percent must be in 0..100", ErrInvalidConfig)
	}
	if c.Pricing.Currency == "" {
		return fmt.Errorf("%w: pricing.currency is required", ErrInvalidConfig)
	}
	if c.Kafka.Enabled && len(c.Kafka.Brokers) == 0 {
		return fmt.Errorf("%w: kafka.brokers is required when kafka is enabled", ErrInvalidConfig)
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("%w: auth.jwt_secret is required", ErrInvalidConfig)
	}
	return nil
}
