package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// Arguments - переменные окружения сервиса
type Arguments struct {
	ListenAddr     string        `env:"SERVER_ADDRESS" envDefault:"localhost:8080"`
	LogLevel       string        `env:"LOG_LEVEL" envDefault:"info"`
	DatabaseDSN    string        `env:"DATABASE_DSN" envDefault:""`
	JWTSecret      string        `env:"JWT_SECRET" envDefault:"secret"`
	CORSOrigins    string        `env:"CORS_ORIGINS" envDefault:"*"`
	OrdersAddr     string        `env:"ORDER_SERVICE_ADDRESS" envDefault:"http://localhost:8081"`
	RabbitMQURL    string        `env:"RABBITMQ_URL" envDefault:""`
	ExpirySchedule string        `env:"EXPIRY_SCHEDULE" envDefault:"@daily"`
	PointsTTL      time.Duration `env:"POINTS_TTL" envDefault:"17520h"`
	MaxAttempts    int           `env:"PURCHASE_MAX_ATTEMPTS" envDefault:"288"`
}

// ServerConfig модель настроек HTTP сервера
type ServerConfig struct {
	ListenAddr  string
	LogLevel    string
	JWTSecret   string
	DatabaseDSN string
	CORSOrigins []string
}

// OrdersConfig настройки опроса сервиса заказов витрины
type OrdersConfig struct {
	OrdersAddr   string
	BatchSize    int
	PollInterval time.Duration
	MaxAttempts  int // сверок до аннулирования неоплаченного заказа
}

// LoyaltyConfig параметры программы лояльности
type LoyaltyConfig struct {
	PointsTTL      time.Duration
	ExpirySchedule string
}

// EventsConfig настройки брокера событий
type EventsConfig struct {
	RabbitMQURL string
	Exchange    string
}

// Config модель настроек сервиса
type Config struct {
	Server  ServerConfig
	Orders  OrdersConfig
	Loyalty LoyaltyConfig
	Events  EventsConfig
}

// NewConfig читает .env, окружение и флаги командной строки
func NewConfig() Config {
	// .env не обязателен, окружение имеет приоритет
	_ = godotenv.Load()

	cfg, err := Parse(os.Args[1:])
	if err != nil {
		panic(fmt.Sprintf("Failed to parse configuration: %s", err.Error()))
	}
	return cfg
}

// Parse собирает конфигурацию из окружения и переданных аргументов
func Parse(arguments []string) (Config, error) {
	var args Arguments
	if err := env.Parse(&args); err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}

	fs := pflag.NewFlagSet("loyalty", pflag.ContinueOnError)
	var (
		server   = fs.StringP("server", "a", args.ListenAddr, "Server listen address in a form host:port.")
		logLevel = fs.StringP("log_level", "l", args.LogLevel, "Log level.")
		dsn      = fs.StringP("dsn", "d", args.DatabaseDSN, "Database DSN")
		secret   = fs.StringP("secret", "s", args.JWTSecret, "Secret to JWT")
		orders   = fs.StringP("orders", "r", args.OrdersAddr, "Storefront order service base URL.")
		amqpURL  = fs.StringP("amqp", "q", args.RabbitMQURL, "RabbitMQ URL, empty disables events.")
		schedule = fs.String("expiry_schedule", args.ExpirySchedule, "Cron schedule of the points expiry job.")
		ttl      = fs.Duration("points_ttl", args.PointsTTL, "Lifetime of earned points.")
		origins  = fs.String("cors", args.CORSOrigins, "Comma separated list of allowed CORS origins.")
		attempts = fs.Int("purchase_attempts", args.MaxAttempts, "Order status checks before an unpaid purchase is voided.")
	)
	if err := fs.Parse(arguments); err != nil {
		return Config{}, err
	}

	cfg := DefaultConfig()
	cfg.Server = ServerConfig{
		ListenAddr:  *server,
		LogLevel:    *logLevel,
		DatabaseDSN: *dsn,
		JWTSecret:   *secret,
		CORSOrigins: splitList(*origins),
	}
	cfg.Orders.OrdersAddr = *orders
	cfg.Orders.MaxAttempts = *attempts
	cfg.Events.RabbitMQURL = *amqpURL
	cfg.Loyalty.ExpirySchedule = *schedule
	cfg.Loyalty.PointsTTL = *ttl
	return cfg, nil
}

func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			ListenAddr:  "localhost:8080",
			LogLevel:    "info",
			DatabaseDSN: "",
			JWTSecret:   "secret",
			CORSOrigins: []string{"*"},
		},
		Orders: OrdersConfig{
			OrdersAddr:   "http://localhost:8081",
			BatchSize:    10,
			PollInterval: 5 * time.Second,
			MaxAttempts:  288,
		},
		Loyalty: LoyaltyConfig{
			PointsTTL:      2 * 365 * 24 * time.Hour,
			ExpirySchedule: "@daily",
		},
		Events: EventsConfig{
			Exchange: "loyalty.events",
		},
	}
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
