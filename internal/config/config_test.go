package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		Name     string
		Env      map[string]string
		Args     []string
		Expected func() Config
	}{
		{
			Name: "Defaults #1",
			Expected: func() Config {
				return DefaultConfig()
			},
		},
		{
			Name: "Environment #2",
			Env: map[string]string{
				"SERVER_ADDRESS": ":9090",
				"DATABASE_DSN":   "postgres://loyalty@localhost/loyalty",
				"POINTS_TTL":     "720h",
				"CORS_ORIGINS":   "https://shop.example, https://admin.example",
			},
			Expected: func() Config {
				cfg := DefaultConfig()
				cfg.Server.ListenAddr = ":9090"
				cfg.Server.DatabaseDSN = "postgres://loyalty@localhost/loyalty"
				cfg.Server.CORSOrigins = []string{"https://shop.example", "https://admin.example"}
				cfg.Loyalty.PointsTTL = 720 * time.Hour
				return cfg
			},
		},
		{
			Name: "Flags override environment #3",
			Env:  map[string]string{"LOG_LEVEL": "warn", "RABBITMQ_URL": "amqp://env"},
			Args: []string{"-l", "debug", "--amqp", "amqp://flag", "--expiry_schedule", "0 3 * * *"},
			Expected: func() Config {
				cfg := DefaultConfig()
				cfg.Server.LogLevel = "debug"
				cfg.Events.RabbitMQURL = "amqp://flag"
				cfg.Loyalty.ExpirySchedule = "0 3 * * *"
				return cfg
			},
		},
		{
			Name: "Purchase attempts #4",
			Env:  map[string]string{"PURCHASE_MAX_ATTEMPTS": "12"},
			Args: []string{"--purchase_attempts", "6"},
			Expected: func() Config {
				cfg := DefaultConfig()
				cfg.Orders.MaxAttempts = 6
				return cfg
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			for key, value := range tc.Env {
				t.Setenv(key, value)
			}
			cfg, err := Parse(tc.Args)
			if err != nil {
				t.Fatalf("Expected no error, got: '%v'", err)
			}
			if diff := cmp.Diff(tc.Expected(), cfg); diff != "" {
				t.Errorf("config mismatch:\n %s", diff)
			}
		})
	}
}

func TestParse_InvalidFlag(t *testing.T) {
	if _, err := Parse([]string{"--unknown"}); err == nil {
		t.Errorf("Expected error, got none")
	}
}
