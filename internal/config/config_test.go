package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestLoadAppliesDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if cfg.Server.Port != 8000 {
		t.Fatalf("expected default port 8000, got %d", cfg.Server.Port)
	}
	if cfg.Server.ShutdownTimeout != 30*time.Second {
		t.Fatalf("expected default shutdown timeout 30s, got %s", cfg.Server.ShutdownTimeout)
	}
	if cfg.Stream.SendTimeout != 5*time.Second {
		t.Fatalf("expected default send timeout 5s, got %s", cfg.Stream.SendTimeout)
	}
	if cfg.Stream.MaxMessageSize != 64*1024 {
		t.Fatalf("expected default max message size 64KB, got %d", cfg.Stream.MaxMessageSize)
	}
	if len(cfg.CORS.AllowedOrigins) != 1 || cfg.CORS.AllowedOrigins[0] != "*" {
		t.Fatalf("expected wildcard CORS default, got %v", cfg.CORS.AllowedOrigins)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("AQI_SERVER__PORT", "9001")
	t.Setenv("AQI_MONITORING__LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if cfg.Server.Port != 9001 {
		t.Fatalf("expected port override 9001, got %d", cfg.Server.Port)
	}
	if cfg.Monitoring.LogLevel != "debug" {
		t.Fatalf("expected log level override debug, got %s", cfg.Monitoring.LogLevel)
	}
}

func TestLoadRejectsInvalidPort(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("AQI_SERVER__PORT", "-1")

	if _, err := Load(); err == nil {
		t.Fatalf("expected validation error for negative port")
	}
}
