// Package config loads the process-level settings shared by every binary:
// identity, log level and the HTTP listener.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	defaultAddr            = ":8080"
	defaultLogLevel        = "info"
	defaultShutdownTimeout = 15 * time.Second
	// A detail call may sit behind up to three throttled attempts and two
	// backoff sleeps, so the write deadline is generous.
	defaultWriteTimeout = 2 * time.Minute
)

type HTTPConfig struct {
	Addr string
	// CORSAllowedOrigins is the raw comma-separated CORS_ALLOWED_ORIGINS value.
	CORSAllowedOrigins string
	WriteTimeout       time.Duration
}

type AppConfig struct {
	ServiceName     string
	LogLevel        string
	ShutdownTimeout time.Duration
	HTTP            HTTPConfig
}

// Load reads the environment. An unset SERVICE_NAME falls back to defaultService.
func Load(defaultService string) (AppConfig, error) {
	cfg := AppConfig{
		ServiceName: getenv("SERVICE_NAME", defaultService),
		LogLevel:    getenv("LOG_LEVEL", defaultLogLevel),
		HTTP: HTTPConfig{
			Addr:               getenv("HTTP_ADDR", defaultAddr),
			CORSAllowedOrigins: getenv("CORS_ALLOWED_ORIGINS", ""),
		},
	}
	if cfg.ServiceName == "" {
		return AppConfig{}, fmt.Errorf("SERVICE_NAME is required")
	}

	var err error
	if cfg.ShutdownTimeout, err = duration("SHUTDOWN_TIMEOUT", defaultShutdownTimeout); err != nil {
		return AppConfig{}, err
	}
	if cfg.HTTP.WriteTimeout, err = duration("HTTP_WRITE_TIMEOUT", defaultWriteTimeout); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func duration(key string, def time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("%s: invalid duration %q", key, raw)
	}
	return d, nil
}
