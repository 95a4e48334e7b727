package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/maelvns/footlogic/internal/platform/logging"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv                      string
	ServiceName                 string
	ServiceVersion              string
	HTTPAddr                    string
	DBURL                       string
	DBDisablePreparedBinary     bool
	SeedDemoData                bool
	CORSAllowedOrigins          []string
	ReadTimeout                 time.Duration
	WriteTimeout                time.Duration
	PprofEnabled                bool
	PprofAddr                   string
	NotifierEnabled             bool
	NotifierWebhookURL          string
	NotifierTimeout             time.Duration
	NotifierWorkers             int
	NotifierRetries             int
	NotifierCircuitFailureCount int
	NotifierCircuitOpenTimeout  time.Duration
	LogLevel                    logging.Level
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	pprofAddr := strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))
	if pprofEnabled && pprofAddr == "" {
		return Config{}, fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}

	seedDefault := "true"
	if appEnv == EnvProd {
		seedDefault = "false"
	}
	seedDemoData, err := strconv.ParseBool(getEnv("SEED_DEMO_DATA", seedDefault))
	if err != nil {
		return Config{}, fmt.Errorf("parse SEED_DEMO_DATA: %w", err)
	}

	notifierEnabled, err := strconv.ParseBool(getEnv("NOTIFIER_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse NOTIFIER_ENABLED: %w", err)
	}
	notifierWebhookURL := strings.TrimSpace(getEnv("NOTIFIER_WEBHOOK_URL", ""))
	if notifierEnabled && notifierWebhookURL == "" {
		return Config{}, fmt.Errorf("NOTIFIER_WEBHOOK_URL is required when NOTIFIER_ENABLED=true")
	}
	notifierTimeout, err := time.ParseDuration(getEnv("NOTIFIER_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse NOTIFIER_TIMEOUT: %w", err)
	}
	if notifierTimeout <= 0 {
		return Config{}, fmt.Errorf("NOTIFIER_TIMEOUT must be > 0")
	}
	notifierWorkers, err := getEnvAsInt("NOTIFIER_WORKERS", 4)
	if err != nil {
		return Config{}, fmt.Errorf("parse NOTIFIER_WORKERS: %w", err)
	}
	if notifierWorkers < 1 {
		return Config{}, fmt.Errorf("NOTIFIER_WORKERS must be >= 1")
	}
	notifierRetries, err := getEnvAsInt("NOTIFIER_RETRIES", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse NOTIFIER_RETRIES: %w", err)
	}
	if notifierRetries < 0 {
		return Config{}, fmt.Errorf("NOTIFIER_RETRIES must be >= 0")
	}
	notifierCircuitFailureCount, err := getEnvAsInt("NOTIFIER_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse NOTIFIER_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if notifierCircuitFailureCount < 1 {
		return Config{}, fmt.Errorf("NOTIFIER_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	notifierCircuitOpenTimeout, err := time.ParseDuration(getEnv("NOTIFIER_CIRCUIT_OPEN_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse NOTIFIER_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	if notifierCircuitOpenTimeout <= 0 {
		return Config{}, fmt.Errorf("NOTIFIER_CIRCUIT_OPEN_TIMEOUT must be > 0")
	}

	readTimeout, err := time.ParseDuration(getEnv("APP_READ_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_READ_TIMEOUT: %w", err)
	}

	writeTimeout, err := time.ParseDuration(getEnv("APP_WRITE_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_WRITE_TIMEOUT: %w", err)
	}

	dbDisablePreparedBinary, err := strconv.ParseBool(getEnv("DB_DISABLE_PREPARED_BINARY_RESULT", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse DB_DISABLE_PREPARED_BINARY_RESULT: %w", err)
	}

	cfg := Config{
		AppEnv:                      appEnv,
		ServiceName:                 getEnv("APP_SERVICE_NAME", "footlogic-api"),
		ServiceVersion:              getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:                    getEnv("APP_HTTP_ADDR", ":8080"),
		DBURL:                       getEnv("DB_URL", ""),
		DBDisablePreparedBinary:     dbDisablePreparedBinary,
		SeedDemoData:                seedDemoData,
		CORSAllowedOrigins:          splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		ReadTimeout:                 readTimeout,
		WriteTimeout:                writeTimeout,
		PprofEnabled:                pprofEnabled,
		PprofAddr:                   pprofAddr,
		NotifierEnabled:             notifierEnabled,
		NotifierWebhookURL:          notifierWebhookURL,
		NotifierTimeout:             notifierTimeout,
		NotifierWorkers:             notifierWorkers,
		NotifierRetries:             notifierRetries,
		NotifierCircuitFailureCount: notifierCircuitFailureCount,
		NotifierCircuitOpenTimeout:  notifierCircuitOpenTimeout,
		LogLevel:                    parseLogLevel(getEnv("APP_LOG_LEVEL", "info")),
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}

	return cfg, nil
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
