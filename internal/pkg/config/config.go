package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

type (
	Tasks struct {
		ViewCleanupInterval time.Duration
		ViewIdleTTL         time.Duration
	}

	HTTPServer struct {
		Port             string
		LogLevel         string
		RequestTimeout   time.Duration // middleware timeout
		RateLimiterQPS   int           // middleware rate limiter capacity
		RateLimiterBurst int           // middleware rate limiter refill
		PprofEnabled     bool
		PprofPort        string
	}

	Database struct {
		Host     string
		Port     string
		User     string
		Password string
		DBName   string
		SSLMode  string

		AutoMigrate bool
	}

	Backend struct {
		BaseURL        string
		RequestTimeout time.Duration
	}

	Kafka struct {
		Enabled bool
		Brokers string
		Topic   string
		Sarama  Sarama
	}

	Sarama struct {
		Version string
	}

	Config struct {
		Tasks    Tasks
		Server   HTTPServer
		Database Database
		Backend  Backend
		Kafka    Kafka
	}
)

func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

func (d Database) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		url.QueryEscape(d.User),
		url.QueryEscape(d.Password),
		d.Host,
		d.Port,
		d.DBName,
		d.SSLMode,
	)
}

func (k Kafka) BrokerList() []string {
	brokers := make([]string, 0)
	for _, b := range strings.Split(k.Brokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

func loadFromEnv() (*Config, error) {
	cleanupInterval, err := osGetEnvDuration("BACKGROUND_VIEW_CLEANUP_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	viewIdleTTL, err := osGetEnvDuration("VIEW_IDLE_TTL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	requestTimeout, err := osGetEnvDuration("MIDDLEWARE_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterQPS, err := osGetInt("MIDDLEWARE_RATE_LIMIT_QPS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterBurst, err := osGetInt("MIDDLEWARE_RATE_LIMIT_BURST")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pprofEnabled, err := osGetBool("PPROF_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	backendTimeout, err := osGetEnvDuration("BACKEND_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	autoMigrate, err := osGetBool("POSTGRES_AUTO_MIGRATE")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	kafkaEnabled, err := osGetBool("KAFKA_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return &Config{
		Tasks: Tasks{
			ViewCleanupInterval: cleanupInterval,
			ViewIdleTTL:         viewIdleTTL,
		},
		Server: HTTPServer{
			Port:             os.Getenv("PORT"),
			LogLevel:         os.Getenv("LOG_LEVEL"),
			RequestTimeout:   requestTimeout,
			RateLimiterQPS:   rateLimiterQPS,
			RateLimiterBurst: rateLimiterBurst,
			PprofEnabled:     pprofEnabled,
			PprofPort:        os.Getenv("PPROF_PORT"),
		},
		Database: Database{
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DBName:   os.Getenv("POSTGRES_DB"),
			SSLMode:  os.Getenv("POSTGRES_SSLMODE"),

			AutoMigrate: autoMigrate,
		},
		Backend: Backend{
			BaseURL:        os.Getenv("BACKEND_BASE_URL"),
			RequestTimeout: backendTimeout,
		},
		Kafka: Kafka{
			Enabled: kafkaEnabled,
			Brokers: os.Getenv("KAFKA_BROKERS"),
			Topic:   os.Getenv("KAFKA_TOPIC"),
			Sarama: Sarama{
				Version: os.Getenv("KAFKA_SARAMA_VERSION"),
			},
		},
	}, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.Server.RequestTimeout == time.Duration(0) {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT is required")
	}
	if cfg.Server.RateLimiterQPS == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS is required")
	}
	if cfg.Server.RateLimiterBurst == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST is required")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}

	if cfg.Database.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if cfg.Database.Port == "" {
		return errors.New("POSTGRES_PORT is required")
	}
	if cfg.Database.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if cfg.Database.Password == "" {
		return errors.New("POSTGRES_PASSWORD is required")
	}
	if cfg.Database.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}
	if cfg.Database.SSLMode == "" {
		return errors.New("POSTGRES_SSLMODE is required")
	}

	if cfg.Backend.BaseURL == "" {
		return errors.New("BACKEND_BASE_URL is required")
	}
	if _, err := url.ParseRequestURI(cfg.Backend.BaseURL); err != nil {
		return fmt.Errorf("BACKEND_BASE_URL is invalid: %w", err)
	}
	if cfg.Backend.RequestTimeout == time.Duration(0) {
		return errors.New("BACKEND_REQUEST_TIMEOUT is required")
	}

	if cfg.Tasks.ViewCleanupInterval == time.Duration(0) {
		return errors.New("BACKGROUND_VIEW_CLEANUP_INTERVAL is required")
	}
	if cfg.Tasks.ViewIdleTTL == time.Duration(0) {
		return errors.New("VIEW_IDLE_TTL is required")
	}

	if !cfg.Kafka.Enabled {
		return nil
	}
	if len(cfg.Kafka.BrokerList()) == 0 {
		return errors.New("KAFKA_BROKERS is required")
	}
	if cfg.Kafka.Topic == "" {
		return errors.New("KAFKA_TOPIC is required")
	}
	if cfg.Kafka.Sarama.Version == "" {
		return errors.New("KAFKA_SARAMA_VERSION is required")
	}

	return nil
}

func osGetInt(s string) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetEnvDuration(s string) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return time.Duration(0), nil
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid duration format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetBool(s string) (bool, error) {
	val := os.Getenv(s)
	if val == "" {
		return false, nil
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid bool format for %s=%q: %w", s, val, err)
	}
	return res, nil
}
