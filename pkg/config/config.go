package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env       string
	Port      int
	APIPrefix string

	Redis      RedisConfig
	CORS       CORSConfig
	Log        LogConfig
	Workload   WorkloadConfig
	Fees       FeesConfig
	Dashboard  DashboardConfig
	Settlement SettlementConfig
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	Enabled  bool
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

// WorkloadConfig carries the two independent band threshold sets: staff
// course-load classification and course seat occupancy. They look alike but
// drive different views and are tuned separately.
type WorkloadConfig struct {
	LoadHighRatio   float64
	LoadMediumRatio float64
	SeatHighRatio   float64
	SeatMediumRatio float64
}

// FeesConfig tunes fee ledger derivation.
type FeesConfig struct {
	// PartialFloor is the minimum paid amount for a fee to count as PARTIAL
	// rather than PENDING.
	PartialFloor float64
}

// DashboardConfig governs dashboard cache tuning.
type DashboardConfig struct {
	CacheTTL time.Duration
}

// SettlementConfig tunes the asynchronous payment settlement worker.
type SettlementConfig struct {
	Workers    int
	MaxRetries int
	RetryDelay time.Duration
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.APIPrefix = v.GetString("API_PREFIX")

	cfg.Redis = RedisConfig{
		Host:     v.GetString("REDIS_HOST"),
		Port:     v.GetInt("REDIS_PORT"),
		Password: v.GetString("REDIS_PASSWORD"),
		DB:       v.GetInt("REDIS_DB"),
		Enabled:  v.GetBool("REDIS_ENABLED"),
	}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Workload = WorkloadConfig{
		LoadHighRatio:   v.GetFloat64("WORKLOAD_LOAD_HIGH_RATIO"),
		LoadMediumRatio: v.GetFloat64("WORKLOAD_LOAD_MEDIUM_RATIO"),
		SeatHighRatio:   v.GetFloat64("WORKLOAD_SEAT_HIGH_RATIO"),
		SeatMediumRatio: v.GetFloat64("WORKLOAD_SEAT_MEDIUM_RATIO"),
	}

	cfg.Fees = FeesConfig{
		PartialFloor: v.GetFloat64("FEES_PARTIAL_FLOOR"),
	}

	cfg.Dashboard = DashboardConfig{
		CacheTTL: parseDuration(v.GetString("DASHBOARD_CACHE_TTL"), 5*time.Minute),
	}

	cfg.Settlement = SettlementConfig{
		Workers:    v.GetInt("SETTLEMENT_WORKERS"),
		MaxRetries: v.GetInt("SETTLEMENT_MAX_RETRIES"),
		RetryDelay: parseDuration(v.GetString("SETTLEMENT_RETRY_DELAY"), time.Second),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)
	v.SetDefault("API_PREFIX", "/api/v1")

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_ENABLED", false)

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("WORKLOAD_LOAD_HIGH_RATIO", 0.8)
	v.SetDefault("WORKLOAD_LOAD_MEDIUM_RATIO", 0.6)
	v.SetDefault("WORKLOAD_SEAT_HIGH_RATIO", 0.9)
	v.SetDefault("WORKLOAD_SEAT_MEDIUM_RATIO", 0.7)

	v.SetDefault("FEES_PARTIAL_FLOOR", 0.0)

	v.SetDefault("DASHBOARD_CACHE_TTL", "5m")

	v.SetDefault("SETTLEMENT_WORKERS", 1)
	v.SetDefault("SETTLEMENT_MAX_RETRIES", 3)
	v.SetDefault("SETTLEMENT_RETRY_DELAY", "1s")
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}
	return d
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
