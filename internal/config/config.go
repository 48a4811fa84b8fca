package config

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	App struct {
		Env string
	}

	Log struct {
		Level     string
		Format    string
		Component string
		Source    bool
	}

	DB struct {
		DSN      string
		Host     string
		Port     string
		User     string
		Password string
		Name     string
	}

	Redis struct {
		Addr     string
		Password string
		DB       int
	}

	GRPC struct {
		Host string
		Port string
	}

	// Session holds anti-abuse knobs for swipe session tracking.
	Session struct {
		Timeout          time.Duration // inactivity before a session rolls over
		MaxSwipes        int           // hard per-session cap (blocks, not errors)
		VelocityPerMin   float64       // swipes/min threshold for the advisory warning
		VelocityMinCount int           // velocity only evaluated after this many swipes
		SweepInterval    time.Duration // stale-session sweeper cadence
	}

	Undo struct {
		Window time.Duration // how long after a swipe it can still be undone
	}

	DailyPick struct {
		CacheTTL time.Duration // per-(seeker,day) cache entry lifetime
	}

	// Quality holds the compatibility scorer weights. They must sum to 1.0.
	Quality struct {
		DistanceWeight  float64
		AgeWeight       float64
		InterestWeight  float64
		LifestyleWeight float64
		PaceWeight      float64
		ResponseWeight  float64
	}
}

func New() *Config {
	cfg := &Config{}

	// App
	cfg.App.Env = getEnvDefault("APP_ENV", "development")

	// Logger
	cfg.Log.Level = getEnvDefault("LOG_LEVEL", "info")
	cfg.Log.Format = getEnvDefault("LOG_FORMAT", "text")
	cfg.Log.Component = getEnvDefault("LOG_COMPONENT", "grpc_server")
	cfg.Log.Source = isTruthy(os.Getenv("LOG_SOURCE"))

	// Database
	cfg.DB.DSN = os.Getenv("MYSQL_DSN")
	if cfg.DB.DSN == "" {
		cfg.DB.Host = getEnvDefault("DB_HOST", "localhost")
		cfg.DB.Port = getEnvDefault("DB_PORT", "3306")
		cfg.DB.User = getEnvDefault("DB_USER", "root")
		cfg.DB.Password = getEnvDefault("DB_PASSWORD", "root")
		cfg.DB.Name = getEnvDefault("DB_NAME", "kindled")

		cfg.DB.DSN = fmt.Sprintf(
			"%s:%s@tcp(%s:%s)/%s?parseTime=true&charset=utf8mb4&loc=UTC",
			cfg.DB.User, cfg.DB.Password, cfg.DB.Host, cfg.DB.Port, cfg.DB.Name,
		)
	}

	// Redis
	cfg.Redis.Addr = getEnvDefault("REDIS_ADDR", "localhost:6379")
	cfg.Redis.Password = getEnvDefault("REDIS_PASSWORD", "")
	if dbStr := getEnvDefault("REDIS_DB", "0"); dbStr != "" {
		if dbInt, err := strconv.Atoi(dbStr); err == nil {
			cfg.Redis.DB = dbInt
		}
	}

	// gRPC
	cfg.GRPC.Host = getEnvDefault("GRPC_HOST", "127.0.0.1")
	cfg.GRPC.Port = getEnvDefault("GRPC_PORT", "50051")

	// Sessions
	cfg.Session.Timeout = getEnvDuration("SESSION_TIMEOUT", 5*time.Minute)
	cfg.Session.MaxSwipes = getEnvInt("SESSION_MAX_SWIPES", 100)
	cfg.Session.VelocityPerMin = getEnvFloat("SESSION_VELOCITY_PER_MIN", 30.0)
	cfg.Session.VelocityMinCount = getEnvInt("SESSION_VELOCITY_MIN_COUNT", 10)
	cfg.Session.SweepInterval = getEnvDuration("SESSION_SWEEP_INTERVAL", time.Minute)

	// Undo
	cfg.Undo.Window = getEnvDuration("UNDO_WINDOW", 30*time.Second)

	// Daily pick
	cfg.DailyPick.CacheTTL = getEnvDuration("DAILY_PICK_CACHE_TTL", 48*time.Hour)

	// Scorer weights
	cfg.Quality.DistanceWeight = getEnvFloat("QUALITY_DISTANCE_WEIGHT", 0.15)
	cfg.Quality.AgeWeight = getEnvFloat("QUALITY_AGE_WEIGHT", 0.10)
	cfg.Quality.InterestWeight = getEnvFloat("QUALITY_INTEREST_WEIGHT", 0.25)
	cfg.Quality.LifestyleWeight = getEnvFloat("QUALITY_LIFESTYLE_WEIGHT", 0.25)
	cfg.Quality.PaceWeight = getEnvFloat("QUALITY_PACE_WEIGHT", 0.10)
	cfg.Quality.ResponseWeight = getEnvFloat("QUALITY_RESPONSE_WEIGHT", 0.15)

	return cfg
}

// ValidateWeights ensures the scorer weights sum to 1.0 (within epsilon).
func (c *Config) ValidateWeights() error {
	sum := c.Quality.DistanceWeight +
		c.Quality.AgeWeight +
		c.Quality.InterestWeight +
		c.Quality.LifestyleWeight +
		c.Quality.PaceWeight +
		c.Quality.ResponseWeight
	if math.Abs(sum-1.0) > 0.001 {
		return fmt.Errorf("quality weights must sum to 1.0, got %.3f", sum)
	}
	return nil
}

func getEnvDefault(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func getEnvInt(k string, def int) int {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvFloat(k string, def float64) float64 {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getEnvDuration(k string, def time.Duration) time.Duration {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "y", "on":
		return true
	}
	return false
}
