package config

import (
	"errors"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string
	Mode string // api, worker or empty for both

	DatabaseURL string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	JWTSecret          []byte
	JWTTTL             time.Duration
	CookieSecure       bool
	CORSAllowedOrigins []string
	PublicBaseURL      string

	Judge0URL                string
	Judge0AuthToken          string
	Judge0RapidAPIKey        string
	Judge0RapidAPIHost       string
	Judge0PollInterval       time.Duration
	Judge0MaxPolls           int
	Judge0MaxConcurrentPolls int

	RunRateLimit  int
	RunRateWindow time.Duration

	SweepInterval   time.Duration
	SweepStaleAfter time.Duration

	GoogleClientID     string
	GoogleClientSecret string
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("config: no .env file found, relying on environment variables")
	}

	cfg := &Config{
		Port:               getEnv("PORT", "8080"),
		Mode:               getEnv("MODE", ""),
		DatabaseURL:        getEnv("DATABASE_URL", ""),
		RedisAddr:          getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:      getEnv("REDIS_PASSWORD", ""),
		RedisDB:            getEnvAsInt("REDIS_DB", 0),
		JWTSecret:          []byte(getEnv("JWT_SECRET", "")),
		JWTTTL:             getEnvAsDuration("JWT_TTL", time.Hour),
		CookieSecure:       getEnvAsBool("COOKIE_SECURE", false),
		CORSAllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:5173"}),
		PublicBaseURL:      strings.TrimRight(getEnv("PUBLIC_BASE_URL", "http://localhost:8080"), "/"),

		Judge0URL:                getEnv("JUDGE0_URL", "https://judge0-ce.p.rapidapi.com"),
		Judge0AuthToken:          getEnv("JUDGE0_AUTH_TOKEN", ""),
		Judge0RapidAPIKey:        getEnv("JUDGE0_RAPIDAPI_KEY", ""),
		Judge0RapidAPIHost:       getEnv("JUDGE0_RAPIDAPI_HOST", "judge0-ce.p.rapidapi.com"),
		Judge0PollInterval:       getEnvAsDuration("JUDGE0_POLL_INTERVAL", time.Second),
		Judge0MaxPolls:           getEnvAsInt("JUDGE0_MAX_POLLS", 30),
		Judge0MaxConcurrentPolls: getEnvAsInt("JUDGE0_MAX_CONCURRENT_POLLS", 16),

		RunRateLimit:  getEnvAsInt("RUN_RATE_LIMIT", 10),
		RunRateWindow: getEnvAsDuration("RUN_RATE_WINDOW", time.Minute),

		SweepInterval:   getEnvAsDuration("SWEEP_INTERVAL", time.Minute),
		SweepStaleAfter: getEnvAsDuration("SWEEP_STALE_AFTER", 10*time.Minute),

		GoogleClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
		GoogleClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
	}

	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL is required")
	}
	if len(cfg.JWTSecret) == 0 {
		return nil, errors.New("JWT_SECRET is required")
	}
	return cfg, nil
}

// GoogleEnabled reports whether Google sign-in is configured.
func (c *Config) GoogleEnabled() bool {
	return c.GoogleClientID != "" && c.GoogleClientSecret != ""
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return fallback
}

// getEnvAsDuration accepts Go durations ("1500ms") or plain seconds ("30").
func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if d, err := time.ParseDuration(valueStr); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(valueStr); err == nil {
		return time.Duration(secs) * time.Second
	}
	return fallback
}

func getEnvAsList(key string, fallback []string) []string {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return fallback
	}
	var out []string
	for _, v := range strings.Split(valueStr, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
