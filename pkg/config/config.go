package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
// ⭐ SSOT: 모든 환경변수는 여기서만 읽음
type Config struct {
	// Server
	Port string
	Env  string // development, staging, production

	// Database
	Database DatabaseConfig

	// Redis
	Redis RedisConfig

	// External APIs
	Naver NaverConfig
	Clova ClovaConfig

	// News crawling
	News NewsConfig

	// Logging
	LogLevel  string
	LogFormat string
}

// DatabaseConfig holds PostgreSQL configuration
type DatabaseConfig struct {
	URL string

	// Connection Pool
	MaxConns        int
	MinConns        int
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	Enabled  bool
}

// NaverConfig holds Naver Open API (뉴스 검색) configuration
type NaverConfig struct {
	BaseURL      string
	ClientID     string
	ClientSecret string
}

// ClovaConfig holds HyperCLOVA X (CLOVA Studio) API configuration
type ClovaConfig struct {
	BaseURL string
	APIKey  string
	Model   string
}

// NewsConfig holds news crawling configuration
type NewsConfig struct {
	DefaultKeywords []string
	RecencyDays     int // pubDate 기준 최근 N일만 수집
	MaxArticles     int // 요약/태깅 대상 기사 수 상한
}

// Load reads configuration from environment variables
// ⭐ SSOT: 이 함수만 os.Getenv()를 호출함
func Load() (*Config, error) {
	loadEnvFile()

	cfg := &Config{
		// Server
		Port: getEnv("PORT", "8090"),
		Env:  getEnv("ENV", "development"),

		// Database
		Database: DatabaseConfig{
			URL:             getEnv("DATABASE_URL", ""),
			MaxConns:        getEnvAsInt("DB_MAX_CONNS", 10),
			MinConns:        getEnvAsInt("DB_MIN_CONNS", 2),
			MaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", "1h"),
			MaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", "30m"),
		},

		// Redis
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
			Enabled:  getEnvAsBool("REDIS_ENABLED", true),
		},

		// External APIs
		Naver: NaverConfig{
			BaseURL:      getEnv("NAVER_BASE_URL", "https://openapi.naver.com"),
			ClientID:     getEnv("NAVER_CLIENT_ID", ""),
			ClientSecret: getEnv("NAVER_CLIENT_SECRET", ""),
		},

		Clova: ClovaConfig{
			BaseURL: getEnv("CLOVA_BASE_URL", "https://clovastudio.stream.ntruss.com"),
			APIKey:  getEnv("CLOVA_API_KEY", ""),
			Model:   getEnv("CLOVA_MODEL", "HCX-DASH-001"),
		},

		// News crawling
		News: NewsConfig{
			DefaultKeywords: getEnvAsSlice("NEWS_KEYWORDS", []string{"금리", "ETF"}),
			RecencyDays:     getEnvAsInt("NEWS_RECENCY_DAYS", 2),
			MaxArticles:     getEnvAsInt("NEWS_MAX_ARTICLES", 10),
		},

		// Logging
		LogLevel:  getEnv("LOG_LEVEL", "debug"),
		LogFormat: getEnv("LOG_FORMAT", "json"),
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// validate checks if required configuration values are set
func (c *Config) validate() error {
	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return fmt.Errorf("ENV must be one of: development, staging, production")
	}

	if c.News.RecencyDays <= 0 {
		return fmt.Errorf("NEWS_RECENCY_DAYS must be positive")
	}

	return nil
}

// RequireDatabase checks that DATABASE_URL is configured.
// 뉴스 캐시를 쓰는 명령어(api, crawl)에서만 필수
func (c *Config) RequireDatabase() error {
	if c.Database.URL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	return nil
}

// RequireNaver checks that Naver Open API credentials are configured.
// 자격증명 누락은 유일하게 전파되는 시작 시점 실패 조건
func (c *Config) RequireNaver() error {
	if c.Naver.ClientID == "" || c.Naver.ClientSecret == "" {
		return fmt.Errorf("NAVER_CLIENT_ID and NAVER_CLIENT_SECRET are required")
	}
	return nil
}

// RequireClova checks that the CLOVA Studio API key is configured.
func (c *Config) RequireClova() error {
	if c.Clova.APIKey == "" {
		return fmt.Errorf("CLOVA_API_KEY is required")
	}
	return nil
}

// Helper functions (private, only used within this file)

// loadEnvFile tries to load .env from multiple locations
func loadEnvFile() {
	paths := []string{
		".env",         // Current directory
		"backend/.env", // From project root
	}

	if exe, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exe)
		paths = append(paths,
			filepath.Join(exeDir, ".env"),
			filepath.Join(exeDir, "..", ".env"),
		)
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			return
		}
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		valueStr = defaultValue
	}

	duration, err := time.ParseDuration(valueStr)
	if err != nil {
		duration, _ = time.ParseDuration(defaultValue)
	}

	return duration
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	parts := strings.Split(valueStr, ",")
	values := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	if len(values) == 0 {
		return defaultValue
	}
	return values
}
