package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	DBUrl      string
	DBHost     string
	DBPort     int
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	ServerPort  string
	ServiceName string
	IsProd      bool

	AdminEmail    string
	AdminPassword string
	AdminName     string

	BcryptCost       int
	CheckEmailDomain bool

	RedisAddr        string
	RedisPassword    string
	RedisDB          int
	BusinessCacheTTL time.Duration

	LogLevel  string
	LogFormat string
}

// Load reads the configuration from the environment. A .env file, if any,
// has already been merged in by the CLI.
func Load() *Config {
	return &Config{
		DBUrl:      os.Getenv("DATABASE_URL"),
		DBHost:     getEnv("PGHOST", "127.0.0.1"),
		DBPort:     getEnvInt("PGPORT", 5433),
		DBName:     getEnv("PGDATABASE", "workhub"),
		DBUser:     getEnv("PGUSER", "workhub_user"),
		DBPassword: getEnv("PGPASSWORD", "workhub123"),
		DBSSLMode:  getEnv("PGSSLMODE", "disable"),

		ServerPort:  getEnv("SERVER_PORT", "5001"),
		ServiceName: getEnv("SERVICE_NAME", "workhub"),
		IsProd:      os.Getenv("GIN_MODE") == "release",

		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@workhub.local"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "admin123"),
		AdminName:     getEnv("ADMIN_NAME", "Admin"),

		BcryptCost:       getEnvInt("BCRYPT_COST", bcrypt.DefaultCost),
		CheckEmailDomain: getEnvBool("CHECK_EMAIL_DOMAIN", false),

		RedisAddr:        os.Getenv("REDIS_ADDR"),
		RedisPassword:    os.Getenv("REDIS_PASSWORD"),
		RedisDB:          getEnvInt("REDIS_DB", 0),
		BusinessCacheTTL: getEnvDuration("BUSINESS_CACHE_TTL", 30*time.Second),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "text"),
	}
}

// DSN returns DATABASE_URL when set, otherwise a postgres URL built from the
// PG* parts.
func (c *Config) DSN() string {
	if c.DBUrl != "" {
		return c.DBUrl
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     fmt.Sprintf("%s:%d", c.DBHost, c.DBPort),
		Path:     c.DBName,
		RawQuery: "sslmode=" + url.QueryEscape(c.DBSSLMode),
	}
	return u.String()
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
