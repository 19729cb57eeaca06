package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Log      LogConfig
	Match    MatchConfig
	Database DatabaseConfig
	Redis    RedisConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
}

type LogConfig struct {
	JSON  bool
	Debug bool
}

type MatchConfig struct {
	Workers  int
	CacheTTL time.Duration
}

type DatabaseConfig struct {
	DBHost         string
	DBPort         string
	DBName         string
	DBUser         string
	DBPassword     string
	DBSSLMode      string
	PoolMaxConns   int32
	ConnectTimeout time.Duration
	MigrationsDir  string
}

// Enabled reports whether a database was configured at all. Project-driven
// matching is unavailable without one.
func (c DatabaseConfig) Enabled() bool {
	return strings.TrimSpace(c.DBHost) != ""
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
}

func (c RedisConfig) Enabled() bool {
	return strings.TrimSpace(c.Host) != ""
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

// Load reads configuration from the environment. Callers load any .env file
// beforehand.
func Load() (Config, error) {
	v := newViper()

	var missing []string
	req := func(key string) string {
		s := strings.TrimSpace(v.GetString(key))
		if s == "" {
			missing = append(missing, key)
		}
		return s
	}

	cfg := Config{}
	cfg.App = AppConfig{
		AppName:     req("APP_NAME"),
		Environment: trimmed(v, "APP_ENV"),
		HTTPPort:    req("HTTP_PORT"),
	}

	cfg.Log = LogConfig{
		JSON:  v.GetBool("LOG_JSON"),
		Debug: v.GetBool("LOG_DEBUG"),
	}

	ttl := v.GetInt("REDIS_TTL")
	if ttl <= 0 {
		ttl = 600
	}
	cfg.Match = MatchConfig{
		Workers:  v.GetInt("MATCH_WORKERS"),
		CacheTTL: time.Duration(ttl) * time.Second,
	}

	cfg.Database = databaseFrom(v)

	cfg.Redis = RedisConfig{
		Host:     trimmed(v, "REDIS_HOST"),
		Port:     trimmed(v, "REDIS_PORT"),
		Password: v.GetString("REDIS_PASSWORD"),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}

// LoadDatabase reads only the database keys, for tools that never serve
// HTTP. DB_HOST and DB_NAME are required.
func LoadDatabase() (DatabaseConfig, error) {
	cfg := databaseFrom(newViper())

	var missing []string
	if cfg.DBHost == "" {
		missing = append(missing, "DB_HOST")
	}
	if cfg.DBName == "" {
		missing = append(missing, "DB_NAME")
	}
	if len(missing) > 0 {
		return DatabaseConfig{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}
	return cfg, nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_JSON", false)
	v.SetDefault("LOG_DEBUG", false)
	v.SetDefault("MATCH_WORKERS", 0)
	v.SetDefault("REDIS_TTL", 600)
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_CONNECT_TIMEOUT", "5s")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("MIGRATIONS_DIR", "")
	return v
}

func databaseFrom(v *viper.Viper) DatabaseConfig {
	return DatabaseConfig{
		DBHost:         trimmed(v, "DB_HOST"),
		DBPort:         trimmed(v, "DB_PORT"),
		DBName:         trimmed(v, "DB_NAME"),
		DBUser:         trimmed(v, "DB_USER"),
		DBPassword:     v.GetString("DB_PASSWORD"),
		DBSSLMode:      trimmed(v, "DB_SSL_MODE"),
		PoolMaxConns:   v.GetInt32("DB_MAX_CONNS"),
		ConnectTimeout: v.GetDuration("DB_CONNECT_TIMEOUT"),
		MigrationsDir:  trimmed(v, "MIGRATIONS_DIR"),
	}
}

func trimmed(v *viper.Viper, key string) string {
	return strings.TrimSpace(v.GetString(key))
}
