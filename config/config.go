package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config berisi semua setting aplikasi yang dibaca dari environment (.env).
type Config struct {
	Port    string
	GinMode string

	DBDriver          string // mysql, postgres, sqlite
	DBDSN             string
	DBHost            string
	DBPort            string
	DBUser            string
	DBPassword        string
	DBName            string
	DBMaxOpenConns    int
	DBMaxIdleConns    int
	DBConnMaxLifetime time.Duration

	StaticDir    string
	MenuSeedFile string

	CORSAllowOrigins []string
	TrustedProxies   []string
	RateLimitRPS     float64
	RateLimitBurst   int

	ShutdownTimeout time.Duration

	LogLevel  string
	LogFormat string
}

// Load membaca environment. Nilai kosong memakai default; nilai yang tidak bisa
// di-parse dikembalikan sebagai error.
func Load() (Config, error) {
	cfg := Config{
		Port:    getenv("PORT", "5600"),
		GinMode: getenv("GIN_MODE", "debug"),

		DBDriver:   strings.ToLower(getenv("DB_DRIVER", "mysql")),
		DBDSN:      os.Getenv("DB_DSN"),
		DBHost:     getenv("DB_HOST", "127.0.0.1"),
		DBUser:     getenv("DB_USER", "root"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     getenv("DB_NAME", "wildwestgrill"),

		StaticDir:    getenv("STATIC_DIR", "frontend"),
		MenuSeedFile: getenv("MENU_SEED_FILE", "database/seed/menu.yaml"),

		// TRUSTED_PROXIES kosong: tidak ada proxy yang dipercaya, IP client diambil dari koneksi
		CORSAllowOrigins: splitList(getenv("CORS_ALLOW_ORIGINS", "*")),
		TrustedProxies:   splitList(os.Getenv("TRUSTED_PROXIES")),

		LogLevel:  getenv("LOG_LEVEL", "info"),
		LogFormat: getenv("LOG_FORMAT", "text"),
	}

	var err error
	switch cfg.DBDriver {
	case "mysql":
		cfg.DBPort = getenv("DB_PORT", "3306")
	case "postgres":
		cfg.DBPort = getenv("DB_PORT", "5432")
	case "sqlite":
		if cfg.DBDSN == "" {
			cfg.DBDSN = "wildwestgrill.db"
		}
	default:
		return Config{}, fmt.Errorf("DB_DRIVER %q is not supported", cfg.DBDriver)
	}

	if cfg.DBMaxOpenConns, err = getInt("DB_MAX_OPEN_CONNS", 25); err != nil {
		return Config{}, err
	}
	if cfg.DBMaxIdleConns, err = getInt("DB_MAX_IDLE_CONNS", 5); err != nil {
		return Config{}, err
	}
	if cfg.DBConnMaxLifetime, err = getDuration("DB_CONN_MAX_LIFETIME", 30*time.Minute); err != nil {
		return Config{}, err
	}
	if cfg.RateLimitBurst, err = getInt("RATE_LIMIT_BURST", 50); err != nil {
		return Config{}, err
	}
	if cfg.RateLimitRPS, err = getFloat("RATE_LIMIT_RPS", 20); err != nil {
		return Config{}, err
	}
	if cfg.ShutdownTimeout, err = getDuration("SHUTDOWN_TIMEOUT", 10*time.Second); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Addr adalah alamat listen untuk http.Server.
func (c Config) Addr() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}

func getenv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func getInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be number: %w", key, err)
	}
	return i, nil
}

func getFloat(key string, def float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be number: %w", key, err)
	}
	return f, nil
}

func getDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration like 30s: %w", key, err)
	}
	return d, nil
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
