package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yeremiapane/wildwest-grill/database"
	"github.com/yeremiapane/wildwest-grill/models"
	"github.com/yeremiapane/wildwest-grill/utils"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "GIN_MODE", "DB_DRIVER", "DB_DSN", "DB_HOST", "DB_PORT", "DB_USER",
		"DB_PASSWORD", "DB_NAME", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "CORS_ALLOW_ORIGINS",
		"SHUTDOWN_TIMEOUT", "DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS", "DB_CONN_MAX_LIFETIME",
		"TRUSTED_PROXIES",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":5600", cfg.Addr())
	assert.Equal(t, "mysql", cfg.DBDriver)
	assert.Equal(t, "3306", cfg.DBPort)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowOrigins)
	assert.Equal(t, 20.0, cfg.RateLimitRPS)
	assert.Equal(t, 50, cfg.RateLimitBurst)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Empty(t, cfg.TrustedProxies)
	assert.Equal(t, "root:@tcp(127.0.0.1:3306)/wildwestgrill?charset=utf8mb4&parseTime=True&loc=Local", cfg.DSN())
}

func TestLoad_Postgres(t *testing.T) {
	t.Setenv("DB_DSN", "")
	t.Setenv("DB_DRIVER", "Postgres")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "")
	t.Setenv("DB_USER", "grill")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "saloon")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, "host=db port=5432 user=grill password=secret dbname=saloon sslmode=disable", cfg.DSN())
}

func TestLoad_SQLiteAndOverrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_DSN", "")
	t.Setenv("PORT", ":8080")
	t.Setenv("CORS_ALLOW_ORIGINS", "http://a.test, http://b.test ,")
	t.Setenv("RATE_LIMIT_RPS", "0")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")
	t.Setenv("TRUSTED_PROXIES", "10.0.0.0/8")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "wildwestgrill.db?_foreign_keys=on", cfg.DSN())
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSAllowOrigins)
	assert.Zero(t, cfg.RateLimitRPS)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, []string{"10.0.0.0/8"}, cfg.TrustedProxies)
}

func TestLoad_Errors(t *testing.T) {
	cases := map[string][2]string{
		"unknown driver": {"DB_DRIVER", "oracle"},
		"bad int":        {"RATE_LIMIT_BURST", "lots"},
		"bad float":      {"RATE_LIMIT_RPS", "fast"},
		"bad duration":   {"SHUTDOWN_TIMEOUT", "10"},
	}
	for name, kv := range cases {
		t.Run(name, func(t *testing.T) {
			t.Setenv("DB_DRIVER", "mysql")
			t.Setenv(kv[0], kv[1])

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestInitDB_UnsupportedDriver(t *testing.T) {
	_, err := InitDB(Config{DBDriver: "oracle"})
	assert.Error(t, err)
}

func TestDSN_SQLiteForeignKeys(t *testing.T) {
	cases := map[string]string{
		"wildwestgrill.db":                    "wildwestgrill.db?_foreign_keys=on",
		"file:grill.db?cache=shared":          "file:grill.db?cache=shared&_foreign_keys=on",
		"grill.db?_foreign_keys=off":          "grill.db?_foreign_keys=off",
		"file::memory:?_fk=1":                 "file::memory:?_fk=1",
		"file:grill.db?mode=rwc&_journal=WAL": "file:grill.db?mode=rwc&_journal=WAL&_foreign_keys=on",
	}
	for in, want := range cases {
		cfg := Config{DBDriver: "sqlite", DBDSN: in}
		assert.Equal(t, want, cfg.DSN(), in)
	}
}

func TestInitDB_SQLiteEnforcesCascade(t *testing.T) {
	utils.ConfigureLogger("error", "text")

	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_DSN", filepath.Join(t.TempDir(), "grill.db"))
	cfg, err := Load()
	require.NoError(t, err)

	db, err := InitDB(cfg)
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, database.Migrate(db))

	customer := models.Customer{Name: "Alice", TableNumber: 4}
	require.NoError(t, db.Create(&customer).Error)
	require.NoError(t, db.Create(&models.Order{CustomerID: customer.ID}).Error)

	require.NoError(t, db.Delete(&customer).Error)

	var orders int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orders).Error)
	assert.Zero(t, orders)
}
