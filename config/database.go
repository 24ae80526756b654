package config

import (
	"fmt"
	"strings"

	"github.com/yeremiapane/wildwest-grill/utils"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DSN menyusun connection string untuk driver yang dipilih.
// DB_DSN selalu menang jika diisi. Untuk sqlite foreign key selalu dinyalakan.
func (c Config) DSN() string {
	if c.DBDriver == "sqlite" {
		return sqliteForeignKeys(c.DBDSN)
	}
	if c.DBDSN != "" {
		return c.DBDSN
	}
	switch c.DBDriver {
	case "postgres":
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName)
	default:
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
	}
}

// sqliteForeignKeys menambahkan _foreign_keys=on kecuali DSN sudah mengaturnya.
// Tanpa itu go-sqlite3 mengabaikan ON DELETE CASCADE / SET NULL.
func sqliteForeignKeys(dsn string) string {
	if strings.Contains(dsn, "_foreign_keys=") || strings.Contains(dsn, "_fk=") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_foreign_keys=on"
}

func dialector(c Config) (gorm.Dialector, error) {
	switch c.DBDriver {
	case "mysql":
		return mysql.Open(c.DSN()), nil
	case "postgres":
		return postgres.Open(c.DSN()), nil
	case "sqlite":
		return sqlite.Open(c.DSN()), nil
	}
	return nil, fmt.Errorf("DB_DRIVER %q is not supported", c.DBDriver)
}

// InitDB membuka pool koneksi database. Pool ini dipakai bersama oleh semua
// handler; setiap query mengambil dan melepas koneksinya sendiri.
func InitDB(c Config) (*gorm.DB, error) {
	d, err := dialector(c)
	if err != nil {
		return nil, err
	}

	logLevel := logger.Warn
	if c.GinMode == "debug" && c.LogLevel == "debug" {
		logLevel = logger.Info
	}

	db, err := gorm.Open(d, &gorm.Config{
		Logger: logger.New(utils.InfoLogger, logger.Config{
			LogLevel:                  logLevel,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", c.DBDriver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(c.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(c.DBMaxIdleConns)
	sqlDB.SetConnMaxLifetime(c.DBConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("ping %s: %w", c.DBDriver, err)
	}

	utils.InfoLogger.Printf("Connected to %s database", c.DBDriver)
	return db, nil
}
