package database

import (
	"fmt"

	"github.com/yeremiapane/wildwest-grill/models"
	"github.com/yeremiapane/wildwest-grill/utils"
	"gorm.io/gorm"
)

// Migrate membuat tabel, index, foreign key dan check constraint jika belum ada.
// Aman dipanggil berulang kali.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.All()...); err != nil {
		return err
	}

	for _, stmt := range dialectStatements(db.Dialector.Name()) {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migrate %q: %w", stmt, err)
		}
	}

	utils.InfoLogger.Println("AutoMigrate completed.")
	return nil
}

// dialectStatements adalah DDL tambahan yang tidak bisa diekspresikan lewat tag
// gorm secara portable. Collation default MySQL tidak membedakan huruf besar,
// padahal pasangan (name, table_number) dicocokkan persis.
func dialectStatements(dialect string) []string {
	switch dialect {
	case "mysql":
		return []string{
			"ALTER TABLE customers MODIFY name VARCHAR(255) CHARACTER SET utf8mb4 COLLATE utf8mb4_bin NOT NULL",
		}
	}
	return nil
}
