package database

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/yeremiapane/wildwest-grill/models"
	"github.com/yeremiapane/wildwest-grill/utils"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type menuSeedFile struct {
	MenuItems []menuSeedItem `yaml:"menu_items"`
}

type menuSeedItem struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Price       string `yaml:"price"`
}

// ParseMenuSeed membaca dokumen YAML berisi daftar menu_items.
func ParseMenuSeed(data []byte) ([]models.MenuItem, error) {
	var file menuSeedFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse menu seed: %w", err)
	}

	items := make([]models.MenuItem, 0, len(file.MenuItems))
	seen := make(map[string]bool)
	for i, it := range file.MenuItems {
		name := strings.TrimSpace(it.Name)
		if name == "" {
			return nil, fmt.Errorf("menu seed entry %d: name is required", i)
		}
		if seen[name] {
			return nil, fmt.Errorf("menu seed entry %d: duplicate name %q", i, name)
		}
		seen[name] = true

		price, err := decimal.NewFromString(strings.TrimSpace(it.Price))
		if err != nil {
			return nil, fmt.Errorf("menu seed entry %q: invalid price: %w", name, err)
		}
		if !price.IsPositive() {
			return nil, fmt.Errorf("menu seed entry %q: price must be greater than 0", name)
		}

		items = append(items, models.MenuItem{
			Name:        name,
			Description: it.Description,
			Price:       price,
		})
	}
	return items, nil
}

// SeedMenu upsert menu dari file YAML berdasarkan nama.
// File yang tidak ada hanya di-log lalu dilewati.
func SeedMenu(db *gorm.DB, path string) (int, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		utils.InfoLogger.Printf("Menu seed file %s not found, skipping", path)
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	items, err := ParseMenuSeed(data)
	if err != nil {
		return 0, err
	}
	if len(items) == 0 {
		return 0, nil
	}

	err = db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"description", "price"}),
	}).Create(&items).Error
	if err != nil {
		return 0, fmt.Errorf("seed menu: %w", err)
	}

	utils.InfoLogger.Printf("Seeded %d menu items from %s", len(items), path)
	return len(items), nil
}
