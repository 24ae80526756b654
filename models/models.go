package models

// All mengembalikan semua model yang di-AutoMigrate, urut dari tabel induk.
func All() []interface{} {
	return []interface{}{
		&Customer{},
		&MenuItem{},
		&Order{},
		&OrderItem{},
		&Review{},
		&Reservation{},
		&InventoryItem{},
	}
}
