package models

import "time"

// InventoryItem carries two numbers: ID is the permanent identity, No is the
// display sequence assigned at creation. Deleting an item leaves a gap in No,
// the remaining rows are never renumbered.
type InventoryItem struct {
	ID           int       `json:"id" db:"id"`
	No           int       `json:"no" db:"no"`
	Kategori     string    `json:"kategori" db:"kategori"`
	CodeBarang   *string   `json:"code_barang" db:"code_barang"`
	Nama         string    `json:"nama" db:"nama"`
	SerialNumber *string   `json:"serial_number" db:"serial_number"`
	Tanggal      *string   `json:"tanggal" db:"tanggal"`
	Lokasi       *string   `json:"lokasi" db:"lokasi"`
	AsalBarang   *string   `json:"asal_barang" db:"asal_barang"`
	Status       *string   `json:"status" db:"status"`
	Ukuran       *string   `json:"ukuran" db:"ukuran"`
	Keterangan   *string   `json:"keterangan" db:"keterangan"`
	CreatedBy    *int      `json:"created_by" db:"created_by"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// ItemRequest holds the descriptive fields a caller may set. No, ID and
// CreatedBy are assigned by the catalog and immutable afterwards.
type ItemRequest struct {
	Kategori     string  `json:"kategori"`
	CodeBarang   *string `json:"code_barang"`
	Nama         string  `json:"nama"`
	SerialNumber *string `json:"serial_number"`
	Tanggal      *string `json:"tanggal"`
	Lokasi       *string `json:"lokasi"`
	AsalBarang   *string `json:"asal_barang"`
	Status       *string `json:"status"`
	Ukuran       *string `json:"ukuran"`
	Keterangan   *string `json:"keterangan"`
}

// Stats is the aggregate view over the whole catalog. Bucket keys are the
// literal stored strings, NULL collapses to the empty key.
type Stats struct {
	Total      int            `json:"total"`
	ByStatus   map[string]int `json:"byStatus"`
	ByCategory map[string]int `json:"byCategory"`
}
