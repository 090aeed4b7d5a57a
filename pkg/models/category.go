package models

import "time"

// Category is keyed by name. Items copy the name as free text, there is no
// foreign key between inventory.kategori and this table.
type Category struct {
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type CategoryRequest struct {
	Name string `json:"name"`
}

type RenameCategoryRequest struct {
	NewName string `json:"new_name"`
}
