package models

import "time"

// SweetDB represents a sweet inventory record in the database
type SweetDB struct {
	ID        string    `json:"id" db:"id"`             // Application-generated UUID
	Name      string    `json:"name" db:"name"`         // Display name, not unique
	Category  string    `json:"category" db:"category"` // Free-form category, exact-matched in search
	Price     float64   `json:"price" db:"price"`       // Unit price
	Quantity  int       `json:"quantity" db:"quantity"` // Stock on hand, never negative
	CreatedAt time.Time `json:"-" db:"created_at"`
	UpdatedAt time.Time `json:"-" db:"updated_at"`
}

// SweetFilter holds the optional search criteria. Nil fields are not applied.
type SweetFilter struct {
	Name     *string  // case-insensitive substring match
	Category *string  // exact match
	MinPrice *float64 // inclusive lower bound
	MaxPrice *float64 // inclusive upper bound
}
