package models

import "time"

// CategoryDB represents a category record in the database
type CategoryDB struct {
	CategoryID int64     `json:"id" db:"category_id"`        // Primary key
	Name       string    `json:"name" db:"name"`             // Unique display name
	Slug       string    `json:"slug" db:"slug"`             // Unique URL-safe identifier
	CreatedAt  time.Time `json:"created_at" db:"created_at"` // Creation timestamp
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"` // Last update timestamp
}
