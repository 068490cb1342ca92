package models

import "time"

// TitleDB represents a title record in the database
type TitleDB struct {
	TitleID     int64     `json:"id" db:"title_id"`           // Primary key
	Name        string    `json:"name" db:"name"`             // Display name
	Year        int       `json:"year" db:"year"`             // Release year
	Description string    `json:"description" db:"description"`
	CategoryID  int64     `json:"category_id" db:"category_id"` // Owning category
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// TitleWithRating is a title joined with its category and the derived
// review-score mean. Rating is nil when the title has no reviews.
type TitleWithRating struct {
	TitleDB
	Rating       *float64  `json:"rating" db:"rating"`
	CategoryName string    `json:"category_name" db:"category_name"`
	CategorySlug string    `json:"category_slug" db:"category_slug"`
	Genres       []GenreDB `json:"genres" db:"-"`
}

// TitleWrite carries the fields persisted on title creation.
type TitleWrite struct {
	Name        string
	Year        int
	Description string
	CategoryID  int64
	GenreIDs    []int64
}

// TitleUpdate carries the fields of a partial title update. Nil pointers
// keep the stored value; a non-nil GenreIDs replaces the genre set.
type TitleUpdate struct {
	Name        *string
	Year        *int
	Description *string
	CategoryID  *int64
	GenreIDs    *[]int64
}
