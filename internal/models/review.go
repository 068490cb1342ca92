package models

import (
	"time"

	"github.com/google/uuid"
)

// ReviewDB represents a review record joined with its author's username.
type ReviewDB struct {
	ReviewID       int64     `json:"id" db:"review_id"`        // Primary key
	TitleID        int64     `json:"title_id" db:"title_id"`   // Owning title
	AuthorID       uuid.UUID `json:"author_id" db:"author_id"` // Authoring user
	AuthorUsername string    `json:"author" db:"author_username"`
	Score          int       `json:"score" db:"score"` // Integer in [1,10]
	Text           string    `json:"text" db:"text"`
	PubDate        time.Time `json:"pub_date" db:"pub_date"` // Server-assigned, immutable
}

// ReviewWrite carries the fields persisted on review creation. Author and
// title are bound server-side.
type ReviewWrite struct {
	TitleID  int64
	AuthorID uuid.UUID
	Score    int
	Text     string
}
