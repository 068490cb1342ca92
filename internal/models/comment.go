package models

import (
	"time"

	"github.com/google/uuid"
)

// CommentDB represents a comment record joined with its author's username.
type CommentDB struct {
	CommentID      int64     `json:"id" db:"comment_id"`       // Primary key
	ReviewID       int64     `json:"review_id" db:"review_id"` // Owning review
	AuthorID       uuid.UUID `json:"author_id" db:"author_id"` // Authoring user
	AuthorUsername string    `json:"author" db:"author_username"`
	Text           string    `json:"text" db:"text"`
	PubDate        time.Time `json:"pub_date" db:"pub_date"` // Server-assigned, immutable
}

// CommentWrite carries the fields persisted on comment creation. Author and
// review are bound server-side.
type CommentWrite struct {
	ReviewID int64
	AuthorID uuid.UUID
	Text     string
}
